// package ecs provides the entity identifier type and the generic per-type
// component store the render path reads from. Entities are opaque IDs with no
// inherent data; all state lives in Store instances, one per component type.
package ecs

import (
	"sync/atomic"
)

// Entity is an opaque identifier grouping zero or more components.
// The zero value is the null entity and is never returned by NextEntity.
type Entity uint64

// NullEntity is the zero Entity. Component refs equal to NullEntity never
// resolve.
const NullEntity Entity = 0

// entityCount is an atomic counter backing NextEntity.
var entityCount atomic.Uint64

// NextEntity allocates a fresh, process-unique Entity.
// Safe for concurrent use.
//
// Returns:
//   - Entity: a new non-null entity identifier
func NextEntity() Entity {
	return Entity(entityCount.Add(1))
}
