package render

import (
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// RenderPathBuilderOption is a functional option for configuring a RenderPath.
// Use the With* functions to create options that are applied directly to the
// render path instance.
type RenderPathBuilderOption func(*renderPath)

// WithClearColor sets the color all targets are cleared to at the start of
// each frame.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - RenderPathBuilderOption: option function to apply
func WithClearColor(c wgpu.Color) RenderPathBuilderOption {
	return func(r *renderPath) {
		r.clearColor = c
	}
}

// WithLogger sets the logger used for per-frame diagnostics such as rejected
// uniform pushes. Pass nil to silence logging.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - RenderPathBuilderOption: option function to apply
func WithLogger(log *zap.Logger) RenderPathBuilderOption {
	return func(r *renderPath) {
		if log == nil {
			log = zap.NewNop()
		}
		r.log = log
	}
}

// WithCameraResolver replaces the default camera resolver.
//
// Parameters:
//   - resolver: the resolver to use
//
// Returns:
//   - RenderPathBuilderOption: option function to apply
func WithCameraResolver(resolver CameraResolver) RenderPathBuilderOption {
	return func(r *renderPath) {
		r.cameras = resolver
	}
}

// WithVisibilityFilter replaces the default cullable-backed visibility filter.
//
// Parameters:
//   - filter: the filter to use
//
// Returns:
//   - RenderPathBuilderOption: option function to apply
func WithVisibilityFilter(filter VisibilityFilter) RenderPathBuilderOption {
	return func(r *renderPath) {
		r.visibility = filter
	}
}

// WithUniformSynchronizer replaces the default uniform synchronizer.
//
// Parameters:
//   - sync: the synchronizer to use
//
// Returns:
//   - RenderPathBuilderOption: option function to apply
func WithUniformSynchronizer(sync UniformSynchronizer) RenderPathBuilderOption {
	return func(r *renderPath) {
		r.uniforms = sync
	}
}

// WithDrawCommandBuilder replaces the default draw command builder.
//
// Parameters:
//   - builder: the builder to use
//
// Returns:
//   - RenderPathBuilderOption: option function to apply
func WithDrawCommandBuilder(builder DrawCommandBuilder) RenderPathBuilderOption {
	return func(r *renderPath) {
		r.draw = builder
	}
}
