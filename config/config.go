// package config loads renderer settings from a YAML file, falling back to
// sensible defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings of the forward renderer.
type Config struct {
	// ClearColor is the per-frame clear color as RGBA in [0, 1].
	ClearColor [4]float64 `yaml:"clear_color"`
	// LogLevel selects the zap level: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
	// CullingEnabled toggles the frustum culling refresh before each frame.
	CullingEnabled bool `yaml:"culling_enabled"`
}

// Default returns the configuration used when no file is provided: a dark grey
// clear color, info-level logging, and culling enabled.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		ClearColor:     [4]float64{0.1, 0.1, 0.1, 1.0},
		LogLevel:       "info",
		CullingEnabled: true,
	}
}

// Load reads a Config from a YAML file. A missing file is not an error and
// yields the defaults; a malformed file is.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - Config: the loaded configuration
//   - error: an error if the file exists but cannot be parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// WGPUClearColor converts the configured clear color to the wgpu color type.
//
// Returns:
//   - wgpu.Color: the clear color
func (c Config) WGPUClearColor() wgpu.Color {
	return wgpu.Color{
		R: c.ClearColor[0],
		G: c.ClearColor[1],
		B: c.ClearColor[2],
		A: c.ClearColor[3],
	}
}

// ZapLevel maps the configured log level to a zapcore level. Unrecognized
// values fall back to info.
//
// Returns:
//   - zapcore.Level: the logging level
func (c Config) ZapLevel() zapcore.Level {
	switch c.LogLevel {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger builds a production zap logger at the configured level.
//
// Returns:
//   - *zap.Logger: the logger
//   - error: an error if the logger could not be built
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.ZapLevel())
	return zc.Build()
}
