package server

import (
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/picture-mcp/internal/manifest"
	"github.com/ironsheep/picture-mcp/internal/picture"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel         = "PICTURE_MCP_LOG_LEVEL"
	EnvDevicePixelRatio = "PICTURE_MCP_DEVICE_PIXEL_RATIO"
	EnvProbeWorkers     = "PICTURE_MCP_PROBE_WORKERS"
)

// Config holds server settings.
type Config struct {
	// Debug enables lifecycle logging on stderr.
	Debug bool

	// DevicePixelRatio is the platform density signal used when a picture is
	// created without an explicit density or pixel ratio.
	DevicePixelRatio float64

	// ProbeWorkers bounds concurrent image probing for manifests.
	ProbeWorkers int
}

// DefaultConfig returns the settings used when no environment is set.
func DefaultConfig() Config {
	return Config{
		DevicePixelRatio: picture.DefaultDevicePixelRatio,
		ProbeWorkers:     manifest.DefaultWorkers,
	}
}

// LoadConfig reads settings from the environment. Invalid values are logged
// and replaced by defaults.
func LoadConfig() Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) Config {
	cfg := DefaultConfig()

	cfg.Debug = getenv(EnvLogLevel) == "debug"

	if v := getenv(EnvDevicePixelRatio); v != "" {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil || ratio <= 0 {
			log.Printf("Ignoring %s=%q: want a positive number", EnvDevicePixelRatio, v)
		} else {
			cfg.DevicePixelRatio = ratio
		}
	}

	if v := getenv(EnvProbeWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("Ignoring %s=%q: want a positive integer", EnvProbeWorkers, v)
		} else {
			cfg.ProbeWorkers = n
		}
	}

	return cfg
}
