package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EngineFlagsEnv is the environment variable that carries browser engine flags
const EngineFlagsEnv = "WAYANG_ENGINE_FLAGS"

// DefaultEngineFlags is exported into EngineFlagsEnv at startup
const DefaultEngineFlags = "--disable-gpu --disable-software-rasterizer"

// Config holds process configuration read from the environment.
type Config struct {
	Data    DataConfig
	Assets  AssetConfig
	Logging LogConfig
	Engine  EngineConfig
}

// DataConfig locates the persisted bookmarks and history document.
type DataConfig struct {
	File string `envconfig:"WAYANG_DATA_FILE" default:"browser_data.json"`
}

// AssetConfig names optional files loaded from the working directory.
type AssetConfig struct {
	AppIcon string `envconfig:"WAYANG_APP_ICON" default:"wayang_app_icon.png"`
	Favicon string `envconfig:"WAYANG_FAVICON" default:"wayang_favicon.png"`
	Font    string `envconfig:"WAYANG_FONT" default:"Roboto-Regular.ttf"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"WAYANG_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"WAYANG_LOG_DEV" default:"false"`
}

// EngineConfig configures the bundled reader engine.
type EngineConfig struct {
	Flags        string        `envconfig:"WAYANG_ENGINE_FLAGS"`
	UserAgent    string        `envconfig:"WAYANG_USER_AGENT" default:"Wayang/1.0 (+reader)"`
	Timeout      time.Duration `envconfig:"WAYANG_HTTP_TIMEOUT" default:"30s"`
	MaxPageBytes int64         `envconfig:"WAYANG_MAX_PAGE_BYTES" default:"10485760"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			File: "browser_data.json",
		},
		Assets: AssetConfig{
			AppIcon: "wayang_app_icon.png",
			Favicon: "wayang_favicon.png",
			Font:    "Roboto-Regular.ttf",
		},
		Logging: LogConfig{
			Level: "info",
		},
		Engine: EngineConfig{
			Flags:        DefaultEngineFlags,
			UserAgent:    "Wayang/1.0 (+reader)",
			Timeout:      30 * time.Second,
			MaxPageBytes: 10 << 20,
		},
	}
}
