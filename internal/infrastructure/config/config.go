package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Client ClientConfig
	Server ServerConfig
}

// ClientConfig configures the interactive terminal client.
type ClientConfig struct {
	// ServerURL is the base URL of the remote file-tracking service.
	ServerURL string `env:"FTMS_SERVER, default=http://localhost:8080"`
	// StatePath is the bbolt file the session is mirrored into. Empty means
	// ~/.ftms/state.db (see StateFile).
	StatePath string `env:"FTMS_STATE"`
	// LogFile receives client log output so it never interleaves with the
	// interactive prompt.
	LogFile     string        `env:"FTMS_LOG_FILE, default=ftms.log"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,  default=10s"`
	NotifyTTL   time.Duration `env:"NOTIFY_TTL,    default=3s"`
}

// ServerConfig configures the local development server.
type ServerConfig struct {
	Port string `env:"PORT, default=8080"`
	Env  string `env:"ENV,  default=development"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// StateFile resolves the durable state file path, defaulting to
// ~/.ftms/state.db when FTMS_STATE is unset.
func (c ClientConfig) StateFile() (string, error) {
	if c.StatePath != "" {
		return c.StatePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, ".ftms", "state.db"), nil
}
