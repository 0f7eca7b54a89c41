package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string `env:"SPIRAL_HOME"`                                        // config directory, default $HOME/.spiral
	AuthURL string `env:"SPIRAL_AUTH_URL" envDefault:"http://127.0.0.1:8080"` // auth service base URL
	Debug   bool   `env:"SPIRAL_DEBUG"`

	HTTP *http.Client `env:"-"` // optional; defaults to http.DefaultClient
}

// FromEnv loads configuration from environment variables and fills in the
// default home directory when unset.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".spiral")
	}
	return cfg, nil
}
