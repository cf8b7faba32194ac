package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Config is read from the environment
type Config struct {
	Addr           string `env:"KLONDIKE_ADDR,default=:8000"`
	AllowedOrigins string `env:"KLONDIKE_ALLOWED_ORIGINS,default=*"`
	// Seed makes every shuffle deterministic when non-zero
	Seed       int64 `env:"KLONDIKE_SEED"`
	SendBuffer int   `env:"KLONDIKE_SEND_BUFFER,default=16"`
}

// Load decodes the Config from the environment.
// A value that does not parse is an error rather than a zero.
func Load() (Config, error) {
	var c Config
	if err := envdecode.StrictDecode(&c); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if c.SendBuffer < 1 {
		return Config{}, fmt.Errorf("KLONDIKE_SEND_BUFFER must be at least 1, got %d", c.SendBuffer)
	}

	return c, nil
}

// Origins splits AllowedOrigins on commas
func (c Config) Origins() []string {
	origins := []string{}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
