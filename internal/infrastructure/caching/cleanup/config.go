package cleanup

import (
	"time"

	"github.com/royalacademy/academy-go/pkg/config"
)

// Config carries the janitor's tunables.
type Config struct {
	CleanupInterval time.Duration
	CollectionTTL   time.Duration
}

// NewConfigFromEnv builds the janitor config from environment defaults.
func NewConfigFromEnv() *Config {
	return &Config{
		CleanupInterval: config.JanitorInterval,
		CollectionTTL:   config.CollectionTTL,
	}
}
