package paynode

import (
	"errors"
	"time"
)

// Config groups settings of the payment node.
type Config struct {
	// Schedule is a cron spec of the payment rounds, e.g. "@every 1m".
	Schedule string
	// BatchSize limits the number of due subscriptions fetched per round.
	BatchSize int
	// Workers is the number of payments executed concurrently.
	Workers int
	// RoundTimeout bounds a single payment round, zero means no limit.
	RoundTimeout time.Duration
}

// DefaultConfig returns Config with the default values.
func DefaultConfig() Config {
	return Config{
		Schedule:     "@every 1m",
		BatchSize:    64,
		Workers:      4,
		RoundTimeout: 5 * time.Minute,
	}
}

// Validate checks whether the Config is usable.
func (c Config) Validate() error {
	switch {
	case c.Schedule == "":
		return errors.New("empty schedule")
	case c.BatchSize <= 0:
		return errors.New("batch size must be positive")
	case c.Workers <= 0:
		return errors.New("number of workers must be positive")
	case c.RoundTimeout < 0:
		return errors.New("negative round timeout")
	}

	return nil
}
