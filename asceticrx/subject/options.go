package subject

import (
	"github.com/rs/zerolog"
)

type config struct {
	logger         zerolog.Logger
	keys           KeyGenerator
	replayTerminal bool
}

func defaultConfig() config {
	return config{
		logger: zerolog.Nop(),
		keys:   UUIDKeys(),
	}
}

// Option configures a subject at construction time.
type Option func(*config)

// WithLogger makes the subject report subscription changes at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithKeyGenerator replaces the generator of subscription ids.
// A nil generator keeps the default.
func WithKeyGenerator(keys KeyGenerator) Option {
	return func(c *config) {
		if keys != nil {
			c.keys = keys
		}
	}
}

// WithTerminalReplay makes the subject itself terminal. The first Error or
// Completed it receives is stored and broadcast once; later events are
// dropped, and observers subscribing afterwards immediately receive the
// stored stop event instead of being registered.
//
// Without this option the subject keeps no terminal state: each observer
// stops on its own, and observers subscribing after a stop event are
// registered as usual.
func WithTerminalReplay() Option {
	return func(c *config) {
		c.replayTerminal = true
	}
}
