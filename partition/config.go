package partition

import "github.com/rs/zerolog"

// Config carries the configuration of partitioned lists.
type Config struct {
	// Receives debug events when partitions are created, and warnings when
	// the policy misbehaves or its advisory limit is exceeded.
	Logger zerolog.Logger
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration, which discards all logs.
func DefaultConfig() *Config {
	return &Config{
		Logger: zerolog.Nop(),
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// PartitionedList instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// WithLogger is a configuration option setting the logger of a PartitionedList.
//
// Default: zerolog.Nop()
func WithLogger(logger zerolog.Logger) Option {
	return option(func(config *Config) { config.Logger = logger })
}
