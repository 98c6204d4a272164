package window

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultOrigin is the default time of day at which windows start.
	DefaultOrigin = 6 * time.Hour

	// DefaultWidth is the default duration covered by a window.
	DefaultWidth = 24 * time.Hour

	// DefaultMaxPartitions is the default advisory limit on the number of
	// partitions, a month of daily windows.
	DefaultMaxPartitions = 31
)

var (
	// ErrInvalidConfig is returned when a configuration cannot be used to
	// construct a Policy.
	ErrInvalidConfig = errors.New("invalid window configuration")
)

// Config carries the configuration of a window policy.
type Config struct {
	Origin        time.Duration
	Width         time.Duration
	MaxPartitions int
	Location      *time.Location
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration: daily windows starting at 06:00 UTC.
func DefaultConfig() *Config {
	return &Config{
		Origin:        DefaultOrigin,
		Width:         DefaultWidth,
		MaxPartitions: DefaultMaxPartitions,
		Location:      time.UTC,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

func (c *Config) validate() error {
	if c.Width <= time.Nanosecond {
		return fmt.Errorf("%w: width must be longer than 1ns, got %s", ErrInvalidConfig, c.Width)
	}
	if c.Origin < 0 || c.Origin >= 24*time.Hour {
		return fmt.Errorf("%w: origin must be a time of day, got %s", ErrInvalidConfig, c.Origin)
	}
	if c.MaxPartitions < 0 {
		return fmt.Errorf("%w: max partitions must not be negative, got %d", ErrInvalidConfig, c.MaxPartitions)
	}
	return nil
}

// Option is an interface implemented by options allowing configuration of new
// Policy instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Origin is a configuration option setting the time of day, as an offset from
// midnight, at which windows start.
//
// Default: 6h
func Origin(offset time.Duration) Option {
	return option(func(config *Config) { config.Origin = offset })
}

// Width is a configuration option setting the duration covered by windows.
//
// Default: 24h
func Width(width time.Duration) Option {
	return option(func(config *Config) { config.Width = width })
}

// MaxPartitions is a configuration option setting the advisory limit on the
// number of partitions. Zero declares no limit.
//
// Default: 31
func MaxPartitions(count int) Option {
	return option(func(config *Config) { config.MaxPartitions = count })
}

// Location is a configuration option setting the time zone in which the
// origin is expressed.
//
// Default: UTC
func Location(loc *time.Location) Option {
	return option(func(config *Config) { config.Location = loc })
}

type fileConfig struct {
	Origin        string `yaml:"origin"`
	Width         string `yaml:"width"`
	MaxPartitions *int   `yaml:"max_partitions"`
	Location      string `yaml:"location"`
}

// ParseConfig parses a YAML document into a Config. Fields absent from the
// document retain their default values.
//
//	origin: "06:00"
//	width: 24h
//	max_partitions: 31
//	location: Europe/London
func ParseConfig(data []byte) (*Config, error) {
	f := fileConfig{}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	config := DefaultConfig()

	if f.Origin != "" {
		t, err := time.Parse("15:04", f.Origin)
		if err != nil {
			return nil, fmt.Errorf("%w: origin: %w", ErrInvalidConfig, err)
		}
		config.Origin = time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	}

	if f.Width != "" {
		width, err := time.ParseDuration(f.Width)
		if err != nil {
			return nil, fmt.Errorf("%w: width: %w", ErrInvalidConfig, err)
		}
		config.Width = width
	}

	if f.MaxPartitions != nil {
		config.MaxPartitions = *f.MaxPartitions
	}

	if f.Location != "" {
		loc, err := time.LoadLocation(f.Location)
		if err != nil {
			return nil, fmt.Errorf("%w: location: %w", ErrInvalidConfig, err)
		}
		config.Location = loc
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig reads and parses the YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}
