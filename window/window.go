// Package window implements a partition policy which splits time into windows
// of fixed width, such as the daily schedule of a broadcast channel starting
// every morning at 06:00.
//
// Windows are aligned on the origin time of day of January 1st 2000 in the
// configured location, and follow each other every Width. Successive windows
// never overlap: a window ends one nanosecond before the next one starts. In
// locations observing daylight saving time, the local start time of windows
// moves with the offset of the location.
package window

import (
	"time"

	"github.com/segmentio/linkedlist/partition"
)

// About a century, well within the range of time.Duration.
const maxSpan = 100 * 365 * 24 * time.Hour

// Policy is a partition.Policy creating time windows.
type Policy struct {
	anchor time.Time
	width  time.Duration
	max    int
}

// New constructs a new Policy, using the list of options passed as arguments
// to configure it.
func New(options ...Option) (*Policy, error) {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig(config)
}

// NewWithConfig is like New but uses a Config instance to pass the policy
// configuration instead of a list of options.
func NewWithConfig(config *Config) (*Policy, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	loc := config.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Policy{
		anchor: time.Date(2000, time.January, 1, 0, 0, 0, 0, loc).Add(config.Origin),
		width:  config.Width,
		max:    config.MaxPartitions,
	}, nil
}

// MaxPartitions returns the advisory limit on the number of partitions.
func (p *Policy) MaxPartitions() int { return p.max }

// NewRange returns the window containing key. The policy never refuses to
// create a range, the partition count is ignored.
func (p *Policy) NewRange(_ int, key time.Time) (partition.Range[time.Time], error) {
	start := p.Start(key)
	return partition.NewRange(start, start.Add(p.width-time.Nanosecond), time.Time.Compare)
}

// Start returns the start time of the window containing t.
func (p *Policy) Start(t time.Time) time.Time {
	// time.Time.Sub saturates beyond ~292 years, move the anchor close to t
	// by whole multiples of the width first.
	span := (maxSpan / p.width) * p.width
	if span == 0 {
		span = p.width
	}
	anchor := p.anchor
	for t.Sub(anchor) > span {
		anchor = anchor.Add(span)
	}
	for t.Sub(anchor) < -span {
		anchor = anchor.Add(-span)
	}

	n := t.Sub(anchor) / p.width
	start := anchor.Add(n * p.width)
	if t.Before(start) {
		start = start.Add(-p.width)
	}
	return start
}

var _ partition.Policy[time.Time] = (*Policy)(nil)
