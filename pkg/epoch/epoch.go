package epoch

import (
	"time"
)

// Index is the index of an epoch.
type Index uint32

// Clock maps wall-clock time to a monotonically increasing epoch index.
// Epoch 1 starts at the genesis time, every epoch lasts for the same fixed duration.
type Clock struct {
	genesisTime time.Time
	duration    time.Duration

	nowFunc func() time.Time
}

// Option is a function setting a Clock option.
type Option func(c *Clock)

// WithNowFunc overrides the time source of the Clock.
func WithNowFunc(nowFunc func() time.Time) Option {
	return func(c *Clock) {
		c.nowFunc = nowFunc
	}
}

// NewClock creates a new epoch Clock anchored at the given genesis time.
func NewClock(genesisTime time.Time, duration time.Duration, opts ...Option) *Clock {
	c := &Clock{
		genesisTime: genesisTime,
		duration:    duration,
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CurrentEpoch returns the epoch index the clock is currently in.
// Times before genesis map to epoch 0.
func (c *Clock) CurrentEpoch() Index {
	return c.EpochAt(c.nowFunc())
}

// EpochAt returns the epoch index the given time falls into.
func (c *Clock) EpochAt(t time.Time) Index {
	if t.Before(c.genesisTime) {
		return 0
	}

	return Index(t.Sub(c.genesisTime)/c.duration) + 1
}

// EpochStart returns the time the given epoch starts.
func (c *Clock) EpochStart(index Index) time.Time {
	if index == 0 {
		return c.genesisTime
	}

	return c.genesisTime.Add(time.Duration(index-1) * c.duration)
}

// EpochEnd returns the time the given epoch ends, which is the start of the next one.
func (c *Clock) EpochEnd(index Index) time.Time {
	return c.EpochStart(index + 1)
}
