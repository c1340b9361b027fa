package reminder

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/heartmarshall/lessonbell-backend/internal/config"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// Config holds scheduler timing.
type Config struct {
	// Interval is the tick period. It must not exceed the smallest threshold
	// or lessons could fall between two ticks.
	Interval        time.Duration
	Thresholds      []domain.Threshold
	NotifyTimeout   time.Duration
	RetentionMargin time.Duration
	// MaxLookback bounds how far a late tick reaches back to cover the gap
	// since the previous tick.
	MaxLookback time.Duration
	Concurrency int
	Location    *time.Location
}

// NewConfig converts the validated application config.
func NewConfig(rc config.ReminderConfig, loc *time.Location) Config {
	thresholds := make([]domain.Threshold, len(rc.Thresholds))
	for i, d := range rc.Thresholds {
		thresholds[i] = domain.Threshold(d)
	}
	return Config{
		Interval:        rc.Interval,
		Thresholds:      thresholds,
		NotifyTimeout:   rc.NotifyTimeout,
		RetentionMargin: rc.RetentionMargin,
		MaxLookback:     rc.MaxLookback,
		Concurrency:     rc.Concurrency,
		Location:        loc,
	}
}

// DefaultConfig returns the stock 60s tick with 30m and 10m reminders.
func DefaultConfig() Config {
	return Config{
		Interval:        time.Minute,
		Thresholds:      []domain.Threshold{domain.Threshold(30 * time.Minute), domain.Threshold(10 * time.Minute)},
		NotifyTimeout:   10 * time.Second,
		RetentionMargin: 2 * time.Hour,
		MaxLookback:     5 * time.Minute,
		Concurrency:     4,
		Location:        time.Local,
	}
}

// Validate checks the tick period against the thresholds.
func (c Config) Validate() error {
	var errs []error

	if len(c.Thresholds) == 0 {
		errs = append(errs, errors.New("at least one threshold is required"))
	}
	for _, t := range c.Thresholds {
		if t <= 0 || t.Duration()%time.Minute != 0 {
			errs = append(errs, fmt.Errorf("threshold %v must be a positive whole number of minutes", t.Duration()))
		}
	}
	if c.Interval <= 0 {
		errs = append(errs, errors.New("interval must be positive"))
	} else if len(c.Thresholds) > 0 && c.Interval > slices.Min(c.Thresholds).Duration() {
		errs = append(errs, fmt.Errorf("interval %v exceeds smallest threshold %v", c.Interval, slices.Min(c.Thresholds).Duration()))
	}
	if c.NotifyTimeout <= 0 {
		errs = append(errs, errors.New("notify timeout must be positive"))
	}
	if c.RetentionMargin <= 0 {
		errs = append(errs, errors.New("retention margin must be positive"))
	}
	if c.MaxLookback < c.Interval {
		errs = append(errs, errors.New("max lookback must be at least the interval"))
	}
	if c.Concurrency < 1 {
		errs = append(errs, errors.New("concurrency must be at least 1"))
	}
	if c.Location == nil {
		errs = append(errs, errors.New("location is required"))
	}

	return errors.Join(errs...)
}
