package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Timetable.validate(); err != nil {
		return fmt.Errorf("timetable: %w", err)
	}
	if err := c.Reminder.validate(); err != nil {
		return fmt.Errorf("reminder: %w", err)
	}
	if err := c.Notifier.validate(); err != nil {
		return fmt.Errorf("notifier: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q", d.Driver)
	}

	seeds, err := ParseTeacherSeeds(d.SeedTeachersRaw)
	if err != nil {
		return fmt.Errorf("seed_teachers: %w", err)
	}
	d.SeedTeachers = seeds
	return nil
}

func (t *TimetableConfig) validate() error {
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", t.Timezone, err)
	}
	t.Location = loc

	if t.UpcomingWindow <= 0 {
		return fmt.Errorf("upcoming_window must be > 0 (got %v)", t.UpcomingWindow)
	}
	return nil
}

func (r *ReminderConfig) validate() error {
	thresholds, err := ParseDurations(r.ThresholdsRaw)
	if err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	if len(thresholds) == 0 {
		return fmt.Errorf("thresholds: at least one required")
	}
	for _, th := range thresholds {
		if th <= 0 {
			return fmt.Errorf("thresholds: %v must be > 0", th)
		}
		if th%time.Minute != 0 {
			return fmt.Errorf("thresholds: %v must be a whole number of minutes", th)
		}
	}
	r.Thresholds = thresholds

	if r.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %v)", r.Interval)
	}
	if narrowest := slices.Min(thresholds); r.Interval > narrowest {
		return fmt.Errorf("interval %v must not exceed the narrowest threshold %v", r.Interval, narrowest)
	}
	if r.NotifyTimeout <= 0 {
		return fmt.Errorf("notify_timeout must be > 0 (got %v)", r.NotifyTimeout)
	}
	if r.RetentionMargin <= 0 {
		return fmt.Errorf("retention_margin must be > 0 (got %v)", r.RetentionMargin)
	}
	if r.MaxLookback < r.Interval {
		return fmt.Errorf("max_lookback %v must be >= interval %v", r.MaxLookback, r.Interval)
	}
	if r.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", r.Concurrency)
	}
	if _, err := cron.ParseStandard(r.PurgeSchedule); err != nil {
		return fmt.Errorf("purge_schedule %q: %w", r.PurgeSchedule, err)
	}
	return nil
}

func (n *NotifierConfig) validate() error {
	switch n.Driver {
	case NotifierLog:
	case NotifierSMTP:
		if n.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required for driver %q", n.Driver)
		}
		if n.From == "" {
			return fmt.Errorf("from is required for driver %q", n.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q", n.Driver)
	}
	return nil
}

// ParseDurations parses a comma-separated string of durations (e.g. "30m,10m")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseDurations(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		out = append(out, d)
	}

	return out, nil
}

// ParseTeacherSeeds parses "username:email[:role]" entries separated by
// commas. Usernames must be unique.
func ParseTeacherSeeds(raw string) ([]TeacherSeed, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var out []TeacherSeed
	seen := make(map[string]bool)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("entry %q: want username:email[:role]", entry)
		}

		seed := TeacherSeed{
			Username: strings.TrimSpace(parts[0]),
			Email:    strings.TrimSpace(parts[1]),
			Role:     "TEACHER",
		}
		if len(parts) == 3 {
			seed.Role = strings.ToUpper(strings.TrimSpace(parts[2]))
		}
		if seed.Username == "" || !strings.Contains(seed.Email, "@") {
			return nil, fmt.Errorf("entry %q: username and a valid email are required", entry)
		}
		if seed.Role != "TEACHER" && seed.Role != "ADMIN" {
			return nil, fmt.Errorf("entry %q: unknown role %q", entry, seed.Role)
		}
		if seen[seed.Username] {
			return nil, fmt.Errorf("duplicate username %q", seed.Username)
		}
		seen[seed.Username] = true
		out = append(out, seed)
	}
	return out, nil
}
