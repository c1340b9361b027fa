package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Timetable TimetableConfig `yaml:"timetable"`
	Reminder  ReminderConfig  `yaml:"reminder"`
	Notifier  NotifierConfig  `yaml:"notifier"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimit is the per-client request budget per minute; 0 disables it.
	RateLimit int `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"600"`
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig holds storage settings. The memory driver keeps everything
// in process and ignores the pool settings.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
	// SeedTeachersRaw lists teachers for the memory driver as
	// "username:email[:role],...". Role defaults to TEACHER.
	SeedTeachersRaw string `yaml:"seed_teachers" env:"DATABASE_SEED_TEACHERS"`

	// SeedTeachers is parsed from SeedTeachersRaw during validation.
	SeedTeachers []TeacherSeed `yaml:"-" env:"-"`
}

// TeacherSeed is one teacher provisioned into the memory driver.
type TeacherSeed struct {
	Username string
	Email    string
	Role     string
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"lessonbell"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TimetableConfig holds timetable query settings.
type TimetableConfig struct {
	Timezone       string        `yaml:"timezone"        env:"TIMETABLE_TIMEZONE"        env-default:"Local"`
	UpcomingWindow time.Duration `yaml:"upcoming_window" env:"TIMETABLE_UPCOMING_WINDOW" env-default:"30m"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ReminderConfig holds reminder scheduler settings.
type ReminderConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"REMINDER_ENABLED"          env-default:"true"`
	Interval        time.Duration `yaml:"interval"         env:"REMINDER_INTERVAL"         env-default:"60s"`
	ThresholdsRaw   string        `yaml:"thresholds"       env:"REMINDER_THRESHOLDS"       env-default:"30m,10m"`
	NotifyTimeout   time.Duration `yaml:"notify_timeout"   env:"REMINDER_NOTIFY_TIMEOUT"   env-default:"10s"`
	RetentionMargin time.Duration `yaml:"retention_margin" env:"REMINDER_RETENTION_MARGIN" env-default:"2h"`
	MaxLookback     time.Duration `yaml:"max_lookback"     env:"REMINDER_MAX_LOOKBACK"     env-default:"5m"`
	Concurrency     int           `yaml:"concurrency"      env:"REMINDER_CONCURRENCY"      env-default:"4"`
	PurgeSchedule   string        `yaml:"purge_schedule"   env:"REMINDER_PURGE_SCHEDULE"   env-default:"@every 10m"`

	// Thresholds is parsed from ThresholdsRaw during validation.
	Thresholds []time.Duration `yaml:"-" env:"-"`
}

// Notifier drivers.
const (
	NotifierSMTP = "smtp"
	NotifierLog  = "log"
)

// NotifierConfig holds outbound reminder delivery settings.
type NotifierConfig struct {
	Driver       string `yaml:"driver"        env:"NOTIFIER_DRIVER"        env-default:"log"`
	SMTPHost     string `yaml:"smtp_host"     env:"NOTIFIER_SMTP_HOST"`
	SMTPPort     int    `yaml:"smtp_port"     env:"NOTIFIER_SMTP_PORT"     env-default:"587"`
	SMTPUsername string `yaml:"smtp_username" env:"NOTIFIER_SMTP_USERNAME"`
	SMTPPassword string `yaml:"smtp_password" env:"NOTIFIER_SMTP_PASSWORD"`
	From         string `yaml:"from"          env:"NOTIFIER_FROM"          env-default:"noreply@lessonbell.local"`
	FromName     string `yaml:"from_name"     env:"NOTIFIER_FROM_NAME"     env-default:"Lesson Bell"`
}
