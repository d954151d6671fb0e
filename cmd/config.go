package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"hiring/internal/adapters/out/gormstore"
	"hiring/internal/core/application/usecases/commands"
	"hiring/internal/jobs"
	"hiring/internal/pkg/mailer"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment and an
// optional .env file in the working directory.
type Config struct {
	HTTPPort string

	DBEnabled     bool
	DBDriver      string
	DBURL         string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	DBWaitRetries int
	DBWaitDelay   time.Duration
	DBAutoMigrate bool
	DBHealthCron  string

	CORSAllowedOrigins []string

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailFrom     string
	MailNotifyTo []string
	MailDebug    bool
	MailTimeout  time.Duration

	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	JWTTTL            time.Duration

	LogLevel slog.Level
}

// LoadConfig loads .env when present, then reads the environment. Variables
// already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	env := envReader{getenv: getenv}

	cfg := Config{
		HTTPPort: env.str("HTTP_PORT", "8080"),

		DBEnabled:     env.boolean("DB_ENABLED", true),
		DBDriver:      env.str("DB_DRIVER", gormstore.DriverPostgres),
		DBURL:         env.str("DB_URL", ""),
		DBHost:        env.str("DB_HOST", "localhost"),
		DBPort:        env.str("DB_PORT", ""),
		DBUser:        env.str("DB_USER", ""),
		DBPassword:    env.str("DB_PASSWORD", ""),
		DBName:        env.str("DB_NAME", "hiring"),
		DBSslMode:     env.str("DB_SSLMODE", "disable"),
		DBWaitRetries: env.integer("DB_WAIT_RETRIES", 30),
		DBWaitDelay:   env.duration("DB_WAIT_DELAY", 2*time.Second),
		DBAutoMigrate: env.boolean("DB_AUTO_MIGRATE", true),
		DBHealthCron:  env.str("DB_HEALTH_CRON", jobs.DefaultDatabaseHealthSpec),

		CORSAllowedOrigins: env.list("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:5174",
			"http://localhost:3000",
			"http://127.0.0.1:5173",
		}),

		MailHost:     env.str("MAIL_HOST", "localhost"),
		MailPort:     env.integer("MAIL_PORT", 587),
		MailUsername: env.str("MAIL_USERNAME", "test@example.com"),
		MailPassword: env.str("MAIL_PASSWORD", "test"),
		MailFrom:     env.str("MAIL_FROM", ""),
		MailNotifyTo: env.list("MAIL_NOTIFY_TO", nil),
		MailDebug:    env.boolean("MAIL_DEBUG", false),
		MailTimeout:  env.duration("MAIL_TIMEOUT", commands.DefaultNotifyTimeout),

		AdminUsername:     env.str("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: env.str("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         env.str("JWT_SECRET", ""),
		JWTTTL:            env.duration("JWT_TTL", time.Hour),

		LogLevel: env.level("LOG_LEVEL", slog.LevelInfo),
	}

	if err := env.err(); err != nil {
		return Config{}, err
	}
	if cfg.DBWaitRetries < 0 {
		return Config{}, fmt.Errorf("DB_WAIT_RETRIES: must not be negative, got %d", cfg.DBWaitRetries)
	}
	if cfg.AdminPasswordHash != "" && cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}

	return cfg, nil
}

// Database maps the DB_* settings to the gormstore connection config.
func (c Config) Database() gormstore.Config {
	return gormstore.Config{
		Driver:   c.DBDriver,
		URL:      c.DBURL,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}.WithPoolDefaults()
}

// Mailer maps the MAIL_* settings to the mailer config.
func (c Config) Mailer() mailer.Config {
	return mailer.Config{
		Host:     c.MailHost,
		Port:     c.MailPort,
		Username: c.MailUsername,
		Password: c.MailPassword,
		From:     c.MailFrom,
		NotifyTo: c.MailNotifyTo,
		Debug:    c.MailDebug,
	}.WithDefaults()
}

// envReader collects parse failures so every bad variable is reported at once.
type envReader struct {
	getenv func(string) string
	errs   []error
}

func (r *envReader) str(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *envReader) integer(key string, def int) int {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *envReader) boolean(key string, def bool) bool {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

// duration accepts Go durations ("2s", "1h") and bare integers as seconds.
func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

// list splits a comma separated value, dropping blanks.
func (r *envReader) list(key string, def []string) []string {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r *envReader) level(key string, def slog.Level) slog.Level {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return l
}

func (r *envReader) err() error {
	return errors.Join(r.errs...)
}
