package gormstore

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"hiring/internal/adapters/out/gormstore/jobrepo"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config describes how to reach the database and how to size the pool.
// URL wins over the discrete host/port fields when both are set.
type Config struct {
	Driver   string
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// WithPoolDefaults fills unset pool parameters: 5 open, 2 idle,
// 5 minutes idle time and 20 minutes lifetime.
func (c Config) WithPoolDefaults() Config {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 5
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = 2
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = 5 * time.Minute
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = 20 * time.Minute
	}
	return c
}

// Open builds the pooled connection. It does not contact the database, so it
// succeeds while the server is still starting; use Provisioner to wait for it.
func Open(cfg Config, log *slog.Logger) (*gorm.DB, error) {
	if log == nil {
		log = slog.Default()
	}
	cfg = cfg.WithPoolDefaults()

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: true,
		Logger: logger.New(slogWriter{log: log.With("component", "gorm")}, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Migrate creates or alters the tables owned by this backend.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&jobrepo.JobDTO{})
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	driver, dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}

	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// BuildDSN resolves the driver and the driver-specific DSN. URL may be a
// postgres:// or mysql:// URL, optionally prefixed with "jdbc:", or a raw
// DSN for the configured driver. The driver defaults to the URL scheme,
// then to postgres.
func BuildDSN(cfg Config) (string, string, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(cfg.URL), "jdbc:")
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))

	var parsed *url.URL
	if raw != "" && strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", fmt.Errorf("parse database url: %w", err)
		}
		parsed = u
		if driver == "" {
			driver = schemeDriver(u.Scheme)
		}
	}
	if driver == "" {
		driver = DriverPostgres
	}

	switch driver {
	case DriverPostgres:
		dsn, err := postgresDSN(cfg, raw, parsed)
		return driver, dsn, err
	case DriverMySQL:
		dsn, err := mysqlDSN(cfg, raw, parsed)
		return driver, dsn, err
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func schemeDriver(scheme string) string {
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DriverPostgres
	case "mysql":
		return DriverMySQL
	default:
		return ""
	}
}

func postgresDSN(cfg Config, raw string, parsed *url.URL) (string, error) {
	if parsed == nil {
		if raw != "" {
			return raw, nil
		}
		parsed = postgresURL(cfg)
	}

	if parsed.User == nil && cfg.User != "" {
		parsed.User = url.UserPassword(cfg.User, cfg.Password)
	}
	if parsed.Query().Get("sslmode") == "" && cfg.SSLMode != "" {
		q := parsed.Query()
		q.Set("sslmode", cfg.SSLMode)
		parsed.RawQuery = q.Encode()
	}
	return pq.ParseURL(parsed.String())
}

// postgresURL assembles the discrete DB_* fields into a URL so that
// pq.ParseURL quotes and escapes every value.
func postgresURL(cfg Config) *url.URL {
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := &url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(cfg.Host, port),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	return u
}

func mysqlDSN(cfg Config, raw string, parsed *url.URL) (string, error) {
	if parsed == nil && raw != "" {
		return raw, nil
	}

	c := mysqldriver.NewConfig()
	c.Net = "tcp"
	c.ParseTime = true
	c.User = cfg.User
	c.Passwd = cfg.Password

	if parsed != nil {
		c.Addr = parsed.Host
		c.DBName = strings.TrimPrefix(parsed.Path, "/")
		if parsed.User != nil {
			c.User = parsed.User.Username()
			if pw, ok := parsed.User.Password(); ok {
				c.Passwd = pw
			}
		}
	} else {
		port := cfg.Port
		if port == "" {
			port = "3306"
		}
		c.Addr = cfg.Host + ":" + port
		c.DBName = cfg.Name
	}

	return c.FormatDSN(), nil
}

// slogWriter adapts slog to the Printf-style writer the gorm logger expects.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
