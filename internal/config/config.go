// Package config reads process configuration from the environment, after
// loading a .env file when one exists.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/delivery-hub/pkg/auth"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPAddr    string
	GRPCAddr    string
	MetricsAddr string

	StorageDriver  string
	DatabaseURL    string
	MigrateOnStart bool

	RedisAddr     string
	RedisUsername string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	LogLevel  string
	LogFormat string
	GinMode   string
}

// Load reads .env (a missing file is not an error) and then the process
// environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a validated Config using getenv for lookups.
func FromEnv(getenv func(string) string) (Config, error) {
	p := parser{getenv: getenv}

	cfg := Config{
		HTTPAddr:       p.str("HTTP_ADDR", ":5000"),
		GRPCAddr:       p.str("GRPC_ADDR", ":50051"),
		MetricsAddr:    p.str("METRICS_ADDR", ":9090"),
		StorageDriver:  strings.ToLower(p.str("STORAGE_DRIVER", DriverPostgres)),
		MigrateOnStart: p.boolean("MIGRATE_ON_START", true),
		RedisAddr:      getenv("REDIS_ADDR"),
		RedisUsername:  getenv("REDIS_USERNAME"),
		RedisPassword:  getenv("REDIS_PASSWORD"),
		RedisDB:        p.integer("REDIS_DB", 0),
		CacheTTL:       p.duration("CACHE_TTL", 5*time.Minute),
		KafkaBrokers:   splitList(getenv("KAFKA_BROKERS")),
		KafkaTopic:     p.str("KAFKA_TOPIC", "order.events"),
		JWTSecret:      getenv("JWT_SECRET"),
		JWTTTL:         p.duration("JWT_TTL", auth.DefaultTTL),
		BcryptCost:     p.integer("BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:       p.str("LOG_LEVEL", "info"),
		LogFormat:      p.str("LOG_FORMAT", "text"),
		GinMode:        p.str("GIN_MODE", "release"),
	}
	cfg.DatabaseURL = databaseURL(getenv)

	if len(p.errs) > 0 {
		return Config{}, errors.Join(p.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL or DB_HOST/DB_NAME is required for the postgres driver"))
		}
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not one of postgres, memory", c.StorageDriver))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive"))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE %q is not one of debug, release, test", c.GinMode))
	}
	return errors.Join(errs...)
}

// databaseURL prefers DATABASE_URL and otherwise assembles a postgres URL
// from the DB_* variables.
func databaseURL(getenv func(string) string) string {
	if dsn := getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	host, name := getenv("DB_HOST"), getenv("DB_NAME")
	if host == "" || name == "" {
		return ""
	}
	port := getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	sslmode := getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getenv("DB_USER"), getenv("DB_PASSWORD")),
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: "sslmode=" + url.QueryEscape(sslmode),
	}
	return u.String()
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type parser struct {
	getenv func(string) string
	errs   []error
}

func (p *parser) str(key, def string) string {
	if v := p.getenv(key); v != "" {
		return v
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	raw := p.getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}

func (p *parser) boolean(key string, def bool) bool {
	raw := p.getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := p.getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}
