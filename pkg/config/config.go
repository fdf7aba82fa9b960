package config

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/limbo/kakune/pkg/civiltime"
)

const DefaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress string `env:"API_ADDRESS" envDefault:":8080"`

	PostgresAddress  string `env:"POSTGRES_DB_ADDRESS" envDefault:"localhost:5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"kakune"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	// Empty address disables the history cache
	RedisAddress  string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"kakune"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`

	// ISO-8601 offset all day, week and month boundaries are computed in
	CivilOffset    string        `env:"CIVIL_OFFSET" envDefault:"+09:00"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	PhotoRetention time.Duration `env:"PHOTO_RETENTION" envDefault:"72h"`
	PhotoSweepCron string        `env:"PHOTO_SWEEP_CRON" envDefault:"0 * * * *"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // json, text
}

// New loads the process config once. Any error is fatal.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(DefaultEnvFile)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envFile into the environment when it exists and parses the
// config from the environment.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("loading envs error: " + err.Error())
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("parsing envs error: " + err.Error())
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if _, err := c.Zone(); err != nil {
		return err
	}
	if c.PhotoRetention <= 0 {
		return errors.New("PHOTO_RETENTION must be positive")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return errors.New("LOG_FORMAT must be json or text")
	}
	return nil
}

func (c *Config) Zone() (civiltime.Zone, error) {
	return civiltime.ParseOffset(c.CivilOffset)
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddress != ""
}

// SlogLevel maps LOG_LEVEL to a slog level, INFO when unknown.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Logger builds the process logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
