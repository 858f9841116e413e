package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Cache backends selectable with CACHE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSqlite   = "sqlite"
	BackendRedis    = "redis"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	AmapKey      string        `mapstructure:"AMAP_KEY"`
	AmapBaseURL  string        `mapstructure:"AMAP_BASE_URL"`
	OptimizerURL string        `mapstructure:"OPTIMIZER_URL"`
	HTTPTimeout  time.Duration `mapstructure:"HTTP_TIMEOUT"`

	MaxPointsPerSegment int `mapstructure:"MAX_POINTS_PER_SEGMENT"`
	SegmentParallelism  int `mapstructure:"SEGMENT_PARALLELISM"`

	CacheBackend  string `mapstructure:"CACHE_BACKEND"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DBPath        string `mapstructure:"DB_PATH"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found (using environment variables)")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AMAP_KEY", "")
	v.SetDefault("AMAP_BASE_URL", "https://restapi.amap.com")
	v.SetDefault("OPTIMIZER_URL", "http://localhost:8000")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("MAX_POINTS_PER_SEGMENT", 16)
	v.SetDefault("SEGMENT_PARALLELISM", 1)
	v.SetDefault("CACHE_BACKEND", BackendMemory)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_PATH", "data/app.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that would otherwise fail later at request time.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AmapKey) == "" {
		return fmt.Errorf("AMAP_KEY is required")
	}
	if c.MaxPointsPerSegment < 2 {
		return fmt.Errorf("MAX_POINTS_PER_SEGMENT must be at least 2, got %d", c.MaxPointsPerSegment)
	}
	if c.SegmentParallelism < 1 {
		return fmt.Errorf("SEGMENT_PARALLELISM must be at least 1, got %d", c.SegmentParallelism)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	switch c.CacheBackend {
	case BackendMemory, BackendSqlite:
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required for CACHE_BACKEND=%s", c.CacheBackend)
		}
	case BackendRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("REDIS_ADDR is required for CACHE_BACKEND=%s", c.CacheBackend)
		}
	default:
		return fmt.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend)
	}

	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
