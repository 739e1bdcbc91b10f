package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Advisor AdvisorConfig `yaml:"advisor"`
	Images  ImagesConfig  `yaml:"images"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	Gzip           bool            `yaml:"gzip"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AdvisorConfig controls the seat side recommendation domain.
type AdvisorConfig struct {
	Timezone       string  `yaml:"timezone"`
	CorridorKm     float64 `yaml:"corridorKm"`
	CruiseSpeedKmh float64 `yaml:"cruiseSpeedKmh"`
}

// ImagesConfig controls landmark image lookups.
type ImagesConfig struct {
	Unsplash  UnsplashConfig `yaml:"unsplash"`
	CacheTTL  time.Duration  `yaml:"cacheTtl"`
	CacheSize int            `yaml:"cacheSize"`
	Redis     RedisConfig    `yaml:"redis"`
}

// UnsplashConfig contains photo API settings.
type UnsplashConfig struct {
	AccessKey string        `yaml:"accessKey"`
	BaseURL   string        `yaml:"baseUrl"`
	PerPage   int           `yaml:"perPage"`
	Timeout   time.Duration `yaml:"timeout"`
}

// RedisConfig contains connection information for cache storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_GZIP"); v != "" {
		cfg.HTTP.Gzip = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("ADVISOR_TIMEZONE"); v != "" {
		cfg.Advisor.Timezone = v
	}
	if v := os.Getenv("ADVISOR_CORRIDOR_KM"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Advisor.CorridorKm = parsed
		}
	}
	if v := os.Getenv("ADVISOR_CRUISE_SPEED_KMH"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Advisor.CruiseSpeedKmh = parsed
		}
	}
	if v := os.Getenv("UNSPLASH_ACCESS_KEY"); v != "" {
		cfg.Images.Unsplash.AccessKey = v
	}
	if v := os.Getenv("UNSPLASH_BASE_URL"); v != "" {
		cfg.Images.Unsplash.BaseURL = v
	}
	if v := os.Getenv("IMAGES_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Images.CacheTTL = parsed
		}
	}
	if v := os.Getenv("IMAGES_REDIS_ENABLED"); v != "" {
		cfg.Images.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("IMAGES_REDIS_ADDR"); v != "" {
		cfg.Images.Redis.Addr = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			Gzip:           true,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Advisor: AdvisorConfig{
			Timezone:       "Local",
			CorridorKm:     50,
			CruiseSpeedKmh: 850,
		},
		Images: ImagesConfig{
			Unsplash: UnsplashConfig{
				BaseURL: "https://api.unsplash.com",
				PerPage: 5,
				Timeout: 5 * time.Second,
			},
			CacheTTL:  6 * time.Hour,
			CacheSize: 256,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if _, err := c.Advisor.Location(); err != nil {
		return fmt.Errorf("advisor.timezone: %w", err)
	}
	if c.Advisor.CorridorKm <= 0 {
		return errors.New("advisor.corridorKm must be positive")
	}
	if c.Advisor.CruiseSpeedKmh <= 0 {
		return errors.New("advisor.cruiseSpeedKmh must be positive")
	}
	if c.Images.Unsplash.PerPage <= 0 {
		return errors.New("images.unsplash.perPage must be positive")
	}
	if c.Images.CacheTTL < 0 {
		return errors.New("images.cacheTtl cannot be negative")
	}
	if c.Images.Redis.Enabled && strings.TrimSpace(c.Images.Redis.Addr) == "" {
		return errors.New("images.redis.addr cannot be empty when redis cache is enabled")
	}
	return nil
}

// Location resolves the configured timezone. Empty and "Local" mean the host zone.
func (a AdvisorConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(a.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
