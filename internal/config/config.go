package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	Server    ServerConfig
	OSMDB     DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Query     QueryConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// SearchCacheTTL of zero disables result caching.
	SearchCacheTTL time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// QueryConfig - параметры нормализации запросов
type QueryConfig struct {
	SupportedLanguages []string
	SearchMaxLimit     int
	BulkMaxItems       int
	BulkConcurrency    int
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func setDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 2322)
	viper.SetDefault("API_ENV", "development")

	viper.SetDefault("OSM_DB_HOST", "localhost")
	viper.SetDefault("OSM_DB_PORT", 5432)
	viper.SetDefault("OSM_DB_SSLMODE", "disable")
	viper.SetDefault("OSM_DB_MAX_CONNS", 20)
	viper.SetDefault("OSM_DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("OSM_DB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("OSM_DB_CONN_MAX_IDLE_TIME", 60)

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("SEARCH_CACHE_TTL", 300)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_MAX_SIZE_MB", 100)
	viper.SetDefault("LOG_MAX_BACKUPS", 10)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 30)

	viper.SetDefault("SUPPORTED_LANGUAGES", "en,de,fr,it")
	viper.SetDefault("SEARCH_MAX_LIMIT", 50)
	viper.SetDefault("BULK_MAX_ITEMS", 100)
	viper.SetDefault("BULK_CONCURRENCY", 4)

	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	languages, err := ParseLanguages(viper.GetString("SUPPORTED_LANGUAGES"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		OSMDB: DatabaseConfig{
			Host:            viper.GetString("OSM_DB_HOST"),
			Port:            viper.GetInt("OSM_DB_PORT"),
			User:            viper.GetString("OSM_DB_USER"),
			Password:        viper.GetString("OSM_DB_PASSWORD"),
			DBName:          viper.GetString("OSM_DB_NAME"),
			SSLMode:         viper.GetString("OSM_DB_SSLMODE"),
			MaxConns:        viper.GetInt("OSM_DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("OSM_DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("OSM_DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("OSM_DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:      viper.GetString("LOG_LEVEL"),
			File:       viper.GetString("LOG_FILE"),
			MaxSizeMB:  viper.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: viper.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: viper.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Query: QueryConfig{
			SupportedLanguages: languages,
			SearchMaxLimit:     viper.GetInt("SEARCH_MAX_LIMIT"),
			BulkMaxItems:       viper.GetInt("BULK_MAX_ITEMS"),
			BulkConcurrency:    viper.GetInt("BULK_CONCURRENCY"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if cfg.Query.SearchMaxLimit <= 0 {
		cfg.Query.SearchMaxLimit = 50
	}
	if cfg.Query.BulkMaxItems <= 0 {
		cfg.Query.BulkMaxItems = 100
	}
	if cfg.Query.BulkConcurrency <= 0 {
		cfg.Query.BulkConcurrency = 1
	}

	return cfg, nil
}

// ParseLanguages splits a comma separated list of language codes. Every code
// must be a well-formed BCP 47 tag; codes are kept as written.
func ParseLanguages(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		code := strings.TrimSpace(p)
		if code == "" {
			continue
		}
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("invalid supported language %q: %w", code, err)
		}
		result = append(result, code)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no supported languages configured")
	}
	return result, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.OSMDB.Host,
		c.OSMDB.Port,
		c.OSMDB.User,
		c.OSMDB.Password,
		c.OSMDB.DBName,
		c.OSMDB.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
