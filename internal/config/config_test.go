package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguages(t *testing.T) {
	t.Run("trims and skips empty entries", func(t *testing.T) {
		langs, err := ParseLanguages(" en, de,,fr ,it")
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "de", "fr", "it"}, langs)
	})

	t.Run("rejects malformed tags", func(t *testing.T) {
		_, err := ParseLanguages("en,not a language")
		assert.Error(t, err)
	})

	t.Run("rejects empty list", func(t *testing.T) {
		_, err := ParseLanguages(" , ")
		assert.Error(t, err)
	})
}

func TestConfig_Addresses(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 2322},
		Redis:  RedisConfig{Host: "redis", Port: 6379},
		OSMDB: DatabaseConfig{
			Host: "db", Port: 5432, User: "osm", Password: "secret", DBName: "osm", SSLMode: "disable",
		},
	}

	assert.Equal(t, "127.0.0.1:2322", cfg.GetServerAddr())
	assert.Equal(t, "redis:6379", cfg.GetRedisAddr())
	assert.Equal(t, "host=db port=5432 user=osm password=secret dbname=osm sslmode=disable", cfg.GetDatabaseDSN())
}
