package postgresosm

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geocoder-api/internal/config"
)

// getTestDBConfig returns the test database configuration from environment variables
// or defaults to the osm_db service from docker-compose.yml
func getTestDBConfig() config.DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("OSM_DB_PORT", "5435"))
	return config.DatabaseConfig{
		Host:     getEnv("OSM_DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("OSM_DB_USER", "osmuser"),
		Password: getEnv("OSM_DB_PASSWORD", "osmpass"),
		DBName:   getEnv("OSM_DB_NAME", "osm"),
		SSLMode:  getEnv("OSM_DB_SSLMODE", "disable"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTestDB connects to the OSM test database and skips the test when it is unreachable
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := getTestDBConfig()
	db, err := sqlx.Open("pgx", dsn(&cfg))
	if err != nil {
		t.Skipf("OSM test database not configured: %v", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("OSM test database not reachable: %v", err)
	}

	return NewDBForTest(db, zap.NewNop())
}

// teardownTestDB closes the database connection
func teardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close test database: %v", err)
	}
}

// skipIfNoOSMData skips the test if OSM data is not available
func skipIfNoOSMData(t *testing.T, db *DB) {
	t.Helper()

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM (SELECT 1 FROM %s LIMIT 1) s", planetPointTable)
	if err := db.QueryRowContext(context.Background(), query).Scan(&count); err != nil || count == 0 {
		t.Skipf("OSM data not available: %v", err)
	}
}

// assertValidCoordinates checks if coordinates are valid
func assertValidCoordinates(t *testing.T, lat, lon float64) {
	t.Helper()
	if lat < -90 || lat > 90 {
		t.Errorf("Invalid latitude: %f (must be between -90 and 90)", lat)
	}
	if lon < -180 || lon > 180 {
		t.Errorf("Invalid longitude: %f (must be between -180 and 180)", lon)
	}
}
