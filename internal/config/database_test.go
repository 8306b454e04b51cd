package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testSlogLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func TestSetupDatabase_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	cfg := &DatabaseConfig{
		Driver: "sqlite",
		SQLite: SQLiteConfig{Path: dbPath},
		Pool: PoolConfig{
			MaxIdleConns:    5,
			MaxOpenConns:    50,
			ConnMaxLifetime: "30m",
		},
	}

	db, err := SetupDatabase(cfg, testSlogLogger(slog.LevelInfo))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() error = %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 50 {
		t.Errorf("MaxOpenConnections = %d; want 50", got)
	}
}

func TestSetupDatabase_CreatesSQLiteDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	cfg := &DatabaseConfig{
		Driver: "sqlite",
		SQLite: SQLiteConfig{Path: dbPath},
	}

	db, err := SetupDatabase(cfg, testSlogLogger(slog.LevelInfo))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { sqlDB.Close() })

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("expected sqlite directory to exist: %v", err)
	}
}

func TestSetupDatabase_PoolDefaults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	cfg := &DatabaseConfig{
		Driver: "sqlite",
		SQLite: SQLiteConfig{Path: dbPath},
		Pool:   PoolConfig{}, // all zeros, defaults apply
	}

	db, err := SetupDatabase(cfg, testSlogLogger(slog.LevelInfo))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() error = %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if got := sqlDB.Stats().MaxOpenConnections; got != defaultMaxOpenConns {
		t.Errorf("MaxOpenConnections = %d; want %d", got, defaultMaxOpenConns)
	}
}

func TestSetupDatabase_UnsupportedDriver(t *testing.T) {
	cfg := &DatabaseConfig{Driver: "mysql"}

	_, err := SetupDatabase(cfg, testSlogLogger(slog.LevelInfo))
	if err == nil {
		t.Fatal("SetupDatabase() expected error for unsupported driver, got nil")
	}
	want := `unsupported database driver: mysql`
	if err.Error() != want {
		t.Errorf("error = %q; want %q", err.Error(), want)
	}
}

func TestSetupDatabase_InvalidConnMaxLifetime(t *testing.T) {
	tests := []struct {
		name     string
		lifetime string
	}{
		{"not a duration", "not-a-duration"},
		{"negative", "-1s"},
		{"zero", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DatabaseConfig{
				Driver: "sqlite",
				SQLite: SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")},
				Pool: PoolConfig{
					MaxIdleConns:    5,
					MaxOpenConns:    50,
					ConnMaxLifetime: tt.lifetime,
				},
			}

			_, err := SetupDatabase(cfg, testSlogLogger(slog.LevelInfo))
			if err == nil {
				t.Fatal("SetupDatabase() expected error, got nil")
			}
			if !strings.Contains(err.Error(), "conn_max_lifetime") {
				t.Fatalf("error = %v; want mention of conn_max_lifetime", err)
			}
		})
	}
}

func TestSetupDatabase_NilArguments(t *testing.T) {
	if _, err := SetupDatabase(nil, testSlogLogger(slog.LevelInfo)); err == nil {
		t.Error("expected error for nil config")
	}
	cfg := &DatabaseConfig{Driver: "sqlite", SQLite: SQLiteConfig{Path: "x.db"}}
	if _, err := SetupDatabase(cfg, nil); err == nil {
		t.Error("expected error for nil logger")
	}
}

func TestEffectiveDefaults(t *testing.T) {
	if got := effectiveMaxIdleConns(0); got != defaultMaxIdleConns {
		t.Errorf("effectiveMaxIdleConns(0) = %d; want %d", got, defaultMaxIdleConns)
	}
	if got := effectiveMaxIdleConns(5); got != 5 {
		t.Errorf("effectiveMaxIdleConns(5) = %d; want 5", got)
	}
	if got := effectiveMaxOpenConns(0); got != defaultMaxOpenConns {
		t.Errorf("effectiveMaxOpenConns(0) = %d; want %d", got, defaultMaxOpenConns)
	}
	if got := effectiveConnMaxLifetime("   "); got != defaultConnMaxLifetime {
		t.Errorf("effectiveConnMaxLifetime(blank) = %q; want %q", got, defaultConnMaxLifetime)
	}
	if got := effectiveConnMaxLifetime("30m"); got != "30m" {
		t.Errorf("effectiveConnMaxLifetime(30m) = %q; want 30m", got)
	}
}

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  *PostgresConfig
		want string
	}{
		{
			"full config",
			&PostgresConfig{Host: "db.example.com", Port: 5433, User: "admin", Password: "secret", DBName: "app", SSLMode: "require"},
			"host=db.example.com port=5433 user=admin password=secret dbname=app sslmode=require",
		},
		{
			"empty fields omitted",
			&PostgresConfig{Host: "localhost", DBName: "app"},
			"host=localhost dbname=app",
		},
		{"nil config", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildPostgresDSN(tt.cfg); got != tt.want {
				t.Errorf("buildPostgresDSN() = %q; want %q", got, tt.want)
			}
		})
	}
}
