package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"DB_MIGRATE",
		"AUTH_JWT_SECRET",
		"FEED_TITLE",
		"FEED_LINK",
		"FEED_ITEMS",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("fails without jwt secret", func(t *testing.T) {
		if _, err := Load(); err == nil {
			t.Fatal("Load() should fail when AUTH_JWT_SECRET is unset")
		}
	})

	os.Setenv("AUTH_JWT_SECRET", "test-secret")

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %q, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %d, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "myblog" {
			t.Errorf("DBName = %q, want myblog", cfg.DBName)
		}
		if cfg.DBMigrate {
			t.Error("DBMigrate should default to false")
		}
		if cfg.ReadTimeout != 30*time.Second {
			t.Errorf("ReadTimeout = %v, want 30s", cfg.ReadTimeout)
		}
		if cfg.FeedItems != 20 {
			t.Errorf("FeedItems = %d, want 20", cfg.FeedItems)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_MIGRATE", "true")
		os.Setenv("FEED_TITLE", "Testing Blog")
		defer func() {
			os.Unsetenv("SERVER_PORT")
			os.Unsetenv("DB_PORT")
			os.Unsetenv("DB_MIGRATE")
			os.Unsetenv("FEED_TITLE")
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %d, want 5433", cfg.DBPort)
		}
		if !cfg.DBMigrate {
			t.Error("DBMigrate should be true")
		}
		if cfg.FeedTitle != "Testing Blog" {
			t.Errorf("FeedTitle = %q, want Testing Blog", cfg.FeedTitle)
		}
	})

	t.Run("invalid numeric values fall back to defaults", func(t *testing.T) {
		os.Setenv("DB_PORT", "not-a-number")
		defer os.Unsetenv("DB_PORT")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %d, want default 5432", cfg.DBPort)
		}
	})

	t.Run("invalid feed items rejected", func(t *testing.T) {
		os.Setenv("FEED_ITEMS", "0")
		defer os.Unsetenv("FEED_ITEMS")

		if _, err := Load(); err == nil {
			t.Fatal("Load() should fail when FEED_ITEMS < 1")
		}
	})
}
