package config

import (
	"os"
	"strings"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key) // cleanup after test
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			// Execute
			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			// Assert
			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TYPED_INT", "42")
	t.Setenv("TYPED_BOOL", "false")
	t.Setenv("TYPED_BAD_BOOL", "maybe")

	if got := GetEnvAsType("TYPED_INT", 1); got != 42 {
		t.Errorf("GetEnvAsType(int) = %d, expected 42", got)
	}
	if got := GetEnvAsType("TYPED_BOOL", true); got != false {
		t.Errorf("GetEnvAsType(bool) = %t, expected false", got)
	}
	if got := GetEnvAsType("TYPED_BAD_BOOL", true); got != true {
		t.Errorf("GetEnvAsType(bad bool) = %t, expected default true", got)
	}
	if got := GetEnvAsType("TYPED_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvAsType(missing) = %s, expected fallback", got)
	}
}

func TestLoadConfig(t *testing.T) {
	vars := []string{
		"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "DB_DRIVER", "DB_PATH",
		"DB_PASSWORD", "DATABASE_URL", "SEED_DATABASE", "CORS_ALLOWED_ORIGINS",
	}

	// Helper function to cleanup env vars
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("DB_DRIVER", "postgres")
		os.Setenv("SEED_DATABASE", "false")
		os.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://pizza.example.com,")

		config, err := LoadConfig()

		// Should not return error
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		// Verify all values
		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.DBDriver != "postgres" {
			t.Errorf("DBDriver = %s, expected postgres", config.DBDriver)
		}
		if config.SeedDatabase {
			t.Error("SeedDatabase should be false")
		}
		if len(config.CORSAllowedOrigins) != 2 || config.CORSAllowedOrigins[1] != "https://pizza.example.com" {
			t.Errorf("CORSAllowedOrigins = %v, expected two trimmed origins", config.CORSAllowedOrigins)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with invalid database url", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DATABASE_URL", "not a url")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when DATABASE_URL is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		// Check defaults
		if config.Port != 8080 {
			t.Errorf("Port = %d, expected default 8080", config.Port)
		}
		if config.Host != "localhost" {
			t.Errorf("Host = %s, expected default localhost", config.Host)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %s, expected default info", config.LogLevel)
		}
		if config.DBDriver != "sqlite" || config.DBPath != "restaurants.sqlite" {
			t.Errorf("DBDriver/DBPath = %s/%s, expected sqlite/restaurants.sqlite", config.DBDriver, config.DBPath)
		}
		if !config.SeedDatabase {
			t.Error("SeedDatabase should default to true")
		}
		if len(config.CORSAllowedOrigins) != 1 || config.CORSAllowedOrigins[0] != "*" {
			t.Errorf("CORSAllowedOrigins = %v, expected [*]", config.CORSAllowedOrigins)
		}
	})
}

func TestConfigStringMasksSecrets(t *testing.T) {
	config := &Config{
		DBPassword:  "db-secret",
		DatabaseURL: "postgres://pizza:url-secret@db:5432/restaurants",
	}

	s := config.String()

	if strings.Contains(s, "db-secret") || strings.Contains(s, "url-secret") {
		t.Errorf("String() leaks a secret: %s", s)
	}
	if !strings.Contains(s, "REDACTED") || !strings.Contains(s, "@db:5432/restaurants") {
		t.Errorf("String() should keep the masked database url: %s", s)
	}
}

func TestDatabase(t *testing.T) {
	config := &Config{DBDriver: "sqlite", DBPath: "restaurants.sqlite", DatabaseURL: "postgres://db/restaurants"}

	db := config.Database()

	if db.Driver != "sqlite" || db.Path != "restaurants.sqlite" || db.URL != "postgres://db/restaurants" {
		t.Errorf("Database() = %+v, expected the config's driver, path and url", db)
	}
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "test_value")
	}
}
