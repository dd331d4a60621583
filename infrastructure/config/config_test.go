package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"CONFIG_FILE", "SERVER_ADDRESS", "ENVIRONMENT", "REQUEST_TIMEOUT",
	"STORAGE_BACKEND", "TABLE_PREFIX", "DATABASE_URL", "OFFLINE_MODE",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	"DYNAMODB_ENDPOINT", "DYNAMODB_ENDPOINT_URL", "AWS_LAMBDA_FUNCTION_NAME", "IS_LAMBDA",
	"DEFAULT_USER_ID", "SYSTEM_PRINCIPAL", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	"RATE_LIMIT_PER_MINUTE", "ENABLE_METRICS", "ENABLE_TRACING", "METRICS_NAMESPACE",
}

// clearEnv blanks every key; getEnv treats an empty value as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.ServerAddress)
	assert.Equal(t, "dynamodb", cfg.StorageBackend)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "default_user", cfg.DefaultUserID)
	assert.Equal(t, "system", cfg.SystemPrincipal)
	assert.Equal(t, 30, cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.False(t, cfg.OfflineMode)
	assert.False(t, cfg.IsLambda)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsLocal())
}

func TestLoadConfig_Environment(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("TABLE_PREFIX", "dev-")
	t.Setenv("OFFLINE_MODE", "yes")
	t.Setenv("DYNAMODB_ENDPOINT_URL", "http://localhost:8001")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "survey-api")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("REQUEST_TIMEOUT", "not-a-number")

	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, "dev-", cfg.TablePrefix)
	assert.True(t, cfg.OfflineMode)
	assert.Equal(t, "http://localhost:8001", cfg.DynamoDBEndpoint)
	assert.True(t, cfg.IsLocal())
	assert.True(t, cfg.IsLambda)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, 30, cfg.RequestTimeout)
}

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	// Arrange
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage_backend: relational
database_url: postgres://survey@localhost/survey
table_prefix: file-
log_level: debug
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TABLE_PREFIX", "env-")

	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "relational", cfg.StorageBackend)
	assert.Equal(t, "postgres://survey@localhost/survey", cfg.DatabaseURL)
	assert.Equal(t, "env-", cfg.TablePrefix)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"unknown backend", func(c *Config) { c.StorageBackend = "mongo" }, "unknown STORAGE_BACKEND"},
		{"relational without url", func(c *Config) { c.StorageBackend = "relational" }, "DATABASE_URL"},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"negative rate limit", func(c *Config) { c.RateLimitPerMinute = -1 }, "RATE_LIMIT_PER_MINUTE"},
		{"local endpoint in production", func(c *Config) {
			c.Environment = "production"
			c.DynamoDBEndpoint = "http://localhost:8001"
		}, "DYNAMODB_ENDPOINT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
