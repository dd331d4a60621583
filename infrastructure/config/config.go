package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress  string `yaml:"server_address"`
	Environment    string `yaml:"environment"`
	RequestTimeout int    `yaml:"request_timeout"` // seconds

	// Storage configuration
	StorageBackend string `yaml:"storage_backend"`
	TablePrefix    string `yaml:"table_prefix"`
	DatabaseURL    string `yaml:"database_url"`
	OfflineMode    bool   `yaml:"offline_mode"`

	// AWS configuration
	AWSRegion          string `yaml:"aws_region"`
	AWSAccessKeyID     string `yaml:"-"`
	AWSSecretAccessKey string `yaml:"-"`
	DynamoDBEndpoint   string `yaml:"dynamodb_endpoint"`

	// Lambda configuration
	IsLambda           bool   `yaml:"-"`
	LambdaFunctionName string `yaml:"-"`

	// Identity used for audit columns and per-user collections
	DefaultUserID   string `yaml:"default_user_id"`
	SystemPrincipal string `yaml:"system_principal"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// HTTP
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	// Requests per minute per client address; 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`

	// Feature flags
	EnableMetrics    bool   `yaml:"enable_metrics"`
	EnableTracing    bool   `yaml:"enable_tracing"`
	MetricsNamespace string `yaml:"metrics_namespace"`
}

func defaults() *Config {
	return &Config{
		ServerAddress:      ":8000",
		Environment:        "development",
		RequestTimeout:     30,
		StorageBackend:     "dynamodb",
		AWSRegion:          "us-east-1",
		DefaultUserID:      "default_user",
		SystemPrincipal:    "system",
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		MetricsNamespace:   "SurveyManagement",
	}
}

// LoadConfig loads configuration. Values come, in increasing precedence,
// from built-in defaults, the YAML file named by CONFIG_FILE and the
// environment (a .env file in the working directory is loaded first).
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.RequestTimeout = getEnvInt("REQUEST_TIMEOUT", c.RequestTimeout)

	c.StorageBackend = strings.ToLower(getEnv("STORAGE_BACKEND", c.StorageBackend))
	c.TablePrefix = getEnv("TABLE_PREFIX", c.TablePrefix)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.OfflineMode = getEnvBool("OFFLINE_MODE", c.OfflineMode)

	c.AWSRegion = getEnv("AWS_REGION", c.AWSRegion)
	c.AWSAccessKeyID = getEnv("AWS_ACCESS_KEY_ID", "dummy")
	c.AWSSecretAccessKey = getEnv("AWS_SECRET_ACCESS_KEY", "dummy")
	c.DynamoDBEndpoint = getEnv("DYNAMODB_ENDPOINT", getEnv("DYNAMODB_ENDPOINT_URL", c.DynamoDBEndpoint))

	c.LambdaFunctionName = getEnv("AWS_LAMBDA_FUNCTION_NAME", "")
	c.IsLambda = getEnvBool("IS_LAMBDA", c.LambdaFunctionName != "")

	c.DefaultUserID = getEnv("DEFAULT_USER_ID", c.DefaultUserID)
	c.SystemPrincipal = getEnv("SYSTEM_PRINCIPAL", c.SystemPrincipal)

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.CORSAllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", c.CORSAllowedOrigins)
	c.RateLimitPerMinute = getEnvInt("RATE_LIMIT_PER_MINUTE", c.RateLimitPerMinute)

	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableTracing = getEnvBool("ENABLE_TRACING", c.EnableTracing)
	c.MetricsNamespace = getEnv("METRICS_NAMESPACE", c.MetricsNamespace)
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "dynamodb", "relational", "memory":
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.StorageBackend == "relational" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for the relational backend")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.IsProduction() && c.IsLocal() {
		return fmt.Errorf("DYNAMODB_ENDPOINT must not be set in production")
	}
	return nil
}

// IsLocal reports whether DynamoDB is served from a local endpoint.
func (c *Config) IsLocal() bool {
	return c.DynamoDBEndpoint != ""
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
