package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// LedgerConfig holds ledger node configuration
type LedgerConfig struct {
	// Endpoint is the JSON-RPC URL of the ledger node
	Endpoint string `mapstructure:"endpoint"`
	// Account is the custodial platform account address
	Account string `mapstructure:"account"`
	// Secret signs platform transactions; keep it out of config files
	Secret          string        `mapstructure:"secret"`
	FinalityTimeout time.Duration `mapstructure:"finality_timeout"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// RateLimitConfig holds the rate limit for a single upstream provider
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the outbound request throttle configuration.
// Leave RedisAddr empty to disable throttling entirely.
type RateLimiterConfig struct {
	RedisAddr               string                     `mapstructure:"redis_addr"`
	RedisPassword           string                     `mapstructure:"redis_password"`
	RedisDB                 int                        `mapstructure:"redis_db"`
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// BrokerConfig holds purchase broker configuration
type BrokerConfig struct {
	// VerifyConfirmations enables on-ledger verification before sales are recorded
	VerifyConfirmations bool `mapstructure:"verify_confirmations"`
	// BlocklistPath points to the buyer blocklist JSON file; empty disables it
	BlocklistPath string `mapstructure:"blocklist_path"`
}

// AnalyzerConfig holds royalty analyzer configuration
type AnalyzerConfig struct {
	PageSize int          `mapstructure:"page_size"`
	Worker   WorkerConfig `mapstructure:"worker"`
}

// AttemptReconcilerConfig holds configuration for the attempt reconciler sweeper
type AttemptReconcilerConfig struct {
	BatchSize  int           `mapstructure:"batch_size"`
	StaleAfter time.Duration `mapstructure:"stale_after"`
	Worker     WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	NATS        NATSConfig        `mapstructure:"nats"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Broker      BrokerConfig      `mapstructure:"broker"`
	Analyzer    AnalyzerConfig    `mapstructure:"analyzer"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig        `mapstructure:",squash"`
	Database          DatabaseConfig          `mapstructure:"database"`
	Ledger            LedgerConfig            `mapstructure:"ledger"`
	NATS              NATSConfig              `mapstructure:"nats"`
	AttemptReconciler AttemptReconcilerConfig `mapstructure:"attempt_reconciler"`
	RateLimiter       RateLimiterConfig       `mapstructure:"rate_limiter"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("ledger.finality_timeout", "30s")
	v.SetDefault("ledger.poll_interval", "1s")
	v.SetDefault("ledger.http_timeout", "30s")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "BROKER_EVENTS")
	v.SetDefault("broker.verify_confirmations", false)
	v.SetDefault("analyzer.page_size", 500)
	v.SetDefault("analyzer.worker.pool_size", 4)
	setRateLimiterDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateCommon(&config.Database, &config.Ledger); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("ledger.finality_timeout", "30s")
	v.SetDefault("ledger.poll_interval", "1s")
	v.SetDefault("ledger.http_timeout", "30s")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "BROKER_EVENTS")
	v.SetDefault("attempt_reconciler.batch_size", 100)
	v.SetDefault("attempt_reconciler.stale_after", "10m")
	v.SetDefault("attempt_reconciler.worker.pool_size", 10)
	v.SetDefault("attempt_reconciler.worker.queue_size", 100)
	setRateLimiterDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateCommon(&cfg.Database, &cfg.Ledger); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setRateLimiterDefaults sets the shared ledger throttle defaults
func setRateLimiterDefaults(v *viper.Viper) {
	v.SetDefault("rate_limiter.redis_key_prefix", "sc:broker:limiter:")
	v.SetDefault("rate_limiter.enable_local_fallback", true)
	v.SetDefault("rate_limiter.local_fallback_multiplier", 0.5)
	v.SetDefault("rate_limiter.providers.ledger.requests_per_second", 20)
	v.SetDefault("rate_limiter.providers.ledger.burst", 40)
	v.SetDefault("rate_limiter.providers.ledger.max_queue_time", "1m")
}

// validateCommon validates the fields every program requires
func validateCommon(db *DatabaseConfig, ledger *LedgerConfig) error {
	if db.Host == "" {
		return errors.New("database.host is required")
	}
	if db.DBName == "" {
		return errors.New("database.dbname is required")
	}
	if ledger.Endpoint == "" {
		return errors.New("ledger.endpoint is required")
	}
	if ledger.Account == "" {
		return errors.New("ledger.account is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("SC_BROKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	// Common config keys
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Ledger
		"ledger.endpoint",
		"ledger.account",
		"ledger.secret",
		"ledger.finality_timeout",
		"ledger.poll_interval",
		"ledger.http_timeout",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Broker
		"broker.verify_confirmations",
		"broker.blocklist_path",
		// Analyzer
		"analyzer.page_size",
		"analyzer.worker.pool_size",
		"analyzer.worker.queue_size",
		// Rate limiter
		"rate_limiter.redis_addr",
		"rate_limiter.redis_password",
		"rate_limiter.redis_db",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
		"rate_limiter.providers.ledger.requests_per_second",
		"rate_limiter.providers.ledger.burst",
		"rate_limiter.providers.ledger.max_queue_time",
		// Attempt reconciler
		"attempt_reconciler.batch_size",
		"attempt_reconciler.stale_after",
		"attempt_reconciler.worker.pool_size",
		"attempt_reconciler.worker.queue_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	// Create candidates list
	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
