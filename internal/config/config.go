package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the complete configuration for the techstore server
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Debug         bool                `mapstructure:"debug"`
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN builds the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.Username, d.Password, d.Name, d.Port, d.SSLMode)
}

// RedisConfig contains Redis configuration for the session store
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr returns the host:port address for the Redis client
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig contains authentication configuration
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenDuration time.Duration `mapstructure:"token_duration"`
	Issuer        string        `mapstructure:"issuer"`
	BcryptCost    int           `mapstructure:"bcrypt_cost"`
}

// NotificationsConfig contains notification dispatch configuration
type NotificationsConfig struct {
	QueueSize   int            `mapstructure:"queue_size"`
	WorkerCount int            `mapstructure:"worker_count"`
	Email       EmailConfig    `mapstructure:"email"`
	Telegram    TelegramConfig `mapstructure:"telegram"`
}

// EmailConfig contains email channel configuration
type EmailConfig struct {
	Enabled     bool            `mapstructure:"enabled"`
	Provider    string          `mapstructure:"provider"` // smtp, sendgrid
	FromName    string          `mapstructure:"from_name"`
	FromAddress string          `mapstructure:"from_address"`
	SMTP        SMTPConfig      `mapstructure:"smtp"`
	SendGrid    SendGridConfig  `mapstructure:"sendgrid"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

// SMTPConfig contains SMTP provider configuration
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// SendGridConfig contains SendGrid provider configuration
type SendGridConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// TelegramConfig contains Telegram bot channel configuration
type TelegramConfig struct {
	Enabled   bool            `mapstructure:"enabled"`
	BotToken  string          `mapstructure:"bot_token"`
	ChatID    string          `mapstructure:"chat_id"`
	TimeoutMs int             `mapstructure:"timeout_ms"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig contains per-channel rate limit configuration
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	Burst             int  `mapstructure:"burst"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json, text
}

// Load loads configuration from environment variables and config files
func Load() (Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/techstore")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TECHSTORE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")
	viper.SetDefault("debug", false)

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "10s")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "techstore")
	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "5m")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("auth.jwt_secret", "techstore-default-secret-change-in-production")
	viper.SetDefault("auth.token_duration", "24h")
	viper.SetDefault("auth.issuer", "techstore")
	viper.SetDefault("auth.bcrypt_cost", 12)

	viper.SetDefault("notifications.queue_size", 256)
	viper.SetDefault("notifications.worker_count", 2)
	viper.SetDefault("notifications.email.enabled", true)
	viper.SetDefault("notifications.email.provider", "smtp")
	viper.SetDefault("notifications.email.from_name", "TechStore")
	viper.SetDefault("notifications.email.from_address", "noreply@techstore.al")
	viper.SetDefault("notifications.email.smtp.host", "localhost")
	viper.SetDefault("notifications.email.smtp.port", 587)
	viper.SetDefault("notifications.email.rate_limit.enabled", true)
	viper.SetDefault("notifications.email.rate_limit.requests_per_minute", 60)
	viper.SetDefault("notifications.email.rate_limit.burst", 10)
	viper.SetDefault("notifications.telegram.enabled", false)
	viper.SetDefault("notifications.telegram.timeout_ms", 5000)
	viper.SetDefault("notifications.telegram.rate_limit.enabled", true)
	viper.SetDefault("notifications.telegram.rate_limit.requests_per_minute", 20)
	viper.SetDefault("notifications.telegram.rate_limit.burst", 5)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
