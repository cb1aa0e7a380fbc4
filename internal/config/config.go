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

// DiscoveryConfig holds discovery-feed configuration
type DiscoveryConfig struct {
	APIURL       string   `mapstructure:"api_url"`
	Chains       []string `mapstructure:"chains"`
	MinVolume24h float64  `mapstructure:"min_volume_24h"`
	MinLiquidity float64  `mapstructure:"min_liquidity"`
	MaxAgeHours  float64  `mapstructure:"max_age_hours"`
	Limit        int      `mapstructure:"limit"`
}

// TelegramConfig holds messaging-gateway configuration
type TelegramConfig struct {
	GatewayURL      string `mapstructure:"gateway_url"`
	APIKey          string `mapstructure:"api_key"`
	MessageTemplate string `mapstructure:"message_template"`
	TemplateName    string `mapstructure:"template_name"`
}

// IndexCheckConfig holds search-index probe configuration
type IndexCheckConfig struct {
	APIURL         string `mapstructure:"api_url"`
	APIKey         string `mapstructure:"api_key"`
	SearchEngineID string `mapstructure:"search_engine_id"`
}

// OutreachConfig holds outreach pacing and budget configuration
type OutreachConfig struct {
	BatchLimit           int           `mapstructure:"batch_limit"`
	MaxJoinAttempts      int           `mapstructure:"max_join_attempts"`
	RequireUnindexed     bool          `mapstructure:"require_unindexed"`
	IndexCheckLimit      int           `mapstructure:"index_check_limit"`
	JoinsPerHour         int           `mapstructure:"joins_per_hour"`
	MessagesPerHour      int           `mapstructure:"messages_per_hour"`
	CooldownAfterJoin    time.Duration `mapstructure:"cooldown_after_join"`
	CooldownAfterMessage time.Duration `mapstructure:"cooldown_after_message"`
	ShortPause           time.Duration `mapstructure:"short_pause"`
}

// ScheduleConfig holds daemon-loop scheduling configuration
type ScheduleConfig struct {
	CheckInterval        time.Duration `mapstructure:"check_interval"`
	ActiveHoursStart     int           `mapstructure:"active_hours_start"`
	ActiveHoursEnd       int           `mapstructure:"active_hours_end"`
	MaxErrorsBeforePause int           `mapstructure:"max_errors_before_pause"`
	ErrorPause           time.Duration `mapstructure:"error_pause"`
	ShortPause           time.Duration `mapstructure:"short_pause"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// DaemonConfig holds configuration for funnel-daemon
type DaemonConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Discovery  DiscoveryConfig  `mapstructure:"discovery"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	IndexCheck IndexCheckConfig `mapstructure:"index_check"`
	Outreach   OutreachConfig   `mapstructure:"outreach"`
	Schedule   ScheduleConfig   `mapstructure:"schedule"`
}

// APIConfig holds configuration for the stats API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
}

// LoadDaemonConfig loads configuration for funnel-daemon
func LoadDaemonConfig(configFile string, envPath string) (*DaemonConfig, error) {
	v := configureViper("funnel-daemon", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("discovery.api_url", "https://api.dexscreener.com")
	v.SetDefault("discovery.min_volume_24h", 10000)
	v.SetDefault("discovery.min_liquidity", 25000)
	v.SetDefault("discovery.max_age_hours", 48)
	v.SetDefault("discovery.limit", 30)
	v.SetDefault("telegram.template_name", "default")
	v.SetDefault("telegram.message_template", "Hey! Saw {name} ({symbol}) just launched.")
	v.SetDefault("index_check.api_url", "https://www.googleapis.com/customsearch/v1")
	v.SetDefault("outreach.batch_limit", 20)
	v.SetDefault("outreach.max_join_attempts", 3)
	v.SetDefault("outreach.index_check_limit", 10)
	v.SetDefault("outreach.joins_per_hour", 8)
	v.SetDefault("outreach.messages_per_hour", 6)
	v.SetDefault("outreach.cooldown_after_join", "2m")
	v.SetDefault("outreach.cooldown_after_message", "5m")
	v.SetDefault("outreach.short_pause", "15s")
	v.SetDefault("schedule.check_interval", "30m")
	v.SetDefault("schedule.max_errors_before_pause", 3)
	v.SetDefault("schedule.error_pause", "1h")
	v.SetDefault("schedule.short_pause", "1m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config DaemonConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Telegram.GatewayURL == "" {
		return nil, errors.New("telegram.gateway_url is required")
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for the stats API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.conn_max_idle_time", "10m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
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
		// 2. Service-specific directory (e.g., cmd/funnel-daemon/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("LEAD_FUNNEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
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
		// Discovery
		"discovery.api_url",
		"discovery.chains",
		"discovery.min_volume_24h",
		"discovery.min_liquidity",
		"discovery.max_age_hours",
		"discovery.limit",
		// Telegram gateway
		"telegram.gateway_url",
		"telegram.api_key",
		"telegram.message_template",
		"telegram.template_name",
		// Index check
		"index_check.api_url",
		"index_check.api_key",
		"index_check.search_engine_id",
		// Outreach
		"outreach.batch_limit",
		"outreach.max_join_attempts",
		"outreach.require_unindexed",
		"outreach.index_check_limit",
		"outreach.joins_per_hour",
		"outreach.messages_per_hour",
		"outreach.cooldown_after_join",
		"outreach.cooldown_after_message",
		"outreach.short_pause",
		// Schedule
		"schedule.check_interval",
		"schedule.active_hours_start",
		"schedule.active_hours_end",
		"schedule.max_errors_before_pause",
		"schedule.error_pause",
		"schedule.short_pause",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
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
