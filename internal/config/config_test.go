package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDaemonConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *DaemonConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
discovery:
  chains: ["solana", "base"]
  min_volume_24h: 50000
  min_liquidity: 100000
  max_age_hours: 12
  limit: 15
telegram:
  gateway_url: "http://localhost:9000"
  api_key: "gateway-key"
  message_template: "Hi {name}!"
  template_name: "launch_v2"
index_check:
  api_key: "cse-key"
  search_engine_id: "cse-id"
outreach:
  batch_limit: 10
  max_join_attempts: 5
  require_unindexed: true
  joins_per_hour: 4
  messages_per_hour: 3
  cooldown_after_message: "10m"
schedule:
  check_interval: "45m"
  active_hours_start: 9
  active_hours_end: 21
  max_errors_before_pause: 5
`,
			expectError: false,
			validate: func(t *testing.T, cfg *DaemonConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, []string{"solana", "base"}, cfg.Discovery.Chains)
				assert.Equal(t, 50000.0, cfg.Discovery.MinVolume24h)
				assert.Equal(t, 100000.0, cfg.Discovery.MinLiquidity)
				assert.Equal(t, 12.0, cfg.Discovery.MaxAgeHours)
				assert.Equal(t, 15, cfg.Discovery.Limit)
				assert.Equal(t, "http://localhost:9000", cfg.Telegram.GatewayURL)
				assert.Equal(t, "gateway-key", cfg.Telegram.APIKey)
				assert.Equal(t, "Hi {name}!", cfg.Telegram.MessageTemplate)
				assert.Equal(t, "launch_v2", cfg.Telegram.TemplateName)
				assert.Equal(t, "cse-key", cfg.IndexCheck.APIKey)
				assert.Equal(t, "cse-id", cfg.IndexCheck.SearchEngineID)
				assert.Equal(t, 10, cfg.Outreach.BatchLimit)
				assert.Equal(t, 5, cfg.Outreach.MaxJoinAttempts)
				assert.True(t, cfg.Outreach.RequireUnindexed)
				assert.Equal(t, 4, cfg.Outreach.JoinsPerHour)
				assert.Equal(t, 3, cfg.Outreach.MessagesPerHour)
				assert.Equal(t, 10*time.Minute, cfg.Outreach.CooldownAfterMessage)
				assert.Equal(t, 45*time.Minute, cfg.Schedule.CheckInterval)
				assert.Equal(t, 9, cfg.Schedule.ActiveHoursStart)
				assert.Equal(t, 21, cfg.Schedule.ActiveHoursEnd)
				assert.Equal(t, 5, cfg.Schedule.MaxErrorsBeforePause)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
telegram:
  gateway_url: "http://localhost:9000"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *DaemonConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "https://api.dexscreener.com", cfg.Discovery.APIURL)
				assert.Equal(t, 10000.0, cfg.Discovery.MinVolume24h)
				assert.Equal(t, 30, cfg.Discovery.Limit)
				assert.Equal(t, "default", cfg.Telegram.TemplateName)
				assert.Equal(t, 20, cfg.Outreach.BatchLimit)
				assert.Equal(t, 3, cfg.Outreach.MaxJoinAttempts)
				assert.False(t, cfg.Outreach.RequireUnindexed)
				assert.Equal(t, 8, cfg.Outreach.JoinsPerHour)
				assert.Equal(t, 6, cfg.Outreach.MessagesPerHour)
				assert.Equal(t, 2*time.Minute, cfg.Outreach.CooldownAfterJoin)
				assert.Equal(t, 5*time.Minute, cfg.Outreach.CooldownAfterMessage)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.CheckInterval)
				assert.Equal(t, 0, cfg.Schedule.ActiveHoursStart)
				assert.Equal(t, 0, cfg.Schedule.ActiveHoursEnd)
				assert.Equal(t, 3, cfg.Schedule.MaxErrorsBeforePause)
				assert.Equal(t, time.Hour, cfg.Schedule.ErrorPause)
			},
		},
		{
			name: "missing gateway url",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadDaemonConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "testdb", cfg.Database.DBName)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)                   // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)  // default
				assert.Equal(t, 8080, cfg.Server.Port)       // default
				assert.Equal(t, 10, cfg.Server.ReadTimeout)  // default
				assert.Equal(t, 10, cfg.Server.WriteTimeout) // default
				assert.Equal(t, 120, cfg.Server.IdleTimeout) // default
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "funnel",
		Password: "p@ssw0rd!",
		DBName:   "leads",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=funnel password=p@ssw0rd! dbname=leads sslmode=require",
		cfg.DSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// godotenv.Overload sets real environment variables, which viper's
	// AutomaticEnv picks up with the LEAD_FUNNEL_ prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `LEAD_FUNNEL_DEBUG=true
LEAD_FUNNEL_DATABASE_HOST=env-host
LEAD_FUNNEL_DATABASE_PORT=3306
LEAD_FUNNEL_DATABASE_USER=env-user
LEAD_FUNNEL_DATABASE_PASSWORD=env-pass
LEAD_FUNNEL_DATABASE_DBNAME=env-db
LEAD_FUNNEL_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Config file carries different values so the override is observable
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
