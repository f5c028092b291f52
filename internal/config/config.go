package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultLedgerFile is where transactions live when nothing else is configured
const DefaultLedgerFile = "transactionsdictionary.json"

// Config represents the application configuration
type Config struct {
	LedgerFile string       `mapstructure:"ledger_file"`
	Log        LogConfig    `mapstructure:"log"`
	Viewer     ViewerConfig `mapstructure:"viewer"`
}

// LogConfig controls where diagnostics go; the menu itself always writes to stdout
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`   // "console" or "json"
	Output   string `mapstructure:"output"`   // "stderr", "stdout" or "file"
	Filename string `mapstructure:"filename"` // used when output is "file"
}

// ViewerConfig holds table viewer settings
type ViewerConfig struct {
	Height int `mapstructure:"height"`
}

// LoadConfig loads configuration from an optional file, a .env file and
// FINANCE_* environment variables. An empty path skips the config file.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("finance")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("ledger_file", DefaultLedgerFile)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.filename", "finance-tracker.log")
	v.SetDefault("viewer.height", 15)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Validate rejects settings the rest of the program cannot work with
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.LedgerFile) == "" {
		problems = append(problems, "ledger file cannot be empty")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.Log.Level))
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be console or json", c.Log.Format))
	}

	switch c.Log.Output {
	case "stderr", "stdout":
	case "file":
		if c.Log.Filename == "" {
			problems = append(problems, "log filename is required when log output is file")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid log output '%s': must be stderr, stdout or file", c.Log.Output))
	}

	if c.Viewer.Height < 1 {
		problems = append(problems, fmt.Sprintf("invalid viewer height %d: must be at least 1", c.Viewer.Height))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
