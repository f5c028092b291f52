package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Create a temporary config file
	configContent := `
ledger_file = "/tmp/ledger.json"

[log]
level = "debug"
format = "json"
output = "file"
filename = "/tmp/tracker.log"

[viewer]
height = 30
`

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ledger.json", config.LedgerFile)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "file", config.Log.Output)
	assert.Equal(t, "/tmp/tracker.log", config.Log.Filename)
	assert.Equal(t, 30, config.Viewer.Height)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultLedgerFile, config.LedgerFile)
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "console", config.Log.Format)
	assert.Equal(t, "stderr", config.Log.Output)
	assert.Equal(t, 15, config.Viewer.Height)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("FINANCE_LEDGER_FILE", "from-env.json")
	t.Setenv("FINANCE_LOG_LEVEL", "error")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", config.LedgerFile)
	assert.Equal(t, "error", config.Log.Level)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("nonexistent.toml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			LedgerFile: "ledger.json",
			Log:        LogConfig{Level: "info", Format: "console", Output: "stderr"},
			Viewer:     ViewerConfig{Height: 10},
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		errorString string
	}{
		{"empty ledger file", func(c *Config) { c.LedgerFile = " " }, "ledger file cannot be empty"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level 'loud'"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format 'xml'"},
		{"bad output", func(c *Config) { c.Log.Output = "syslog" }, "invalid log output 'syslog'"},
		{"file without name", func(c *Config) { c.Log.Output = "file"; c.Log.Filename = "" }, "log filename is required"},
		{"zero height", func(c *Config) { c.Viewer.Height = 0 }, "invalid viewer height 0"},
	}

	base := valid()
	assert.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}
