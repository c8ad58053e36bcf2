package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	isolateConfig(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, BackendCSV, config.Storage.Backend)
	assert.Equal(t, "expenses.csv", config.Storage.CSVFile)
	assert.Equal(t, "expenses.db", config.Storage.SQLiteFile)
	assert.Equal(t, "", config.Data.Directory)
	assert.Equal(t, "categories.yaml", config.Categories.File)
	assert.Equal(t, 4, config.Batch.Workers)
	assert.Equal(t, Default(), config)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolateConfig(t)

	testEnvVars := map[string]string{
		"SPEND_LOG_LEVEL":           "debug",
		"SPEND_LOG_FORMAT":          "json",
		"SPEND_CSV_DELIMITER":       ";",
		"SPEND_STORAGE_BACKEND":     "sqlite",
		"SPEND_STORAGE_SQLITE_FILE": "ledger.db",
		"SPEND_DATA_DIRECTORY":      "/var/lib/spend",
		"SPEND_BATCH_WORKERS":       "8",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, BackendSQLite, config.Storage.Backend)
	assert.Equal(t, "ledger.db", config.Storage.SQLiteFile)
	assert.Equal(t, 8, config.Batch.Workers)
	assert.Equal(t, filepath.Join("/var/lib/spend", "ledger.db"), config.SQLiteFilePath())
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	tempDir := isolateConfig(t)

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
storage:
  backend: "csv"
  csv_file: "ledger.csv"
categories:
  file: "my-categories.yaml"
batch:
  workers: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "ledger.csv", config.Storage.CSVFile)
	assert.Equal(t, "my-categories.yaml", config.Categories.File)
	assert.Equal(t, 2, config.Batch.Workers)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	tempDir := isolateConfig(t)

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
batch:
  workers: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))

	t.Setenv("SPEND_LOG_LEVEL", "error")
	t.Setenv("SPEND_BATCH_WORKERS", "16")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level) // env var wins
	assert.Equal(t, "|", config.CSV.Delimiter) // config file value
	assert.Equal(t, 16, config.Batch.Workers)  // env var wins
}

func TestInitializeConfig_MalformedFile(t *testing.T) {
	tempDir := isolateConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte("log: [unclosed"), 0600))

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInitializeConfig_InvalidEnvValue(t *testing.T) {
	isolateConfig(t)
	t.Setenv("SPEND_STORAGE_BACKEND", "postgres")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage backend")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "multi-character delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "empty delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "quote delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = `"` },
			expectError:  "cannot be a quote or line break",
		},
		{
			name:         "unknown backend",
			modifyConfig: func(c *Config) { c.Storage.Backend = "postgres" },
			expectError:  "invalid storage backend",
		},
		{
			name:         "csv backend without file",
			modifyConfig: func(c *Config) { c.Storage.CSVFile = "" },
			expectError:  "storage.csv_file is required",
		},
		{
			name: "sqlite backend without file",
			modifyConfig: func(c *Config) {
				c.Storage.Backend = BackendSQLite
				c.Storage.SQLiteFile = ""
			},
			expectError: "storage.sqlite_file is required",
		},
		{
			name:         "too few workers",
			modifyConfig: func(c *Config) { c.Batch.Workers = 0 },
			expectError:  "batch.workers must be between 1 and 64",
		},
		{
			name:         "too many workers",
			modifyConfig: func(c *Config) { c.Batch.Workers = 65 },
			expectError:  "batch.workers must be between 1 and 64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modifyConfig(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}

	assert.NoError(t, validateConfig(Default()))
}

func TestConfig_PathResolution(t *testing.T) {
	config := Default()
	assert.Equal(t, "expenses.csv", config.CSVFilePath())
	assert.Equal(t, "categories.yaml", config.CategoriesFilePath())

	config.Data.Directory = "/data"
	assert.Equal(t, filepath.Join("/data", "expenses.csv"), config.CSVFilePath())
	assert.Equal(t, filepath.Join("/data", "expenses.db"), config.SQLiteFilePath())

	config.Storage.CSVFile = "/abs/ledger.csv"
	assert.Equal(t, "/abs/ledger.csv", config.CSVFilePath())
}

func TestConfig_DelimiterRune(t *testing.T) {
	config := Default()
	assert.Equal(t, ',', config.DelimiterRune())

	config.CSV.Delimiter = "\t"
	assert.Equal(t, '\t', config.DelimiterRune())

	config.CSV.Delimiter = ""
	assert.Equal(t, ',', config.DelimiterRune())
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		config := Default()
		config.Log.Format = format
		assert.NotNil(t, ConfigureLoggingFromConfig(config), format)
	}
}

// isolateConfig points HOME and the working directory at an empty temp
// directory and clears every SPEND_ override.
func isolateConfig(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Chdir(tempDir)

	for _, envVar := range []string{
		"SPEND_LOG_LEVEL",
		"SPEND_LOG_FORMAT",
		"SPEND_CSV_DELIMITER",
		"SPEND_STORAGE_BACKEND",
		"SPEND_STORAGE_CSV_FILE",
		"SPEND_STORAGE_SQLITE_FILE",
		"SPEND_DATA_DIRECTORY",
		"SPEND_CATEGORIES_FILE",
		"SPEND_BATCH_WORKERS",
	} {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}

	return tempDir
}
