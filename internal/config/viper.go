// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/spend-tracker/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Storage backends
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Bounds for batch.workers
const (
	MinBatchWorkers = 1
	MaxBatchWorkers = 64
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "SPEND"

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig holds settings shared by every CSV reader and writer.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// StorageConfig selects and locates the expense store.
type StorageConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend"`
	CSVFile    string `mapstructure:"csv_file" yaml:"csv_file"`
	SQLiteFile string `mapstructure:"sqlite_file" yaml:"sqlite_file"`
}

// DataConfig holds the directory relative file names are resolved against.
type DataConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// CategoriesConfig locates the keyword and budget tables.
type CategoriesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// BatchConfig tunes the batch command.
type BatchConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage"`
	Data       DataConfig       `mapstructure:"data" yaml:"data"`
	Categories CategoriesConfig `mapstructure:"categories" yaml:"categories"`
	Batch      BatchConfig      `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.spend-tracker")
	v.AddConfigPath(".spend-tracker")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file or environment override
// is present.
func Default() *Config {
	return &Config{
		Log:        LogConfig{Level: "info", Format: "text"},
		CSV:        CSVConfig{Delimiter: ","},
		Storage:    StorageConfig{Backend: BackendCSV, CSVFile: "expenses.csv", SQLiteFile: "expenses.db"},
		Categories: CategoriesConfig{File: "categories.yaml"},
		Batch:      BatchConfig{Workers: 4},
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("csv.delimiter", d.CSV.Delimiter)

	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.csv_file", d.Storage.CSVFile)
	v.SetDefault("storage.sqlite_file", d.Storage.SQLiteFile)

	v.SetDefault("data.directory", d.Data.Directory)
	v.SetDefault("categories.file", d.Categories.File)
	v.SetDefault("batch.workers", d.Batch.Workers)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}
	if d := config.DelimiterRune(); d == '"' || d == '\r' || d == '\n' {
		return fmt.Errorf("CSV delimiter cannot be a quote or line break, got: %q", config.CSV.Delimiter)
	}

	switch config.Storage.Backend {
	case BackendCSV:
		if config.Storage.CSVFile == "" {
			return fmt.Errorf("storage.csv_file is required for the csv backend")
		}
	case BackendSQLite:
		if config.Storage.SQLiteFile == "" {
			return fmt.Errorf("storage.sqlite_file is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be '%s' or '%s')", config.Storage.Backend, BackendCSV, BackendSQLite)
	}

	if config.Batch.Workers < MinBatchWorkers || config.Batch.Workers > MaxBatchWorkers {
		return fmt.Errorf("batch.workers must be between %d and %d, got: %d", MinBatchWorkers, MaxBatchWorkers, config.Batch.Workers)
	}

	return nil
}

// Validate checks a configuration assembled outside InitializeConfig, for
// example after command-line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.CSV.Delimiter {
		return r
	}
	return ','
}

// CSVFilePath returns the CSV store location, resolved against data.directory.
func (c *Config) CSVFilePath() string {
	return c.resolve(c.Storage.CSVFile)
}

// SQLiteFilePath returns the SQLite store location, resolved against data.directory.
func (c *Config) SQLiteFilePath() string {
	return c.resolve(c.Storage.SQLiteFile)
}

// CategoriesFilePath returns the category table location, resolved against data.directory.
func (c *Config) CategoriesFilePath() string {
	return c.resolve(c.Categories.File)
}

func (c *Config) resolve(name string) string {
	if name == "" || filepath.IsAbs(name) || c.Data.Directory == "" {
		return name
	}
	return filepath.Join(os.ExpandEnv(c.Data.Directory), name)
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
