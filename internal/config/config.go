package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/username/vacation-planner/internal/balance"
	"github.com/username/vacation-planner/internal/directory"
)

// EnvPrefix prefixes every environment override, e.g. VACATION_PLANNER_SERVER_ADDR
const EnvPrefix = "VACATION_PLANNER"

// Config represents application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Session  SessionConfig  `mapstructure:"session"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// CalendarConfig represents public holiday configuration
type CalendarConfig struct {
	HolidaysFile string `mapstructure:"holidays_file"` // Optional "YYYY-MM-DD Name" list, wins over builtin
	Builtin      string `mapstructure:"builtin"`       // "pl" or "none"
}

// StorageConfig represents favorites persistence configuration
type StorageConfig struct {
	Type          string `mapstructure:"type"` // "file" or "sqlite"
	FavoritesFile string `mapstructure:"favorites_file"`
	SQLitePath    string `mapstructure:"sqlite_path"`
}

// SessionConfig represents identity configuration
type SessionConfig struct {
	DefaultUserID   string `mapstructure:"default_user_id"`    // Fallback for unknown ids at login
	AutoLoginUserID string `mapstructure:"auto_login_user_id"` // Log this user in at startup
}

// SeedConfig represents reference and demo data
type SeedConfig struct {
	DemoData   bool                 `mapstructure:"demo_data"`
	Employees  []directory.Employee `mapstructure:"employees"`  // Empty: built-in demo directory
	Allotments []balance.Allotment  `mapstructure:"allotments"` // Empty: built-in demo allotments
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"

	BuiltinPL   = "pl"
	BuiltinNone = "none"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("calendar.holidays_file", "")
	v.SetDefault("calendar.builtin", BuiltinPL)
	v.SetDefault("storage.type", StorageFile)
	v.SetDefault("storage.favorites_file", "data/favorites.json")
	v.SetDefault("storage.sqlite_path", "data/vacation-planner.db")
	v.SetDefault("session.default_user_id", directory.DefaultUserID)
	v.SetDefault("session.auto_login_user_id", "")
	v.SetDefault("seed.demo_data", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load loads configuration from file, .env and environment.
//
// With an explicit configPath the file must exist. Otherwise config.yaml is
// searched for and the defaults are used when none is found.
func Load(configPath string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vacation-planner")
		v.AddConfigPath("/etc/vacation-planner")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	switch c.Calendar.Builtin {
	case BuiltinPL, BuiltinNone:
	default:
		return fmt.Errorf("calendar.builtin must be '%s' or '%s', got '%s'", BuiltinPL, BuiltinNone, c.Calendar.Builtin)
	}

	switch c.Storage.Type {
	case StorageFile:
		if c.Storage.FavoritesFile == "" {
			return fmt.Errorf("storage.favorites_file is required for file storage")
		}
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for sqlite storage")
		}
	default:
		return fmt.Errorf("storage.type must be '%s' or '%s', got '%s'", StorageFile, StorageSQLite, c.Storage.Type)
	}

	if c.Session.DefaultUserID == "" {
		return fmt.Errorf("session.default_user_id is required")
	}

	for i, a := range c.Seed.Allotments {
		if a.EmployeeID == "" {
			return fmt.Errorf("seed.allotments[%d].employee_id is required", i)
		}
		if a.DaysPerYear < 0 {
			return fmt.Errorf("seed.allotments[%d].days_per_year must not be negative", i)
		}
	}

	return nil
}

// GetShutdownTimeout returns the graceful shutdown timeout
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// EmployeesOrDefault returns the configured directory or the demo one
func (c *SeedConfig) EmployeesOrDefault() []directory.Employee {
	if len(c.Employees) == 0 {
		return directory.MockEmployees()
	}
	return c.Employees
}

// AllotmentsOrDefault returns the configured allotments or the demo ones
func (c *SeedConfig) AllotmentsOrDefault() []balance.Allotment {
	if len(c.Allotments) == 0 {
		return balance.DefaultAllotments()
	}
	return c.Allotments
}

// ExpandEnvVars expands environment variables in paths
func (c *Config) ExpandEnvVars() {
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.Storage.FavoritesFile = os.ExpandEnv(c.Storage.FavoritesFile)
	c.Storage.SQLitePath = os.ExpandEnv(c.Storage.SQLitePath)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
