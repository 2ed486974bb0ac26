package models

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultSourceURL is the upstream endpoint serving the ticket snapshot
const DefaultSourceURL = "https://api.quicksell.co/v1/internal/frontend-assignment"

// EnvPrefix prefixes every environment variable override, e.g. BOARD_LOGGING_LEVEL
const EnvPrefix = "BOARD"

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	return string(l)
}

// String returns the string representation of LogFormat
func (f LogFormat) String() string {
	return string(f)
}

// IsValid checks if the LogLevel is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// IsValid checks if the LogFormat is valid
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatConsole, LogFormatJSON:
		return true
	default:
		return false
	}
}

func parseLogLevel(str string) (LogLevel, error) {
	level := LogLevel(strings.ToLower(str))
	if !level.IsValid() {
		return "", fmt.Errorf("invalid log level: %s. Valid options are: debug, info, warn, error", str)
	}
	return level, nil
}

func parseLogFormat(str string) (LogFormat, error) {
	format := LogFormat(strings.ToLower(str))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid log format: %s. Valid options are: console, json", str)
	}
	return format, nil
}

// ServerConfig configures the HTTP presentation server
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port" default:"8080"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level" mapstructure:"level" default:"info"`
	Format LogFormat `yaml:"format" mapstructure:"format" default:"console"`
}

// SourceConfig configures where the ticket snapshot comes from.
// SnapshotPath takes precedence over BaseURL when both are set.
type SourceConfig struct {
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	APIToken       string `yaml:"api_token" mapstructure:"api_token"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds" default:"30"`
	SnapshotPath   string `yaml:"snapshot_path" mapstructure:"snapshot_path"`
}

// BoardConfig holds the initial grouping and ordering of the board
type BoardConfig struct {
	Grouping GroupBy `yaml:"grouping" mapstructure:"grouping" default:"status"`
	Ordering SortBy  `yaml:"ordering" mapstructure:"ordering" default:"priority"`
}

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Source  SourceConfig  `yaml:"source" mapstructure:"source"`
	Board   BoardConfig   `yaml:"board" mapstructure:"board"`
}

// flagKeys maps command line flags onto configuration keys
var flagKeys = map[string]string{
	"port":     "server.port",
	"group":    "board.grouping",
	"order":    "board.ordering",
	"snapshot": "source.snapshot_path",
	"url":      "source.base_url",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("logging.level", string(LogLevelInfo))
	v.SetDefault("logging.format", string(LogFormatConsole))
	v.SetDefault("source.base_url", DefaultSourceURL)
	v.SetDefault("source.api_token", "")
	v.SetDefault("source.timeout_seconds", 30)
	v.SetDefault("source.snapshot_path", "")
	v.SetDefault("board.grouping", string(GroupByStatus))
	v.SetDefault("board.ordering", string(SortByPriority))
}

// enumDecodeHook validates enumerated settings while viper decodes them
func enumDecodeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	str := reflect.ValueOf(data).String()

	switch to {
	case reflect.TypeOf(LogLevel("")):
		return parseLogLevel(str)
	case reflect.TypeOf(LogFormat("")):
		return parseLogFormat(str)
	case reflect.TypeOf(GroupBy("")):
		return ParseGroupBy(str)
	case reflect.TypeOf(SortBy("")):
		return ParseSortBy(str)
	default:
		return data, nil
	}
}

// LoadConfig loads configuration from an optional YAML file and BOARD_* environment variables
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithFlags(configPath, nil)
}

// LoadConfigWithFlags loads configuration like LoadConfig, letting explicitly set flags win
func LoadConfigWithFlags(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var config Config
	err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.DecodeHookFuncType(enumDecodeHook)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateBoard(); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

// validateLogging ensures logging configuration is valid
func (c *Config) validateLogging() error {
	if !c.Logging.Level.IsValid() {
		return fmt.Errorf("invalid log level: %s. Valid options are: debug, info, warn, error", c.Logging.Level)
	}
	if !c.Logging.Format.IsValid() {
		return fmt.Errorf("invalid log format: %s. Valid options are: console, json", c.Logging.Format)
	}
	return nil
}

// validateSource ensures a snapshot file or a usable upstream URL is configured
func (c *Config) validateSource() error {
	if c.Source.SnapshotPath != "" {
		return nil
	}
	if c.Source.BaseURL == "" {
		return errors.New("either source.base_url or source.snapshot_path must be set")
	}
	u, err := url.Parse(c.Source.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid source.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("source.base_url must be an http or https URL: %s", c.Source.BaseURL)
	}
	if c.Source.TimeoutSeconds <= 0 {
		return errors.New("source.timeout_seconds must be positive")
	}
	return nil
}

// validateBoard ensures the initial grouping and ordering are valid
func (c *Config) validateBoard() error {
	if !c.Board.Grouping.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidGroupBy, c.Board.Grouping)
	}
	if !c.Board.Ordering.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidSortBy, c.Board.Ordering)
	}
	return nil
}
