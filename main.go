package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ticket-board/models"
)

var Logger *zap.Logger

// InitLogger initializes the global logger with appropriate configuration
func InitLogger(config *models.Config, out zapcore.WriteSyncer) {
	// Get log level from config
	level := getLogLevel(config.Logging.Level)

	// Create encoder config based on format
	var encoderConfig zapcore.EncoderConfig
	if config.Logging.Format == models.LogFormatJSON {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		// Console format (default)
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// Create core based on format
	var core zapcore.Core
	if config.Logging.Format == models.LogFormatJSON {
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, level)
	} else {
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), out, level)
	}

	Logger = zap.New(core)
}

// getLogLevel returns the log level based on config
func getLogLevel(level models.LogLevel) zapcore.Level {
	switch level {
	case models.LogLevelDebug:
		return zapcore.DebugLevel
	case models.LogLevelInfo:
		return zapcore.InfoLevel
	case models.LogLevelWarn:
		return zapcore.WarnLevel
	case models.LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

var rootCmd = &cobra.Command{
	Use:   "ticket-board",
	Short: "Kanban board over a remote ticket snapshot",
	Long: `ticket-board fetches tickets and users from a remote service once per session
and shows them as a kanban board, grouped by status, priority or user and
ordered by priority or title.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to configuration file (optional, BOARD_* environment variables also apply)")
	flags.String("group", string(models.GroupByStatus), "Grouping: status, priority or user")
	flags.String("order", string(models.SortByPriority), "Ordering: priority or title")
	flags.String("snapshot", "", "Read tickets from a local JSON or YAML snapshot instead of the upstream URL")
	flags.String("url", "", "Upstream URL serving the ticket snapshot")

	rootCmd.AddCommand(serveCmd, showCmd)
}

// loadConfig loads configuration for a command, letting its flags override file and environment values
func loadConfig(cmd *cobra.Command) (*models.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	config, err := models.LoadConfigWithFlags(configPath, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return config, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Use fmt for this error since the logger may not be initialized yet
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
