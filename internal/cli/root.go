// Package cli implements the gestao-frota command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Goulart21/gestao-frota/internal/config"
	"github.com/Goulart21/gestao-frota/internal/store"
	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/Goulart21/gestao-frota/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagConfig       string
	flagDB           string
	flagLogLevel     string
	flagOutputFormat string
)

var (
	conf   *config.Configuration
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "gestao-frota",
	Short:        "Fleet revenue/expense ledger with cash-flow forecasting",
	Long:         "Record daily fleet revenue and expenses and project future daily net cash flow with confidence bounds.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		conf, err = loadConfig(flagConfig)
		if err != nil {
			return err
		}
		if flagDB != "" {
			conf.Database.Path = flagDB
		}
		logger, err = initializeLogger(conf.Logging, flagLogLevel)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute is the main entry point called from main.go.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the ledger database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output-format", "o", "", "type of output override: pretty, csv")
}

// loadConfig loads the configuration file, falling back to defaults when the
// default file does not exist.
func loadConfig(path string) (*config.Configuration, error) {
	if path == constants.DefaultConfigFile {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			c := &config.Configuration{}
			c.ApplyDefaults()
			return c, nil
		}
	}
	return config.LoadConfiguration(path)
}

// openStore opens the configured ledger database.
func openStore() (*store.Store, error) {
	return store.Open(conf.Database.Path)
}

// outputFormat resolves the output format: CLI override takes precedence
// over config, which defaults to pretty.
func outputFormat() (string, error) {
	format := conf.Output.Format
	if flagOutputFormat != "" {
		format = flagOutputFormat
	}
	if format == "" {
		format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}
