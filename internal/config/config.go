// Package config defines the data structures related to configuration and
// includes functions for loading and defaulting the config.
package config

import (
	"fmt"

	"github.com/Goulart21/gestao-frota/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for gestao-frota.
type Configuration struct {
	Database DatabaseConfig `yaml:"database,omitempty"`
	Forecast ForecastConfig `yaml:"forecast,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// DatabaseConfig holds the ledger store location.
type DatabaseConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ForecastConfig holds forecasting parameters.
type ForecastConfig struct {
	HorizonDays   int     `yaml:"horizonDays,omitempty"`
	IntervalWidth float64 `yaml:"intervalWidth,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills unset fields with their default values.
func (c *Configuration) ApplyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = constants.DefaultDatabaseFile
	}
	if c.Forecast.HorizonDays <= 0 {
		c.Forecast.HorizonDays = constants.InteractiveHorizonDays
	}
	if c.Forecast.IntervalWidth <= 0 || c.Forecast.IntervalWidth >= 1 {
		c.Forecast.IntervalWidth = constants.DefaultIntervalWidth
	}
}
