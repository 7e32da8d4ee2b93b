// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/fin-tools/depositmax/pkg/constants"
	"github.com/fin-tools/depositmax/pkg/validation"
)

// Configuration holds all configuration for depositmax.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Data     DataConfig     `yaml:"data,omitempty"`
	Optimize OptimizeConfig `yaml:"optimize,omitempty"`
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

// DataConfig points at the rate schedule the optimizer reads.
type DataConfig struct {
	RateFile string `yaml:"rateFile,omitempty"` // .csv or .yaml schedule
}

// OptimizeConfig holds the allocation inputs.
type OptimizeConfig struct {
	TotalInvestment float64 `yaml:"totalInvestment,omitempty"`
	Compare         bool    `yaml:"compare,omitempty"`
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

	return &configuration, nil
}

// ApplyDefaults fills unset fields with their default values.
func (c *Configuration) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	if c.Optimize.TotalInvestment == 0 {
		c.Optimize.TotalInvestment = constants.DefaultInvestmentAmount
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown logging level %q, using info", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown logging format %q, using console", c.Logging.Format))
	}

	if c.Optimize.TotalInvestment < 0 {
		warnings = append(warnings, "optimize.totalInvestment is negative, nothing will be allocated")
	}

	if c.Data.RateFile == "" {
		warnings = append(warnings, "data.rateFile is not set, provide it or the --rates flag")
	}

	return warnings
}
