package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration. It is loaded once in main
// and passed explicitly to every stage; nothing reads it ambiently.
type Config struct {
	Dataset  DatasetConfig  `envconfig:"DATASET"`
	Analysis AnalysisConfig `envconfig:"ANALYSIS"`
	Output   OutputConfig   `envconfig:"OUTPUT"`
	Logging  LoggingConfig  `envconfig:"LOGGING"`
}

// DatasetConfig describes the input corpus.
type DatasetConfig struct {
	File   string `envconfig:"DATASET_FILE" default:"twitter_sentiment_data.csv"`
	Topic  string `envconfig:"DATASET_TOPIC" default:"Climate Change"`
	Window string `envconfig:"DATASET_WINDOW" default:"Apr 27, 2015 - Feb 21, 2018"`
}

// AnalysisConfig holds analyzer tuning parameters.
type AnalysisConfig struct {
	TopThemes         int `envconfig:"ANALYSIS_TOP_THEMES" default:"20"`
	TopThemesPerLabel int `envconfig:"ANALYSIS_TOP_THEMES_PER_LABEL" default:"10"`
	MinTokenLength    int `envconfig:"ANALYSIS_MIN_TOKEN_LENGTH" default:"3"`
}

// OutputConfig describes where artifacts are written.
type OutputConfig struct {
	Dir string `envconfig:"OUTPUT_DIR" default:"outputs"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration defaults and overrides from the environment.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid.
func (c *Config) Validate() error {
	if c.Dataset.File == "" {
		return fmt.Errorf("dataset file must be set")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory must be set")
	}
	if c.Analysis.TopThemes <= 0 {
		return fmt.Errorf("top themes must be positive, got %d", c.Analysis.TopThemes)
	}
	if c.Analysis.TopThemesPerLabel <= 0 {
		return fmt.Errorf("top themes per label must be positive, got %d", c.Analysis.TopThemesPerLabel)
	}
	if c.Analysis.MinTokenLength < 1 {
		return fmt.Errorf("min token length must be at least 1, got %d", c.Analysis.MinTokenLength)
	}
	return nil
}
