package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dataset.File != "twitter_sentiment_data.csv" {
		t.Errorf("unexpected default dataset file %q", cfg.Dataset.File)
	}
	if cfg.Output.Dir != "outputs" {
		t.Errorf("unexpected default output dir %q", cfg.Output.Dir)
	}
	if cfg.Analysis.TopThemes != 20 {
		t.Errorf("unexpected default top themes %d", cfg.Analysis.TopThemes)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("unexpected default log level %q", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Dataset:  DatasetConfig{File: "data.csv"},
		Analysis: AnalysisConfig{TopThemes: 20, TopThemesPerLabel: 10, MinTokenLength: 3},
		Output:   OutputConfig{Dir: "outputs"},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty dataset file", func(c *Config) { c.Dataset.File = "" }},
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }},
		{"zero top themes", func(c *Config) { c.Analysis.TopThemes = 0 }},
		{"zero per-label themes", func(c *Config) { c.Analysis.TopThemesPerLabel = 0 }},
		{"zero min token length", func(c *Config) { c.Analysis.MinTokenLength = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
