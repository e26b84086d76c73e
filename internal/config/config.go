// Package config provides configuration loading and management for
// prose2actions.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Augmentation   AugmentationConfig `json:"augmentation"             mapstructure:"augmentation"`
	Postprocessors []string           `json:"postprocessors,omitempty" mapstructure:"postprocessors"`
	Translation    TranslationConfig  `json:"translation"              mapstructure:"translation"`
	Server         ServerConfig       `json:"server"                   mapstructure:"server"`
}

// AugmentationConfig controls the data augmentation pipeline.
type AugmentationConfig struct {
	Probability float64 `json:"probability"          mapstructure:"probability"`
	Rounds      int     `json:"rounds"               mapstructure:"rounds"`
	Seed        int64   `json:"seed,omitempty"       mapstructure:"seed"`
	PoolsFile   string  `json:"pools_file,omitempty" mapstructure:"pools_file"`
}

// TranslationConfig describes the external translation service.
type TranslationConfig struct {
	BaseURL   string        `json:"base_url,omitempty"    mapstructure:"base_url"`
	APIKeyEnv string        `json:"api_key_env,omitempty" mapstructure:"api_key_env"`
	Timeout   time.Duration `json:"timeout,omitempty"     mapstructure:"timeout"`
}

// ServerConfig configures the JSON API server.
type ServerConfig struct {
	Listen string `json:"listen,omitempty" mapstructure:"listen"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Augmentation: AugmentationConfig{
			Probability: 0.5,
			Rounds:      3,
		},
		Translation: TranslationConfig{
			Timeout: 60 * time.Second,
		},
		Server: ServerConfig{
			Listen: "127.0.0.1:8676",
		},
	}
}
