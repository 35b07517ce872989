package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Fetch  FetchConfig  `mapstructure:"fetch"`
	NLP    NLPConfig    `mapstructure:"nlp"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Address  string `mapstructure:"address"`
	LogLevel string `mapstructure:"log_level"`
}

// FetchConfig bounds outbound page retrieval.
type FetchConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	UserAgent    string        `mapstructure:"user_agent"`
}

// NLPConfig carries per-operation defaults and model locations.
type NLPConfig struct {
	NumSentences int     `mapstructure:"num_sentences"`
	Threshold    float64 `mapstructure:"threshold"`
	TopK         int     `mapstructure:"top_k"`
	ModelsDir    string  `mapstructure:"models_dir"`
	NERModel     string  `mapstructure:"ner_model"`
	ReadmePath   string  `mapstructure:"readme_path"`
}

// Load reads configuration from an optional yaml file plus PAGELENS_*
// environment variables. A missing implicit config file is not an error;
// every key has a default.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":8001")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("fetch.timeout", 15*time.Second)
	v.SetDefault("fetch.max_body_bytes", int64(2<<20))
	v.SetDefault("fetch.user_agent", "pagelens/1.0")
	v.SetDefault("nlp.num_sentences", 3)
	v.SetDefault("nlp.threshold", 0.5)
	v.SetDefault("nlp.top_k", 5)
	v.SetDefault("nlp.models_dir", "models")
	v.SetDefault("nlp.ner_model", "KnightsAnalytics/distilbert-NER")
	v.SetDefault("nlp.readme_path", "nlp_readme.md")

	v.SetEnvPrefix("PAGELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
