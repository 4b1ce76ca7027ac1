package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
	Outputs OutputsConfig `mapstructure:"outputs"`
}

type APIConfig struct {
	// BaseURL points at the per-user record collection,
	// e.g. https://example.mockapi.io/word_users.
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	Username      string `mapstructure:"username" validate:"required"`
	RetryAttempts uint   `mapstructure:"retry_attempts" validate:"lte=10"`
}

type QuizConfig struct {
	ChoiceCount int `mapstructure:"choice_count" validate:"gte=2,lte=8"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory" validate:"required,creatable_dir"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordtrainer")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("api.retry_attempts", 2)
	v.SetDefault("quiz.choice_count", 4)
	v.SetDefault("outputs.report_directory", filepath.Join("outputs", "reports"))

	// Bind the remote API settings to environment variables as well, so the
	// trainer works without a config file at all.
	if err := v.BindEnv("api.base_url", "WORDTRAINER_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDTRAINER_API_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("api.username", "WORDTRAINER_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDTRAINER_USERNAME environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
