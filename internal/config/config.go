package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// OpenAIConfig holds the chat-completions API configuration.
// BaseURL is overridable so tests can point the client at a local server.
type OpenAIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	VerifyModel    string `mapstructure:"verify_model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// AuthConfig holds the session-token signing secret.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional config.yaml with environment
// variable overrides (e.g. OPENAI_MODEL, AUTH_JWT_SECRET).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// config file is optional; defaults + env are enough to run
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")

	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.verify_model", "gpt-3.5-turbo")
	v.SetDefault("openai.timeout_seconds", 60)

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")
}
