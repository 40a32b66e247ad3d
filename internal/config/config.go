package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Artifacts ArtifactsConfig
	Alerting  AlertingConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type ArtifactsConfig struct {
	ModelPath        string
	BaselinePath     string
	ExpectationsPath string
}

type AlertingConfig struct {
	WebhookURL     string
	RequireWebhook bool
	Timeout        time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("EXPECTATIONS_PATH", "")
	v.SetDefault("DRIFT_WEBHOOK", "")
	v.SetDefault("REQUIRE_WEBHOOK", false)
	v.SetDefault("WEBHOOK_TIMEOUT", "5s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	if v.GetString("MODEL_PATH") == "" {
		return nil, errors.New("MODEL_PATH is required")
	}
	if v.GetString("BASELINE_PATH") == "" {
		return nil, errors.New("BASELINE_PATH is required")
	}

	timeout, err := time.ParseDuration(v.GetString("WEBHOOK_TIMEOUT"))
	if err != nil {
		timeout = 5 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Artifacts: ArtifactsConfig{
			ModelPath:        v.GetString("MODEL_PATH"),
			BaselinePath:     v.GetString("BASELINE_PATH"),
			ExpectationsPath: v.GetString("EXPECTATIONS_PATH"),
		},
		Alerting: AlertingConfig{
			WebhookURL:     v.GetString("DRIFT_WEBHOOK"),
			RequireWebhook: v.GetBool("REQUIRE_WEBHOOK"),
			Timeout:        timeout,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
