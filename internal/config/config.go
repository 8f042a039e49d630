package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the API service and CLI
type Config struct {
	// Server
	Port        string
	Environment string

	// Generation backend
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	GenerationTimeout time.Duration

	// Optional integrations
	NATSURL      string
	OTLPEndpoint string

	// HTTP
	CORSAllowedOrigins []string
}

// Load reads configuration from defaults, an optional YAML file named by
// AGENTGEN_CONFIG, and environment variables (highest precedence).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	_ = v.BindEnv("config_file", "AGENTGEN_CONFIG")
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	bindEnv(v)

	timeout := v.GetDuration("generation_timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("generation_timeout must be positive, got %q", v.GetString("generation_timeout"))
	}

	apiKey := v.GetString("gemini_api_key")
	if apiKey == "" {
		// The original deployment exported the credential as API_KEY.
		apiKey = v.GetString("api_key")
	}

	return &Config{
		Port:               v.GetString("port"),
		Environment:        v.GetString("go_env"),
		GeminiAPIKey:       apiKey,
		GeminiModel:        v.GetString("gemini_model"),
		GeminiBaseURL:      v.GetString("gemini_base_url"),
		GenerationTimeout:  timeout,
		NATSURL:            v.GetString("nats_url"),
		OTLPEndpoint:       v.GetString("otel_exporter_otlp_endpoint"),
		CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
	}, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("go_env", "development")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("generation_timeout", "60s")
	v.SetDefault("cors_allowed_origins", "*")
}

func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"port",
		"go_env",
		"gemini_api_key",
		"api_key",
		"gemini_model",
		"gemini_base_url",
		"generation_timeout",
		"nats_url",
		"otel_exporter_otlp_endpoint",
		"cors_allowed_origins",
	} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
