// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"finashopping-mcp/internal/backend"
)

// Prompt locale values. Spanish-only is the default; bilingual renders every
// prompt with English translations alongside.
const (
	LocaleSpanish   = "es"
	LocaleBilingual = "bilingual"
)

// Config holds everything the server needs from the environment.
type Config struct {
	APIURL          string
	ServiceUsername string
	ServicePassword string
	Port            int
	PromptLocale    string
	Debug           bool
}

// Load reads configuration from the environment with the shipped defaults.
// Service credentials may legitimately be absent here; the backend client
// fails at authentication time when they are needed and missing.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("api_url", backend.DefaultBaseURL)
	v.SetDefault("port", 3000)
	v.SetDefault("prompt_locale", LocaleSpanish)
	v.SetDefault("debug", false)

	bindings := map[string]string{
		"api_url":          "FINASHOPPING_API_URL",
		"service_username": "FINASHOPPING_SERVICE_USERNAME",
		"service_password": "FINASHOPPING_SERVICE_PASSWORD",
		"port":             "PORT",
		"prompt_locale":    "FINASHOPPING_PROMPT_LOCALE",
		"debug":            "FINASHOPPING_DEBUG",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg := &Config{
		APIURL:          v.GetString("api_url"),
		ServiceUsername: v.GetString("service_username"),
		ServicePassword: v.GetString("service_password"),
		Port:            v.GetInt("port"),
		PromptLocale:    v.GetString("prompt_locale"),
		Debug:           v.GetBool("debug"),
	}

	if cfg.PromptLocale != LocaleSpanish && cfg.PromptLocale != LocaleBilingual {
		return nil, fmt.Errorf("unsupported prompt locale %q (use %q or %q)",
			cfg.PromptLocale, LocaleSpanish, LocaleBilingual)
	}
	return cfg, nil
}
