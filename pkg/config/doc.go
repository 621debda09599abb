// Package config loads application configuration from environment
// variables, optionally seeded from .env files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//	type Config struct {
//	    LogLevel  string `env:"NOTIFY_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"NOTIFY_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Each configuration type is parsed once per process and cached;
// ResetCache exists for tests that mutate the environment.
package config
