package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type config struct {
	BindAddr     string
	WikiBaseURL  string
	MaxQueries   int
	SearchLimit  int
	MaxSentences int
	StepDelay    time.Duration
	LogLevel     string
}

func loadConfig() (*config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("factived")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("bind_addr", "0.0.0.0:8080")
	v.SetDefault("wiki_url", "")
	v.SetDefault("max_queries", 3)
	v.SetDefault("search_limit", 6)
	v.SetDefault("max_sentences", 2)
	v.SetDefault("step_delay", "500ms")
	v.SetDefault("log_level", "info")

	cfg := &config{
		BindAddr:     v.GetString("bind_addr"),
		WikiBaseURL:  v.GetString("wiki_url"),
		MaxQueries:   v.GetInt("max_queries"),
		SearchLimit:  v.GetInt("search_limit"),
		MaxSentences: v.GetInt("max_sentences"),
		StepDelay:    v.GetDuration("step_delay"),
		LogLevel:     v.GetString("log_level"),
	}

	if cfg.BindAddr == "" {
		return nil, fmt.Errorf("FACTIVED_BIND_ADDR must not be empty")
	}
	if cfg.MaxQueries <= 0 {
		return nil, fmt.Errorf("FACTIVED_MAX_QUERIES must be positive")
	}
	if cfg.SearchLimit <= 0 {
		return nil, fmt.Errorf("FACTIVED_SEARCH_LIMIT must be positive")
	}
	if cfg.MaxSentences <= 0 {
		return nil, fmt.Errorf("FACTIVED_MAX_SENTENCES must be positive")
	}
	return cfg, nil
}
