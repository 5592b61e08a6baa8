package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type config struct {
	InputPath    string
	OutputPath   string
	WikiBaseURL  string
	MaxQueries   int
	SearchLimit  int
	MaxSentences int
	StepDelay    time.Duration
	LogLevel     string
}

func loadConfig() (*config, error) {
	// Optional .env, silently skipped when absent.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("factive")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("input", "questions.json")
	v.SetDefault("output", "answers.json")
	v.SetDefault("wiki_url", "")
	v.SetDefault("max_queries", 3)
	v.SetDefault("search_limit", 6)
	v.SetDefault("max_sentences", 2)
	v.SetDefault("step_delay", "500ms")
	v.SetDefault("log_level", "info")

	cfg := &config{
		InputPath:    v.GetString("input"),
		OutputPath:   v.GetString("output"),
		WikiBaseURL:  v.GetString("wiki_url"),
		MaxQueries:   v.GetInt("max_queries"),
		SearchLimit:  v.GetInt("search_limit"),
		MaxSentences: v.GetInt("max_sentences"),
		StepDelay:    v.GetDuration("step_delay"),
		LogLevel:     v.GetString("log_level"),
	}

	if cfg.MaxQueries <= 0 {
		return nil, fmt.Errorf("FACTIVE_MAX_QUERIES must be positive")
	}
	if cfg.SearchLimit <= 0 {
		return nil, fmt.Errorf("FACTIVE_SEARCH_LIMIT must be positive")
	}
	if cfg.MaxSentences <= 0 {
		return nil, fmt.Errorf("FACTIVE_MAX_SENTENCES must be positive")
	}
	if cfg.StepDelay < 0 {
		return nil, fmt.Errorf("FACTIVE_STEP_DELAY cannot be negative")
	}
	return cfg, nil
}
