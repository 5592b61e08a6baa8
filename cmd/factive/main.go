// Command factive answers a JSON file of trivia questions and writes
// one answer record per question:
//
//	factive [questions.json [answers.json]]
//
// Paths default to questions.json and answers.json in the working
// directory and can also be set via FACTIVE_INPUT / FACTIVE_OUTPUT.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/davrell/factive"
	"github.com/davrell/factive/batch"
	"github.com/davrell/factive/logging"
	"github.com/davrell/factive/wiki"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.InputPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		cfg.OutputPath = os.Args[2]
	}

	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	questions, err := batch.LoadQuestions(cfg.InputPath)
	if err != nil {
		log.Error("load questions", zap.Error(err))
		os.Exit(1)
	}

	client := wiki.New(cfg.WikiBaseURL, log.Named("wiki"))
	agent := factive.New(
		factive.WithSearchProvider(client),
		factive.WithSummaryProvider(client),
		factive.WithLogger(log.Named("agent")),
		factive.WithMaxQueries(cfg.MaxQueries),
		factive.WithSearchLimit(cfg.SearchLimit),
		factive.WithMaxSentences(cfg.MaxSentences),
		factive.WithStepDelay(cfg.StepDelay),
	)

	answers, err := batch.NewRunner(agent, log.Named("batch")).Run(ctx, questions)
	if err != nil {
		log.Error("run batch", zap.Error(err))
		os.Exit(1)
	}

	if err := batch.WriteAnswers(cfg.OutputPath, answers); err != nil {
		log.Error("write answers", zap.Error(err))
		os.Exit(1)
	}
	if err := batch.ValidateFile(cfg.OutputPath, len(questions)); err != nil {
		log.Error("validate answers", zap.Error(err))
		os.Exit(1)
	}

	log.Info("wrote answers",
		zap.String("path", cfg.OutputPath),
		zap.Int("count", len(answers)),
	)
}
