package batch

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davrell/factive"
)

// questionKeys are probed in priority order when extracting the question
// text from an input record.
var questionKeys = []string{"input", "question", "prompt", "query"}

// Answerer produces one answer for one question. *factive.Agent
// satisfies it.
type Answerer interface {
	Answer(ctx context.Context, question string) (factive.Result, error)
}

// Output is one answer record, written in input order.
type Output struct {
	Output string `json:"output"`
}

// QuestionText pulls the question out of one input record. Records of
// an unknown shape yield an empty string, which the agent answers with
// the not-available sentinel.
func QuestionText(record map[string]any) string {
	for _, key := range questionKeys {
		if v, ok := record[key]; ok {
			if s, ok := v.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}

// Runner answers a batch of question records strictly in order, one at
// a time. Every record gets exactly one Output; per-question faults are
// already reduced to sentinel answers inside the agent, so a single bad
// question never aborts the batch.
type Runner struct {
	agent Answerer
	log   *zap.Logger
}

// NewRunner constructs a Runner. A nil logger discards logs.
func NewRunner(agent Answerer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{agent: agent, log: log}
}

// Run processes all records sequentially and returns one answer per
// record, in the same order. The only error it returns is agent
// misconfiguration surfaced on the first question.
func (r *Runner) Run(ctx context.Context, records []map[string]any) ([]Output, error) {
	answers := make([]Output, 0, len(records))
	for i, record := range records {
		question := QuestionText(record)
		log := r.log.With(zap.String("run_id", uuid.NewString()), zap.Int("index", i))
		log.Info("processing question",
			zap.Int("total", len(records)),
			zap.String("question", truncate(question, 60)),
		)

		res, err := r.agent.Answer(ctx, question)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}

		log.Info("answered",
			zap.Int("attempts", res.Attempts),
			zap.String("title", res.Title),
		)
		answers = append(answers, Output{Output: res.Answer})
	}
	return answers, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
