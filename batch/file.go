package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxAnswerLen is the hard output-size limit enforced after a run.
const maxAnswerLen = 5000

// LoadQuestions reads question records from a JSON file holding a list
// of objects. UTF-8 with or without a BOM and BOM-marked UTF-16 are
// accepted.
func LoadQuestions(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw, _, err = transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// WriteAnswers writes the answer records as indented JSON.
func WriteAnswers(path string, answers []Output) error {
	data, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ValidateFile re-reads a written answers file and checks the batch
// invariants: one record per question, each holding a string "output"
// shorter than maxAnswerLen. A violation is a hard stop for the whole
// run, not a per-question error.
func ValidateFile(path string, questionCount int) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var saved []map[string]any
	if err := json.Unmarshal(raw, &saved); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if len(saved) != questionCount {
		return fmt.Errorf("mismatched lengths: %d questions vs %d answers", questionCount, len(saved))
	}
	for i, record := range saved {
		v, ok := record["output"]
		if !ok {
			return fmt.Errorf("missing output field for answer index %d", i)
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("answer at index %d has non-string output", i)
		}
		if len(s) >= maxAnswerLen {
			return fmt.Errorf("answer at index %d exceeds %d characters (%d)", i, maxAnswerLen, len(s))
		}
	}
	return nil
}
