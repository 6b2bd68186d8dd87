package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"trainset/internal/models"
)

// strippedExample is the shape written to the train/validation files:
// messages only, bookkeeping removed.
type strippedExample struct {
	Messages []models.Message `json:"messages"`
}

// WriteStripped writes one {"messages": [...]} JSON object per line and
// returns how many records were written.
func WriteStripped(path string, examples []models.TrainingExample) (int, error) {
	return writeJSONL(path, len(examples), func(enc *json.Encoder, i int) error {
		return enc.Encode(strippedExample{Messages: examples[i].Messages})
	})
}

// WriteFull writes complete records including the _meta field, one per
// line, for human review.
func WriteFull(path string, examples []models.TrainingExample) (int, error) {
	return writeJSONL(path, len(examples), func(enc *json.Encoder, i int) error {
		return enc.Encode(examples[i])
	})
}

func writeJSONL(path string, n int, encode func(*json.Encoder, int) error) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	// Snippets are full of <, > and &; keep them readable in the output.
	enc.SetEscapeHTML(false)

	for i := 0; i < n; i++ {
		if err := encode(enc, i); err != nil {
			f.Close()
			return i, fmt.Errorf("failed to encode record %d for %s: %w", i, path, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return n, nil
}
