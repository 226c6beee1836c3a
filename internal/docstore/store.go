// Package docstore handles the file boundary of a run: loading the input
// list of documentation strings and persisting the aggregated records.
package docstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tiwe0/cmdparse/internal/domain"
)

// LoadTexts reads a JSON array of raw documentation strings. The position
// of each string in the array is its position index for the whole run.
func LoadTexts(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("input file %s is not a JSON array of strings: %w", path, err)
	}

	return texts, nil
}

// WriteRecords persists the extracted records as an indented JSON array in
// input order. HTML escaping is disabled so command text round-trips
// verbatim.
func WriteRecords(path string, records []*domain.Command) error {
	if records == nil {
		records = []*domain.Command{}
	}
	for _, r := range records {
		r.Normalize()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode records: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
