package recipe2doc

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONRenderer emits the parsed record as indented JSON.
type JSONRenderer struct{}

// Render marshals rec, preserving stage insertion order (stages are a JSON
// array of {name, steps} objects).
func (r *JSONRenderer) Render(rec *Recipe) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling recipe: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string { return ".json" }

// Name returns the format name used in output paths.
func (r *JSONRenderer) Name() string { return FormatJSON }

// ExportJSON writes the JSON encoding of rec to path. In append mode the
// encoded record is written after any existing content as a separate,
// newline-terminated blob; prior content is not merged or rewritten.
func ExportJSON(rec *Recipe, path string, appendMode bool) error {
	data, err := (&JSONRenderer{}).Render(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJSONExport, err)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0o644) // #nosec G302 G304 -- caller-chosen export path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJSONExport, err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: writing %s: %v", ErrJSONExport, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrJSONExport, path, err)
	}
	return nil
}
