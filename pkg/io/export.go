// Package io provides artifact export helpers for rendered posters and
// planning output.
package io

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WritePNG writes encoded PNG bytes to path, creating parent directories as
// needed.
func WritePNG(path string, data []byte) error {
	return writeFile(path, data)
}

// WriteJSON writes v as indented JSON to path, creating parent directories
// as needed.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
