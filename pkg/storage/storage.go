// Package storage writes encoded feature output to a file or stdout.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Storage struct {
	// Stdout receives output when no file path is given.
	Stdout io.Writer
}

// Encode renders v as indented JSON or YAML.
func Encode(v any, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("error encoding yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// SaveFile writes content to filePath, or to Stdout when filePath is empty or "-".
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if filePath == "" || filePath == "-" {
		out := s.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(content); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
