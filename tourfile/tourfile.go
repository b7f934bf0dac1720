// Package tourfile reads and writes tour forms as files, so edits can be made
// in an editor and applied as desired state. Format follows the extension:
// .yaml/.yml or .json.
package tourfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"tourdesk/form"
)

// Load parses the file at path into a tour form.
func Load(path string) (form.TourForm, error) {
	var f form.TourForm
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read %s: %w", path, err)
	}
	switch ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return f, fmt.Errorf("unsupported file type %q (want .yaml, .yml, or .json)", ext(path))
	}
	return f, nil
}

// Save writes the form to path in the format the extension names.
func Save(path string, f form.TourForm) error {
	var (
		data []byte
		err  error
	)
	switch ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(f)
	case ".json":
		data, err = json.MarshalIndent(f, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported file type %q (want .yaml, .yml, or .json)", ext(path))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
