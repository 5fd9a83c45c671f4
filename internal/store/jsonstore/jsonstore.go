package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/datenight/internal/model"
)

// JSON-backed idea files for export and import. Single file, human-readable,
// portable. The file is a JSON array in the same shape /allIdeas returns.

// Load reads ideas from path. A missing file is an error: import needs input.
func Load(path string) ([]model.Idea, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read file: %s does not exist", path)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var ideas []model.Idea
	if err := json.Unmarshal(b, &ideas); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return ideas, nil
}

// Save writes ideas to path, creating parent directories.
func Save(path string, ideas []model.Idea) error {
	if ideas == nil {
		ideas = []model.Idea{}
	}
	b, err := json.MarshalIndent(ideas, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
