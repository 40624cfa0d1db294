package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store persists the slider value between runs.
type Store struct {
	path string
}

type prefs struct {
	ThemeValue int `yaml:"theme_value"`
}

// NewStore returns a store backed by the YAML file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is prefs.yml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "particle-field", "prefs.yml"), nil
}

func (s *Store) Path() string { return s.path }

// Load returns the saved slider value, or Min when nothing was saved yet.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Min, nil
	}
	if err != nil {
		return Min, fmt.Errorf("reading prefs %s: %w", s.path, err)
	}

	var p prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Min, fmt.Errorf("parsing prefs %s: %w", s.path, err)
	}
	return min(max(p.ThemeValue, Min), Max), nil
}

// Save writes value, creating the parent directory if needed.
func (s *Store) Save(value int) error {
	data, err := yaml.Marshal(prefs{ThemeValue: value})
	if err != nil {
		return fmt.Errorf("marshalling prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating prefs dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing prefs to %s: %w", s.path, err)
	}
	return nil
}
