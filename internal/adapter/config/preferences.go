package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// PreferenceStore is a small persistent key-value store, the terminal
// counterpart of browser local storage.
type PreferenceStore struct {
	fs   afero.Afero
	path string
}

// NewPreferenceStore creates a store backed by the YAML file at path.
func NewPreferenceStore(fs afero.Fs, path string) *PreferenceStore {
	return &PreferenceStore{
		fs:   afero.Afero{Fs: fs},
		path: path,
	}
}

// Get returns the value stored under key and whether it exists.
func (s *PreferenceStore) Get(key string) (string, bool, error) {
	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, keeping other keys intact.
func (s *PreferenceStore) Set(key, value string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (s *PreferenceStore) Path() string {
	return s.path
}

func (s *PreferenceStore) read() (map[string]string, error) {
	values := map[string]string{}

	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat preferences: %w", err)
	}
	if !exists {
		return values, nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %s: %w", s.path, err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}
