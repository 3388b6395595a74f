package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/yourusername/folio/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	configDirName      = ".folio"
	configFileName     = "config.yaml"
	preferenceFileName = "preferences.yaml"
	logFileName        = "folio.log"
)

// Manager handles configuration persistence.
type Manager struct {
	fs         afero.Afero
	configDir  string
	configPath string
}

// NewManager creates a config manager rooted in the user's home directory.
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return NewManagerWithFs(afero.NewOsFs(), filepath.Join(homeDir, configDirName)), nil
}

// NewManagerWithFs creates a config manager on fs with configDir as root.
func NewManagerWithFs(fs afero.Fs, configDir string) *Manager {
	return &Manager{
		fs:         afero.Afero{Fs: fs},
		configDir:  configDir,
		configPath: filepath.Join(configDir, configFileName),
	}
}

// SetConfigPath points the manager at an explicit config file.
func (m *Manager) SetConfigPath(path string) {
	m.configPath = path
}

// Load loads the configuration from disk. A missing file yields the defaults.
// Values present in the file override the defaults field by field.
func (m *Manager) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	exists, err := m.fs.Exists(m.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		return cfg, nil
	}

	data, err := m.fs.ReadFile(m.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	return cfg, nil
}

// Save saves the configuration to disk.
func (m *Manager) Save(cfg *domain.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := m.fs.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ConfigPath returns the path to the config file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// LogPath returns the path of the diagnostic log used while the TUI runs.
func (m *Manager) LogPath() string {
	return filepath.Join(m.configDir, logFileName)
}

// Preferences returns the preference store kept next to the config file.
func (m *Manager) Preferences() *PreferenceStore {
	return NewPreferenceStore(m.fs.Fs, filepath.Join(m.configDir, preferenceFileName))
}

// EnsureDir creates the config directory.
func (m *Manager) EnsureDir() error {
	return m.fs.MkdirAll(m.configDir, 0755)
}

// OpenLog opens the diagnostic log for appending, creating it if needed.
func (m *Manager) OpenLog() (afero.File, error) {
	if err := m.EnsureDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := m.fs.OpenFile(m.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
