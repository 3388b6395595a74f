package domain

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultAccount is the GitHub account whose portfolio is shown.
const DefaultAccount = "eliascarrasco1227"

// Config represents the complete folio configuration
type Config struct {
	Version string       `yaml:"version"`
	GitHub  GitHubConfig `yaml:"github"`
	Server  ServerConfig `yaml:"server"`
}

// GitHubConfig holds the listing and cover lookup settings
type GitHubConfig struct {
	Account         string `yaml:"account"`
	APIBaseURL      string `yaml:"api_base_url"`
	CoverPath       string `yaml:"cover_path"`
	MaxRepositories int    `yaml:"max_repositories"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	// Concurrency bounds the cover lookups in flight; 0 means one per repository.
	Concurrency int `yaml:"concurrency"`
}

// ServerConfig holds settings for `folio serve`
type ServerConfig struct {
	Address string `yaml:"address"`
}

// NewDefaultConfig creates a new config with the compiled-in defaults
func NewDefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		GitHub: GitHubConfig{
			Account:         DefaultAccount,
			APIBaseURL:      "https://api.github.com",
			CoverPath:       DefaultCoverPath,
			MaxRepositories: DefaultMaxRepositories,
			TimeoutSeconds:  20,
			Concurrency:     0,
		},
		Server: ServerConfig{
			Address: ":8080",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.GitHub.Account == "" {
		return fmt.Errorf("github.account cannot be empty")
	}

	u, err := url.Parse(c.GitHub.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("github.api_base_url must be an absolute http(s) URL, got %q", c.GitHub.APIBaseURL)
	}

	if c.GitHub.CoverPath == "" {
		return fmt.Errorf("github.cover_path cannot be empty")
	}
	if c.GitHub.MaxRepositories < 1 || c.GitHub.MaxRepositories > DefaultMaxRepositories {
		return fmt.Errorf("github.max_repositories must be between 1 and %d", DefaultMaxRepositories)
	}
	if c.GitHub.TimeoutSeconds < 0 {
		return fmt.Errorf("github.timeout_seconds cannot be negative")
	}
	if c.GitHub.Concurrency < 0 {
		return fmt.Errorf("github.concurrency cannot be negative")
	}

	if c.Server.Address == "" {
		return fmt.Errorf("server.address cannot be empty")
	}

	return nil
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.GitHub.TimeoutSeconds) * time.Second
}
