package domain

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		errContains string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "empty account", mutate: func(c *Config) { c.GitHub.Account = "" }, errContains: "github.account"},
		{name: "relative base url", mutate: func(c *Config) { c.GitHub.APIBaseURL = "api.github.com" }, errContains: "api_base_url"},
		{name: "empty cover path", mutate: func(c *Config) { c.GitHub.CoverPath = "" }, errContains: "cover_path"},
		{name: "zero max", mutate: func(c *Config) { c.GitHub.MaxRepositories = 0 }, errContains: "max_repositories"},
		{name: "max above six", mutate: func(c *Config) { c.GitHub.MaxRepositories = 7 }, errContains: "max_repositories"},
		{name: "smaller max", mutate: func(c *Config) { c.GitHub.MaxRepositories = 3 }},
		{name: "negative concurrency", mutate: func(c *Config) { c.GitHub.Concurrency = -1 }, errContains: "concurrency"},
		{name: "negative timeout", mutate: func(c *Config) { c.GitHub.TimeoutSeconds = -5 }, errContains: "timeout"},
		{name: "empty address", mutate: func(c *Config) { c.Server.Address = "" }, errContains: "server.address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.errContains == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	cfg := NewDefaultConfig()
	if got := cfg.Timeout(); got != 20*time.Second {
		t.Errorf("Timeout() = %v, want 20s", got)
	}
}
