package github

import "github.com/yourusername/folio/internal/domain"

// Repository is a repository record from GET /users/{account}/repos.
type Repository struct {
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	HTMLURL         string  `json:"html_url"`
	StargazersCount int     `json:"stargazers_count"`
	Fork            bool    `json:"fork"`
}

// ToSummary converts the wire record into the domain type.
func (r Repository) ToSummary() domain.RepositorySummary {
	description := ""
	if r.Description != nil {
		description = *r.Description
	}
	stars := r.StargazersCount
	if stars < 0 {
		stars = 0
	}
	return domain.RepositorySummary{
		Name:        r.Name,
		Description: description,
		HTMLURL:     r.HTMLURL,
		Stars:       stars,
		IsFork:      r.Fork,
	}
}

// Content entry types.
const (
	ContentTypeFile = "file"
	ContentTypeDir  = "dir"
)

// ContentEntry is one record of GET /repos/{account}/{repo}/contents/{path}.
type ContentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Contents is a decoded contents response.
type Contents struct {
	// IsDirectory is false when the path named a single file.
	IsDirectory bool
	Entries     []ContentEntry
}
