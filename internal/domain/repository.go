package domain

import (
	"net/url"
	"strings"
)

const (
	// DefaultMaxRepositories is how many repositories a portfolio shows.
	// It is also the ceiling: a portfolio never holds more cards.
	DefaultMaxRepositories = 6

	// DefaultCoverPath is the directory, relative to a repository root,
	// that is searched for a cover image.
	DefaultCoverPath = "assets/images/cover"
)

// coverImageExtensions are matched case-sensitively against file names.
var coverImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// RepositorySummary is a repository as returned by the listing endpoint.
type RepositorySummary struct {
	Name        string
	Description string // empty when the repository has none
	HTMLURL     string
	Stars       int
	IsFork      bool
}

// HasDescription reports whether the repository carries a description.
func (r RepositorySummary) HasDescription() bool {
	return strings.TrimSpace(r.Description) != ""
}

// SelectRecent drops forks and keeps at most max entries, preserving order.
// max is clamped to DefaultMaxRepositories. The listing endpoint already
// orders by last update, so the result holds the most recently updated
// repositories first.
func SelectRecent(repos []RepositorySummary, max int) []RepositorySummary {
	if max <= 0 || max > DefaultMaxRepositories {
		max = DefaultMaxRepositories
	}

	selected := make([]RepositorySummary, 0, min(max, len(repos)))
	for _, repo := range repos {
		if repo.IsFork {
			continue
		}
		selected = append(selected, repo)
		if len(selected) == max {
			break
		}
	}
	return selected
}

// CoverImage is the outcome of a cover lookup: either a usable URL or absent.
// The zero value is absent.
type CoverImage struct {
	url string
}

// NoCover returns an absent cover image.
func NoCover() CoverImage {
	return CoverImage{}
}

// CoverAt returns a cover image for rawURL. A URL that is not an absolute
// http(s) URL yields an absent cover, so callers never see a half-valid value.
func CoverAt(rawURL string) CoverImage {
	if !isWellFormedURL(rawURL) {
		return NoCover()
	}
	return CoverImage{url: rawURL}
}

// Found reports whether a cover image was resolved.
func (c CoverImage) Found() bool {
	return c.url != ""
}

// URL returns the cover URL and whether one exists.
func (c CoverImage) URL() (string, bool) {
	return c.url, c.url != ""
}

// String returns the URL, or an empty string when absent.
func (c CoverImage) String() string {
	return c.url
}

// IsCoverImageName reports whether a file name qualifies as a cover image.
func IsCoverImageName(name string) bool {
	for _, ext := range coverImageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// EnrichedRepository is a listed repository with its resolved cover image.
type EnrichedRepository struct {
	RepositorySummary
	Cover CoverImage
}

// NewEnrichedRepository attaches a cover to a repository summary.
func NewEnrichedRepository(repo RepositorySummary, cover CoverImage) EnrichedRepository {
	return EnrichedRepository{
		RepositorySummary: repo,
		Cover:             cover,
	}
}

// DisplayDescription returns the description or the fallback text.
func (r EnrichedRepository) DisplayDescription() string {
	if !r.HasDescription() {
		return NoDescriptionText
	}
	return r.Description
}

func isWellFormedURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
