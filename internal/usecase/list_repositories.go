package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/folio/internal/adapter/github"
	"github.com/yourusername/folio/internal/domain"
)

// GitHubSource defines the GitHub reads the portfolio pipeline needs.
type GitHubSource interface {
	ListUserRepositories(ctx context.Context, account string) ([]github.Repository, error)
	GetContents(ctx context.Context, account, repo, path string) (*github.Contents, error)
}

// ListRepositoriesUseCase lists an account's most recent non-fork repositories.
type ListRepositoriesUseCase struct {
	source GitHubSource
	log    logrus.FieldLogger
}

// NewListRepositoriesUseCase creates a new ListRepositoriesUseCase.
func NewListRepositoriesUseCase(source GitHubSource, log logrus.FieldLogger) *ListRepositoriesUseCase {
	return &ListRepositoriesUseCase{
		source: source,
		log:    log,
	}
}

// ListRepositoriesRequest contains the parameters for listing repositories.
type ListRepositoriesRequest struct {
	Account         string
	MaxRepositories int
}

// ListRepositoriesResponse contains the selected repositories.
type ListRepositoriesResponse struct {
	Repositories []domain.RepositorySummary
}

// Execute fetches the listing and selects the repositories to show. Any
// failure is returned as a *domain.ListingError; there are no partial results.
func (uc *ListRepositoriesUseCase) Execute(ctx context.Context, req ListRepositoriesRequest) (*ListRepositoriesResponse, error) {
	if req.Account == "" {
		return nil, &domain.ListingError{Err: fmt.Errorf("account cannot be empty")}
	}

	raw, err := uc.source.ListUserRepositories(ctx, req.Account)
	if err != nil {
		return nil, &domain.ListingError{
			Account:    req.Account,
			StatusCode: domain.StatusCodeOf(err),
			Err:        err,
		}
	}

	summaries := make([]domain.RepositorySummary, len(raw))
	for i, r := range raw {
		summaries[i] = r.ToSummary()
	}
	selected := domain.SelectRecent(summaries, req.MaxRepositories)

	uc.log.WithFields(logrus.Fields{
		"account":  req.Account,
		"listed":   len(raw),
		"selected": len(selected),
	}).Debug("repositories listed")

	return &ListRepositoriesResponse{Repositories: selected}, nil
}
