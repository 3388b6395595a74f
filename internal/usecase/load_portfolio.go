package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/folio/internal/domain"
)

// LoadPortfolioUseCase runs the whole pipeline: list, enrich, build state.
type LoadPortfolioUseCase struct {
	lister   *ListRepositoriesUseCase
	enricher *EnrichUseCase
	log      logrus.FieldLogger
}

// NewLoadPortfolioUseCase creates a new LoadPortfolioUseCase.
func NewLoadPortfolioUseCase(lister *ListRepositoriesUseCase, enricher *EnrichUseCase, log logrus.FieldLogger) *LoadPortfolioUseCase {
	return &LoadPortfolioUseCase{
		lister:   lister,
		enricher: enricher,
		log:      log,
	}
}

// NewPortfolioPipeline wires the three use cases over one GitHub source.
func NewPortfolioPipeline(source GitHubSource, coverPath string, concurrency int, log logrus.FieldLogger) *LoadPortfolioUseCase {
	lister := NewListRepositoriesUseCase(source, log)
	resolver := NewResolveCoverUseCase(source, coverPath, log)
	enricher := NewEnrichUseCase(resolver, concurrency)
	return NewLoadPortfolioUseCase(lister, enricher, log)
}

// LoadPortfolioRequest contains the parameters for one load.
type LoadPortfolioRequest struct {
	Account         string
	MaxRepositories int
}

// Execute loads the portfolio. A listing failure is logged and reported in
// the returned state; enrichment never runs in that case.
func (uc *LoadPortfolioUseCase) Execute(ctx context.Context, req LoadPortfolioRequest) domain.Portfolio {
	listed, err := uc.lister.Execute(ctx, ListRepositoriesRequest{
		Account:         req.Account,
		MaxRepositories: req.MaxRepositories,
	})
	if err != nil {
		uc.log.WithError(err).WithField("account", req.Account).Error("failed to load GitHub projects")
		return domain.FailedPortfolio(req.Account, err)
	}

	enriched := uc.enricher.Execute(ctx, EnrichRequest{
		Account:      req.Account,
		Repositories: listed.Repositories,
	})

	return domain.NewPortfolio(req.Account, enriched)
}
