package usecase

import (
	"context"

	"github.com/yourusername/folio/internal/domain"
	"golang.org/x/sync/errgroup"
)

// EnrichUseCase attaches cover images to listed repositories.
type EnrichUseCase struct {
	resolver    CoverResolver
	concurrency int
}

// NewEnrichUseCase creates a new EnrichUseCase. A concurrency of 0 runs one
// lookup per repository at once; a positive value caps lookups in flight.
func NewEnrichUseCase(resolver CoverResolver, concurrency int) *EnrichUseCase {
	return &EnrichUseCase{
		resolver:    resolver,
		concurrency: concurrency,
	}
}

// EnrichRequest contains the repositories to enrich.
type EnrichRequest struct {
	Account      string
	Repositories []domain.RepositorySummary
}

// Execute resolves every cover concurrently and returns the enriched
// repositories in input order.
func (uc *EnrichUseCase) Execute(ctx context.Context, req EnrichRequest) []domain.EnrichedRepository {
	enriched := make([]domain.EnrichedRepository, len(req.Repositories))

	var g errgroup.Group
	if uc.concurrency > 0 {
		g.SetLimit(uc.concurrency)
	}

	for i, repo := range req.Repositories {
		i, repo := i, repo
		g.Go(func() error {
			cover := uc.resolver.Resolve(ctx, ResolveCoverRequest{
				Account:    req.Account,
				Repository: repo.Name,
			})
			// Each goroutine owns slot i.
			enriched[i] = domain.NewEnrichedRepository(repo, cover)
			return nil
		})
	}

	// Resolvers do not fail, so Wait only joins.
	_ = g.Wait()

	return enriched
}
