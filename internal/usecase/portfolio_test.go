package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/folio/internal/adapter/github"
	"github.com/yourusername/folio/internal/domain"
)

type contentsResult struct {
	contents *github.Contents
	err      error
	delay    time.Duration
}

// fakeSource is an in-memory GitHubSource.
type fakeSource struct {
	repos      []github.Repository
	listErr    error
	contents   map[string]contentsResult
	lookups    atomic.Int32
	inFlight   atomic.Int32
	maxFlight  atomic.Int32
	mu         sync.Mutex
	lookedUpIn []string
}

func (f *fakeSource) ListUserRepositories(ctx context.Context, account string) ([]github.Repository, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.repos, nil
}

func (f *fakeSource) GetContents(ctx context.Context, account, repo, path string) (*github.Contents, error) {
	f.lookups.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxFlight.Load()
		if n <= cur || f.maxFlight.CompareAndSwap(cur, n) {
			break
		}
	}

	f.mu.Lock()
	f.lookedUpIn = append(f.lookedUpIn, path)
	f.mu.Unlock()

	res, ok := f.contents[repo]
	if !ok {
		return nil, &domain.StatusError{Method: "GET", Path: path, StatusCode: http.StatusNotFound}
	}
	if res.delay > 0 {
		time.Sleep(res.delay)
	}
	return res.contents, res.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func repo(name string, fork bool) github.Repository {
	return github.Repository{
		Name:            name,
		HTMLURL:         "https://github.com/octo/" + name,
		StargazersCount: len(name),
		Fork:            fork,
	}
}

func dir(entries ...github.ContentEntry) contentsResult {
	return contentsResult{contents: &github.Contents{IsDirectory: true, Entries: entries}}
}

func file(name string) github.ContentEntry {
	return github.ContentEntry{Name: name, Type: github.ContentTypeFile, DownloadURL: "https://raw.example.com/" + name}
}

func names(repos []domain.EnrichedRepository) []string {
	out := make([]string, len(repos))
	for i, r := range repos {
		out[i] = r.Name
	}
	return out
}

func TestLoadPortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("three sources and two forks render three in order", func(t *testing.T) {
		source := &fakeSource{
			repos: []github.Repository{repo("a", false), repo("fork1", true), repo("b", false), repo("fork2", true), repo("c", false)},
			contents: map[string]contentsResult{
				"a": dir(file("a.png")),
				"c": dir(file("c.gif")),
			},
		}
		uc := NewPortfolioPipeline(source, "", 0, quietLogger())

		p := uc.Execute(ctx, LoadPortfolioRequest{Account: "octo", MaxRepositories: 6})
		require.Equal(t, domain.PortfolioLoaded, p.State)
		assert.Equal(t, []string{"a", "b", "c"}, names(p.Repositories))

		u, ok := p.Repositories[0].Cover.URL()
		assert.True(t, ok)
		assert.Equal(t, "https://raw.example.com/a.png", u)
		assert.False(t, p.Repositories[1].Cover.Found(), "b has no cover directory")
		assert.True(t, p.Repositories[2].Cover.Found())

		for _, r := range p.Repositories {
			assert.False(t, r.IsFork)
		}
		assert.EqualValues(t, 3, source.lookups.Load())
		for _, path := range source.lookedUpIn {
			assert.Equal(t, domain.DefaultCoverPath, path)
		}
	})

	t.Run("empty listing is an empty portfolio", func(t *testing.T) {
		uc := NewPortfolioPipeline(&fakeSource{}, "", 0, quietLogger())

		p := uc.Execute(ctx, LoadPortfolioRequest{Account: "octo", MaxRepositories: 6})
		assert.Equal(t, domain.PortfolioEmpty, p.State)
		assert.Equal(t, domain.EmptyPortfolioMessage, p.Message())
		assert.Empty(t, p.Repositories)
	})

	t.Run("listing 404 fails without enrichment", func(t *testing.T) {
		source := &fakeSource{
			listErr: &domain.StatusError{Method: "GET", Path: "/users/octo/repos", StatusCode: http.StatusNotFound},
		}
		uc := NewPortfolioPipeline(source, "", 0, quietLogger())

		p := uc.Execute(ctx, LoadPortfolioRequest{Account: "octo", MaxRepositories: 6})
		assert.Equal(t, domain.PortfolioFailed, p.State)
		assert.Equal(t, domain.ListingFailedMessage, p.Message())

		var listingErr *domain.ListingError
		require.ErrorAs(t, p.Err, &listingErr)
		assert.Equal(t, http.StatusNotFound, listingErr.StatusCode)
		assert.EqualValues(t, 0, source.lookups.Load())
	})

	t.Run("transport failure on listing fails", func(t *testing.T) {
		uc := NewPortfolioPipeline(&fakeSource{listErr: errors.New("connection refused")}, "", 0, quietLogger())

		p := uc.Execute(ctx, LoadPortfolioRequest{Account: "octo"})
		assert.Equal(t, domain.PortfolioFailed, p.State)
		var listingErr *domain.ListingError
		require.ErrorAs(t, p.Err, &listingErr)
		assert.Zero(t, listingErr.StatusCode)
	})

	t.Run("never more than six cards", func(t *testing.T) {
		var repos []github.Repository
		for i := 0; i < 30; i++ {
			repos = append(repos, repo(fmt.Sprintf("r%02d", i), i%4 == 0))
		}
		uc := NewPortfolioPipeline(&fakeSource{repos: repos}, "", 0, quietLogger())

		p := uc.Execute(ctx, LoadPortfolioRequest{Account: "octo", MaxRepositories: domain.DefaultMaxRepositories})
		assert.Len(t, p.Repositories, 6)
		assert.Equal(t, []string{"r01", "r02", "r03", "r05", "r06", "r07"}, names(p.Repositories))
	})
}

func TestListRepositories_EmptyAccount(t *testing.T) {
	uc := NewListRepositoriesUseCase(&fakeSource{}, quietLogger())
	_, err := uc.Execute(context.Background(), ListRepositoriesRequest{})

	var listingErr *domain.ListingError
	assert.ErrorAs(t, err, &listingErr)
}

func TestResolveCover(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		result  *contentsResult
		wantURL string
	}{
		{
			name:    "first image in listing order",
			result:  ptr(dir(file("notes.txt"), file("b.jpg"), file("a.png"))),
			wantURL: "https://raw.example.com/b.jpg",
		},
		{
			name: "directories are skipped even with image names",
			result: ptr(dir(
				github.ContentEntry{Name: "old.png", Type: github.ContentTypeDir},
				file("cover.jpeg"),
			)),
			wantURL: "https://raw.example.com/cover.jpeg",
		},
		{
			name:   "extension match is case-sensitive",
			result: ptr(dir(file("COVER.PNG"), file("cover.webp"))),
		},
		{
			name:   "empty directory",
			result: ptr(dir()),
		},
		{
			name: "single file response is not a cover",
			result: &contentsResult{contents: &github.Contents{
				IsDirectory: false,
				Entries:     []github.ContentEntry{file("cover.png")},
			}},
		},
		{
			name:   "transport error",
			result: &contentsResult{err: errors.New("dial tcp: timeout")},
		},
		{
			name:   "server error status",
			result: &contentsResult{err: &domain.StatusError{StatusCode: http.StatusInternalServerError}},
		},
		{
			name: "first image without a download url",
			result: ptr(dir(
				github.ContentEntry{Name: "cover.png", Type: github.ContentTypeFile},
				file("second.png"),
			)),
		},
		{
			name:   "missing directory",
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{contents: map[string]contentsResult{}}
			if tt.result != nil {
				source.contents["alpha"] = *tt.result
			}
			uc := NewResolveCoverUseCase(source, "", quietLogger())

			cover := uc.Resolve(ctx, ResolveCoverRequest{Account: "octo", Repository: "alpha"})
			u, ok := cover.URL()
			if tt.wantURL == "" {
				assert.False(t, ok)
				assert.Empty(t, u)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, tt.wantURL, u)
		})
	}
}

func TestResolveCover_CustomPath(t *testing.T) {
	source := &fakeSource{contents: map[string]contentsResult{"alpha": dir(file("x.png"))}}
	uc := NewResolveCoverUseCase(source, "docs/cover", quietLogger())

	cover := uc.Resolve(context.Background(), ResolveCoverRequest{Account: "octo", Repository: "alpha"})
	assert.True(t, cover.Found())
	assert.Equal(t, []string{"docs/cover"}, source.lookedUpIn)
}

func TestEnrich_PreservesOrderRegardlessOfCompletion(t *testing.T) {
	source := &fakeSource{contents: map[string]contentsResult{
		"slow":   {contents: &github.Contents{IsDirectory: true, Entries: []github.ContentEntry{file("slow.png")}}, delay: 60 * time.Millisecond},
		"medium": {contents: &github.Contents{IsDirectory: true, Entries: []github.ContentEntry{file("medium.png")}}, delay: 30 * time.Millisecond},
		"fast":   {contents: &github.Contents{IsDirectory: true, Entries: []github.ContentEntry{file("fast.png")}}},
	}}
	uc := NewEnrichUseCase(NewResolveCoverUseCase(source, "", quietLogger()), 0)

	input := []domain.RepositorySummary{{Name: "slow"}, {Name: "missing"}, {Name: "medium"}, {Name: "fast"}}
	out := uc.Execute(context.Background(), EnrichRequest{Account: "octo", Repositories: input})

	require.Len(t, out, len(input))
	for i := range input {
		assert.Equal(t, input[i].Name, out[i].Name)
	}
	assert.Equal(t, "https://raw.example.com/slow.png", out[0].Cover.String())
	assert.False(t, out[1].Cover.Found())
	assert.Equal(t, "https://raw.example.com/medium.png", out[2].Cover.String())
	assert.Equal(t, "https://raw.example.com/fast.png", out[3].Cover.String())
}

func TestEnrich_FanOut(t *testing.T) {
	build := func() (*fakeSource, []domain.RepositorySummary) {
		source := &fakeSource{contents: map[string]contentsResult{}}
		var input []domain.RepositorySummary
		for i := 0; i < 6; i++ {
			name := fmt.Sprintf("r%d", i)
			source.contents[name] = contentsResult{contents: &github.Contents{IsDirectory: true}, delay: 40 * time.Millisecond}
			input = append(input, domain.RepositorySummary{Name: name})
		}
		return source, input
	}

	t.Run("unbounded runs all lookups at once", func(t *testing.T) {
		source, input := build()
		uc := NewEnrichUseCase(NewResolveCoverUseCase(source, "", quietLogger()), 0)

		out := uc.Execute(context.Background(), EnrichRequest{Account: "octo", Repositories: input})
		assert.Len(t, out, 6)
		assert.EqualValues(t, 6, source.lookups.Load())
		assert.Greater(t, source.maxFlight.Load(), int32(1))
	})

	t.Run("bounded pool caps lookups in flight", func(t *testing.T) {
		source, input := build()
		uc := NewEnrichUseCase(NewResolveCoverUseCase(source, "", quietLogger()), 2)

		out := uc.Execute(context.Background(), EnrichRequest{Account: "octo", Repositories: input})
		assert.Len(t, out, 6)
		assert.EqualValues(t, 6, source.lookups.Load())
		assert.LessOrEqual(t, source.maxFlight.Load(), int32(2))
	})

	t.Run("empty input", func(t *testing.T) {
		uc := NewEnrichUseCase(NewResolveCoverUseCase(&fakeSource{}, "", quietLogger()), 0)
		assert.Empty(t, uc.Execute(context.Background(), EnrichRequest{Account: "octo"}))
	})
}

func ptr[T any](v T) *T {
	return &v
}
