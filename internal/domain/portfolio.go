package domain

import "fmt"

// Fixed user-facing texts.
const (
	EmptyPortfolioMessage = "No public projects to show."
	ListingFailedMessage  = "Could not load projects. Try reloading the page."
	NoDescriptionText     = "No description."
	LoadingMessage        = "Loading projects..."
	ViewOnGitHubText      = "View on GitHub"
)

// PortfolioState is the presentation state of a portfolio load.
type PortfolioState int

const (
	// PortfolioLoading means the pipeline has not finished yet.
	PortfolioLoading PortfolioState = iota
	// PortfolioLoaded means at least one repository is available.
	PortfolioLoaded
	// PortfolioEmpty means the account has no non-fork repositories.
	PortfolioEmpty
	// PortfolioFailed means the repository listing failed.
	PortfolioFailed
)

// String returns the string representation of the state.
func (s PortfolioState) String() string {
	switch s {
	case PortfolioLoading:
		return "loading"
	case PortfolioLoaded:
		return "loaded"
	case PortfolioEmpty:
		return "empty"
	case PortfolioFailed:
		return "failed"
	default:
		return fmt.Sprintf("PortfolioState(%d)", s)
	}
}

// Portfolio is what every renderer consumes.
type Portfolio struct {
	Account      string
	State        PortfolioState
	Repositories []EnrichedRepository
	Err          error
}

// NewPortfolio builds a loaded or empty portfolio from enriched repositories.
func NewPortfolio(account string, repos []EnrichedRepository) Portfolio {
	state := PortfolioLoaded
	if len(repos) == 0 {
		state = PortfolioEmpty
	}
	return Portfolio{
		Account:      account,
		State:        state,
		Repositories: repos,
	}
}

// FailedPortfolio builds the portfolio shown when the listing failed.
func FailedPortfolio(account string, err error) Portfolio {
	return Portfolio{
		Account: account,
		State:   PortfolioFailed,
		Err:     err,
	}
}

// LoadingPortfolio is the state before the pipeline completes.
func LoadingPortfolio(account string) Portfolio {
	return Portfolio{Account: account, State: PortfolioLoading}
}

// Message returns the placeholder text for non-loaded states, or "" when
// cards should be shown.
func (p Portfolio) Message() string {
	switch p.State {
	case PortfolioLoading:
		return LoadingMessage
	case PortfolioEmpty:
		return EmptyPortfolioMessage
	case PortfolioFailed:
		return ListingFailedMessage
	default:
		return ""
	}
}

// HasCards reports whether cards should be rendered.
func (p Portfolio) HasCards() bool {
	return p.State == PortfolioLoaded && len(p.Repositories) > 0
}
