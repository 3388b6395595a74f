package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPortfolio(t *testing.T) {
	empty := NewPortfolio("octo", nil)
	if empty.State != PortfolioEmpty {
		t.Errorf("State = %v, want empty", empty.State)
	}
	if empty.Message() != EmptyPortfolioMessage {
		t.Errorf("Message() = %q, want %q", empty.Message(), EmptyPortfolioMessage)
	}
	if empty.HasCards() {
		t.Error("empty portfolio should not have cards")
	}

	loaded := NewPortfolio("octo", []EnrichedRepository{{RepositorySummary: RepositorySummary{Name: "a"}}})
	if loaded.State != PortfolioLoaded || !loaded.HasCards() || loaded.Message() != "" {
		t.Errorf("loaded portfolio = %+v", loaded)
	}
}

func TestFailedPortfolio(t *testing.T) {
	p := FailedPortfolio("octo", errors.New("boom"))
	if p.State != PortfolioFailed {
		t.Errorf("State = %v, want failed", p.State)
	}
	if p.Message() != ListingFailedMessage {
		t.Errorf("Message() = %q, want %q", p.Message(), ListingFailedMessage)
	}
	if p.Message() == EmptyPortfolioMessage {
		t.Error("failure and empty messages must differ")
	}
}

func TestListingError(t *testing.T) {
	cause := &StatusError{Method: "GET", Path: "/users/octo/repos", StatusCode: 404}
	err := &ListingError{Account: "octo", StatusCode: 404, Err: cause}

	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("Error() = %q, want status", err.Error())
	}
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Error("ListingError should unwrap to ErrUnexpectedStatus")
	}
	if got := StatusCodeOf(err); got != 404 {
		t.Errorf("StatusCodeOf() = %d, want 404", got)
	}
	if got := StatusCodeOf(errors.New("plain")); got != 0 {
		t.Errorf("StatusCodeOf(plain) = %d, want 0", got)
	}
}
