package web

import (
	"github.com/yourusername/folio/internal/domain"
)

// ProjectView is one card as the page and the JSON API see it.
type ProjectView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Stars       int    `json:"stars"`
	CoverURL    string `json:"cover_url,omitempty"`
}

// PortfolioView is the JSON body of GET /api/projects.
type PortfolioView struct {
	Account  string        `json:"account"`
	State    string        `json:"state"`
	Message  string        `json:"message,omitempty"`
	Projects []ProjectView `json:"projects"`
}

// pageData feeds templates/index.html.
type pageData struct {
	PortfolioView
	Theme       domain.Presentation
	NextMode    domain.ThemeMode
	ToggleGlyph string
}

var toggleGlyphs = map[string]string{
	domain.IconSun:  "☀️",
	domain.IconMoon: "🌙",
}

func newPortfolioView(p domain.Portfolio) PortfolioView {
	view := PortfolioView{
		Account:  p.Account,
		State:    p.State.String(),
		Message:  p.Message(),
		Projects: make([]ProjectView, 0, len(p.Repositories)),
	}
	for _, repo := range p.Repositories {
		cover, _ := repo.Cover.URL()
		view.Projects = append(view.Projects, ProjectView{
			Name:        repo.Name,
			Description: repo.DisplayDescription(),
			HTMLURL:     repo.HTMLURL,
			Stars:       repo.Stars,
			CoverURL:    cover,
		})
	}
	return view
}

func newPageData(p domain.Portfolio, theme domain.Presentation) pageData {
	return pageData{
		PortfolioView: newPortfolioView(p),
		Theme:         theme,
		NextMode:      theme.Mode.Toggle(),
		ToggleGlyph:   toggleGlyphs[theme.ToggleIcon],
	}
}
