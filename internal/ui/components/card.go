package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yourusername/folio/internal/domain"
	"github.com/yourusername/folio/internal/ui"
	"github.com/yourusername/folio/internal/ui/layout"
)

const coverLabel = "cover: "

// RepoCard renders one repository as a bordered card
type RepoCard struct {
	Repo     domain.EnrichedRepository
	Width    int
	Selected bool
	// Hyperlinks emits OSC 8 links instead of printing the URLs.
	Hyperlinks bool
}

// NewRepoCard creates a card with default settings
func NewRepoCard(repo domain.EnrichedRepository) *RepoCard {
	return &RepoCard{
		Repo:  repo,
		Width: layout.CardWidth,
	}
}

// SetSelected sets the selected state of the card
func (c *RepoCard) SetSelected(selected bool) *RepoCard {
	c.Selected = selected
	return c
}

// SetWidth sets the outer card width
func (c *RepoCard) SetWidth(width int) *RepoCard {
	c.Width = width
	return c
}

// SetHyperlinks toggles terminal hyperlinks
func (c *RepoCard) SetHyperlinks(enabled bool) *RepoCard {
	c.Hyperlinks = enabled
	return c
}

// Render renders the card. The cover line is left out entirely when the
// repository has no cover image.
func (c *RepoCard) Render() string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	cardStyle := styles.Card
	if c.Selected {
		cardStyle = styles.CardSelected
	}

	// Account for border and horizontal padding
	inner := c.Width - 4
	if inner < 1 {
		inner = 1
	}
	cardStyle = cardStyle.Width(inner + 2)

	var lines []string

	if u, ok := c.Repo.Cover.URL(); ok {
		text := TruncateText(u, inner-len(coverLabel))
		if c.Hyperlinks {
			text = "image"
		}
		lines = append(lines, styles.Cover.Render(coverLabel+c.link(u, text)))
	}

	lines = append(lines, styles.CardTitle.Render(TruncateText(c.Repo.Name, inner)))
	lines = append(lines, styles.Description.Render(WrapText(c.Repo.DisplayDescription(), inner)))

	stars := styles.Stars.Render(fmt.Sprintf("★ %d", c.Repo.Stars))
	link := styles.Link.Render(c.link(c.Repo.HTMLURL, domain.ViewOnGitHubText))
	spacing := inner - lipgloss.Width(stars) - lipgloss.Width(link)
	if spacing < 1 {
		spacing = 1
	}
	lines = append(lines, "", stars+strings.Repeat(" ", spacing)+link)

	if !c.Hyperlinks {
		lines = append(lines, styles.Metadata.Render(TruncateText(c.Repo.HTMLURL, inner)))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (c *RepoCard) link(url, text string) string {
	if !c.Hyperlinks {
		return text
	}
	return termenv.Hyperlink(url, text)
}
