package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/folio/internal/domain"
	"github.com/yourusername/folio/internal/ui"
	"github.com/yourusername/folio/internal/ui/components"
	"github.com/yourusername/folio/internal/ui/layout"
	"github.com/yourusername/folio/internal/usecase"
)

// Loader runs the portfolio pipeline.
type Loader interface {
	Execute(ctx context.Context, req usecase.LoadPortfolioRequest) domain.Portfolio
}

// ThemeSwitcher flips and persists the theme mode.
type ThemeSwitcher interface {
	Toggle(current domain.ThemeMode) (usecase.ThemeResponse, error)
}

// Opener opens a URL outside the terminal.
type Opener func(url string) error

// Options configures the card browser.
type Options struct {
	Account         string
	MaxRepositories int
	// Timeout bounds one pipeline run. Zero means no extra bound.
	Timeout    time.Duration
	Theme      domain.Presentation
	Hyperlinks bool
}

// Model is the interactive card browser.
type Model struct {
	loader Loader
	themes ThemeSwitcher
	open   Opener
	log    logrus.FieldLogger
	opts   Options

	portfolio    domain.Portfolio
	presentation domain.Presentation
	selected     int
	status       string
	statusWarn   bool
	themeSaving  bool

	spinner  spinner.Model
	viewport viewport.Model

	windowWidth  int
	windowHeight int
}

// NewModel creates the card browser. The global palette is switched to the
// initial theme so the first frame is drawn in the right colors.
func NewModel(loader Loader, themes ThemeSwitcher, open Opener, log logrus.FieldLogger, opts Options) Model {
	if opts.Theme.Mode == "" {
		opts.Theme = domain.PresentationFor(domain.ThemeLight)
	}
	ui.SetGlobalMode(opts.Theme.Mode)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.GetGlobalThemeManager().GetStyles().Loading

	vp := viewport.New(layout.DefaultWindowWidth, layout.CalculateContentHeight(layout.DefaultWindowHeight))

	m := Model{
		loader:       loader,
		themes:       themes,
		open:         open,
		log:          log,
		opts:         opts,
		portfolio:    domain.LoadingPortfolio(opts.Account),
		presentation: opts.Theme,
		selected:     0,
		spinner:      s,
		viewport:     vp,
		windowWidth:  layout.DefaultWindowWidth,
		windowHeight: layout.DefaultWindowHeight,
	}
	m.refreshContent()
	return m
}

// portfolioLoadedMsg is sent when a pipeline run completes.
type portfolioLoadedMsg struct {
	portfolio domain.Portfolio
}

// themeChangedMsg is sent after a toggle was saved.
type themeChangedMsg struct {
	previous domain.ThemeMode
	response usecase.ThemeResponse
	err      error
}

// browserOpenedMsg is sent after trying to open a repository page.
type browserOpenedMsg struct {
	name string
	err  error
}

// Init starts the spinner and the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	loader := m.loader
	req := usecase.LoadPortfolioRequest{
		Account:         m.opts.Account,
		MaxRepositories: m.opts.MaxRepositories,
	}
	timeout := m.opts.Timeout

	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return portfolioLoadedMsg{portfolio: loader.Execute(ctx, req)}
	}
}

// toggleTheme flips the mode on screen at once. Saves run one at a time;
// presses made while a save is in flight are saved when it completes.
func (m *Model) toggleTheme() tea.Cmd {
	current := m.presentation.Mode
	m.applyTheme(domain.PresentationFor(current.Toggle()))
	if m.themeSaving {
		return nil
	}
	return m.saveTheme(current)
}

// saveTheme persists the opposite of from.
func (m *Model) saveTheme(from domain.ThemeMode) tea.Cmd {
	m.themeSaving = true
	themes := m.themes
	return func() tea.Msg {
		resp, err := themes.Toggle(from)
		return themeChangedMsg{previous: from, response: resp, err: err}
	}
}

func (m *Model) applyTheme(p domain.Presentation) {
	m.presentation = p
	ui.SetGlobalMode(p.Mode)
	m.spinner.Style = ui.GetGlobalThemeManager().GetStyles().Loading
	m.refreshContent()
}

func (m *Model) setStatus(status string, warn bool) {
	m.status = status
	m.statusWarn = warn
}

func (m Model) openSelected() tea.Cmd {
	if !m.portfolio.HasCards() || m.open == nil {
		return nil
	}
	repo := m.portfolio.Repositories[m.selected]
	open := m.open
	return func() tea.Msg {
		return browserOpenedMsg{name: repo.Name, err: open(repo.HTMLURL)}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Some ptys report 0x0; lay out for the default size instead.
		m.windowWidth = layout.NormalizeWidth(msg.Width)
		m.windowHeight = layout.NormalizeHeight(msg.Height)
		m.viewport.Width = m.windowWidth
		m.viewport.Height = layout.CalculateContentHeight(m.windowHeight)
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		if m.portfolio.State != domain.PortfolioLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case portfolioLoadedMsg:
		m.portfolio = msg.portfolio
		m.selected = 0
		m.setStatus("", false)
		m.viewport.GotoTop()
		m.refreshContent()
		return m, nil

	case themeChangedMsg:
		m.themeSaving = false
		if msg.response.Mode == "" {
			// Nothing was switched; go back to the last saved mode.
			m.applyTheme(domain.PresentationFor(msg.previous))
			m.setStatus(fmt.Sprintf("Theme unchanged: %v", msg.err), true)
			return m, nil
		}
		// A failed save still switches the session.
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("theme preference not saved")
			m.setStatus("Theme switched but could not be saved", true)
		} else {
			m.setStatus("", false)
		}
		if m.presentation.Mode != msg.response.Mode {
			cmd = m.saveTheme(msg.response.Mode)
			return m, cmd
		}
		return m, nil

	case browserOpenedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("repository", msg.name).Warn("failed to open repository page")
			m.setStatus(fmt.Sprintf("Could not open %s", msg.name), true)
		} else {
			m.setStatus(fmt.Sprintf("Opened %s", msg.name), false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "t":
		cmd := m.toggleTheme()
		return m, cmd

	case "r":
		if m.portfolio.State == domain.PortfolioLoading {
			return m, nil
		}
		m.portfolio = domain.LoadingPortfolio(m.opts.Account)
		m.setStatus("", false)
		m.refreshContent()
		return m, tea.Batch(m.spinner.Tick, m.load())

	case "enter", "o":
		return m, m.openSelected()

	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-layout.CalculateColumns(m.windowWidth))
	case "down", "j":
		m.moveSelection(layout.CalculateColumns(m.windowWidth))

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if !m.portfolio.HasCards() {
		return
	}
	next := m.selected + delta
	if next < 0 || next >= len(m.portfolio.Repositories) {
		return
	}
	m.selected = next
	m.refreshContent()
}

// refreshContent redraws the grid into the viewport and keeps the selected
// row visible.
func (m *Model) refreshContent() {
	opts := components.GridOptions{
		Width:      m.windowWidth,
		Selected:   m.selected,
		Hyperlinks: m.opts.Hyperlinks,
	}

	if !m.portfolio.HasCards() {
		m.viewport.SetContent(components.RenderPortfolio(m.portfolio, opts))
		return
	}

	rows := components.RenderRows(m.portfolio, opts)
	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, rows...))

	row := components.CardRowOf(m.selected, m.windowWidth)
	top := 0
	for _, r := range rows[:row] {
		top += lipgloss.Height(r)
	}
	bottom := top + lipgloss.Height(rows[row])

	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// View renders the card browser.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(m.opts.Account, m.windowWidth))
	b.WriteString("\n")

	if m.portfolio.State == domain.PortfolioLoading {
		b.WriteString(m.spinner.View() + " ")
	}
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	meta := m.status
	if m.statusWarn {
		meta = ui.GetGlobalThemeManager().GetStyles().StatusWarning.Render(meta)
	}
	if meta == "" && m.portfolio.HasCards() {
		meta = components.FormatCount(len(m.portfolio.Repositories), "project", "projects")
	}
	footer := components.PortfolioFooter(m.presentation, meta, m.windowWidth)
	b.WriteString(ui.GetGlobalThemeManager().GetStyles().Footer.Render(footer))

	return b.String()
}

// Portfolio returns the currently displayed portfolio.
func (m Model) Portfolio() domain.Portfolio {
	return m.portfolio
}

// Selected returns the index of the selected card.
func (m Model) Selected() int {
	return m.selected
}

// Presentation returns the current theme presentation.
func (m Model) Presentation() domain.Presentation {
	return m.presentation
}
