package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/folio/internal/domain"
	"github.com/yourusername/folio/internal/usecase"
)

// Loader runs the portfolio pipeline.
type Loader interface {
	Execute(ctx context.Context, req usecase.LoadPortfolioRequest) domain.Portfolio
}

// ErrorResponse is the JSON body of failed API calls.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PortfolioHandler serves the page, the theme toggle and the JSON API.
type PortfolioHandler struct {
	loader          Loader
	account         string
	maxRepositories int
	log             logrus.FieldLogger
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(loader Loader, account string, maxRepositories int, log logrus.FieldLogger) *PortfolioHandler {
	return &PortfolioHandler{
		loader:          loader,
		account:         account,
		maxRepositories: maxRepositories,
		log:             log,
	}
}

func (h *PortfolioHandler) themeFor(c *gin.Context) *usecase.ThemeUseCase {
	return usecase.NewThemeUseCase(newCookieStore(c), prefersDark(c), h.log)
}

func (h *PortfolioHandler) load(c *gin.Context) domain.Portfolio {
	return h.loader.Execute(c.Request.Context(), usecase.LoadPortfolioRequest{
		Account:         h.account,
		MaxRepositories: h.maxRepositories,
	})
}

// Page handles GET /
// Every page load runs the pipeline once.
func (h *PortfolioHandler) Page(c *gin.Context) {
	c.Header("Accept-CH", colorSchemeHint)
	c.Header("Vary", colorSchemeHint)

	theme := h.themeFor(c).Current()
	portfolio := h.load(c)

	c.HTML(http.StatusOK, "index.html", newPageData(portfolio, theme.Presentation))
}

// ToggleTheme handles POST /theme
// An optional form field "mode" sets the mode instead of flipping it.
func (h *PortfolioHandler) ToggleTheme(c *gin.Context) {
	themes := h.themeFor(c)

	var err error
	if raw := c.PostForm("mode"); raw != "" {
		mode, perr := domain.ParseThemeMode(raw)
		if perr != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_mode",
				Message: perr.Error(),
			})
			return
		}
		_, err = themes.Set(mode)
	} else {
		_, err = themes.Toggle(themes.Current().Mode)
	}
	if err != nil {
		h.log.WithError(err).Warn("failed to save theme preference")
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Projects handles GET /api/projects
// A failed listing answers 502 with the same body shape.
func (h *PortfolioHandler) Projects(c *gin.Context) {
	portfolio := h.load(c)

	status := http.StatusOK
	if portfolio.State == domain.PortfolioFailed {
		status = http.StatusBadGateway
	}
	c.JSON(status, newPortfolioView(portfolio))
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Service is running",
	})
}
