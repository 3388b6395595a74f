package usecase

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/folio/internal/domain"
)

// PreferenceStore persists string preferences.
type PreferenceStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// ThemeUseCase resolves, toggles and persists the theme mode. Storage is
// touched only when reading the initial mode and when changing it.
type ThemeUseCase struct {
	store      PreferenceStore
	systemDark func() bool
	log        logrus.FieldLogger
}

// NewThemeUseCase creates a new ThemeUseCase. systemDark reports the
// system-level dark preference and may be nil.
func NewThemeUseCase(store PreferenceStore, systemDark func() bool, log logrus.FieldLogger) *ThemeUseCase {
	if systemDark == nil {
		systemDark = func() bool { return false }
	}
	return &ThemeUseCase{
		store:      store,
		systemDark: systemDark,
		log:        log,
	}
}

// ThemeResponse reports the mode after an operation.
type ThemeResponse struct {
	Mode         domain.ThemeMode
	Presentation domain.Presentation
	// Persisted is false when the mode came from the system signal or default.
	Persisted bool
}

// Current resolves the initial mode: persisted, then system, then light.
// An unreadable store is logged and treated as empty.
func (uc *ThemeUseCase) Current() ThemeResponse {
	stored, ok, err := uc.store.Get(domain.ThemePreferenceKey)
	if err != nil {
		uc.log.WithError(err).Warn("failed to read theme preference")
		stored, ok = "", false
	}

	persisted := false
	if ok {
		_, perr := domain.ParseThemeMode(stored)
		persisted = perr == nil
	}

	// Only consult the system signal when nothing valid is stored.
	systemDark := false
	if !persisted {
		systemDark = uc.systemDark()
	}

	mode := domain.ResolveThemeMode(stored, systemDark)
	return ThemeResponse{
		Mode:         mode,
		Presentation: domain.PresentationFor(mode),
		Persisted:    persisted,
	}
}

// Toggle flips the given mode and persists the result.
func (uc *ThemeUseCase) Toggle(current domain.ThemeMode) (ThemeResponse, error) {
	return uc.Set(current.Toggle())
}

// Set persists mode.
func (uc *ThemeUseCase) Set(mode domain.ThemeMode) (ThemeResponse, error) {
	if _, err := domain.ParseThemeMode(string(mode)); err != nil {
		return ThemeResponse{}, err
	}

	resp := ThemeResponse{
		Mode:         mode,
		Presentation: domain.PresentationFor(mode),
	}
	if err := uc.store.Set(domain.ThemePreferenceKey, mode.String()); err != nil {
		return resp, fmt.Errorf("failed to save theme preference: %w", err)
	}
	resp.Persisted = true
	return resp, nil
}
