package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// cookieMaxAge keeps the preference for a year.
	cookieMaxAge = 365 * 24 * 60 * 60

	// Client hint carrying the browser's color scheme preference.
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

// cookieStore keeps preferences in cookies of one request/response pair.
type cookieStore struct {
	c *gin.Context
}

func newCookieStore(c *gin.Context) *cookieStore {
	return &cookieStore{c: c}
}

func (s *cookieStore) Get(key string) (string, bool, error) {
	value, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *cookieStore) Set(key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", false, true)
	return nil
}

// prefersDark reads the color scheme client hint of the request. The hint
// is a structured-header string, normally sent quoted.
func prefersDark(c *gin.Context) func() bool {
	return func() bool {
		return strings.Trim(strings.TrimSpace(c.GetHeader(colorSchemeHint)), `"`) == "dark"
	}
}
