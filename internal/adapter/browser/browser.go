package browser

import (
	"io"
	"net/url"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
)

func init() {
	// The launcher's own output would corrupt the terminal UI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Open opens an absolute http(s) URL in the user's default browser.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrapf(err, "invalid url %q", rawURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("refusing to open non-web url %q", rawURL)
	}
	return errors.Wrap(browser.OpenURL(u.String()), "failed to open browser")
}
