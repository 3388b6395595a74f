package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/folio/internal/domain"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"

	apiPathUserRepos = "/users/{account}/repos"
	apiPathContents  = "/repos/{account}/{repo}/contents/{path}"
)

// Client is a read-only, unauthenticated GitHub REST client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client for baseURL. A zero timeout leaves the
// transport defaults in place.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUserRepositories lists account's public repositories, most recently
// updated first. Only the first page is fetched.
func (c *Client) ListUserRepositories(ctx context.Context, account string) ([]Repository, error) {
	apiPath := strings.ReplaceAll(apiPathUserRepos, "{account}", url.PathEscape(account))
	query := url.Values{}
	query.Set("sort", "updated")
	query.Set("direction", "desc")

	body, err := c.get(ctx, apiPath, query)
	if err != nil {
		return nil, err
	}

	var repos []Repository
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, errors.Wrap(err, "failed unmarshalling repository listing")
	}
	return repos, nil
}

// GetContents fetches the contents of path inside account/repo. The endpoint
// answers with an array for directories and an object for a single file.
func (c *Client) GetContents(ctx context.Context, account, repo, path string) (*Contents, error) {
	apiPath := strings.NewReplacer(
		"{account}", url.PathEscape(account),
		"{repo}", url.PathEscape(repo),
		"{path}", escapePath(path),
	).Replace(apiPathContents)

	body, err := c.get(ctx, apiPath, nil)
	if err != nil {
		return nil, err
	}
	return decodeContents(body)
}

func (c *Client) get(ctx context.Context, apiPath string, query url.Values) ([]byte, error) {
	urlStr := c.baseURL + apiPath
	if len(query) > 0 {
		urlStr += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed creating request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	c.log.WithField("url", req.URL.String()).Debug("GitHub API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed executing request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WithFields(logrus.Fields{
			"path":   apiPath,
			"status": resp.StatusCode,
		}).Debug("GitHub API call unsuccessful")
		return nil, &domain.StatusError{Method: req.Method, Path: apiPath, StatusCode: resp.StatusCode}
	}

	return body, nil
}

func decodeContents(body []byte) (*Contents, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty contents response")
	}

	switch trimmed[0] {
	case '[':
		var entries []ContentEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, errors.Wrap(err, "failed unmarshalling directory listing")
		}
		return &Contents{IsDirectory: true, Entries: entries}, nil
	case '{':
		var entry ContentEntry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			return nil, errors.Wrap(err, "failed unmarshalling file entry")
		}
		return &Contents{IsDirectory: false, Entries: []ContentEntry{entry}}, nil
	default:
		return nil, errors.Errorf("unexpected contents response starting with %q", trimmed[0])
	}
}

func escapePath(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
