package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/folio/internal/domain"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	svr := httptest.NewServer(handler)
	t.Cleanup(svr.Close)
	return NewClient(svr.URL, 0, WithLogger(quietLogger()))
}

func TestListUserRepositories(t *testing.T) {
	t.Run("sends sort and direction and decodes records", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octo/repos", r.URL.Path)
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			assert.Equal(t, "desc", r.URL.Query().Get("direction"))
			assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[
				{"name":"alpha","description":"First","html_url":"https://github.com/octo/alpha","stargazers_count":3,"fork":false},
				{"name":"beta","description":null,"html_url":"https://github.com/octo/beta","stargazers_count":0,"fork":true}
			]`)
		})

		repos, err := client.ListUserRepositories(context.Background(), "octo")
		require.NoError(t, err)
		require.Len(t, repos, 2)

		alpha := repos[0].ToSummary()
		assert.Equal(t, domain.RepositorySummary{
			Name: "alpha", Description: "First", HTMLURL: "https://github.com/octo/alpha", Stars: 3,
		}, alpha)

		beta := repos[1].ToSummary()
		assert.True(t, beta.IsFork)
		assert.False(t, beta.HasDescription())
	})

	t.Run("non-success status returns a status error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		})

		_, err := client.ListUserRepositories(context.Background(), "ghost")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, domain.StatusCodeOf(err))
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"not":"a list"}`)
		})

		_, err := client.ListUserRepositories(context.Background(), "octo")
		assert.Error(t, err)
	})
}

func TestGetContents(t *testing.T) {
	t.Run("directory listing", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/octo/alpha/contents/assets/images/cover", r.URL.Path)
			fmt.Fprint(w, `[
				{"name":"notes","type":"dir","download_url":null},
				{"name":"cover.png","type":"file","download_url":"https://raw.example.com/cover.png"}
			]`)
		})

		contents, err := client.GetContents(context.Background(), "octo", "alpha", "assets/images/cover")
		require.NoError(t, err)
		assert.True(t, contents.IsDirectory)
		require.Len(t, contents.Entries, 2)
		assert.Equal(t, ContentTypeDir, contents.Entries[0].Type)
		assert.Equal(t, "", contents.Entries[0].DownloadURL)
		assert.Equal(t, "https://raw.example.com/cover.png", contents.Entries[1].DownloadURL)
	})

	t.Run("single file response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, ` {"name":"cover","type":"file","download_url":"https://raw.example.com/cover"}`)
		})

		contents, err := client.GetContents(context.Background(), "octo", "alpha", "assets/images/cover")
		require.NoError(t, err)
		assert.False(t, contents.IsDirectory)
		require.Len(t, contents.Entries, 1)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		_, err := client.GetContents(context.Background(), "octo", "alpha", "assets/images/cover")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, domain.StatusCodeOf(err))
	})

	t.Run("unexpected body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `"just a string"`)
		})

		_, err := client.GetContents(context.Background(), "octo", "alpha", "assets/images/cover")
		assert.Error(t, err)
	})
}

func TestEscapePath(t *testing.T) {
	assert.Equal(t, "assets/images/cover", escapePath("/assets/images/cover/"))
	assert.Equal(t, "my%20dir/a", escapePath("my dir/a"))
}
