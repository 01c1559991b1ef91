package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/newsprint"
	nphttp "github.com/fwojciec/newsprint/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetcher(t *testing.T, opts ...nphttp.Option) *nphttp.Fetcher {
	t.Helper()

	fetcher, err := nphttp.NewFetcher(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fetcher.Close() })
	return fetcher
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		resp, err := newFetcher(t).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", resp.HTML)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.History)
	})

	t.Run("returns failing status with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("Attention Required! | cloudflare"))
		}))
		defer server.Close()

		resp, err := newFetcher(t).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Contains(t, resp.HTML, "cloudflare")
	})

	t.Run("records redirect history", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/b", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/c", http.StatusFound)
		})
		mux.HandleFunc("/c", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("final"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		resp, err := newFetcher(t).Fetch(context.Background(), server.URL+"/a")

		require.NoError(t, err)
		assert.Equal(t, "final", resp.HTML)
		assert.Equal(t, []string{server.URL + "/a", server.URL + "/b"}, resp.History)
	})

	t.Run("does not follow redirects when disabled", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/b", http.StatusFound)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		cfg := newsprint.DefaultConfig().Transport
		cfg.AllowRedirects = false

		resp, err := newFetcher(t, nphttp.WithTransport(cfg)).Fetch(context.Background(), server.URL+"/a")

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Empty(t, resp.History)
	})

	t.Run("sends transport parameters", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotHeader, gotCookie, gotUser, gotPass string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.UserAgent()
			gotHeader = r.Header.Get("X-Test")
			if c, err := r.Cookie("session"); err == nil {
				gotCookie = c.Value
			}
			gotUser, gotPass, _ = r.BasicAuth()
		}))
		defer server.Close()

		cfg := newsprint.DefaultConfig().Transport
		cfg.UserAgent = "test-agent"
		cfg.Headers = map[string]string{"X-Test": "yes"}
		cfg.Cookies = map[string]string{"session": "abc"}
		cfg.Username = "user"
		cfg.Password = "pass"

		_, err := newFetcher(t, nphttp.WithTransport(cfg)).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "test-agent", gotUA)
		assert.Equal(t, "yes", gotHeader)
		assert.Equal(t, "abc", gotCookie)
		assert.Equal(t, "user", gotUser)
		assert.Equal(t, "pass", gotPass)
	})

	t.Run("decodes declared charset", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("caf\xe9"))
		}))
		defer server.Close()

		resp, err := newFetcher(t).Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "café", resp.HTML)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := newFetcher(t, nphttp.WithTimeout(10*time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := newFetcher(t).Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := newFetcher(t, nphttp.WithTimeout(100*time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})
}

func TestNewFetcher(t *testing.T) {
	t.Parallel()

	t.Run("rejects unreadable client certificate", func(t *testing.T) {
		t.Parallel()

		cfg := newsprint.DefaultConfig().Transport
		cfg.CertFile = "/nonexistent/cert.pem"
		cfg.KeyFile = "/nonexistent/key.pem"

		_, err := nphttp.NewFetcher(nphttp.WithTransport(cfg))

		assert.Equal(t, newsprint.ECONFIG, newsprint.ErrorCode(err))
	})
}
