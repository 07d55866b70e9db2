package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(ClientOptions{Timeout: 5 * time.Second, UserAgent: "demobuild-test"})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDefaultClientOptions(t *testing.T) {
	opts := DefaultClientOptions()

	assert.Equal(t, 30*time.Second, opts.Timeout)
	assert.Equal(t, "demobuild", opts.UserAgent)
	assert.Empty(t, opts.ProxyURL)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name  string
		opts  ClientOptions
		check func(t *testing.T, c *Client)
	}{
		{
			name: "with default options",
			opts: DefaultClientOptions(),
			check: func(t *testing.T, c *Client) {
				assert.NotNil(t, c.tlsClient)
				assert.NotNil(t, c.logger)
			},
		},
		{
			name: "zero options use defaults",
			opts: ClientOptions{},
			check: func(t *testing.T, c *Client) {
				assert.Equal(t, DefaultClientOptions().UserAgent, c.userAgent)
			},
		},
		{
			name: "with proxy",
			opts: ClientOptions{ProxyURL: "http://127.0.0.1:3128"},
			check: func(t *testing.T, c *Client) {
				assert.NotNil(t, c.tlsClient)
			},
		},
		{
			name: "with custom user agent",
			opts: ClientOptions{UserAgent: "TestAgent/1.0"},
			check: func(t *testing.T, c *Client) {
				assert.Equal(t, "TestAgent/1.0", c.userAgent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.opts)
			require.NoError(t, err)
			tt.check(t, client)
			assert.NoError(t, client.Close())
		})
	}
}

func TestClient_Get(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "demobuild-test", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title": "remote"}`))
		}))
		defer server.Close()

		resp, err := newTestClient(t).Get(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, `{"title": "remote"}`, string(resp.Body))
		assert.Equal(t, "application/json", resp.ContentType)
		assert.Equal(t, server.URL, resp.URL)
	})

	t.Run("non-2xx status is not retried", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		resp, err := newTestClient(t).Get(context.Background(), server.URL)
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrHTTPStatus)

		var be *domain.Error
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusServiceUnavailable, be.StatusCode)
		assert.True(t, domain.IsConcise(err))
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("redirects are followed", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusFound)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		resp, err := newTestClient(t).Get(context.Background(), server.URL+"/old")
		require.NoError(t, err)
		assert.Equal(t, "{}", string(resp.Body))
	})

	t.Run("connection failure is unknown", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := newTestClient(t).Get(context.Background(), url)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknown)
		assert.False(t, domain.IsConcise(err))
	})
}
