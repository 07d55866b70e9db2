// Package fetcher performs the single HTTP GET used to load remote demo data.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Ensure Client implements domain.Fetcher
var _ domain.Fetcher = (*Client)(nil)

// Client is an HTTP client backed by tls-client.
// It issues exactly one request per Get; there is no retry and no cache.
type Client struct {
	tlsClient tls_client.HttpClient
	userAgent string
	logger    *utils.Logger
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	Timeout   time.Duration
	UserAgent string
	ProxyURL  string
	Logger    *utils.Logger
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:   30 * time.Second,
		UserAgent: "demobuild",
	}
}

// NewClient creates a new HTTP client. Zero options fall back to
// DefaultClientOptions.
func NewClient(opts ClientOptions) (*Client, error) {
	defaults := DefaultClientOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	tlsOpts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(int(opts.Timeout.Seconds())),
		tls_client.WithClientProfile(profiles.Chrome_131),
	}

	if opts.ProxyURL != "" {
		tlsOpts = append(tlsOpts, tls_client.WithProxyUrl(opts.ProxyURL))
	}

	tlsClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), tlsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &Client{
		tlsClient: tlsClient,
		userAgent: opts.UserAgent,
		logger:    opts.Logger.WithComponent("fetcher"),
	}, nil
}

// Get fetches url once.
//
// A non-2xx response fails with HTTPStatusError. Transport failures such as
// DNS errors, timeouts and resets fail with UnknownError.
func (c *Client) Get(ctx context.Context, url string) (*domain.Response, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewInvalidURLError(url, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.tlsClient.Do(req)
	if err != nil {
		return nil, domain.NewUnknownError(url, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	c.logger.WithURL(url).Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Fetched")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewHTTPStatusError(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUnknownError(url, fmt.Errorf("failed to read response body: %w", err))
	}

	return &domain.Response{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		URL:         url,
	}, nil
}

// Close releases client resources
func (c *Client) Close() error {
	// tls-client has no Close; kept for interface compliance
	return nil
}
