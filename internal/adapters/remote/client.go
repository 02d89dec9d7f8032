// Package remote implements the ListFetcher port over HTTP.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime/debug"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/zerr"
)

const importPath = "go.trai.ch/gravity"

// UserAgent identifies gravity to list operators.
func UserAgent() string {
	version := "unknown"
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			if dep.Path == importPath {
				version = dep.Version
				break
			}
		}
		if version == "unknown" && bi.Main.Path == importPath && bi.Main.Version != "" {
			version = bi.Main.Version
		}
	}
	return "gravity/" + version
}

// Client probes and downloads remote blocklists.
type Client struct {
	http      *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		if ua != "" {
			cl.userAgent = ua
		}
	}
}

// NewClient creates a Client whose requests are bounded by timeout.
// A non-positive timeout falls back to domain.DefaultTimeout.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	c := &Client{
		http:      &http.Client{},
		timeout:   timeout,
		userAgent: UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Probe issues a HEAD request and returns the response headers.
// A non-success status yields empty headers so the caller falls back to a
// download; only transport failures are returned as errors.
func (c *Client) Probe(ctx context.Context, uri string) (http.Header, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodHead, uri)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return http.Header{}, nil
	}
	return resp.Header, nil
}

// Fetch downloads the list at uri and parses it as a hosts file.
// The timeout covers the whole transfer, including reading the body.
func (c *Client) Fetch(ctx context.Context, uri string) (domain.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, uri)
	if err != nil {
		return domain.FetchResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		err := zerr.With(fmt.Errorf("unexpected status code: %d", resp.StatusCode), "status", resp.StatusCode)
		return domain.FetchResult{}, networkError(err, uri)
	}

	digest := xxhash.New()
	domains, malformed, err := ParseHosts(io.TeeReader(resp.Body, digest))
	if err != nil {
		if errors.Is(err, domain.ErrParse) {
			return domain.FetchResult{Malformed: malformed}, zerr.With(err, "uri", uri)
		}
		return domain.FetchResult{}, networkError(err, uri)
	}

	return domain.FetchResult{
		Domains:   domains,
		Malformed: malformed,
		ETag:      resp.Header.Get("ETag"),
		Checksum:  fmt.Sprintf("%016x", digest.Sum64()),
	}, nil
}

func (c *Client) do(ctx context.Context, method, uri string) (*http.Response, error) {
	if err := validateURI(uri); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, http.NoBody)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInvalidSourceURI, err), "uri", uri)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, networkError(err, uri)
	}
	return resp, nil
}

func success(status int) bool {
	return status >= 200 && status <= 299
}

func validateURI(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrInvalidSourceURI, err), "uri", uri)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err := errors.New("only absolute http and https locations are supported")
		return zerr.With(errors.Join(domain.ErrInvalidSourceURI, err), "uri", uri)
	}
	return nil
}

func networkError(err error, uri string) error {
	return zerr.With(errors.Join(domain.ErrNetwork, err), "uri", uri)
}
