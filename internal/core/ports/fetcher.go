package ports

import (
	"context"
	"net/http"

	"go.trai.ch/gravity/internal/core/domain"
)

// ListFetcher talks to remote blocklist endpoints.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type ListFetcher interface {
	// Probe issues a metadata-only request and returns the response headers.
	Probe(ctx context.Context, uri string) (http.Header, error)

	// Fetch retrieves and parses the full list.
	Fetch(ctx context.Context, uri string) (domain.FetchResult, error)
}
