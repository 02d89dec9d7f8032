package ports

import (
	"context"

	"go.trai.ch/gravity/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

// HostsExporter writes the final blocking artifact consumed by the resolver.
type HostsExporter interface {
	// ExportHosts writes the set and returns the number of domains written.
	ExportHosts(ctx context.Context, set domain.CompiledSet) (int, error)
}

// ListFilter applies the whitelist and blacklist to a compiled set in place.
type ListFilter interface {
	Apply(ctx context.Context, set *domain.CompiledSet, sources []domain.Source) (domain.FilterResult, error)
}

// ResolverRestarter asks the downstream DNS resolver to reload its lists.
type ResolverRestarter interface {
	RestartResolver(ctx context.Context) error
}
