// Package listfilter applies the local whitelist and blacklist to the gravity set.
package listfilter

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/miekg/dns"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filter implements ports.ListFilter.
//
// Apply runs three passes in order: the hosts of the configured sources are
// removed so lists never block their own download location, whitelisted
// domains are removed, and blacklisted domains are added.
type Filter struct {
	whitelist string
	blacklist string
}

// New creates a Filter reading the given list files. Empty paths and missing
// files are treated as empty lists.
func New(whitelist, blacklist string) *Filter {
	return &Filter{whitelist: whitelist, blacklist: blacklist}
}

// Apply modifies set in place and reports how many domains each pass changed.
func (f *Filter) Apply(ctx context.Context, set *domain.CompiledSet, sources []domain.Source) (domain.FilterResult, error) {
	var result domain.FilterResult
	if err := ctx.Err(); err != nil {
		return result, err
	}

	for _, src := range sources {
		if set.Remove(src.Host()) {
			result.Sources++
		}
	}

	allow, err := ReadList(f.whitelist)
	if err != nil {
		return result, err
	}
	for _, d := range allow {
		if set.Remove(d) {
			result.Whitelisted++
		}
	}

	deny, err := ReadList(f.blacklist)
	if err != nil {
		return result, err
	}
	for _, d := range deny {
		if set.Insert(d) {
			result.Blacklisted++
		}
	}
	return result, nil
}

// ReadList reads a domain list file: one domain per line, blank lines and
// # comments ignored. Entries that are not valid domain names are skipped.
func ReadList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	//nolint:gosec // path comes from configuration
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrFilterFailed, err), "path", path)
	}
	defer func() { _ = file.Close() }()

	var domains []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := strings.TrimSuffix(strings.ToLower(strings.Fields(line)[0]), ".")
		if _, ok := dns.IsDomainName(name); !ok || name == "" {
			continue
		}
		domains = append(domains, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrFilterFailed, err), "path", path)
	}
	return domains, nil
}
