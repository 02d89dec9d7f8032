// Package datastore implements the SourceStore port on top of go-datastore.
package datastore

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	ds "github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/query"
	badger4 "github.com/ipfs/go-ds-badger4"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	sourcesPrefix = ds.NewKey("/gravity/sources")
	compiledKey   = ds.NewKey("/gravity/compiled")
)

var _ ports.SourceStore = (*Store)(nil)

// Store implements ports.SourceStore. One JSON record is kept per source,
// keyed by the xxhash of its URI, plus one record for the compiled list.
type Store struct {
	ds ds.Datastore

	// registerMu serializes registration so sequence numbers stay unique.
	registerMu sync.Mutex
	locks      sync.Map
}

// New wraps an already opened datastore.
func New(d ds.Datastore) *Store {
	return &Store{ds: d}
}

// Open opens a badger-backed Store at path, creating the directory if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return nil, storeError(domain.ErrStoreOpenFailed, err, "path", path)
	}
	d, err := badger4.NewDatastore(path, nil)
	if err != nil {
		return nil, storeError(domain.ErrStoreOpenFailed, err, "path", path)
	}
	return New(d), nil
}

// Opener opens badger-backed stores.
type Opener struct{}

// Open implements ports.StoreOpener.
func (Opener) Open(path string) (ports.SourceStore, error) {
	return Open(path)
}

// Sources returns every registered source ordered by registration.
func (s *Store) Sources(ctx context.Context) ([]domain.Source, error) {
	res, err := s.ds.Query(ctx, query.Query{Prefix: sourcesPrefix.String()})
	if err != nil {
		return nil, storeError(domain.ErrStoreReadFailed, err, "prefix", sourcesPrefix.String())
	}
	entries, err := res.Rest()
	if err != nil {
		return nil, storeError(domain.ErrStoreReadFailed, err, "prefix", sourcesPrefix.String())
	}

	sources := make([]domain.Source, 0, len(entries))
	for _, e := range entries {
		var src domain.Source
		if err := json.Unmarshal(e.Value, &src); err != nil {
			return nil, storeError(domain.ErrStoreUnmarshalFailed, err, "key", e.Key)
		}
		sources = append(sources, src)
	}

	slices.SortFunc(sources, func(a, b domain.Source) int {
		return cmp.Or(cmp.Compare(a.Seq, b.Seq), cmp.Compare(a.Location, b.Location))
	})
	return sources, nil
}

// Register adds the URIs that are not yet stored. Sequence numbers continue
// after the highest one in use.
func (s *Store) Register(ctx context.Context, uris []string) (int, error) {
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	existing, err := s.Sources(ctx)
	if err != nil {
		return 0, err
	}
	next := 0
	for _, src := range existing {
		next = max(next, src.Seq+1)
	}

	added := 0
	for _, uri := range uris {
		key := sourceKey(uri)
		has, err := s.ds.Has(ctx, key)
		if err != nil {
			return added, storeError(domain.ErrStoreReadFailed, err, "uri", uri)
		}
		if has {
			continue
		}
		if err := s.put(ctx, key, domain.Source{Location: uri, Seq: next}); err != nil {
			return added, zerr.With(err, "uri", uri)
		}
		next++
		added++
	}
	return added, nil
}

// Prune deletes the sources that are no longer configured.
func (s *Store) Prune(ctx context.Context, keep []string) (int, error) {
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	existing, err := s.Sources(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, src := range existing {
		if slices.Contains(keep, src.URI()) {
			continue
		}
		mu := s.lock(src.URI())
		mu.Lock()
		err := s.ds.Delete(ctx, sourceKey(src.URI()))
		mu.Unlock()
		if err != nil {
			return removed, storeError(domain.ErrStoreWriteFailed, err, "uri", src.URI())
		}
		removed++
	}
	return removed, nil
}

// UpdateSource replaces the cached state of one source. The read and the
// write happen under a per-URI lock.
func (s *Store) UpdateSource(ctx context.Context, update domain.SourceUpdate) error {
	mu := s.lock(update.URI)
	mu.Lock()
	defer mu.Unlock()

	key := sourceKey(update.URI)
	data, err := s.ds.Get(ctx, key)
	if errors.Is(err, ds.ErrNotFound) {
		return storeError(domain.ErrSourceNotFound, err, "uri", update.URI)
	}
	if err != nil {
		return storeError(domain.ErrStoreReadFailed, err, "uri", update.URI)
	}

	var src domain.Source
	if err := json.Unmarshal(data, &src); err != nil {
		return storeError(domain.ErrStoreUnmarshalFailed, err, "uri", update.URI)
	}

	src.Entries = update.Domains
	src.ETag = update.ETag
	src.FetchedAt = update.FetchedAt
	src.Checksum = update.Checksum

	if err := s.put(ctx, key, src); err != nil {
		return zerr.With(err, "uri", update.URI)
	}
	return nil
}

// CompiledDomains returns the compiled list, or nil if none was stored yet.
func (s *Store) CompiledDomains(ctx context.Context) ([]string, error) {
	data, err := s.ds.Get(ctx, compiledKey)
	if errors.Is(err, ds.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(domain.ErrStoreReadFailed, err, "key", compiledKey.String())
	}

	var domains []string
	if err := json.Unmarshal(data, &domains); err != nil {
		return nil, storeError(domain.ErrStoreUnmarshalFailed, err, "key", compiledKey.String())
	}
	return domains, nil
}

// SetCompiledDomains replaces the compiled list.
func (s *Store) SetCompiledDomains(ctx context.Context, domains []string) error {
	if domains == nil {
		domains = []string{}
	}
	return s.put(ctx, compiledKey, domains)
}

// Close syncs pending writes and closes the datastore.
func (s *Store) Close() error {
	if err := s.ds.Sync(context.Background(), ds.NewKey("/gravity")); err != nil {
		return errors.Join(storeError(domain.ErrStoreWriteFailed, err, "op", "sync"), s.ds.Close())
	}
	return s.ds.Close()
}

func (s *Store) put(ctx context.Context, key ds.Key, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return storeError(domain.ErrStoreMarshalFailed, err, "key", key.String())
	}
	if err := s.ds.Put(ctx, key, data); err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, "key", key.String())
	}
	return nil
}

func (s *Store) lock(uri string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(uri, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func sourceKey(uri string) ds.Key {
	return sourcesPrefix.ChildString(fmt.Sprintf("%016x", xxhash.Sum64String(uri)))
}

func storeError(kind, err error, key string, value any) error {
	return zerr.With(errors.Join(domain.ErrPersistence, kind, err), key, value)
}
