package domain

import (
	"net/url"
	"strings"
	"time"
)

// Source is the cached state of one remote blocklist.
// It is a value: changes go through ports.SourceStore, never through a Source in place.
type Source struct {
	Location  string    `json:"uri"`
	Seq       int       `json:"seq"`
	Entries   []string  `json:"domains,omitzero"`
	ETag      string    `json:"etag,omitzero"`
	FetchedAt time.Time `json:"fetched_at,omitzero"`
	Checksum  string    `json:"checksum,omitzero"`
}

// URI returns the remote list location, unique within the store.
func (s Source) URI() string {
	return s.Location
}

// Domains returns the domain entries stored by the last successful fetch.
func (s Source) Domains() []string {
	return s.Entries
}

// Validator returns the cached entity-tag, empty if none was ever seen.
func (s Source) Validator() string {
	return s.ETag
}

// LastFetchedAt returns the completion time of the last successful fetch.
func (s Source) LastFetchedAt() time.Time {
	return s.FetchedAt
}

// Fetched reports whether the source holds any cached domains.
func (s Source) Fetched() bool {
	return len(s.Entries) > 0
}

// Host returns the host part of the source URI, or the URI itself if it cannot be parsed.
func (s Source) Host() string {
	return HostOf(s.Location)
}

// HostOf extracts the lowercased hostname from a list URI.
func HostOf(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Hostname() == "" {
		return uri
	}
	return strings.ToLower(u.Hostname())
}

// SourceUpdate is the full replacement written for one source after a fetch.
// The store applies it atomically: either every field lands or none does.
type SourceUpdate struct {
	URI       string
	Domains   []string
	ETag      string
	FetchedAt time.Time
	Checksum  string
}

// FetchResult is what a full retrieval of one list yields.
type FetchResult struct {
	Domains   []string
	Malformed []*ParseError
	ETag      string
	Checksum  string
}
