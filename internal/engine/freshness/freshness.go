// Package freshness decides whether a cached blocklist must be downloaded again.
package freshness

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"go.trai.ch/gravity/internal/core/domain"
)

const (
	headerETag         = "ETag"
	headerLastModified = "Last-Modified"
)

// Resolve applies the refresh rules to a source and the headers of a probe response.
// The first matching rule wins:
//
//  1. never fetched: update
//  2. entity-tag present: update if it differs from the cached one, skip otherwise
//  3. parseable Last-Modified: update if newer than the last fetch, skip otherwise
//  4. anything else: update
//
// Resolve performs no I/O and never fails; headers may be nil.
func Resolve(src domain.Source, headers http.Header) domain.Decision {
	if !src.Fetched() {
		return domain.Update(domain.ReasonNew, src.Validator())
	}

	if etag := headers.Get(headerETag); etag != "" {
		if etag == src.Validator() {
			return domain.Skip(domain.ReasonETagUnchanged)
		}
		return domain.Update(domain.ReasonETagChanged, etag)
	}

	if modified, ok := LastModified(headers); ok {
		if modified.After(src.LastFetchedAt()) {
			return domain.Update(domain.ReasonModified, src.Validator())
		}
		return domain.Skip(domain.ReasonNotModified)
	}

	return domain.Update(domain.ReasonNoValidator, src.Validator())
}

// Force returns the decision used when every list must be refreshed regardless of validators.
func Force(src domain.Source) domain.Decision {
	return domain.Update(domain.ReasonForced, src.Validator())
}

// LastModified returns the Last-Modified header as a time.
// Empty values, the literal "0" and unparseable dates all report false.
func LastModified(headers http.Header) (time.Time, bool) {
	raw := strings.TrimSpace(headers.Get(headerLastModified))
	if raw == "" || raw == "0" {
		return time.Time{}, false
	}
	if t, err := http.ParseTime(raw); err == nil {
		return t, true
	}
	// RFC 5322 dates carry numeric zones that http.ParseTime does not accept.
	if t, err := mail.ParseDate(raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
