// Package hosts writes the compiled gravity set as a hosts file.
package hosts

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/zerr"
)

// Exporter implements ports.HostsExporter. Each domain is written on its own
// line behind the block address, in lexical order.
type Exporter struct {
	path    string
	address string
}

// NewExporter creates an Exporter writing to path. An empty address falls
// back to domain.DefaultBlockAddress.
func NewExporter(path, address string) *Exporter {
	if address == "" {
		address = domain.DefaultBlockAddress
	}
	return &Exporter{path: path, address: address}
}

// Path returns the location of the exported artifact.
func (e *Exporter) Path() string {
	return e.path
}

// ExportHosts replaces the artifact atomically: the list is written to a
// temporary file next to it and renamed into place.
func (e *Exporter) ExportHosts(ctx context.Context, set domain.CompiledSet) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(e.path), domain.DirPerm); err != nil {
		return 0, e.fail(err)
	}

	tmp := e.path + ".tmp"
	//nolint:gosec // path comes from configuration
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return 0, e.fail(err)
	}

	domains := set.Sorted()
	w := bufio.NewWriter(f)
	for _, d := range domains {
		_, _ = w.WriteString(e.address)
		_ = w.WriteByte(' ')
		_, _ = w.WriteString(d)
		_ = w.WriteByte('\n')
	}
	if err := errors.Join(w.Flush(), f.Close()); err != nil {
		_ = os.Remove(tmp)
		return 0, e.fail(err)
	}

	if err := os.Rename(tmp, e.path); err != nil {
		_ = os.Remove(tmp)
		return 0, e.fail(err)
	}
	return len(domains), nil
}

func (e *Exporter) fail(err error) error {
	return zerr.With(errors.Join(domain.ErrExportFailed, err), "path", e.path)
}
