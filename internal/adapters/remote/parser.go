package remote

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/miekg/dns"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxLineSize = 1 << 20

// ParseHosts reads a hosts-style list and returns the normalized domain entries.
//
// Blank lines and lines starting with # are skipped. Every other line must have
// the form "<address> <domain> ..."; the second field is lowercased and kept.
// Lines that cannot be used are returned as parse errors without stopping the
// scan. If no line yields a domain but at least one line was malformed, the
// returned error wraps domain.ErrParse.
func ParseHosts(r io.Reader) ([]string, []*domain.ParseError, error) {
	var (
		domains   []string
		malformed []*domain.ParseError
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, reason := hostField(line)
		if reason != "" {
			malformed = append(malformed, &domain.ParseError{Line: lineNo, Text: line, Reason: reason})
			continue
		}
		domains = append(domains, name)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = errors.Join(domain.ErrParse, err)
			return nil, malformed, zerr.With(err, "line", lineNo+1)
		}
		return nil, malformed, zerr.Wrap(err, "failed to read list body")
	}

	if len(domains) == 0 && len(malformed) > 0 {
		err := errors.Join(domain.ErrParse, malformed[0])
		return nil, malformed, zerr.With(err, "malformed_lines", len(malformed))
	}
	return domains, malformed, nil
}

func hostField(line string) (string, string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "missing domain"
	}

	name := strings.TrimSuffix(strings.ToLower(fields[1]), ".")
	if name == "" || strings.HasPrefix(name, "#") {
		return "", "missing domain"
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return "", "invalid domain"
	}
	return name, ""
}
