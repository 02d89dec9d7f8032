// Package linear prints gravity run progress as plain, line-oriented output.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports"
	"go.trai.ch/gravity/internal/ui/output"
	"go.trai.ch/gravity/internal/ui/style"
)

// Reporter implements ports.Reporter. Lines about one source are buffered
// and written as a block when the source finishes, so concurrent sources
// never interleave.
type Reporter struct {
	w   io.Writer
	out *termenv.Output

	mu      sync.Mutex
	buffers map[string]*bytes.Buffer
}

var _ ports.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to w, or stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		w:       w,
		out:     output.New(w),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Loading prints the opening line.
func (r *Reporter) Loading() {
	r.println("Loading gravity sources...")
}

// SourceStarted opens the block of a source.
func (r *Reporter) SourceStarted(src domain.Source) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := new(bytes.Buffer)
	r.buffers[src.URI()] = buf
	_, _ = fmt.Fprintf(buf, "Initializing pattern buffer for %s...\n", src.Host())
}

// SourceDecided records the freshness verdict.
func (r *Reporter) SourceDecided(src domain.Source, decision domain.Decision) {
	r.appendLine(src.URI(), "  * "+decisionText(decision))
}

// SourceFinished closes and flushes the block of a source.
func (r *Reporter) SourceFinished(outcome domain.SourceOutcome) {
	switch outcome.Status {
	case domain.StatusUpdated:
		r.appendLine(outcome.URI, r.color(fmt.Sprintf("  %s Downloaded %d domains!", style.Check, outcome.Count), style.Green))
	case domain.StatusFailed:
		r.appendLine(outcome.URI, r.color(fmt.Sprintf("  %s Failed: %s", style.Cross, oneLine(outcome.Err)), style.Red))
	case domain.StatusSkipped:
	}
	if n := len(outcome.Malformed); n > 0 {
		r.appendLine(outcome.URI, r.color(fmt.Sprintf("  %s Ignored %d malformed lines", style.Warning, n), style.Yellow))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if buf, ok := r.buffers[outcome.URI]; ok {
		_, _ = r.w.Write(buf.Bytes())
		delete(r.buffers, outcome.URI)
	}
}

// Compiling reports the total before deduplication.
func (r *Reporter) Compiling(raw int) {
	r.println(fmt.Sprintf("Formatting %d domains and removing duplicates...", raw))
}

// Exporting reports the number of unique domains.
func (r *Reporter) Exporting(unique int) {
	r.println(fmt.Sprintf("Exporting %d domains...", unique))
}

// Filtered reports the three filter passes.
func (r *Reporter) Filtered(result domain.FilterResult) {
	r.println(
		"Whitelisting adlist sources...",
		fmt.Sprintf("  * Whitelisted %d adlist sources!", result.Sources),
		"Applying whitelist...",
		fmt.Sprintf("  * Whitelisted %d domains!", result.Whitelisted),
		"Applying blacklist...",
		fmt.Sprintf("  * Blacklisted %d domains!", result.Blacklisted),
	)
}

// Summary prints the closing lines, including every failed source.
func (r *Reporter) Summary(summary domain.RunSummary) {
	lines := []string{fmt.Sprintf(
		"Gravity: %d domains before deduplication, %d unique, %d exported",
		summary.Raw, summary.Unique, summary.Exported,
	)}
	failed := summary.Failed()
	if len(failed) > 0 {
		lines = append(lines, r.color(fmt.Sprintf("%s %d of %d sources failed:", style.Warning, len(failed), len(summary.Outcomes)), style.Yellow))
		for _, o := range failed {
			lines = append(lines, fmt.Sprintf("  - %s: %s", o.URI, oneLine(o.Err)))
		}
	}
	if summary.Restarted {
		lines = append(lines, r.color(style.Check+" Resolver restarted", style.Green))
	} else {
		lines = append(lines, r.color(style.Warning+" Resolver was not restarted", style.Yellow))
	}
	r.println(lines...)
}

func (r *Reporter) appendLine(uri, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf, ok := r.buffers[uri]
	if !ok {
		buf = new(bytes.Buffer)
		r.buffers[uri] = buf
	}
	buf.WriteString(line)
	buf.WriteByte('\n')
}

func (r *Reporter) println(lines ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.w, strings.Join(lines, "\n")+"\n")
}

func (r *Reporter) color(s string, c lipgloss.Color) string {
	return r.out.String(s).Foreground(r.out.Color(string(c))).String()
}

func decisionText(d domain.Decision) string {
	switch d.Reason {
	case domain.ReasonNew:
		return "New list, downloading..."
	case domain.ReasonETagChanged, domain.ReasonModified:
		return "Update found, downloading..."
	case domain.ReasonETagUnchanged, domain.ReasonNotModified:
		return "No update!"
	case domain.ReasonNoValidator:
		return "No modification date found, downloading..."
	case domain.ReasonForced:
		return "Forced refresh, downloading..."
	}
	return d.Action.String()
}

func oneLine(err error) string {
	if err == nil {
		return "unknown error"
	}
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
