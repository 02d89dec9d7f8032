// Package restart triggers the downstream DNS resolver reload.
package restart

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports"
	"go.trai.ch/zerr"
)

// Timeout bounds a single restart command.
const Timeout = 30 * time.Second

// Command implements ports.ResolverRestarter by running a configured command.
type Command struct {
	argv   []string
	logger ports.Logger
}

// NewCommand creates a Command. An empty argv makes RestartResolver a no-op.
func NewCommand(argv []string, logger ports.Logger) *Command {
	return &Command{argv: argv, logger: logger}
}

// RestartResolver runs the command and streams its output to the logger.
func (c *Command) RestartResolver(ctx context.Context) error {
	if len(c.argv) == 0 {
		c.logger.Info("no resolver restart command configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...) //nolint:gosec // user provided command
	cmd.Stdout = &logWriter{logger: c.logger}
	cmd.Stderr = &logWriter{logger: c.logger, stderr: true}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := errors.Join(domain.ErrRestartFailed, zerr.Wrap(err, "command failed"))
		return zerr.With(zerr.With(wrapped, "command", strings.Join(c.argv, " ")), "exit_code", exitCode)
	}
	return nil
}

type logWriter struct {
	logger ports.Logger
	stderr bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	for line := range strings.SplitSeq(strings.TrimSuffix(string(p), "\n"), "\n") {
		if w.stderr {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
