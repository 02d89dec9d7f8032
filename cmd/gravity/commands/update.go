package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/gravity/internal/app"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

const (
	outputAuto   = "auto"
	outputTUI    = "tui"
	outputLinear = "linear"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Refresh every blocklist source and rebuild the gravity list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = outputLinear
			}

			interactive, err := c.interactive(outputMode)
			if err != nil {
				return err
			}

			_, err = c.app.Update(cmd.Context(), app.UpdateOptions{
				ConfigPath:  c.configPath,
				Force:       force,
				Interactive: interactive,
			})
			return err
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Download every source regardless of its validators")
	cmd.Flags().StringP("output-mode", "o", outputAuto, "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}

func (c *CLI) interactive(mode string) (bool, error) {
	switch mode {
	case outputTUI:
		return true, nil
	case outputLinear:
		return false, nil
	case outputAuto:
		return c.isTerminal(), nil
	default:
		return false, zerr.With(zerr.New("unknown output mode"), "output_mode", mode)
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // file descriptors fit in int
}
