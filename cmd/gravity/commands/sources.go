package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/gravity/internal/core/domain"
)

func (c *CLI) newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the persisted blocklist sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, err := c.app.Sources(cmd.Context(), c.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sources) == 0 {
				_, _ = fmt.Fprintln(out, "No sources registered. Add sources to the configuration and run gravity update.")
				return nil
			}

			t := table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("URI", "DOMAINS", "ETAG", "FETCHED")
			for _, src := range sources {
				t.Row(src.URI(), strconv.Itoa(len(src.Domains())), orDash(src.Validator()), fetchedAt(src))
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}
}

func fetchedAt(src domain.Source) string {
	if !src.Fetched() {
		return "never"
	}
	return src.LastFetchedAt().UTC().Format(time.RFC3339)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
