package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dexview/backend/internal/delivery/tui"
)

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Long: `Browse loads the reference list once, then filters it as you type.
Every change of the filter re-fetches the matching records in parallel.
Logs go to logging.file only, since the terminal is in use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(flags, nil, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			a.logger.Debug().Str("query", query).Msg("starting terminal browser")

			return tui.Run(cmd.Context(), a.catalog, query,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "initial filter text")

	return cmd
}
