package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, slots, err := openTaskStore()
		if err != nil {
			return err
		}
		defer func() { _ = slots.Close() }()

		stats := st.Stats()
		out := cmd.OutOrStdout()
		if isJSON() {
			return printJSON(out, stats)
		}
		if isQuiet() || !ui.IsInteractive() {
			fmt.Fprintln(out, ui.StatsLine(stats))
			return nil
		}

		fmt.Fprintln(out, renderStatsPanel(stats, min(ui.TerminalWidth(statsPanelWidth), statsPanelWidth)))
		return nil
	},
}

const statsPanelWidth = 32

func renderStatsPanel(stats tasklist.Stats, width int) string {
	var body strings.Builder
	fmt.Fprintf(&body, "%d tasks\n", stats.Total)
	fmt.Fprintf(&body, "%d completed\n", stats.Completed)
	fmt.Fprintf(&body, "%d active", stats.Total-stats.Completed)
	return ui.NewPanel("Stats", body.String()).WithWidth(width).Render()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
