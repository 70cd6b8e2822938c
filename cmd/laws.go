package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var lawsCmd = &cobra.Command{
	Use:   "laws",
	Short: "List the laws in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		w := cmd.OutOrStdout()
		snap := e.progress.Snapshot()

		fmt.Fprintf(w, "%-20s  %-28s  %3s  %s\n", "ID", "Name", "Qs", "Status")
		fmt.Fprintln(w, strings.Repeat("─", 70))
		for _, l := range e.catalog.All() {
			status := verdict(snap, l.ID)
			if snap.IsComplete(l.ID) {
				status = "complete"
			}
			fmt.Fprintf(w, "%-20s  %-28s  %3d  %s\n",
				truncate(l.ID, 20), truncate(l.Name, 28), len(l.Questions), status)
		}
		return nil
	},
}
