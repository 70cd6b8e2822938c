package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/uxlab/internal/laws"
	"github.com/abhisek/uxlab/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, experience and per-law results",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		printStats(cmd.OutOrStdout(), e.progress.Snapshot(), e.catalog)
		return nil
	},
}

func printStats(w io.Writer, snap progress.Snapshot, catalog *laws.Catalog) {
	fmt.Fprintf(w, "Level:       %s %s\n", snap.Level.Icon(), snap.Level)
	fmt.Fprintf(w, "Experience:  %d XP\n", snap.Experience)
	if next, remaining, ok := progress.NextLevel(snap.Experience); ok {
		fmt.Fprintf(w, "Next level:  %s in %d XP\n", next, remaining)
	} else {
		fmt.Fprintln(w, "Next level:  top level reached")
	}
	fmt.Fprintf(w, "Completed:   %d/%d laws\n", len(snap.CompletedLessons()), catalog.Len())

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-22s  %-4s  %s\n", "Law", "Done", "Quiz")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, l := range catalog.All() {
		done := ""
		if snap.IsComplete(l.ID) {
			done = "✓"
		}
		fmt.Fprintf(w, "%-22s  %-4s  %s\n", truncate(l.ID, 22), done, verdict(snap, l.ID))
	}

	// Progress can reference laws that a custom catalog does not carry.
	var extra []string
	for _, id := range snap.CompletedLessons() {
		if _, err := catalog.Get(id); err != nil {
			extra = append(extra, id)
		}
	}
	if len(extra) > 0 {
		fmt.Fprintf(w, "\nAlso completed (not in catalog): %s\n", strings.Join(extra, ", "))
	}
}

func verdict(snap progress.Snapshot, id string) string {
	passed, ok := snap.QuizResult(id)
	switch {
	case !ok:
		return "-"
	case passed:
		return "passed"
	default:
		return "failed"
	}
}
