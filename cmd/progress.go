package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// progressCmd accepts the events that the interactive demos of the web
// version reported: XP awards and completions.
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Record progress events (XP awards, completions, quiz results)",
}

var progressAddXPCmd = &cobra.Command{
	Use:   "add-xp <points>",
	Short: "Award experience points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid points %q: %w", args[0], err)
		}
		if points < 0 {
			return fmt.Errorf("points must not be negative, got %d", points)
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		before := e.progress.Snapshot().Level
		e.progress.AddExperience(cmd.Context(), points)
		snap := e.progress.Snapshot()

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "+%d XP → %d XP (%s)\n", points, snap.Experience, snap.Level)
		if snap.Level != before {
			fmt.Fprintf(w, "%s Level up! %s\n", snap.Level.Icon(), snap.Level)
		}
		return nil
	},
}

var progressCompleteCmd = &cobra.Command{
	Use:   "complete <law-id>",
	Short: "Mark a law complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		law, err := e.catalog.Get(args[0])
		if err != nil {
			return err
		}
		e.progress.MarkLessonComplete(cmd.Context(), law.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "%s marked complete.\n", law.Name)
		return nil
	},
}

var progressRecordCmd = &cobra.Command{
	Use:       "record <law-id> pass|fail",
	Short:     "Record a quiz verdict for a law",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"pass", "fail"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var passed bool
		switch args[1] {
		case "pass":
			passed = true
		case "fail":
		default:
			return fmt.Errorf("verdict must be pass or fail, got %q", args[1])
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		law, err := e.catalog.Get(args[0])
		if err != nil {
			return err
		}
		e.progress.RecordQuizResult(cmd.Context(), law.ID, passed)
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s.\n", args[1], law.Name)
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressAddXPCmd)
	progressCmd.AddCommand(progressCompleteCmd)
	progressCmd.AddCommand(progressRecordCmd)
}
