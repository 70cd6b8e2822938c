package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/uxlab/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "uxlab",
	Short: "Learn the laws of UX in your terminal",
	Long: "uxlab: a terminal app that teaches UX heuristics (Fitts's Law, Hick's Law, ...)\n" +
		"through scenario quizzes, experience points and levels, and an AI tutor.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides UXLAB_DB env var)")
	flags.String("content", "", "Path to a laws YAML catalog (overrides UXLAB_CONTENT; default: built-in)")
	flags.String("log-file", "", "Path to the log file (default: uxlab.log next to the database)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(lawsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then UXLAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
