package cmd

import (
	"github.com/spf13/cobra"

	"github.com/verbly-app/verbly/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "verbly",
	Short: "Adaptive language-exercise engine",
	Long:  "Verbly — generates validated language practice exercises in bulk and scores learner proficiency from exercise history.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VERBLY_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VERBLY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
