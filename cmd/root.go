package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rushil/prepd/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepd",
	Short: "Adaptive exam prep from the terminal",
	Long:  "Prepd — terminal study companion that tracks topic mastery, schedules revisions, and plans your week around the exam date.",
}

func Execute() error {
	// A .env beside the binary can carry PREPD_DB and friends; a
	// missing file is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPD_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Profile to operate on")

	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(reviseCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(energyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PREPD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func currentUser(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "default"
	}
	return u
}
