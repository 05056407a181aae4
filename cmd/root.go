package cmd

import (
	"github.com/apatel/gradpath/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gradpath",
	Short: "Degree planning and course recommendation for NYU students",
	Long: "GradPath — plans semesters against major requirements: prerequisite-aware\n" +
		"eligibility filtering, progress tracking, and AI course recommendations.",
}

func Execute() error {
	// Local .env is optional; real env vars win over file values.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRADPATH_DB env var)")
	rootCmd.PersistentFlags().StringP("student", "s", "", "Student email the command acts on")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(eligibleCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GRADPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store at the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
