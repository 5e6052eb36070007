package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tlevesque/amfprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "amfprep",
	Short: "AMF certification exam practice in the terminal",
	Long: "amfprep runs mock AMF certification exams from your own question bank,\n" +
		"tracking which questions you have already seen so every exam is fresh.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env next to the binary is a convenience, not a requirement.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AMFPREP_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank file (overrides AMFPREP_BANK env var)")
	rootCmd.PersistentFlags().String("delimiter", ";", "Question bank field delimiter")
	rootCmd.PersistentFlags().String("user", "", "User identity for the question history (overrides AMFPREP_USER env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then AMFPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBankPath returns the question bank path from the --bank flag or
// the AMFPREP_BANK env var. There is no sensible default.
func resolveBankPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p, nil
	}
	if p := os.Getenv("AMFPREP_BANK"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no question bank: pass --bank or set AMFPREP_BANK")
}

// resolveUser returns the user identity from the --user flag or the
// AMFPREP_USER env var. Empty is fine for the TUI, which then asks.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	return os.Getenv("AMFPREP_USER")
}

// resolveDelimiter returns the bank field delimiter as a rune.
func resolveDelimiter(cmd *cobra.Command) (rune, error) {
	d, _ := cmd.Flags().GetString("delimiter")
	runes := []rune(d)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", d)
	}
	return runes[0], nil
}
