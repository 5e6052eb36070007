package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlevesque/amfprep/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset [user]",
	Short: "Clear a user's question history",
	Long: "Clears the used-question history for a user, so future exams may draw\n" +
		"any question in the bank again. The user comes from the argument, the\n" +
		"--user flag, or AMFPREP_USER.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user := resolveUser(cmd)
		if len(args) == 1 {
			user = args[0]
		}
		if user == "" {
			return fmt.Errorf("no user: pass an argument, --user, or set AMFPREP_USER")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ledger := st.Ledger()
		n, err := ledger.CountUsed(cmd.Context(), user)
		if err != nil {
			return err
		}
		if err := ledger.Reset(cmd.Context(), user); err != nil {
			return err
		}

		fmt.Printf("Cleared %d used questions for %q.\n", n, user)
		return nil
	},
}
