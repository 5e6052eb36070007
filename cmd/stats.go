package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlevesque/amfprep/internal/bank"
	"github.com/tlevesque/amfprep/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question history per user",
	Long: "Shows, for each user in the history (or only --user), how many\n" +
		"questions of each category have been used versus the bank supply.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bankPath, err := resolveBankPath(cmd)
		if err != nil {
			return err
		}
		delim, err := resolveDelimiter(cmd)
		if err != nil {
			return err
		}
		b, err := bank.Load(bankPath, bank.Options{Comma: delim})
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
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

		users := []string{resolveUser(cmd)}
		if users[0] == "" {
			users, err = ledger.Users(cmd.Context())
			if err != nil {
				return err
			}
		}
		if len(users) == 0 {
			fmt.Println("No question history yet.")
			return nil
		}

		for _, user := range users {
			used, err := ledger.Load(cmd.Context(), user)
			if err != nil {
				return err
			}

			fmt.Printf("%s:\n", user)
			for _, cat := range b.Categories() {
				questions := b.ByCategory(cat)
				usedInCat := 0
				for _, q := range questions {
					if used[q.ID] {
						usedInCat++
					}
				}
				fmt.Printf("  category %s: %d used of %d\n", cat, usedInCat, len(questions))
			}
		}
		return nil
	},
}
