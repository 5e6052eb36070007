package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlevesque/amfprep/internal/app"
	"github.com/tlevesque/amfprep/internal/bank"
	"github.com/tlevesque/amfprep/internal/exam"
	"github.com/tlevesque/amfprep/internal/store"
)

// runApp loads the question bank, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	return app.Run(app.Options{
		Bank:   b,
		Ledger: st.Ledger(),
		Quotas: exam.DefaultQuotas(),
		User:   resolveUser(cmd),
	})
}
