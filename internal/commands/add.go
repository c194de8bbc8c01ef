package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/display"
	"github.com/cleared-dev/ledger/internal/model"
)

func newAddCommand(opts *globalOptions, isDeposit bool) *cobra.Command {
	use, short, label := "payment", "Record a payment (stored as a negative amount)", "Payment"
	if isDeposit {
		use, short, label = "deposit", "Record a deposit", "Deposit"
	}

	return &cobra.Command{
		Use:   use + " <description> <vendor> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			txn, err := s.store.Add(args[0], args[1], args[2], isDeposit)
			if err != nil {
				return fmt.Errorf("recording %s: %w", use, err)
			}
			hash := s.commit(fmt.Sprintf("%s: %s", use, txn.Description))
			s.record(use, txn.Description+" ("+txn.Vendor+")", []model.Transaction{txn}, hash)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s recorded.\n", label)
			fmt.Fprintln(out, display.HeaderRow)
			fmt.Fprintln(out, display.Row(txn))
			return nil
		},
	}
}
