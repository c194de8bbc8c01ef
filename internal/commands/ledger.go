package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/display"
	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/report"
)

func newLedgerCommand(opts *globalOptions) *cobra.Command {
	var deposits, payments, summary bool
	var vendor string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			var txns []model.Transaction
			switch {
			case deposits:
				txns = s.store.Deposits()
			case payments:
				txns = s.store.Payments()
			case vendor != "":
				txns = s.store.ByVendor(vendor)
			default:
				txns = s.store.All()
			}
			return show(cmd, txns, summary)
		},
	}

	cmd.Flags().BoolVarP(&deposits, "deposits", "d", false, "deposits only")
	cmd.Flags().BoolVarP(&payments, "payments", "p", false, "payments only")
	cmd.Flags().StringVar(&vendor, "vendor", "", "only this vendor (case-insensitive)")
	cmd.Flags().BoolVar(&summary, "summary", false, "print totals after the table")
	cmd.MarkFlagsMutuallyExclusive("deposits", "payments", "vendor")

	return cmd
}

func show(cmd *cobra.Command, txns []model.Transaction, summary bool) error {
	out := cmd.OutOrStdout()
	if err := display.Render(out, txns); err != nil {
		return err
	}
	if summary {
		return display.RenderSummary(out, report.Summarize(txns))
	}
	return nil
}
