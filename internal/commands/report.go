package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/display"
	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/report"
)

func newReportCommand(opts *globalOptions) *cobra.Command {
	var summary bool

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Calendar reports and vendor search",
	}
	reportCmd.PersistentFlags().BoolVar(&summary, "summary", false, "print totals after the table")

	for _, kind := range report.Kinds {
		reportCmd.AddCommand(&cobra.Command{
			Use:   string(kind),
			Short: kind.Title() + " transactions",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := opts.open(cmd)
				if err != nil {
					return err
				}
				engine := report.NewEngine(s.store, s.clock)

				w, err := engine.Window(kind)
				if err != nil {
					return err
				}
				txns, err := engine.Run(kind)
				if err != nil {
					return err
				}
				return showTitled(cmd, fmt.Sprintf("%s (%s)", kind.Title(), w), txns, summary)
			},
		})
	}

	reportCmd.AddCommand(&cobra.Command{
		Use:   "vendor <name>",
		Short: "Transactions for one vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			txns := report.NewEngine(s.store, s.clock).Vendor(args[0])
			return showTitled(cmd, "Transactions for Vendor: "+args[0], txns, summary)
		},
	})

	reportCmd.AddCommand(newRangeCommand(opts, &summary))

	return reportCmd
}

func newRangeCommand(opts *globalOptions, summary *bool) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Transactions between two dates, inclusive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := model.ParseDate(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end := model.Day(opts.clock.Now())
			if to != "" {
				if end, err = model.ParseDate(to); err != nil {
					return fmt.Errorf("--to: %w", err)
				}
			}
			if end.Before(start) {
				return fmt.Errorf("--to %s is before --from %s", to, from)
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			w := report.Window{Start: start, End: end}
			txns := report.NewEngine(s.store, s.clock).Custom(start, end)
			return showTitled(cmd, fmt.Sprintf("Range (%s)", w), txns, *summary)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&to, "to", "", "last date, YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func showTitled(cmd *cobra.Command, title string, txns []model.Transaction, summary bool) error {
	if err := display.RenderTitled(cmd.OutOrStdout(), title, txns); err != nil {
		return err
	}
	if summary {
		return display.RenderSummary(cmd.OutOrStdout(), report.Summarize(txns))
	}
	return nil
}
