package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/activity"
)

func newActivityCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the log of changes made to the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Ledger.Activity == "" {
				return errors.New("no activity log configured (set ledger.activity in " + opts.configPath + ")")
			}

			entries, err := activity.Read(cfg.Ledger.Activity)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No activity recorded.")
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s  %-8s %4d  %12s  %s",
					e.Timestamp.Format(time.DateTime), e.Action, e.Count, e.Amount.StringFixed(2), e.Details)
				if e.CommitHash != "" {
					line += "  [" + e.CommitHash + "]"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
