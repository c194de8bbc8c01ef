package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/importer"
	"github.com/cleared-dev/ledger/internal/model"
)

func newImportCommand(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file-or-directory>",
		Short: "Import a bank CSV export, or every CSV in a directory",
		Long: "Import a bank CSV export into the ledger. Given a directory, every *.csv file\n" +
			"directly inside it is imported and then moved to its processed/ subdirectory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}
			return runImport(cmd, opts, parser, args[0])
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "bank export format")

	return cmd
}

func runImport(cmd *cobra.Command, opts *globalOptions, parser importer.Parser, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("import source: %w", err)
	}

	s, err := opts.open(cmd)
	if err != nil {
		return err
	}

	var files []importer.FileInfo
	if info.IsDir() {
		if files, err = importer.Scan(target); err != nil {
			return err
		}
	} else {
		files = []importer.FileInfo{{Name: filepath.Base(target), Path: target, Size: info.Size()}}
	}

	// Parse everything before touching the ledger so one bad file imports nothing.
	var all []model.Transaction
	for _, f := range files {
		txns, err := importer.ParseFile(parser, f.Path)
		if err != nil {
			return err
		}
		s.logger.Debug("parsed import file", "file", f.Name, "transactions", len(txns))
		all = append(all, txns...)
	}

	if err := s.store.Append(all...); err != nil {
		return fmt.Errorf("saving imported transactions: %w", err)
	}
	summary := fmt.Sprintf("%d transactions from %d file(s)", len(all), len(files))
	hash := s.commit("import: " + summary)
	s.record("import", summary, all, hash)

	// The rows are saved; a file left behind is only logged. Importing it
	// again would duplicate its rows.
	if info.IsDir() {
		for _, f := range files {
			if err := importer.MarkProcessed(target, f.Name); err != nil {
				s.logger.Warn("imported file not moved to processed; remove it before the next import",
					"file", f.Path, "err", err)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %d file(s).\n", len(all), len(files))
	return nil
}
