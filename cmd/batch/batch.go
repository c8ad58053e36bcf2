// Package batch implements the batch command.
package batch

import (
	"fmt"
	"io"

	"fjacquet/spend-tracker/cmd/root"
	"fjacquet/spend-tracker/internal/batch"
	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/fileutils"
	"fjacquet/spend-tracker/internal/report"

	"github.com/spf13/cobra"
)

var (
	date   string
	dryRun bool
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Add expenses from a file of free-text lines",
	Long: `Add one expense per line of a text file, or of standard input when the file
is "-" or omitted. Lines may start with an ISO date (2025-11-03 lunch 12);
other lines are dated with --date, today by default.

Blank lines are ignored. Lines that do not yield a valid expense, such as a
line without an amount, are skipped with a warning. Valid expenses are saved
in file order.`,
	Example: `  spend-tracker batch receipts.txt
  cat notes.txt | spend-tracker batch --date 2025-11-01
  spend-tracker batch receipts.txt --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Date for lines without one (YYYY-MM-DD, today or yesterday)")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and show the expenses without saving them")
}

func runBatch(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	defaultDate, err := dateutils.ResolveDate(date, root.Now())
	if err != nil {
		return err
	}

	lines, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		entries, err := c.GetImporter().ParseLines(cmd.Context(), lines, defaultDate)
		if err != nil {
			return err
		}
		return writeEntries(out, entries)
	}

	summary, err := c.GetImporter().Import(cmd.Context(), lines, defaultDate)
	if err != nil {
		return fmt.Errorf("batch import failed: %w", err)
	}
	return writeSummary(out, summary)
}

func readInput(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) == 0 || args[0] == "-" {
		return fileutils.ReadLines(cmd.InOrStdin())
	}
	return fileutils.ReadFileLines(args[0])
}

func writeEntries(w io.Writer, entries []batch.Entry) error {
	for _, entry := range entries {
		if entry.Err != nil {
			if _, err := fmt.Fprintf(w, "line %d: skipped (%v)\n", entry.Line, entry.Err); err != nil {
				return err
			}
			continue
		}
		e := entry.Expense
		if _, err := fmt.Fprintf(w, "line %d: %s  %-9s  %s  %s\n", entry.Line,
			dateutils.ToISODate(e.Date), e.Category, report.FormatMoney(e.Amount), e.Description); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(w io.Writer, summary batch.Summary) error {
	if _, err := fmt.Fprintf(w, "Imported %d, skipped %d, total %s\n",
		summary.Imported, summary.Skipped, report.FormatMoney(summary.Total)); err != nil {
		return err
	}
	if summary.DateRange.Start.IsZero() {
		return nil
	}
	_, err := fmt.Fprintf(w, "Dates %s to %s\n",
		dateutils.ToISODate(summary.DateRange.Start), dateutils.ToISODate(summary.DateRange.End))
	return err
}
