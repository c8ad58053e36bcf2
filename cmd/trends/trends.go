// Package trends implements the trends command.
package trends

import (
	"fjacquet/spend-tracker/cmd/common"
	"fjacquet/spend-tracker/cmd/root"
	"fjacquet/spend-tracker/internal/budget"
	"fjacquet/spend-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	month  string
	format string
)

// Cmd represents the trends command
var Cmd = &cobra.Command{
	Use:   "trends",
	Short: "Show daily spending and the category breakdown",
	Long: `Show spending per day, oldest first, and each category's share of the
total, largest first.`,
	Example: `  spend-tracker trends --month 2025-11`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.IsValidOutputFormat(format); err != nil {
			return err
		}
		c, err := root.GetContainer()
		if err != nil {
			return err
		}

		expenses, err := common.LoadExpenses(cmd.Context(), c.GetExpenseStore(), month)
		if err != nil {
			return err
		}

		return c.GetReportGenerator().WriteTrends(cmd.OutOrStdout(),
			budget.DailyTotals(expenses), budget.Breakdown(expenses), format)
	},
}

func init() {
	Cmd.Flags().StringVar(&month, "month", "", "Only count expenses of this month (YYYY-MM)")
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json or csv)")
}
