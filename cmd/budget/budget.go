// Package budget implements the budget command.
package budget

import (
	"fjacquet/spend-tracker/cmd/common"
	"fjacquet/spend-tracker/cmd/root"
	budgetagg "fjacquet/spend-tracker/internal/budget"
	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	month        string
	currentMonth bool
	format       string
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Show spending against category budgets",
	Long: `Show, for every budgeted category in table order, how much was spent, the
limit, what remains and the share of the limit used. Categories over their
limit are flagged.`,
	Example: `  spend-tracker budget
  spend-tracker budget --current-month
  spend-tracker budget --month 2025-11 --format json`,
	Args: cobra.NoArgs,
	RunE: runBudget,
}

func init() {
	Cmd.Flags().StringVar(&month, "month", "", "Only count expenses of this month (YYYY-MM)")
	Cmd.Flags().BoolVar(&currentMonth, "current-month", false, "Only count expenses of the current month")
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json or csv)")
	Cmd.MarkFlagsMutuallyExclusive("month", "current-month")
}

func runBudget(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	period := month
	if currentMonth {
		period = root.Now().Format(dateutils.DateLayoutMonth)
	}

	expenses, err := common.LoadExpenses(cmd.Context(), c.GetExpenseStore(), period)
	if err != nil {
		return err
	}

	aggregates := c.GetAggregator().Aggregate(expenses)
	totals := budgetagg.Totals(aggregates)

	for _, a := range aggregates {
		if a.OverBudget() {
			c.GetLogger().Warn("Category over budget",
				logging.Field{Key: logging.FieldCategory, Value: a.Category},
				logging.Field{Key: logging.FieldAmount, Value: a.Remaining.Neg().StringFixed(2)})
		}
	}

	return c.GetReportGenerator().WriteBudget(cmd.OutOrStdout(), aggregates, totals, format)
}
