// Package list implements the list command.
package list

import (
	"fjacquet/spend-tracker/cmd/common"
	"fjacquet/spend-tracker/cmd/root"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	month    string
	category string
	format   string
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses, newest first",
	Long: `List recorded expenses sorted by date, newest first, followed by the total.
Expenses recorded on the same day keep the order they were added in.`,
	Example: `  spend-tracker list
  spend-tracker list --month 2025-11 --category food
  spend-tracker list --format csv > expenses-export.csv`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	Cmd.Flags().StringVar(&month, "month", "", "Only show expenses of this month (YYYY-MM)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only show expenses of this category")
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json or csv)")
}

func runList(cmd *cobra.Command, args []string) error {
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

	if category != "" {
		wanted, err := models.ParseCategory(category)
		if err != nil {
			return err
		}
		expenses = filterCategory(expenses, wanted)
	}

	return c.GetReportGenerator().WriteExpenses(cmd.OutOrStdout(), common.SortByDateDesc(expenses), format)
}

func filterCategory(expenses []models.Expense, category models.Category) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
