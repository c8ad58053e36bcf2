// Package categories implements the categories command.
package categories

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/spend-tracker/cmd/root"
	"fjacquet/spend-tracker/internal/fileutils"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/report"

	"github.com/spf13/cobra"
)

var (
	initFile bool
	force    bool
	output   string
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the keyword and budget tables",
	Long: `Show the keyword table used to classify expenses and the monthly budget of
each category, in the order they are applied.

With --init the active tables are written to the categories file so they can
be edited.`,
	Example: `  spend-tracker categories
  spend-tracker categories --init
  spend-tracker categories --init --output ~/.spend-tracker/categories.yaml`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	Cmd.Flags().BoolVar(&initFile, "init", false, "Write the active tables to the categories file")
	Cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing categories file")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Path written by --init (default: the configured categories file)")
}

func runCategories(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	if !initFile {
		return WriteTables(cmd.OutOrStdout(), c.GetKeywordTable(), c.GetBudgetTable())
	}

	path := output
	if path == "" {
		path = c.GetConfig().CategoriesFilePath()
	}
	if fileutils.FileExists(path) && !force {
		return fmt.Errorf("categories file %s already exists (use --force to overwrite)", path)
	}
	if err := c.GetCategoryStore().SaveTables(path, c.GetKeywordTable(), c.GetBudgetTable()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}

// WriteTables prints both tables in application order.
func WriteTables(w io.Writer, keywords models.KeywordTable, budgets models.BudgetTable) error {
	var b strings.Builder
	b.WriteString("Keywords (first match per word wins, last matching word wins):\n")
	for _, entry := range keywords.Entries() {
		fmt.Fprintf(&b, "  %-10s %s\n", entry.Category, strings.Join(entry.Keywords, " "))
	}
	b.WriteString("\nBudgets:\n")
	for _, entry := range budgets.Entries() {
		fmt.Fprintf(&b, "  %-10s %s\n", entry.Category, report.FormatMoney(entry.Limit))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
