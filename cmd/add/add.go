// Package add implements the add command.
package add

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/spend-tracker/cmd/root"
	"fjacquet/spend-tracker/internal/dateutils"
	"fjacquet/spend-tracker/internal/expenseparser"
	"fjacquet/spend-tracker/internal/logging"
	"fjacquet/spend-tracker/internal/models"
	"fjacquet/spend-tracker/internal/parsererror"
	"fjacquet/spend-tracker/internal/report"
	"fjacquet/spend-tracker/internal/validation"

	"github.com/spf13/cobra"
)

// Options are explicit values that take precedence over what the text parser
// extracted.
type Options struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

var opts Options

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add an expense from free text",
	Long: `Add an expense from a short free-text note.

The amount, category and description are extracted from the text. Any of them
can be overridden with a flag, and an expense can be entered with flags only.
The expense is dated today unless --date is given.`,
	Example: `  spend-tracker add "Lunch 15"
  spend-tracker add uber to airport 32.50 --date yesterday
  spend-tracker add --amount 1000 --category rent --description "November rent"`,
	RunE: runAdd,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Expense date (YYYY-MM-DD, today or yesterday)")
	Cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category override")
	Cmd.Flags().StringVarP(&opts.Amount, "amount", "a", "", "Amount override")
	Cmd.Flags().StringVarP(&opts.Description, "description", "m", "", "Description override")
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" && opts.Amount == "" {
		return fmt.Errorf("nothing to add: provide expense text or --amount")
	}

	expense, err := BuildExpense(c.GetParser(), text, opts, root.Now())
	if err != nil {
		return err
	}

	if err := c.GetExpenseStore().Append(cmd.Context(), expense); err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	c.GetLogger().Info("Expense added",
		logging.Field{Key: logging.FieldCategory, Value: expense.Category},
		logging.Field{Key: logging.FieldAmount, Value: expense.Amount.StringFixed(2)})

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s  %-9s  %s  %s\n",
		dateutils.ToISODate(expense.Date), expense.Category, report.FormatMoney(expense.Amount), expense.Description)
	return err
}

// BuildExpense parses text, applies the overrides in opts and dates the result.
// The returned expense has passed validation.
func BuildExpense(parser *expenseparser.Parser, text string, opts Options, now time.Time) (models.Expense, error) {
	draft := models.EmptyDraft()
	if strings.TrimSpace(text) != "" {
		draft = parser.Parse(text)
	}

	if opts.Amount != "" {
		amount, ok := expenseparser.ParseAmount(strings.TrimSpace(opts.Amount))
		if !ok {
			return models.Expense{}, &parsererror.ParseError{
				Source: "flag",
				Field:  "amount",
				Value:  opts.Amount,
				Err:    fmt.Errorf("not a plain decimal number"),
			}
		}
		draft.Amount = amount
	}

	if opts.Category != "" {
		category, err := models.ParseCategory(opts.Category)
		if err != nil {
			return models.Expense{}, err
		}
		draft.Category = category
	}

	if description := strings.TrimSpace(opts.Description); description != "" {
		if err := validation.ValidateDescription(description); err != nil {
			return models.Expense{}, err
		}
		draft.Description = description
	}

	date, err := dateutils.ResolveDate(opts.Date, now)
	if err != nil {
		return models.Expense{}, err
	}

	expense := draft.ToExpense(date)
	if err := validation.ValidateExpense(expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}
