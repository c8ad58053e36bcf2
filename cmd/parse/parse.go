// Package parse implements the parse command.
package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/spend-tracker/cmd/root"
	"fjacquet/spend-tracker/internal/models"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse <text...>",
	Short: "Preview how free text is parsed",
	Long: `Preview the amount, category and description extracted from free text
without saving anything.`,
	Example: `  spend-tracker parse "Dinner at pizza place 42.5"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		draft := c.GetParser().Parse(strings.Join(args, " "))
		return WriteDraft(cmd.OutOrStdout(), draft, format)
	},
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text or json)")
}

// WriteDraft prints a draft in the given format.
func WriteDraft(w io.Writer, draft models.Draft, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintf(w, "Amount:      %s\nCategory:    %s\nDescription: %s\n",
			draft.Amount.StringFixed(2), draft.Category, draft.Description)
		return err
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(draft)
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json'", format)
	}
}
