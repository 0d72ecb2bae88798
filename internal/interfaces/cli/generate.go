package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-desk/internal/application/dto"
)

func newGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render an invoice PDF from a draft and record it in the history",
		Long: `generate validates the draft, assembles its billable item rows, renders
the paginated PDF into the output directory and appends the invoice to the
company's history. The invoice number is assigned automatically per
invoicing company; nothing is written or recorded when validation fails.`,
		Example: `  invoicedesk generate --draft january.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draftPath, _ := cmd.Flags().GetString("draft")
			draft, err := dto.LoadDraft(draftPath)
			if err != nil {
				return err
			}
			result, err := app.Generator.Generate(draft)
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("%s has been generated and saved to the history.\n", result.PDFFilename)
			fmt.Printf("  Invoice number: %d\n", result.Number)
			fmt.Printf("  Total Exc.:     €%s\n", result.TotalExc.StringFixed(2))
			fmt.Printf("  Total VAT:      €%s\n", result.TotalVAT.StringFixed(2))
			fmt.Printf("  Grand Total:    €%s\n", result.GrandTotal.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().String("draft", "", "path to the draft JSON file")
	_ = cmd.MarkFlagRequired("draft")
	return cmd
}
