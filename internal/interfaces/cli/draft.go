package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-desk/internal/application/dto"
)

// The draft subcommands are the headless counterpart of the entry form's
// row list: rows are addressed by their stable id, never by position.
func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Create and edit invoice draft files",
	}
	cmd.AddCommand(
		newDraftNewCmd(app),
		newDraftAddItemCmd(app),
		newDraftRemoveItemCmd(app),
		newDraftShowCmd(app),
	)
	return cmd
}

func newDraftNewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create an empty draft file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, _ := cmd.Flags().GetString("company")
			client, _ := cmd.Flags().GetString("client")
			draft := &dto.InvoiceDraft{
				InvoicingCompany: company,
				ClientCompany:    client,
				Items:            []dto.DraftItem{dto.NewDraftItem()},
			}
			if err := draft.Save(args[0]); err != nil {
				return err
			}
			fmt.Printf("Draft written to %s.\n", args[0])
			return nil
		},
	}
	cmd.Flags().String("company", "", "invoicing company name")
	cmd.Flags().String("client", "", "client company name")
	return cmd
}

func newDraftAddItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-item <file>",
		Short: "Append an item row to a draft",
		Example: `  invoicedesk draft add-item january.json \
    --description "Consulting" --hours 10 --price 500.00 --vat 105.00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := dto.LoadDraft(args[0])
			if err != nil {
				return err
			}
			description, _ := cmd.Flags().GetString("description")
			hours, _ := cmd.Flags().GetString("hours")
			price, _ := cmd.Flags().GetString("price")
			vat, _ := cmd.Flags().GetString("vat")
			id := draft.AddItem(dto.DraftItem{
				Description: description,
				Hours:       hours,
				PriceExc:    price,
				VAT:         vat,
			})
			if err := draft.Save(args[0]); err != nil {
				return err
			}
			fmt.Printf("Item %s added.\n", id)
			return nil
		},
	}
	cmd.Flags().String("description", "", "work description")
	cmd.Flags().String("hours", "", "hours worked")
	cmd.Flags().String("price", "", "price excluding VAT")
	cmd.Flags().String("vat", "", "VAT amount")
	return cmd
}

func newDraftRemoveItemCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item <file> <item-id>",
		Short: "Remove an item row from a draft",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := dto.LoadDraft(args[0])
			if err != nil {
				return err
			}
			if !draft.RemoveItem(args[1]) {
				return fmt.Errorf("no item with id %s in %s", args[1], args[0])
			}
			if err := draft.Save(args[0]); err != nil {
				return err
			}
			fmt.Printf("Item %s removed.\n", args[1])
			return nil
		},
	}
}

func newDraftShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a draft with its item row ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := dto.LoadDraft(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Invoicing company: %s\n", draft.InvoicingCompany)
			fmt.Printf("Client company:    %s\n", draft.ClientCompany)
			fmt.Printf("Invoice date:      %s\n", orDefault(draft.InvoiceDate, "(today)"))
			fmt.Printf("Expiry date:       %s\n", orDefault(draft.ExpiryDate, "(today + payment term)"))
			fmt.Printf("Reference:         %s\n", draft.Reference)
			fmt.Printf("VAT exempt:        %v\n", draft.VATExempt)
			fmt.Println("Items:")
			for i, item := range draft.Items {
				fmt.Printf("  %d. [%s] %q hours=%s price=%s vat=%s\n",
					i+1, item.ID, item.Description, item.Hours, item.PriceExc, item.VAT)
			}
			return nil
		},
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
