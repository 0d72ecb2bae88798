package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the issued-invoice history",
	}
	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryNextCmd(app),
		newHistoryMarkCmd(app),
		newHistoryUnmarkCmd(app),
	)
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <company>",
		Short: "List invoices issued by one invoicing company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			includeErroneous, _ := cmd.Flags().GetBool("include-erroneous")
			records, err := app.History.List(args[0], includeErroneous)
			if err != nil {
				return friendlyError(err)
			}
			if len(records) == 0 {
				fmt.Printf("No invoices found for %s.\n", args[0])
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tDATE\tCLIENT\tGRAND TOTAL\tFILE\tERRONEOUS")
			for _, rec := range records {
				erroneous := "no"
				if rec.Erroneous {
					erroneous = "yes"
				}
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t€%s\t%s\t%s\n",
					rec.ID, rec.Number, rec.InvoiceDate, rec.ClientCompany,
					rec.GrandTotal.StringFixed(2), rec.PDFFilename, erroneous)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("include-erroneous", false, "also list invoices marked erroneous")
	return cmd
}

func newHistoryNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next-number <company>",
		Short: "Preview the number the next invoice will get",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := app.History.NextNumber(args[0])
			if err != nil {
				return friendlyError(err)
			}
			fmt.Println(number)
			return nil
		},
	}
}

func newHistoryMarkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <invoice-id>",
		Short: "Mark an invoice as erroneous (soft invalidation, never deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invoice id must be a number: %q", args[0])
			}
			if err := app.History.SetErroneous(uint(id), true); err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Invoice %d marked as erroneous.\n", id)
			return nil
		},
	}
}

func newHistoryUnmarkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unmark <invoice-id>",
		Short: "Clear the erroneous flag on an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invoice id must be a number: %q", args[0])
			}
			if err := app.History.SetErroneous(uint(id), false); err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Invoice %d unmarked.\n", id)
			return nil
		},
	}
}
