package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-desk/internal/domain/entity"
)

func newCompanyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage invoicing-company profiles",
	}
	cmd.AddCommand(
		newCompanyAddCmd(app),
		newCompanyUpdateCmd(app),
		newCompanyListCmd(app),
		newCompanyShowCmd(app),
	)
	return cmd
}

func companyFlags(cmd *cobra.Command) {
	cmd.Flags().String("kvk", "", "KvK registration number")
	cmd.Flags().String("vat", "", "VAT number")
	cmd.Flags().String("bank", "", "bank name")
	cmd.Flags().String("iban", "", "IBAN")
	cmd.Flags().String("bic", "", "BIC")
}

func companyFromFlags(cmd *cobra.Command, name string) *entity.InvoicingCompany {
	kvk, _ := cmd.Flags().GetString("kvk")
	vat, _ := cmd.Flags().GetString("vat")
	bank, _ := cmd.Flags().GetString("bank")
	iban, _ := cmd.Flags().GetString("iban")
	bic, _ := cmd.Flags().GetString("bic")
	return &entity.InvoicingCompany{
		Name:      name,
		KvK:       kvk,
		VATNumber: vat,
		Bank:      bank,
		IBAN:      iban,
		BIC:       bic,
	}
}

func newCompanyAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new invoicing company",
		Example: `  invoicedesk company add "Acme Consulting" \
    --kvk 12345678 --vat NL001234567B01 \
    --bank "ING Bank" --iban NL00INGB0001234567 --bic INGBNL2A`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company := companyFromFlags(cmd, args[0])
			if err := app.Parties.AddCompany(company); err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Invoicing company %q added.\n", company.Name)
			return nil
		},
	}
	companyFlags(cmd)
	return cmd
}

func newCompanyUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Replace the details of an existing invoicing company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company := companyFromFlags(cmd, args[0])
			if err := app.Parties.UpdateCompany(company); err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Invoicing company %q updated.\n", company.Name)
			return nil
		},
	}
	companyFlags(cmd)
	return cmd
}

func newCompanyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered invoicing companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Parties.CompanyNames()
			if err != nil {
				return friendlyError(err)
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newCompanyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one invoicing company's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := app.Parties.Company(args[0])
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Name:    %s\n", company.Name)
			fmt.Printf("KvK nr:  %s\n", company.KvK)
			fmt.Printf("VAT nr:  %s\n", company.VATNumber)
			fmt.Printf("Bank:    %s\n", company.Bank)
			fmt.Printf("IBAN:    %s\n", company.IBAN)
			fmt.Printf("BIC:     %s\n", company.BIC)
			return nil
		},
	}
}
