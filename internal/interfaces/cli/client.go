package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-desk/internal/domain/entity"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage client profiles",
	}
	cmd.AddCommand(
		newClientAddCmd(app),
		newClientUpdateCmd(app),
		newClientListCmd(app),
		newClientShowCmd(app),
	)
	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Register a new client",
		Example: `  invoicedesk client add "Globex B.V." --address "Keizersgracht 1, Amsterdam"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, _ := cmd.Flags().GetString("address")
			client := &entity.Client{Name: args[0], Address: address}
			if err := app.Parties.AddClient(client); err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Client %q added.\n", client.Name)
			return nil
		},
	}
	cmd.Flags().String("address", "", "client address")
	return cmd
}

func newClientUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Replace the address of an existing client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, _ := cmd.Flags().GetString("address")
			client := &entity.Client{Name: args[0], Address: address}
			if err := app.Parties.UpdateClient(client); err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Client %q updated.\n", client.Name)
			return nil
		},
	}
	cmd.Flags().String("address", "", "client address")
	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Parties.ClientNames()
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

func newClientShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one client's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Parties.Client(args[0])
			if err != nil {
				return friendlyError(err)
			}
			fmt.Printf("Name:    %s\n", client.Name)
			fmt.Printf("Address: %s\n", client.Address)
			return nil
		},
	}
}
