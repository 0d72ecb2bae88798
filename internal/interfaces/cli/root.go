// Package cli is the interactive surface: cobra commands that capture input,
// delegate to the billing use cases and report the outcome. No business
// logic lives here.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-desk/internal/application/billing"
	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/pkg/config"
	"github.com/jhoicas/invoice-desk/pkg/logger"
)

// App bundles everything the commands need.
type App struct {
	Config    *config.Config
	Log       *logger.Logger
	Parties   *billing.PartyUseCase
	Generator *billing.GenerateUseCase
	History   *billing.HistoryUseCase
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "invoicedesk",
		Short: "Generate PDF invoices and keep a history of issued ones",
		Long: `invoicedesk records invoicing-company and client profiles, assembles
invoice drafts into paginated PDF documents and keeps every issued invoice
in a local SQLite history.

Drafts are JSON files edited by hand or with the draft subcommands; generate
renders the PDF into the configured output directory and appends the history
record in one go.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCompanyCmd(app),
		newClientCmd(app),
		newDraftCmd(app),
		newGenerateCmd(app),
		newHistoryCmd(app),
	)
	return root
}

// friendlyError rewords domain sentinels for terminal output.
func friendlyError(err error) error {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return fmt.Errorf("already exists: %v", err)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("not found: %v", err)
	case errors.Is(err, domain.ErrNoBillableItems):
		return errors.New("no billable items: add at least one complete item row")
	default:
		return err
	}
}
