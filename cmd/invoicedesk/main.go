package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jhoicas/invoice-desk/internal/application/billing"
	"github.com/jhoicas/invoice-desk/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-desk/internal/infrastructure/sqlite"
	"github.com/jhoicas/invoice-desk/internal/interfaces/cli"
	"github.com/jhoicas/invoice-desk/pkg/config"
	"github.com/jhoicas/invoice-desk/pkg/logger"
)

func main() {
	// Environment variables from an optional .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("open database")
	}

	companyRepo := sqlite.NewCompanyRepository(db)
	clientRepo := sqlite.NewClientRepository(db)
	invoiceRepo := sqlite.NewInvoiceRepository(db)
	renderer := pdf.NewMarotoRenderer()

	app := &cli.App{
		Config: cfg,
		Log:    log,
		Parties: billing.NewPartyUseCase(
			companyRepo, clientRepo, log.Component("parties"),
		),
		Generator: billing.NewGenerateUseCase(
			companyRepo, clientRepo, invoiceRepo, renderer,
			cfg.Invoice.OutputDir, cfg.Invoice.ExpiryDays, cfg.Invoice.HourlyRate,
			log.Component("generate"),
		),
		History: billing.NewHistoryUseCase(invoiceRepo, log.Component("history")),
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
