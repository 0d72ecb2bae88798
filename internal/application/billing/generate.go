package billing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-desk/internal/application/dto"
	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
	"github.com/jhoicas/invoice-desk/internal/domain/repository"
	"github.com/jhoicas/invoice-desk/pkg/validate"
)

// GenerateUseCase drives the whole generation flow: validate the draft,
// assemble the line items, render the PDF, write it to disk and append the
// history record. Rendering happens before persistence, so a failed write
// leaves no record behind.
type GenerateUseCase struct {
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
	renderer    DocumentRenderer

	outputDir   string
	expiryDays  int
	defaultRate string

	log zerolog.Logger
	now func() time.Time
}

// NewGenerateUseCase wires the generation flow.
func NewGenerateUseCase(
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	invoiceRepo repository.InvoiceRepository,
	renderer DocumentRenderer,
	outputDir string,
	expiryDays int,
	defaultRate string,
	log zerolog.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		outputDir:   outputDir,
		expiryDays:  expiryDays,
		defaultRate: defaultRate,
		log:         log,
		now:         time.Now,
	}
}

// GenerateResult reports what a successful generation produced.
type GenerateResult struct {
	RecordID    uint
	Number      int
	PDFFilename string
	PDFPath     string
	TotalExc    decimal.Decimal
	TotalVAT    decimal.Decimal
	GrandTotal  decimal.Decimal
}

// Generate runs the full flow for one draft.
func (uc *GenerateUseCase) Generate(draft *dto.InvoiceDraft) (*GenerateResult, error) {
	companyName := strings.TrimSpace(draft.InvoicingCompany)
	if companyName == "" {
		return nil, fmt.Errorf("%w: select an invoicing company", domain.ErrInvalidInput)
	}
	clientName := strings.TrimSpace(draft.ClientCompany)
	if clientName == "" {
		return nil, fmt.Errorf("%w: select a client company", domain.ErrInvalidInput)
	}

	company, err := uc.companyRepo.GetByName(companyName)
	if err != nil {
		return nil, fmt.Errorf("load invoicing company: %w", err)
	}
	if company == nil {
		return nil, fmt.Errorf("%w: invoicing company %q", domain.ErrNotFound, companyName)
	}
	client, err := uc.clientRepo.GetByName(clientName)
	if err != nil {
		return nil, fmt.Errorf("load client company: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client company %q", domain.ErrNotFound, clientName)
	}

	invoiceDate, expiryDate, err := uc.resolveDates(draft)
	if err != nil {
		return nil, err
	}

	rate, err := uc.resolveRate(draft)
	if err != nil {
		return nil, err
	}

	items, totals, err := assembleItems(draft.Items, rate, draft.VATExempt)
	if err != nil {
		return nil, err
	}

	number, err := uc.invoiceRepo.NextNumber(company.Name)
	if err != nil {
		return nil, fmt.Errorf("next invoice number: %w", err)
	}

	doc := &InvoiceDocument{
		Company:     *company,
		Client:      *client,
		Number:      number,
		InvoiceDate: invoiceDate,
		ExpiryDate:  expiryDate,
		Reference:   draft.Reference,
		Items:       items,
		TotalExc:    totals.Exc,
		TotalVAT:    totals.VAT,
		GrandTotal:  totals.Grand,
		VATExempt:   draft.VATExempt,
	}
	pdfBytes, err := uc.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	filename := fmt.Sprintf("Invoice_%d.pdf", number)
	path := filepath.Join(uc.outputDir, filename)
	if _, statErr := os.Stat(path); statErr == nil {
		uc.log.Warn().Str("path", path).Msg("overwriting existing invoice document")
	}
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return nil, fmt.Errorf("write document %s: %w", path, err)
	}

	record := &entity.InvoiceRecord{
		InvoicingCompany: company.Name,
		ClientCompany:    client.Name,
		Number:           number,
		InvoiceDate:      invoiceDate,
		ExpiryDate:       expiryDate,
		Reference:        draft.Reference,
		TotalExc:         totals.Exc,
		TotalVAT:         totals.VAT,
		GrandTotal:       totals.Grand,
		VATExempt:        draft.VATExempt,
		PDFFilename:      filename,
	}
	if err := uc.invoiceRepo.Create(record); err != nil {
		return nil, fmt.Errorf("save invoice record: %w", err)
	}

	uc.log.Info().
		Str("company", company.Name).
		Int("number", number).
		Str("file", path).
		Str("grand_total", totals.Grand.StringFixed(2)).
		Msg("invoice generated")

	return &GenerateResult{
		RecordID:    record.ID,
		Number:      number,
		PDFFilename: filename,
		PDFPath:     path,
		TotalExc:    totals.Exc,
		TotalVAT:    totals.VAT,
		GrandTotal:  totals.Grand,
	}, nil
}

// resolveDates applies the form defaults (today, today + payment term) and
// validates the dd-mm-yyyy format. The dates stay strings from here on; the
// renderer reproduces them as given.
func (uc *GenerateUseCase) resolveDates(draft *dto.InvoiceDraft) (invoiceDate, expiryDate string, err error) {
	invoiceDate = strings.TrimSpace(draft.InvoiceDate)
	if invoiceDate == "" {
		invoiceDate = uc.now().Format(validate.DateLayout)
	}
	expiryDate = strings.TrimSpace(draft.ExpiryDate)
	if expiryDate == "" {
		expiryDate = uc.now().AddDate(0, 0, uc.expiryDays).Format(validate.DateLayout)
	}
	if !validate.IsDate(invoiceDate) {
		return "", "", fmt.Errorf("%w: invoice date %q is not dd-mm-yyyy", domain.ErrInvalidInput, invoiceDate)
	}
	if !validate.IsDate(expiryDate) {
		return "", "", fmt.Errorf("%w: expiry date %q is not dd-mm-yyyy", domain.ErrInvalidInput, expiryDate)
	}
	return invoiceDate, expiryDate, nil
}

// resolveRate picks the draft's hourly rate over the configured default.
func (uc *GenerateUseCase) resolveRate(draft *dto.InvoiceDraft) (decimal.Decimal, error) {
	rateStr := strings.TrimSpace(draft.HourlyRate)
	if rateStr == "" {
		rateStr = strings.TrimSpace(uc.defaultRate)
	}
	if rateStr == "" {
		return decimal.Zero, nil
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: hourly rate %q is not a number", domain.ErrInvalidInput, rateStr)
	}
	return rate, nil
}
