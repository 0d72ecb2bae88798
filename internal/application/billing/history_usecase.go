package billing

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
	"github.com/jhoicas/invoice-desk/internal/domain/repository"
)

// HistoryUseCase exposes the issued-invoice history: listing per company,
// previewing the next invoice number and toggling the erroneous flag.
type HistoryUseCase struct {
	invoiceRepo repository.InvoiceRepository
	log         zerolog.Logger
}

// NewHistoryUseCase wires the history operations.
func NewHistoryUseCase(invoiceRepo repository.InvoiceRepository, log zerolog.Logger) *HistoryUseCase {
	return &HistoryUseCase{invoiceRepo: invoiceRepo, log: log}
}

// List returns the company's invoices in insertion order. Erroneous records
// are filtered out unless includeErroneous is set.
func (uc *HistoryUseCase) List(companyName string, includeErroneous bool) ([]*entity.InvoiceRecord, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, fmt.Errorf("%w: select an invoicing company", domain.ErrInvalidInput)
	}
	return uc.invoiceRepo.ListByCompany(companyName, includeErroneous)
}

// NextNumber previews the number the next generated invoice will get.
func (uc *HistoryUseCase) NextNumber(companyName string) (int, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return 0, fmt.Errorf("%w: select an invoicing company", domain.ErrInvalidInput)
	}
	return uc.invoiceRepo.NextNumber(companyName)
}

// SetErroneous marks or unmarks one invoice as erroneous. The record itself
// is kept; erroneous is a soft-invalidation flag only.
func (uc *HistoryUseCase) SetErroneous(id uint, erroneous bool) error {
	if err := uc.invoiceRepo.SetErroneous(id, erroneous); err != nil {
		return err
	}
	uc.log.Info().Uint("invoice_id", id).Bool("erroneous", erroneous).Msg("invoice flag updated")
	return nil
}
