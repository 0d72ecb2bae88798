package repository

import "github.com/jhoicas/invoice-desk/internal/domain/entity"

// InvoiceRepository is the persistence port for the invoice history.
type InvoiceRepository interface {
	// NextNumber returns 1 + max(invoice number) over the company's history,
	// or 1 when the company has no invoices yet.
	NextNumber(companyName string) (int, error)
	// Create appends a history record. The (company, number) pair is unique;
	// a collision returns domain.ErrAlreadyExists.
	Create(record *entity.InvoiceRecord) error
	// ListByCompany returns the company's history in insertion order,
	// skipping erroneous records unless includeErroneous is set.
	ListByCompany(companyName string, includeErroneous bool) ([]*entity.InvoiceRecord, error)
	// SetErroneous toggles the soft-invalidation flag on one record.
	// Returns domain.ErrNotFound for an unknown id.
	SetErroneous(id uint, erroneous bool) error
}
