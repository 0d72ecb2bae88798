package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
	"github.com/jhoicas/invoice-desk/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository on SQLite. Numbering is scoped
// per invoicing company and additionally guarded by the unique index on
// (invoicing_company, invoice_number): even a concurrent writer cannot issue
// two invoices with the same number for one company.
type InvoiceRepo struct {
	db *gorm.DB
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// NextNumber returns max(invoice_number)+1 for the company, or 1 when the
// company has no history.
func (r *InvoiceRepo) NextNumber(companyName string) (int, error) {
	var highest int
	err := r.db.Model(&invoiceRow{}).
		Where("invoicing_company = ?", companyName).
		Select("COALESCE(MAX(invoice_number), 0)").
		Scan(&highest).Error
	if err != nil {
		return 0, fmt.Errorf("max invoice number: %w", err)
	}
	return highest + 1, nil
}

// Create appends a history record inside one transaction. A number collision
// for the same company surfaces as domain.ErrAlreadyExists.
func (r *InvoiceRepo) Create(record *entity.InvoiceRecord) error {
	row := fromRecord(record)
	row.ID = 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("insert invoice: %w", translateError(err))
	}
	record.ID = row.ID
	return nil
}

// ListByCompany returns the company's invoices in insertion order.
func (r *InvoiceRepo) ListByCompany(companyName string, includeErroneous bool) ([]*entity.InvoiceRecord, error) {
	q := r.db.Where("invoicing_company = ?", companyName).Order("id")
	if !includeErroneous {
		q = q.Where("is_erroneous = ?", false)
	}
	var rows []invoiceRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	records := make([]*entity.InvoiceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toEntity())
	}
	return records, nil
}

// SetErroneous toggles the soft-invalidation flag.
func (r *InvoiceRepo) SetErroneous(id uint, erroneous bool) error {
	res := r.db.Model(&invoiceRow{}).
		Where("id = ?", id).
		Update("is_erroneous", erroneous)
	if res.Error != nil {
		return fmt.Errorf("update invoice flag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	return nil
}
