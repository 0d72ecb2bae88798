package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-desk/internal/domain/entity"
)

// InvoiceDocument carries everything the renderer needs: parties, metadata,
// the ordered line items and the pre-computed totals. The renderer must not
// re-derive totals from the items; summation is the assembler's job.
type InvoiceDocument struct {
	Company     entity.InvoicingCompany
	Client      entity.Client
	Number      int
	InvoiceDate string // dd-mm-yyyy, already validated
	ExpiryDate  string // dd-mm-yyyy, already validated
	Reference   string
	Items       []entity.LineItem
	TotalExc    decimal.Decimal
	TotalVAT    decimal.Decimal
	GrandTotal  decimal.Decimal
	VATExempt   bool
}

// DocumentRenderer turns an assembled invoice into printable document bytes.
// Implementations are pure with respect to their input: identical documents
// produce identical layout, and nothing is written to disk.
type DocumentRenderer interface {
	Render(doc *InvoiceDocument) ([]byte, error)
}
