package entity

import "github.com/shopspring/decimal"

// LineItem is one billable row of an in-progress invoice. Items exist only
// inside a draft; the persisted history keeps aggregated totals only.
type LineItem struct {
	Serial      int // 1-based, contiguous, re-derived after row removal
	Description string
	Hours       decimal.Decimal
	PriceExc    decimal.Decimal // price excluding VAT, currency units
	VAT         decimal.Decimal // VAT amount, currency units; zero when exempt
	Total       decimal.Decimal // PriceExc + VAT
}

// InvoiceRecord is the persisted history entry written once per generated
// document. It is never deleted; an issued invoice is soft-invalidated by
// the Erroneous flag.
//
// Dates are dd-mm-yyyy strings, validated before the record is built; the
// record stores and reproduces them as given.
type InvoiceRecord struct {
	ID               uint
	InvoicingCompany string // issuer, referenced by name
	ClientCompany    string // billed party, referenced by name
	Number           int    // monotonically increasing per invoicing company
	InvoiceDate      string
	ExpiryDate       string
	Reference        string
	TotalExc         decimal.Decimal
	TotalVAT         decimal.Decimal
	GrandTotal       decimal.Decimal // TotalExc + TotalVAT
	VATExempt        bool
	PDFFilename      string
	Erroneous        bool
}
