package entity

// InvoicingCompany is the issuing party whose registration, tax and bank
// details appear on generated invoices. Name is the natural key: it is
// unique, never changes and the record is never deleted.
type InvoicingCompany struct {
	Name      string
	KvK       string // Chamber of Commerce registration number
	VATNumber string
	Bank      string
	IBAN      string
	BIC       string
}
