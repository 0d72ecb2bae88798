package sqlite

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-desk/internal/domain/entity"
)

// GORM row models. Column names follow the migration SQL; the schema is
// owned by the migrations, so these carry no auto-migration concerns.

type companyRow struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"column:name;uniqueIndex"`
	KvK   string `gorm:"column:kvk"`
	VATNr string `gorm:"column:vat_nr"`
	Bank  string `gorm:"column:bank"`
	IBAN  string `gorm:"column:iban"`
	BIC   string `gorm:"column:bic"`
}

func (companyRow) TableName() string { return "invoicing_companies" }

func (r companyRow) toEntity() *entity.InvoicingCompany {
	return &entity.InvoicingCompany{
		Name:      r.Name,
		KvK:       r.KvK,
		VATNumber: r.VATNr,
		Bank:      r.Bank,
		IBAN:      r.IBAN,
		BIC:       r.BIC,
	}
}

type clientRow struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"column:name;uniqueIndex"`
	Address string `gorm:"column:address"`
}

func (clientRow) TableName() string { return "clients" }

func (r clientRow) toEntity() *entity.Client {
	return &entity.Client{Name: r.Name, Address: r.Address}
}

type invoiceRow struct {
	ID               uint            `gorm:"primaryKey"`
	InvoicingCompany string          `gorm:"column:invoicing_company"`
	ClientCompany    string          `gorm:"column:client_company"`
	InvoiceNumber    int             `gorm:"column:invoice_number"`
	InvoiceDate      string          `gorm:"column:invoice_date"`
	ExpiryDate       string          `gorm:"column:expiry_date"`
	Reference        string          `gorm:"column:reference"`
	TotalExc         decimal.Decimal `gorm:"column:total_exc;type:numeric"`
	TotalVAT         decimal.Decimal `gorm:"column:total_vat;type:numeric"`
	GrandTotal       decimal.Decimal `gorm:"column:grand_total;type:numeric"`
	VATExempt        bool            `gorm:"column:vat_exempt"`
	PDFFilename      string          `gorm:"column:pdf_filename"`
	Erroneous        bool            `gorm:"column:is_erroneous"`
}

func (invoiceRow) TableName() string { return "invoices" }

func (r invoiceRow) toEntity() *entity.InvoiceRecord {
	return &entity.InvoiceRecord{
		ID:               r.ID,
		InvoicingCompany: r.InvoicingCompany,
		ClientCompany:    r.ClientCompany,
		Number:           r.InvoiceNumber,
		InvoiceDate:      r.InvoiceDate,
		ExpiryDate:       r.ExpiryDate,
		Reference:        r.Reference,
		TotalExc:         r.TotalExc,
		TotalVAT:         r.TotalVAT,
		GrandTotal:       r.GrandTotal,
		VATExempt:        r.VATExempt,
		PDFFilename:      r.PDFFilename,
		Erroneous:        r.Erroneous,
	}
}

func fromRecord(rec *entity.InvoiceRecord) invoiceRow {
	return invoiceRow{
		ID:               rec.ID,
		InvoicingCompany: rec.InvoicingCompany,
		ClientCompany:    rec.ClientCompany,
		InvoiceNumber:    rec.Number,
		InvoiceDate:      rec.InvoiceDate,
		ExpiryDate:       rec.ExpiryDate,
		Reference:        rec.Reference,
		TotalExc:         rec.TotalExc,
		TotalVAT:         rec.TotalVAT,
		GrandTotal:       rec.GrandTotal,
		VATExempt:        rec.VATExempt,
		PDFFilename:      rec.PDFFilename,
		Erroneous:        rec.Erroneous,
	}
}
