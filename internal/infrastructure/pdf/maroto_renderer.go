// Package pdf implements the invoice document renderer with Maroto v2.
//
// A4 page layout, top to bottom:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                          INVOICE                            │
//	│  To: client name + address                                  │
//	│  Issuer: company / KvK nr / VAT nr / Bank / IBAN / BIC      │
//	│  Invoice number / date / expiry date / reference            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Sr. | Description | Hours | Price Exc. | VAT | Total│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Total Exc. / Total VAT / Grand Total               │
//	│  footer note (exemption or payment terms)                   │
//	└─────────────────────────────────────────────────────────────┘
//
// Rows flow across pages automatically, so long item lists paginate without
// any help from the caller.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-desk/internal/application/billing"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
)

// Fixed footer sentences, not configurable per invoice.
const (
	exemptionNote       = "Invoice exempt from OB based on article 25 OB."
	paymentInstructions = "Please make payment within 30 days to the above account number quoting the invoice number."
)

// ── Palette ──────────────────────────────────────────────────────────────────

var (
	colorHeaderBg = &props.Color{Red: 211, Green: 211, Blue: 211}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Item table grid (12 columns total): description takes the largest share,
// the numeric columns split the remainder.
const (
	colSerial = 1
	colDesc   = 5
	colHours  = 1
	colPrice  = 2
	colVAT    = 1
	colTotal  = 2
)

// ── Renderer ─────────────────────────────────────────────────────────────────

// MarotoRenderer implements billing.DocumentRenderer using Maroto v2.
type MarotoRenderer struct{}

var _ billing.DocumentRenderer = (*MarotoRenderer)(nil)

// NewMarotoRenderer builds the renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render lays out the document and returns its bytes. It never touches the
// filesystem; writing the file is the caller's concern.
func (r *MarotoRenderer) Render(doc *billing.InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Invoice %d", doc.Number), true).
		WithAuthor(doc.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(recipientRows(doc.Client)...)
	m.AddRows(spacerRow())
	m.AddRows(issuerRows(doc.Company)...)
	m.AddRows(spacerRow())
	m.AddRows(metadataRows(doc)...)
	m.AddRows(spacerRow())

	m.AddRows(tableHeaderRow())
	for _, item := range doc.Items {
		m.AddRows(itemRow(item))
	}

	m.AddRows(spacerRow())
	m.AddRows(totalsRows(doc)...)
	m.AddRows(spacerRow())
	m.AddRows(footerRow(doc.VATExempt))

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return generated.GetBytes(), nil
}

// ── Sections ─────────────────────────────────────────────────────────────────

func titleRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Top: 2,
			}),
		),
	)
}

// recipientRows: the billed party, name and address.
func recipientRows(client entity.Client) []core.Row {
	return []core.Row{
		labelRow("To:", ""),
		valueRow(client.Name),
		valueRow(client.Address),
	}
}

// issuerRows: the invoicing company with its registration, tax and bank
// details, one labelled line each.
func issuerRows(company entity.InvoicingCompany) []core.Row {
	return []core.Row{
		labelRow("Invoicing Company:", company.Name),
		labelRow("KvK nr:", company.KvK),
		labelRow("VAT nr:", company.VATNumber),
		labelRow("Bank:", company.Bank),
		labelRow("IBAN:", company.IBAN),
		labelRow("BIC:", company.BIC),
	}
}

// metadataRows: number, dates and reference, rendered exactly as supplied.
func metadataRows(doc *billing.InvoiceDocument) []core.Row {
	return []core.Row{
		labelRow("Invoice Number:", fmt.Sprintf("%d", doc.Number)),
		labelRow("Invoice Date:", doc.InvoiceDate),
		labelRow("Expiry Date:", doc.ExpiryDate),
		labelRow("Reference:", doc.Reference),
	}
}

// tableHeaderRow: fixed header over a light gray band.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorHeaderBg})
	}
	return row.New(7).Add(
		h("Sr. No.", colSerial, align.Center),
		h("Description", colDesc, align.Left),
		h("Hours", colHours, align.Right),
		h("Price Exc.", colPrice, align.Right),
		h("VAT", colVAT, align.Right),
		h("Total", colTotal, align.Right),
	)
}

// itemRow: one line item. The row height grows with the wrapped description
// so long texts never overflow the cell.
func itemRow(item entity.LineItem) core.Row {
	height := 4 + 3.5*float64(wrappedLines(item.Description, 44))
	return row.New(height).Add(
		col.New(colSerial).Add(text.New(
			fmt.Sprintf("%d", item.Serial),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(colDesc).Add(text.New(
			item.Description,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Right: 1},
		)),
		col.New(colHours).Add(text.New(
			item.Hours.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(colPrice).Add(text.New(
			euro(item.PriceExc),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(colVAT).Add(text.New(
			euro(item.VAT),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(colTotal).Add(text.New(
			euro(item.Total),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRows: compact two-column block, values right-aligned.
func totalsRows(doc *billing.InvoiceDocument) []core.Row {
	totalRow := func(label string, value decimal.Decimal, grand bool) core.Row {
		size := 9.0
		if grand {
			size = 10
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2,
			})),
			col.New(3).Add(text.New(euro(value), props.Text{
				Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 1,
			})),
		)
	}
	return []core.Row{
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		totalRow("Total Exc.:", doc.TotalExc, false),
		totalRow("Total VAT:", doc.TotalVAT, false),
		totalRow("Grand Total:", doc.GrandTotal, true),
	}
}

// footerRow: the legal exemption sentence or the payment terms.
func footerRow(vatExempt bool) core.Row {
	note := paymentInstructions
	if vatExempt {
		note = exemptionNote
	}
	return row.New(8).Add(
		col.New(12).Add(text.New(note, props.Text{Size: 9, Top: 2})),
	)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func labelRow(label, value string) core.Row {
	return row.New(5).Add(
		col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(9).Add(text.New(value, props.Text{Size: 9})),
	)
}

func valueRow(value string) core.Row {
	return row.New(5).Add(
		col.New(12).Add(text.New(value, props.Text{Size: 9})),
	)
}

func spacerRow() core.Row {
	return row.New(4)
}

// euro formats a currency amount with two decimals and the fixed symbol.
func euro(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

// wrappedLines estimates how many lines s occupies when wrapped at width
// characters. An estimate is enough here: it only sizes the row so wrapped
// descriptions get vertical room.
func wrappedLines(s string, width int) int {
	if len(s) == 0 {
		return 1
	}
	lines := (len(s) + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	return lines
}
