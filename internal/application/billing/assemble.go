package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-desk/internal/application/dto"
	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
)

// Totals aggregates the amounts over the surviving line items.
type Totals struct {
	Exc   decimal.Decimal
	VAT   decimal.Decimal
	Grand decimal.Decimal
}

// assembleItems filters and parses the draft rows into billable line items.
//
// Row handling, in order:
//   - under VAT exemption the VAT field is forced to zero before anything
//     else, so an exempt row is never skipped for a blank VAT field and any
//     typed VAT amount is ignored;
//   - a blank price is derived from hours x hourlyRate when the rate is
//     positive and the hours field parses;
//   - a row with any of description, hours, price or VAT still blank is
//     silently skipped (sparse rows are allowed, not an error);
//   - a non-blank field that does not parse as a decimal aborts the whole
//     assembly, naming the offending row's position.
//
// Serial numbers on the surviving items keep the draft row positions, as the
// entry form displays them.
func assembleItems(rows []dto.DraftItem, hourlyRate decimal.Decimal, vatExempt bool) ([]entity.LineItem, Totals, error) {
	var (
		items  []entity.LineItem
		totals Totals
	)

	for idx, row := range rows {
		description := strings.TrimSpace(row.Description)
		hoursStr := strings.TrimSpace(row.Hours)
		priceStr := strings.TrimSpace(row.PriceExc)
		vatStr := strings.TrimSpace(row.VAT)

		if vatExempt {
			vatStr = "0"
		}

		if priceStr == "" && hoursStr != "" && hourlyRate.IsPositive() {
			if h, err := decimal.NewFromString(hoursStr); err == nil {
				priceStr = h.Mul(hourlyRate).StringFixed(2)
			}
		}

		if description == "" || hoursStr == "" || priceStr == "" || vatStr == "" {
			continue // incomplete row, not billed
		}

		hours, err := decimal.NewFromString(hoursStr)
		if err != nil {
			return nil, Totals{}, fmt.Errorf("%w: invalid numeric value in item %d", domain.ErrInvalidInput, idx+1)
		}
		priceExc, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, Totals{}, fmt.Errorf("%w: invalid numeric value in item %d", domain.ErrInvalidInput, idx+1)
		}
		vat, err := decimal.NewFromString(vatStr)
		if err != nil {
			return nil, Totals{}, fmt.Errorf("%w: invalid numeric value in item %d", domain.ErrInvalidInput, idx+1)
		}

		items = append(items, entity.LineItem{
			Serial:      idx + 1,
			Description: description,
			Hours:       hours,
			PriceExc:    priceExc,
			VAT:         vat,
			Total:       priceExc.Add(vat),
		})

		totals.Exc = totals.Exc.Add(priceExc)
		totals.VAT = totals.VAT.Add(vat)
	}

	if len(items) == 0 {
		return nil, Totals{}, domain.ErrNoBillableItems
	}

	totals.Grand = totals.Exc.Add(totals.VAT)
	return items, totals, nil
}
