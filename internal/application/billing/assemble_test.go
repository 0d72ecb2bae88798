package billing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-desk/internal/application/dto"
	"github.com/jhoicas/invoice-desk/internal/domain"
)

func item(desc, hours, price, vat string) dto.DraftItem {
	return dto.DraftItem{Description: desc, Hours: hours, PriceExc: price, VAT: vat}
}

func TestAssembleItems_SingleRow(t *testing.T) {
	items, totals, err := assembleItems(
		[]dto.DraftItem{item("Consulting", "10", "500.00", "105.00")},
		decimal.Zero, false,
	)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 1, items[0].Serial)
	assert.Equal(t, "Consulting", items[0].Description)
	assert.Equal(t, "500.00", items[0].PriceExc.StringFixed(2))
	assert.Equal(t, "105.00", items[0].VAT.StringFixed(2))
	assert.Equal(t, "605.00", items[0].Total.StringFixed(2))

	assert.Equal(t, "500.00", totals.Exc.StringFixed(2))
	assert.Equal(t, "105.00", totals.VAT.StringFixed(2))
	assert.Equal(t, "605.00", totals.Grand.StringFixed(2))
}

func TestAssembleItems_SkipsIncompleteRows(t *testing.T) {
	items, totals, err := assembleItems([]dto.DraftItem{
		item("", "", "", ""),
		item("Development", "8", "640.00", "134.40"),
		item("Half filled", "3", "", ""),
		item("Support", "2", "160.00", "33.60"),
	}, decimal.Zero, false)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Serials keep the draft positions, not the surviving order.
	assert.Equal(t, 2, items[0].Serial)
	assert.Equal(t, 4, items[1].Serial)
	assert.Equal(t, "800.00", totals.Exc.StringFixed(2))
	assert.Equal(t, "168.00", totals.VAT.StringFixed(2))
	assert.Equal(t, "968.00", totals.Grand.StringFixed(2))
}

func TestAssembleItems_UnparsableValueAbortsWithPosition(t *testing.T) {
	_, _, err := assembleItems([]dto.DraftItem{
		item("Fine", "1", "80.00", "16.80"),
		item("Broken", "abc", "80.00", "16.80"),
	}, decimal.Zero, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "item 2")
}

func TestAssembleItems_UnparsablePriceAborts(t *testing.T) {
	_, _, err := assembleItems([]dto.DraftItem{
		item("Broken", "1", "eighty", "16.80"),
	}, decimal.Zero, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "item 1")
}

func TestAssembleItems_NoBillableRows(t *testing.T) {
	_, _, err := assembleItems([]dto.DraftItem{
		item("", "", "", ""),
		item("description only", "", "", ""),
	}, decimal.Zero, false)
	assert.ErrorIs(t, err, domain.ErrNoBillableItems)
}

func TestAssembleItems_EmptyDraft(t *testing.T) {
	_, _, err := assembleItems(nil, decimal.Zero, false)
	assert.ErrorIs(t, err, domain.ErrNoBillableItems)
}

func TestAssembleItems_VATExemptForcesZero(t *testing.T) {
	items, totals, err := assembleItems([]dto.DraftItem{
		// Typed VAT amount must be ignored under exemption.
		item("Consulting", "10", "500.00", "105.00"),
		// Blank VAT must not cause the row to be skipped.
		item("Support", "2", "160.00", ""),
	}, decimal.Zero, true)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, items[0].VAT.IsZero())
	assert.True(t, items[1].VAT.IsZero())
	assert.Equal(t, "500.00", items[0].Total.StringFixed(2))
	assert.Equal(t, "660.00", totals.Exc.StringFixed(2))
	assert.True(t, totals.VAT.IsZero())
	assert.Equal(t, "660.00", totals.Grand.StringFixed(2))
}

func TestAssembleItems_DerivesPriceFromHourlyRate(t *testing.T) {
	rate := decimal.RequireFromString("85.50")

	items, totals, err := assembleItems([]dto.DraftItem{
		item("Consulting", "10", "", "179.55"),
	}, rate, false)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "855.00", items[0].PriceExc.StringFixed(2))
	assert.Equal(t, "855.00", totals.Exc.StringFixed(2))
	assert.Equal(t, "1034.55", totals.Grand.StringFixed(2))
}

func TestAssembleItems_NoDerivationWithoutRate(t *testing.T) {
	// Rate zero: the blank price stays blank and the row is skipped.
	_, _, err := assembleItems([]dto.DraftItem{
		item("Consulting", "10", "", "105.00"),
	}, decimal.Zero, false)
	assert.ErrorIs(t, err, domain.ErrNoBillableItems)
}

func TestAssembleItems_NoDerivationForUnparsableHours(t *testing.T) {
	rate := decimal.RequireFromString("85.50")

	// Hours do not parse, so no price is derived and the row stays
	// incomplete rather than aborting the assembly.
	_, _, err := assembleItems([]dto.DraftItem{
		item("Consulting", "ten", "", "105.00"),
	}, rate, false)
	assert.True(t, errors.Is(err, domain.ErrNoBillableItems))
}

func TestAssembleItems_TrimsWhitespace(t *testing.T) {
	items, _, err := assembleItems([]dto.DraftItem{
		item("  Consulting  ", " 10 ", " 500.00 ", " 105.00 "),
	}, decimal.Zero, false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Consulting", items[0].Description)
	assert.Equal(t, "500.00", items[0].PriceExc.StringFixed(2))
}

func TestAssembleItems_ManyRowsSum(t *testing.T) {
	rows := make([]dto.DraftItem, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, item("Line", "1", "10.00", "2.10"))
	}
	items, totals, err := assembleItems(rows, decimal.Zero, false)
	require.NoError(t, err)
	assert.Len(t, items, 60)
	assert.Equal(t, "600.00", totals.Exc.StringFixed(2))
	assert.Equal(t, "126.00", totals.VAT.StringFixed(2))
	assert.Equal(t, "726.00", totals.Grand.StringFixed(2))
}
