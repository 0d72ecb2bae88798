package billing

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
)

func historyFixture() (*HistoryUseCase, *fakeInvoiceRepo) {
	invoices := &fakeInvoiceRepo{}
	return NewHistoryUseCase(invoices, zerolog.Nop()), invoices
}

func TestHistoryList_FiltersErroneous(t *testing.T) {
	uc, invoices := historyFixture()

	first := &entity.InvoiceRecord{InvoicingCompany: "Acme Consulting", Number: 1}
	second := &entity.InvoiceRecord{InvoicingCompany: "Acme Consulting", Number: 2}
	require.NoError(t, invoices.Create(first))
	require.NoError(t, invoices.Create(second))
	require.NoError(t, uc.SetErroneous(first.ID, true))

	visible, err := uc.List("Acme Consulting", false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, 2, visible[0].Number)

	all, err := uc.List("Acme Consulting", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestHistoryList_CompanyRequired(t *testing.T) {
	uc, _ := historyFixture()

	_, err := uc.List("  ", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryNextNumber(t *testing.T) {
	uc, invoices := historyFixture()

	n, err := uc.NextNumber("Acme Consulting")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, invoices.Create(&entity.InvoiceRecord{
		InvoicingCompany: "Acme Consulting", Number: 4,
	}))
	n, err = uc.NextNumber("Acme Consulting")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestHistorySetErroneous_UnknownID(t *testing.T) {
	uc, _ := historyFixture()

	err := uc.SetErroneous(42, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
