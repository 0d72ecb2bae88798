package dto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemoveItem(t *testing.T) {
	draft := &InvoiceDraft{}

	first := draft.AddItem(DraftItem{Description: "one"})
	second := draft.AddItem(DraftItem{Description: "two"})
	third := draft.AddItem(DraftItem{Description: "three"})
	require.Len(t, draft.Items, 3)
	assert.NotEqual(t, first, second)

	// Removing the middle row keeps the order of the others.
	assert.True(t, draft.RemoveItem(second))
	require.Len(t, draft.Items, 2)
	assert.Equal(t, first, draft.Items[0].ID)
	assert.Equal(t, third, draft.Items[1].ID)

	assert.False(t, draft.RemoveItem("no-such-id"))
}

func TestSaveAndLoadDraft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")

	draft := &InvoiceDraft{
		InvoicingCompany: "Acme Consulting",
		ClientCompany:    "Globex B.V.",
		InvoiceDate:      "15-03-2026",
		VATExempt:        true,
	}
	draft.AddItem(DraftItem{Description: "Consulting", Hours: "10", PriceExc: "500.00", VAT: "105.00"})
	require.NoError(t, draft.Save(path))

	loaded, err := LoadDraft(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Consulting", loaded.InvoicingCompany)
	assert.Equal(t, "15-03-2026", loaded.InvoiceDate)
	assert.True(t, loaded.VATExempt)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "500.00", loaded.Items[0].PriceExc)
	assert.NotEmpty(t, loaded.Items[0].ID)
}

func TestLoadDraft_BackfillsItemIDs(t *testing.T) {
	// Hand-written drafts can omit the ids; loading assigns them.
	path := filepath.Join(t.TempDir(), "draft.json")
	raw := `{
  "invoicing_company": "Acme Consulting",
  "client_company": "Globex B.V.",
  "items": [
    {"description": "Consulting", "hours": "10", "price_exc": "500.00", "vat": "105.00"}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	loaded, err := LoadDraft(path)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.NotEmpty(t, loaded.Items[0].ID)
}

func TestLoadDraft_MissingFile(t *testing.T) {
	_, err := LoadDraft(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadDraft_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadDraft(path)
	assert.Error(t, err)
}
