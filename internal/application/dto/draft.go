package dto

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// InvoiceDraft mirrors the entry form: every value arrives as the string the
// operator typed. Parsing and validation happen in the billing use cases,
// never here.
type InvoiceDraft struct {
	InvoicingCompany string      `json:"invoicing_company"`
	ClientCompany    string      `json:"client_company"`
	InvoiceDate      string      `json:"invoice_date,omitempty"` // dd-mm-yyyy; empty = today
	ExpiryDate       string      `json:"expiry_date,omitempty"`  // dd-mm-yyyy; empty = today + payment term
	Reference        string      `json:"reference,omitempty"`
	VATExempt        bool        `json:"vat_exempt,omitempty"`
	HourlyRate       string      `json:"hourly_rate,omitempty"` // overrides the configured default
	Items            []DraftItem `json:"items"`
}

// DraftItem is one editable row. ID is a stable identity assigned when the
// row is created, so rows can be removed without re-indexing anything by
// position.
type DraftItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Hours       string `json:"hours"`
	PriceExc    string `json:"price_exc"`
	VAT         string `json:"vat"`
}

// NewDraftItem creates an empty row with a fresh identity.
func NewDraftItem() DraftItem {
	return DraftItem{ID: uuid.New().String()}
}

// AddItem appends a row and returns its id.
func (d *InvoiceDraft) AddItem(item DraftItem) string {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	d.Items = append(d.Items, item)
	return item.ID
}

// RemoveItem deletes the row with the given id, preserving the order of the
// remaining rows. Returns false when no row has that id.
func (d *InvoiceDraft) RemoveItem(id string) bool {
	for i, item := range d.Items {
		if item.ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// LoadDraft reads a draft from a JSON file and backfills row identities for
// hand-written files that omit them.
func LoadDraft(path string) (*InvoiceDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	var draft InvoiceDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("parse draft %s: %w", path, err)
	}
	for i := range draft.Items {
		if draft.Items[i].ID == "" {
			draft.Items[i].ID = uuid.New().String()
		}
	}
	return &draft, nil
}

// Save writes the draft back to a JSON file, indented for hand editing.
func (d *InvoiceDraft) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}
