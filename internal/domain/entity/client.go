package entity

// Client is the billed party. Same lifecycle as InvoicingCompany: unique
// name, full-replace updates, no deletion.
type Client struct {
	Name    string
	Address string
}
