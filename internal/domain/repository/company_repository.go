package repository

import "github.com/jhoicas/invoice-desk/internal/domain/entity"

// CompanyRepository is the persistence port for InvoicingCompany.
// The implementation lives in infrastructure.
type CompanyRepository interface {
	// Create inserts a new company. Returns domain.ErrAlreadyExists when the
	// name is taken.
	Create(company *entity.InvoicingCompany) error
	// GetByName returns (nil, nil) when the company does not exist.
	GetByName(name string) (*entity.InvoicingCompany, error)
	// Update replaces every field except the name. Returns domain.ErrNotFound
	// for an unknown company.
	Update(company *entity.InvoicingCompany) error
	// ListNames returns all company names in insertion order.
	ListNames() ([]string, error)
}
