package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
	"github.com/jhoicas/invoice-desk/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements CompanyRepository on SQLite.
type CompanyRepo struct {
	db *gorm.DB
}

// NewCompanyRepository builds the adapter.
func NewCompanyRepository(db *gorm.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create inserts a company; a duplicate name maps to domain.ErrAlreadyExists.
func (r *CompanyRepo) Create(company *entity.InvoicingCompany) error {
	row := companyRow{
		Name:  company.Name,
		KvK:   company.KvK,
		VATNr: company.VATNumber,
		Bank:  company.Bank,
		IBAN:  company.IBAN,
		BIC:   company.BIC,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("insert company: %w", translateError(err))
	}
	return nil
}

// GetByName returns (nil, nil) when the company does not exist.
func (r *CompanyRepo) GetByName(name string) (*entity.InvoicingCompany, error) {
	var row companyRow
	err := r.db.Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return row.toEntity(), nil
}

// Update replaces every field except the name.
func (r *CompanyRepo) Update(company *entity.InvoicingCompany) error {
	res := r.db.Model(&companyRow{}).
		Where("name = ?", company.Name).
		Updates(map[string]any{
			"kvk":    company.KvK,
			"vat_nr": company.VATNumber,
			"bank":   company.Bank,
			"iban":   company.IBAN,
			"bic":    company.BIC,
		})
	if res.Error != nil {
		return fmt.Errorf("update company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: invoicing company %q", domain.ErrNotFound, company.Name)
	}
	return nil
}

// ListNames returns company names in insertion order.
func (r *CompanyRepo) ListNames() ([]string, error) {
	var names []string
	if err := r.db.Model(&companyRow{}).Order("id").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return names, nil
}
