package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
	"github.com/jhoicas/invoice-desk/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implements ClientRepository on SQLite.
type ClientRepo struct {
	db *gorm.DB
}

// NewClientRepository builds the adapter.
func NewClientRepository(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// Create inserts a client; a duplicate name maps to domain.ErrAlreadyExists.
func (r *ClientRepo) Create(client *entity.Client) error {
	row := clientRow{Name: client.Name, Address: client.Address}
	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("insert client: %w", translateError(err))
	}
	return nil
}

// GetByName returns (nil, nil) when the client does not exist.
func (r *ClientRepo) GetByName(name string) (*entity.Client, error) {
	var row clientRow
	err := r.db.Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return row.toEntity(), nil
}

// Update replaces the address.
func (r *ClientRepo) Update(client *entity.Client) error {
	res := r.db.Model(&clientRow{}).
		Where("name = ?", client.Name).
		Update("address", client.Address)
	if res.Error != nil {
		return fmt.Errorf("update client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: client company %q", domain.ErrNotFound, client.Name)
	}
	return nil
}

// ListNames returns client names in insertion order.
func (r *ClientRepo) ListNames() ([]string, error) {
	var names []string
	if err := r.db.Model(&clientRow{}).Order("id").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return names, nil
}
