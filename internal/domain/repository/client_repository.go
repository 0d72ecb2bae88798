package repository

import "github.com/jhoicas/invoice-desk/internal/domain/entity"

// ClientRepository is the persistence port for Client.
type ClientRepository interface {
	// Create inserts a new client. Returns domain.ErrAlreadyExists when the
	// name is taken.
	Create(client *entity.Client) error
	// GetByName returns (nil, nil) when the client does not exist.
	GetByName(name string) (*entity.Client, error)
	// Update replaces the address. Returns domain.ErrNotFound for an unknown
	// client.
	Update(client *entity.Client) error
	// ListNames returns all client names in insertion order.
	ListNames() ([]string, error)
}
