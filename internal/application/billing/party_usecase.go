package billing

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-desk/internal/domain"
	"github.com/jhoicas/invoice-desk/internal/domain/entity"
	"github.com/jhoicas/invoice-desk/internal/domain/repository"
)

// PartyUseCase manages the invoicing-company and client profiles. Both
// parties share the same lifecycle: add once, update everything but the
// name, never delete.
type PartyUseCase struct {
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	log         zerolog.Logger
}

// NewPartyUseCase wires the party CRUD.
func NewPartyUseCase(
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	log zerolog.Logger,
) *PartyUseCase {
	return &PartyUseCase{companyRepo: companyRepo, clientRepo: clientRepo, log: log}
}

// AddCompany registers a new invoicing company. Every field is required.
func (uc *PartyUseCase) AddCompany(company *entity.InvoicingCompany) error {
	trimCompany(company)
	if company.Name == "" || company.KvK == "" || company.VATNumber == "" ||
		company.Bank == "" || company.IBAN == "" || company.BIC == "" {
		return fmt.Errorf("%w: all company fields are required", domain.ErrInvalidInput)
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return err
	}
	uc.log.Info().Str("company", company.Name).Msg("invoicing company added")
	return nil
}

// UpdateCompany replaces every field except the name.
func (uc *PartyUseCase) UpdateCompany(company *entity.InvoicingCompany) error {
	trimCompany(company)
	if company.Name == "" || company.KvK == "" || company.VATNumber == "" ||
		company.Bank == "" || company.IBAN == "" || company.BIC == "" {
		return fmt.Errorf("%w: all company fields are required", domain.ErrInvalidInput)
	}
	if err := uc.companyRepo.Update(company); err != nil {
		return err
	}
	uc.log.Info().Str("company", company.Name).Msg("invoicing company updated")
	return nil
}

// Company looks up one invoicing company by name.
func (uc *PartyUseCase) Company(name string) (*entity.InvoicingCompany, error) {
	company, err := uc.companyRepo.GetByName(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: invoicing company %q", domain.ErrNotFound, name)
	}
	return company, nil
}

// CompanyNames lists the registered invoicing companies.
func (uc *PartyUseCase) CompanyNames() ([]string, error) {
	return uc.companyRepo.ListNames()
}

// AddClient registers a new client. Name and address are required.
func (uc *PartyUseCase) AddClient(client *entity.Client) error {
	trimClient(client)
	if client.Name == "" || client.Address == "" {
		return fmt.Errorf("%w: client name and address are required", domain.ErrInvalidInput)
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return err
	}
	uc.log.Info().Str("client", client.Name).Msg("client added")
	return nil
}

// UpdateClient replaces the client's address.
func (uc *PartyUseCase) UpdateClient(client *entity.Client) error {
	trimClient(client)
	if client.Name == "" || client.Address == "" {
		return fmt.Errorf("%w: client name and address are required", domain.ErrInvalidInput)
	}
	if err := uc.clientRepo.Update(client); err != nil {
		return err
	}
	uc.log.Info().Str("client", client.Name).Msg("client updated")
	return nil
}

// Client looks up one client by name.
func (uc *PartyUseCase) Client(name string) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByName(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client company %q", domain.ErrNotFound, name)
	}
	return client, nil
}

// ClientNames lists the registered clients.
func (uc *PartyUseCase) ClientNames() ([]string, error) {
	return uc.clientRepo.ListNames()
}

func trimCompany(c *entity.InvoicingCompany) {
	c.Name = strings.TrimSpace(c.Name)
	c.KvK = strings.TrimSpace(c.KvK)
	c.VATNumber = strings.TrimSpace(c.VATNumber)
	c.Bank = strings.TrimSpace(c.Bank)
	c.IBAN = strings.TrimSpace(c.IBAN)
	c.BIC = strings.TrimSpace(c.BIC)
}

func trimClient(c *entity.Client) {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
}
