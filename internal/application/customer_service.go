package application

import (
	"fmt"
	"slices"
	"strings"

	"github.com/partsdesk/partsdesk/internal/domain"
)

// CustomerService owns the customer registry.
type CustomerService struct {
	store *Store
}

func NewCustomerService(store *Store) *CustomerService {
	return &CustomerService{store: store}
}

func (s *CustomerService) RegisterIndividual(email, address, phone, fullName, nationalID string) (*domain.Individual, error) {
	c, err := domain.NewIndividual(email, address, phone, fullName, nationalID)
	if err != nil {
		return nil, err
	}
	if s.Exists(domain.KindIndividual, c.NationalID) {
		return nil, fmt.Errorf("%w: national ID %s", domain.ErrUniqueness, c.NationalID)
	}
	s.store.Customers = append(s.store.Customers, c)
	return c, nil
}

func (s *CustomerService) RegisterOrganization(email, address, phone, legalName, taxID, contactName, contactPhone, contactEmail string) (*domain.Organization, error) {
	c, err := domain.NewOrganization(email, address, phone, legalName, taxID, contactName, contactPhone, contactEmail)
	if err != nil {
		return nil, err
	}
	if s.Exists(domain.KindOrganization, c.TaxID) {
		return nil, fmt.Errorf("%w: tax ID %s", domain.ErrUniqueness, c.TaxID)
	}
	s.store.Customers = append(s.store.Customers, c)
	return c, nil
}

// Exists reports whether id is taken within kind. The two kinds do not share
// an identifier namespace.
func (s *CustomerService) Exists(kind domain.CustomerKind, id string) bool {
	_, _, err := s.store.customer(domain.CustomerKey(kind, strings.TrimSpace(id)))
	return err == nil
}

// FindByIdentifier returns the first customer whose national ID or tax ID is id.
func (s *CustomerService) FindByIdentifier(id string) (domain.Customer, error) {
	id = strings.TrimSpace(id)
	for _, c := range s.store.Customers {
		if c.Identifier() == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no customer with identifier %q", domain.ErrNotFound, id)
}

// FindByEmail returns the first customer of either kind with the email.
func (s *CustomerService) FindByEmail(email string) (domain.Customer, error) {
	email = strings.TrimSpace(email)
	for _, c := range s.store.Customers {
		if c.ContactInfo().Email == email {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no customer with email %q", domain.ErrNotFound, email)
}

func (s *CustomerService) Get(key string) (domain.Customer, error) {
	c, _, err := s.store.customer(key)
	return c, err
}

func (s *CustomerService) All() []domain.Customer {
	return s.store.Customers
}

func (s *CustomerService) Update(key string, field domain.CustomerField, value string) error {
	c, _, err := s.store.customer(key)
	if err != nil {
		return err
	}
	return c.Set(field, value)
}

// Remove deletes a customer unless a payment of theirs is still pending.
func (s *CustomerService) Remove(key string) error {
	c, i, err := s.store.customer(key)
	if err != nil {
		return err
	}
	if s.store.hasPending(key) {
		return fmt.Errorf("%w: %s has a pending payment", domain.ErrStateConflict, c.DisplayName())
	}
	s.store.Customers = slices.Delete(s.store.Customers, i, i+1)
	return nil
}
