package application

import (
	"fmt"
	"time"

	"github.com/partsdesk/partsdesk/internal/domain"
)

// Store holds the session collections. It is owned by a single goroutine;
// nothing here locks.
type Store struct {
	Products  []*domain.Product
	Customers []domain.Customer
	Sales     []*domain.Sale
	Payments  []*domain.Payment
	Shipments []*domain.Shipment

	nextProductID int
	nextSaleID    int
	now           func() time.Time
}

// NewStore creates an empty store seeded with products.
func NewStore(products []*domain.Product) *Store {
	s := &Store{Products: products, now: time.Now}
	s.seedProductIDs()
	return s
}

// StoreFromSnapshot rebuilds a store from previously saved collections.
func StoreFromSnapshot(snap *domain.Snapshot) *Store {
	s := &Store{
		Products:  snap.Products,
		Customers: snap.Customers,
		Sales:     snap.Sales,
		Payments:  snap.Payments,
		Shipments: snap.Shipments,
		now:       time.Now,
	}
	for _, sale := range snap.Sales {
		if sale.ID >= s.nextSaleID {
			s.nextSaleID = sale.ID + 1
		}
	}
	s.seedProductIDs()
	return s
}

// seedProductIDs moves the product counter past every id in the catalog and
// every id a sale line still refers to, so a removed product's id is never
// handed out again.
func (s *Store) seedProductIDs() {
	bump := func(id int) {
		if id >= s.nextProductID {
			s.nextProductID = id + 1
		}
	}
	for _, p := range s.Products {
		bump(p.ID)
	}
	for _, sale := range s.Sales {
		for _, l := range sale.Lines {
			bump(l.ProductID)
		}
	}
}

// SetClock replaces the time source, for tests.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

func (s *Store) Now() time.Time { return s.now() }

// Snapshot exposes the collections for persistence.
func (s *Store) Snapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Customers: s.Customers,
		Products:  s.Products,
		Sales:     s.Sales,
		Payments:  s.Payments,
		Shipments: s.Shipments,
	}
}

func (s *Store) product(id int) (*domain.Product, int, error) {
	for i, p := range s.Products {
		if p.ID == id {
			return p, i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
}

func (s *Store) customer(key string) (domain.Customer, int, error) {
	for i, c := range s.Customers {
		if c.Key() == key {
			return c, i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: customer %s", domain.ErrNotFound, key)
}

func (s *Store) hasPending(customerKey string) bool {
	for _, p := range s.Payments {
		if !p.Completed && p.Customer != nil && p.Customer.Key() == customerKey {
			return true
		}
	}
	return false
}

func (s *Store) takeProductID() int {
	id := s.nextProductID
	s.nextProductID++
	return id
}

func (s *Store) takeSaleID() int {
	id := s.nextSaleID
	s.nextSaleID++
	return id
}
