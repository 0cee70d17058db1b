package application

import (
	"iter"
	"slices"

	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// CatalogService owns the product collection.
type CatalogService struct {
	store *Store
}

func NewCatalogService(store *Store) *CatalogService {
	return &CatalogService{store: store}
}

// Add creates a product with the next unused id and appends it. Ids of
// removed products are never reused.
func (s *CatalogService) Add(name, description string, price decimal.Decimal, category string, inventory int, compatible []string) (*domain.Product, error) {
	p, err := domain.NewProduct(s.store.nextProductID, name, description, price, category, inventory, compatible)
	if err != nil {
		return nil, err
	}
	s.store.takeProductID()
	s.store.Products = append(s.store.Products, p)
	return p, nil
}

// Find yields the products matching filter, in catalog order. The sequence
// reads the catalog lazily and may be ranged over again to restart it.
func (s *CatalogService) Find(filter domain.ProductFilter) (iter.Seq[*domain.Product], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(*domain.Product) bool) {
		for _, p := range s.store.Products {
			if filter.Match(p) && !yield(p) {
				return
			}
		}
	}, nil
}

// Search is Find collected into a slice.
func (s *CatalogService) Search(filter domain.ProductFilter) ([]*domain.Product, error) {
	seq, err := s.Find(filter)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

func (s *CatalogService) All() []*domain.Product {
	return s.store.Products
}

// InStock lists products that can still be added to a cart.
func (s *CatalogService) InStock() []*domain.Product {
	var out []*domain.Product
	for _, p := range s.store.Products {
		if p.Inventory > 0 {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogService) Get(id int) (*domain.Product, error) {
	p, _, err := s.store.product(id)
	return p, err
}

func (s *CatalogService) Update(id int, field domain.ProductField, value string) error {
	p, _, err := s.store.product(id)
	if err != nil {
		return err
	}
	return p.Set(field, value)
}

func (s *CatalogService) AddCompatible(id int, vehicle string) error {
	p, _, err := s.store.product(id)
	if err != nil {
		return err
	}
	return p.AddCompatible(vehicle)
}

// RemoveCompatible drops the vehicle at the zero-based index.
func (s *CatalogService) RemoveCompatible(id, index int) (string, error) {
	p, _, err := s.store.product(id)
	if err != nil {
		return "", err
	}
	return p.RemoveCompatible(index)
}

// Remove deletes the product. Past sales keep their own copy of the line.
func (s *CatalogService) Remove(id int) error {
	_, i, err := s.store.product(id)
	if err != nil {
		return err
	}
	s.store.Products = slices.Delete(s.store.Products, i, i+1)
	return nil
}
