package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a vehicle part held in the catalog.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Inventory   int             `json:"inventory"`
	Compatible  []string        `json:"compatible_vehicles"`
}

// NewProduct validates the fields of a product about to enter the catalog.
// New products must arrive with stock; feed products may be sold out.
func NewProduct(id int, name, description string, price decimal.Decimal, category string, inventory int, compatible []string) (*Product, error) {
	p := &Product{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
		Category:    strings.TrimSpace(category),
		Inventory:   inventory,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if inventory <= 0 {
		return nil, invalid("inventory", "must be a positive integer")
	}
	for _, v := range compatible {
		if err := p.AddCompatible(v); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return invalid("name", "must not be empty")
	}
	if p.Description == "" {
		return invalid("description", "must not be empty")
	}
	if p.Category == "" {
		return invalid("category", "must not be empty")
	}
	if p.Price.IsNegative() {
		return invalid("price", "must be non-negative")
	}
	if p.Inventory < 0 {
		return invalid("inventory", "must be non-negative")
	}
	return nil
}

// IsCompatible reports whether vehicle is already listed, ignoring case.
func (p *Product) IsCompatible(vehicle string) bool {
	for _, v := range p.Compatible {
		if strings.EqualFold(v, vehicle) {
			return true
		}
	}
	return false
}

func (p *Product) AddCompatible(vehicle string) error {
	vehicle = strings.TrimSpace(vehicle)
	if vehicle == "" {
		return invalid("vehicle", "must not be empty")
	}
	if p.IsCompatible(vehicle) {
		return fmt.Errorf("%w: vehicle %q is already compatible with %s", ErrUniqueness, vehicle, p.Name)
	}
	p.Compatible = append(p.Compatible, vehicle)
	return nil
}

// RemoveCompatible drops the vehicle at the zero-based index.
func (p *Product) RemoveCompatible(index int) (string, error) {
	if index < 0 || index >= len(p.Compatible) {
		return "", invalid("index", fmt.Sprintf("must be between 1 and %d", len(p.Compatible)))
	}
	removed := p.Compatible[index]
	p.Compatible = append(p.Compatible[:index:index], p.Compatible[index+1:]...)
	return removed, nil
}

// ProductField names an updatable product attribute.
type ProductField string

const (
	ProductName        ProductField = "Name"
	ProductDescription ProductField = "Description"
	ProductPrice       ProductField = "Price"
	ProductCategory    ProductField = "Category"
	ProductInventory   ProductField = "Inventory"
)

// ProductFields lists the updatable attributes in menu order.
var ProductFields = []ProductField{
	ProductName, ProductDescription, ProductPrice, ProductCategory, ProductInventory,
}

// Set parses value for field and applies it in place. On error the product
// is left unchanged.
func (p *Product) Set(field ProductField, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case ProductName, ProductDescription, ProductCategory:
		if value == "" {
			return invalid(field.Label(), "must not be empty")
		}
		switch field {
		case ProductName:
			p.Name = value
		case ProductDescription:
			p.Description = value
		default:
			p.Category = value
		}
	case ProductPrice:
		price, err := ParseAmount(value)
		if err != nil {
			return invalid("price", "must be a number")
		}
		if price.IsNegative() {
			return invalid("price", "must be non-negative")
		}
		p.Price = price
	case ProductInventory:
		n, err := ParseCount(value)
		if err != nil {
			return invalid("inventory", "must be a non-negative integer")
		}
		p.Inventory = n
	default:
		return invalid("field", fmt.Sprintf("unknown product field %q", field))
	}
	return nil
}

// ProductFilter selects products. Zero-valued criteria match everything.
type ProductFilter struct {
	Category     string
	Name         string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MinInventory *int
}

// Validate rejects an inverted price range.
func (f ProductFilter) Validate() error {
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return invalid("price range", "minimum exceeds maximum")
	}
	return nil
}

func (f ProductFilter) Match(p *Product) bool {
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Name != "" && !containsFold(p.Name, f.Name) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinInventory != nil && p.Inventory < *f.MinInventory {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
