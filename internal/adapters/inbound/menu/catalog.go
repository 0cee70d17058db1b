package menu

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/domain"
)

func (m *Menu) products() error {
	return m.loop("Products", "Back", []entry{
		{"List products", m.listProducts},
		{"Add product", m.addProduct},
		{"Search products", m.searchProducts},
		{"Update product", m.updateProduct},
		{"Add compatible vehicle", m.addCompatible},
		{"Remove compatible vehicle", m.removeCompatible},
		{"Remove product", m.removeProduct},
	})
}

func (m *Menu) listProducts() error {
	m.print(tui.RenderProducts(m.sess.Catalog.All()))
	return nil
}

func (m *Menu) addProduct() error {
	name, err := m.p.text("Name")
	if err != nil {
		return err
	}
	description, err := m.p.text("Description")
	if err != nil {
		return err
	}
	price, err := m.p.amount("Price")
	if err != nil {
		return err
	}
	category, err := m.p.text("Category")
	if err != nil {
		return err
	}
	inventory, err := m.p.number("Inventory", 1, math.MaxInt)
	if err != nil {
		return err
	}

	var compatible []string
	for {
		v, err := m.p.line("Compatible vehicle (blank to finish)")
		if err != nil {
			return err
		}
		if v == "" {
			break
		}
		if slices.ContainsFunc(compatible, func(c string) bool { return strings.EqualFold(c, v) }) {
			m.fail(fmt.Errorf("%w: %s is already listed", domain.ErrUniqueness, v))
			continue
		}
		compatible = append(compatible, v)
	}

	p, err := m.sess.Catalog.Add(name, description, price, category, inventory, compatible)
	if err != nil {
		return err
	}
	m.ok("Added product #%d %s", p.ID, p.Name)
	return nil
}

func (m *Menu) searchProducts() error {
	var filter domain.ProductFilter
	i, err := m.p.choose("Search by", []string{"Category", "Name", "Price range", "Availability"})
	if err != nil {
		return err
	}
	switch i {
	case 0:
		if filter.Category, err = m.p.text("Category contains"); err != nil {
			return err
		}
	case 1:
		if filter.Name, err = m.p.text("Name contains"); err != nil {
			return err
		}
	case 2:
		err = m.attempt(func() error {
			lo, err := m.p.amount("Minimum price")
			if err != nil {
				return err
			}
			hi, err := m.p.amount("Maximum price")
			if err != nil {
				return err
			}
			filter.MinPrice, filter.MaxPrice = &lo, &hi
			return filter.Validate()
		})
		if err != nil {
			return err
		}
	case 3:
		n, err := m.p.number("Minimum units in stock", 0, math.MaxInt)
		if err != nil {
			return err
		}
		filter.MinInventory = &n
	}

	matches, err := m.sess.Catalog.Find(filter)
	if err != nil {
		return err
	}
	found := 0
	for p := range matches {
		m.print(tui.RenderProduct(p))
		found++
	}
	if found == 0 {
		m.print(tui.RenderProducts(nil))
	}
	return nil
}

// pickProduct lets the user select one of products.
func (m *Menu) pickProduct(title string, products []*domain.Product) (*domain.Product, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: no products to choose from", domain.ErrNotFound)
	}
	options := make([]string, len(products))
	for i, p := range products {
		options[i] = fmt.Sprintf("#%d %s (%d in stock)", p.ID, p.Name, p.Inventory)
	}
	i, err := m.p.choose(title, options)
	if err != nil {
		return nil, err
	}
	return products[i], nil
}

func (m *Menu) updateProduct() error {
	p, err := m.pickProduct("Product to update", m.sess.Catalog.All())
	if err != nil {
		return err
	}
	options := make([]string, len(domain.ProductFields))
	for i, f := range domain.ProductFields {
		options[i] = capitalize(f.Label())
	}
	i, err := m.p.choose("Field", options)
	if err != nil {
		return err
	}
	field := domain.ProductFields[i]

	err = m.attempt(func() error {
		value, err := m.p.line("New " + field.Label())
		if err != nil {
			return err
		}
		return m.sess.Catalog.Update(p.ID, field, value)
	})
	if err != nil {
		return err
	}
	m.print(tui.RenderProduct(p))
	return nil
}

func (m *Menu) addCompatible() error {
	p, err := m.pickProduct("Product", m.sess.Catalog.All())
	if err != nil {
		return err
	}
	var vehicle string
	err = m.attempt(func() error {
		if vehicle, err = m.p.text("Vehicle"); err != nil {
			return err
		}
		return m.sess.Catalog.AddCompatible(p.ID, vehicle)
	})
	if err != nil {
		return err
	}
	m.ok("%s now fits %s", p.Name, vehicle)
	return nil
}

func (m *Menu) removeCompatible() error {
	p, err := m.pickProduct("Product", m.sess.Catalog.All())
	if err != nil {
		return err
	}
	if len(p.Compatible) == 0 {
		return fmt.Errorf("%w: %s lists no compatible vehicles", domain.ErrNotFound, p.Name)
	}
	i, err := m.p.choose("Vehicle to remove", p.Compatible)
	if err != nil {
		return err
	}
	removed, err := m.sess.Catalog.RemoveCompatible(p.ID, i)
	if err != nil {
		return err
	}
	m.ok("Removed %s from %s", removed, p.Name)
	return nil
}

func (m *Menu) removeProduct() error {
	p, err := m.pickProduct("Product to remove", m.sess.Catalog.All())
	if err != nil {
		return err
	}
	sure, err := m.p.confirm(fmt.Sprintf("Remove %s", p.Name))
	if err != nil || !sure {
		return err
	}
	if err := m.sess.Catalog.Remove(p.ID); err != nil {
		return err
	}
	m.ok("Removed product #%d", p.ID)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
