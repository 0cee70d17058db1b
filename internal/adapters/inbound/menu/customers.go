package menu

import (
	"fmt"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/domain"
)

func (m *Menu) customers() error {
	return m.loop("Customers", "Back", []entry{
		{"List customers", m.listCustomers},
		{"Register individual", m.registerIndividual},
		{"Register organization", m.registerOrganization},
		{"Search customer", m.searchCustomer},
		{"Update customer", m.updateCustomer},
		{"Remove customer", m.removeCustomer},
	})
}

func (m *Menu) listCustomers() error {
	m.print(tui.RenderCustomers(m.sess.Customers.All()))
	return nil
}

// contact asks for the fields both customer kinds share.
func (m *Menu) contact() (email, address, phone string, err error) {
	if email, err = m.p.text("Email"); err != nil {
		return
	}
	if address, err = m.p.text("Address"); err != nil {
		return
	}
	phone, err = m.p.valid("Phone (11 digits)", domain.ValidatePhone)
	return
}

// unused rejects an identifier already registered for kind.
func (m *Menu) unused(kind domain.CustomerKind, check func(string) error) func(string) error {
	return func(id string) error {
		if err := check(id); err != nil {
			return err
		}
		if m.sess.Customers.Exists(kind, id) {
			return fmt.Errorf("%w: %s %s", domain.ErrUniqueness, kind, id)
		}
		return nil
	}
}

func (m *Menu) registerIndividual() error {
	email, address, phone, err := m.contact()
	if err != nil {
		return err
	}
	name, err := m.p.text("Full name")
	if err != nil {
		return err
	}
	id, err := m.p.valid("National ID", m.unused(domain.KindIndividual, domain.ValidateNationalID))
	if err != nil {
		return err
	}

	c, err := m.sess.Customers.RegisterIndividual(email, address, phone, name, id)
	if err != nil {
		return err
	}
	m.ok("Registered %s", c.DisplayName())
	return nil
}

func (m *Menu) registerOrganization() error {
	email, address, phone, err := m.contact()
	if err != nil {
		return err
	}
	name, err := m.p.text("Legal name")
	if err != nil {
		return err
	}
	id, err := m.p.valid("Tax ID", m.unused(domain.KindOrganization, domain.ValidateTaxID))
	if err != nil {
		return err
	}
	contactName, err := m.p.text("Contact name")
	if err != nil {
		return err
	}
	contactPhone, err := m.p.valid("Contact phone (11 digits)", domain.ValidatePhone)
	if err != nil {
		return err
	}
	contactEmail, err := m.p.text("Contact email")
	if err != nil {
		return err
	}

	c, err := m.sess.Customers.RegisterOrganization(email, address, phone, name, id, contactName, contactPhone, contactEmail)
	if err != nil {
		return err
	}
	m.ok("Registered %s", c.DisplayName())
	return nil
}

func (m *Menu) searchCustomer() error {
	i, err := m.p.choose("Search by", []string{"National ID or tax ID", "Email"})
	if err != nil {
		return err
	}
	var c domain.Customer
	if i == 0 {
		id, err := m.p.text("Identifier")
		if err != nil {
			return err
		}
		c, err = m.sess.Customers.FindByIdentifier(id)
		if err != nil {
			return err
		}
	} else {
		email, err := m.p.text("Email")
		if err != nil {
			return err
		}
		c, err = m.sess.Customers.FindByEmail(email)
		if err != nil {
			return err
		}
	}
	m.print(tui.RenderCustomer(c))
	return nil
}

// pickCustomer lets the user select one registered customer.
func (m *Menu) pickCustomer(title string) (domain.Customer, error) {
	all := m.sess.Customers.All()
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: no customers registered", domain.ErrNotFound)
	}
	options := make([]string, len(all))
	for i, c := range all {
		options[i] = fmt.Sprintf("%s (%s %s)", c.DisplayName(), c.Kind(), c.Identifier())
	}
	i, err := m.p.choose(title, options)
	if err != nil {
		return nil, err
	}
	return all[i], nil
}

func (m *Menu) updateCustomer() error {
	c, err := m.pickCustomer("Customer to update")
	if err != nil {
		return err
	}
	fields := c.Fields()
	options := make([]string, len(fields))
	for i, f := range fields {
		options[i] = capitalize(f.Label())
	}
	i, err := m.p.choose("Field", options)
	if err != nil {
		return err
	}
	field := fields[i]

	err = m.attempt(func() error {
		value, err := m.p.line("New " + field.Label())
		if err != nil {
			return err
		}
		return m.sess.Customers.Update(c.Key(), field, value)
	})
	if err != nil {
		return err
	}
	m.print(tui.RenderCustomer(c))
	return nil
}

func (m *Menu) removeCustomer() error {
	c, err := m.pickCustomer("Customer to remove")
	if err != nil {
		return err
	}
	sure, err := m.p.confirm(fmt.Sprintf("Remove %s", c.DisplayName()))
	if err != nil || !sure {
		return err
	}
	if err := m.sess.Customers.Remove(c.Key()); err != nil {
		return err
	}
	m.ok("Removed %s", c.DisplayName())
	return nil
}
