package menu

import (
	"fmt"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/application"
	"github.com/partsdesk/partsdesk/internal/domain"
)

func (m *Menu) sales() error {
	return m.loop("Sales", "Back", []entry{
		{"Register sale", m.registerSale},
		{"List sales", m.listSales},
		{"Search sales", m.searchSales},
	})
}

func (m *Menu) registerSale() error {
	c, err := m.pickCustomer("Customer")
	if err != nil {
		return err
	}
	d, err := m.sess.Sales.Start(c.Key())
	if err != nil {
		return err
	}

	if err := m.fillCart(d); err != nil {
		return err
	}
	if err := m.choosePlan(d); err != nil {
		return err
	}

	instruments := make([]string, len(domain.Instruments))
	for i, in := range domain.Instruments {
		instruments[i] = in.String()
	}
	i, err := m.p.choose("Payment instrument", instruments)
	if err != nil {
		return err
	}
	d.Instrument = domain.Instruments[i]

	methods := make([]string, len(domain.ShippingMethods))
	for i, s := range domain.ShippingMethods {
		methods[i] = string(s)
	}
	if i, err = m.p.choose("Shipping method", methods); err != nil {
		return err
	}
	d.Shipping = domain.ShippingMethods[i]

	m.print(tui.RenderPreview(d.Cart.Lines(), m.sess.Sales.Preview(d), d.Instrument.Currency()))
	sure, err := m.p.confirm("Confirm sale")
	if err != nil {
		return err
	}
	if !sure {
		m.ok("Sale discarded, inventory untouched")
		return nil
	}

	receipt, err := m.sess.Sales.Commit(d)
	if err != nil {
		return err
	}
	m.print(tui.RenderSale(receipt.Sale))
	m.print(tui.RenderPayments(receipt.Payments))
	m.ok("Sale #%d registered, shipment pending", receipt.Sale.ID)
	return nil
}

// fillCart adds products until the user stops or nothing is left in stock.
func (m *Menu) fillCart(d *application.Draft) error {
	for {
		var available []*domain.Product
		for _, p := range m.sess.Catalog.InStock() {
			if d.Cart.Available(p) > 0 {
				available = append(available, p)
			}
		}
		if len(available) == 0 {
			if d.Cart.Empty() {
				return fmt.Errorf("%w: no products in stock", domain.ErrNotFound)
			}
			m.ok("Nothing else in stock")
			return nil
		}

		options := make([]string, len(available))
		for i, p := range available {
			options[i] = fmt.Sprintf("#%d %s  %s  (%d available)", p.ID, p.Name, p.Price.StringFixed(2), d.Cart.Available(p))
		}
		i, err := m.p.choose("Add to cart", options)
		if err != nil {
			return err
		}
		p := available[i]
		qty, err := m.p.number("Quantity", 1, d.Cart.Available(p))
		if err != nil {
			return err
		}
		if err := m.sess.Sales.AddItem(d, p.ID, qty); err != nil {
			return err
		}

		more, err := m.p.confirm("Add another product")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// choosePlan offers credit to organizations; individuals always pay cash.
func (m *Menu) choosePlan(d *application.Draft) error {
	if d.Customer.Kind() != domain.KindOrganization {
		return m.sess.Sales.SetPlan(d, domain.CashPlan())
	}
	i, err := m.p.choose("Payment terms", []string{
		fmt.Sprintf("%s (%s%% discount)", domain.CashTerms, m.sess.Config.Rates().CashDiscount.Shift(2).String()),
		string(domain.CreditTerms),
	})
	if err != nil {
		return err
	}
	if i == 0 {
		return m.sess.Sales.SetPlan(d, domain.CashPlan())
	}

	terms := m.sess.Sales.CreditTerms()
	options := make([]string, len(terms))
	for i, days := range terms {
		options[i] = fmt.Sprintf("%d days", days)
	}
	j, err := m.p.choose("Credit term", options)
	if err != nil {
		return err
	}
	return m.sess.Sales.SetPlan(d, domain.CreditPlan(terms[j]))
}

func (m *Menu) listSales() error {
	m.print(tui.RenderSales(m.sess.Sales.All()))
	return nil
}

func (m *Menu) searchSales() error {
	i, err := m.p.choose("Search by", []string{"Customer", "Date"})
	if err != nil {
		return err
	}
	var criterion domain.SaleCriterion
	if i == 0 {
		c, err := m.pickCustomer("Customer")
		if err != nil {
			return err
		}
		criterion.CustomerKey = c.Key()
	} else {
		day, err := m.p.day("Date")
		if err != nil {
			return err
		}
		criterion.Date = &day
	}
	found := m.sess.Sales.Search(criterion)
	if len(found) == 0 {
		m.print(tui.RenderSales(nil))
	}
	for _, s := range found {
		m.print(tui.RenderSale(s))
	}
	return nil
}
