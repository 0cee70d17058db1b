package menu

import (
	"fmt"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/domain"
)

func (m *Menu) payments() error {
	return m.loop("Payments", "Back", []entry{
		{"List pending payments", m.listPendingPayments},
		{"Resolve pending payment", m.resolvePayment},
		{"Search payments", m.searchPayments},
		{"List all payments", m.listPayments},
	})
}

func (m *Menu) listPendingPayments() error {
	m.print(tui.RenderPayments(m.sess.Payments.ListPending()))
	return nil
}

func (m *Menu) listPayments() error {
	m.print(tui.RenderPayments(m.sess.Payments.All()))
	return nil
}

func (m *Menu) pickInstrument() (domain.Instrument, error) {
	options := make([]string, len(domain.Instruments))
	for i, in := range domain.Instruments {
		options[i] = in.String()
	}
	i, err := m.p.choose("Payment instrument", options)
	if err != nil {
		return "", err
	}
	return domain.Instruments[i], nil
}

func (m *Menu) resolvePayment() error {
	pending := m.sess.Payments.ListPending()
	if len(pending) == 0 {
		return fmt.Errorf("%w: no pending payments", domain.ErrNotFound)
	}
	options := make([]string, len(pending))
	for i, p := range pending {
		due := ""
		if p.DueDate != nil {
			due = "due " + p.DueDate.Format(domain.DateLayout)
		}
		options[i] = fmt.Sprintf("%s  sale #%d  %s  %s", p.Customer.DisplayName(), p.Sale.ID, p.Amount.StringFixed(2), due)
	}
	i, err := m.p.choose("Payment to resolve", options)
	if err != nil {
		return err
	}
	instrument, err := m.pickInstrument()
	if err != nil {
		return err
	}

	p, err := m.sess.Payments.Resolve(pending[i].ID, instrument)
	if err != nil {
		return err
	}
	m.ok("Payment of %s from %s completed with %s", p.Amount.StringFixed(2), p.Customer.DisplayName(), instrument)
	return nil
}

func (m *Menu) searchPayments() error {
	i, err := m.p.choose("Search by", []string{"Customer", "Date", "Payment instrument", "Currency"})
	if err != nil {
		return err
	}
	var criterion domain.PaymentCriterion
	switch i {
	case 0:
		c, err := m.pickCustomer("Customer")
		if err != nil {
			return err
		}
		criterion.CustomerKey = c.Key()
	case 1:
		day, err := m.p.day("Date")
		if err != nil {
			return err
		}
		criterion.Date = &day
	case 2:
		instrument, err := m.pickInstrument()
		if err != nil {
			return err
		}
		criterion.Instrument = string(instrument)
	case 3:
		currencies := []domain.Currency{domain.Bolivares, domain.USD}
		j, err := m.p.choose("Currency", []string{string(domain.Bolivares), string(domain.USD)})
		if err != nil {
			return err
		}
		criterion.Currency = string(currencies[j])
	}
	m.print(tui.RenderPayments(m.sess.Payments.Search(criterion)))
	return nil
}

func (m *Menu) shipments() error {
	return m.loop("Shipments", "Back", []entry{
		{"List pending shipments", m.listPendingShipments},
		{"Resolve pending shipment", m.resolveShipment},
		{"Search shipments", m.searchShipments},
		{"List all shipments", m.listShipments},
	})
}

func (m *Menu) listPendingShipments() error {
	m.print(tui.RenderShipments(m.sess.Shipments.ListPending()))
	return nil
}

func (m *Menu) listShipments() error {
	m.print(tui.RenderShipments(m.sess.Shipments.All()))
	return nil
}

func (m *Menu) resolveShipment() error {
	pending := m.sess.Shipments.ListPending()
	if len(pending) == 0 {
		return fmt.Errorf("%w: no pending shipments", domain.ErrNotFound)
	}
	options := make([]string, len(pending))
	for i, s := range pending {
		options[i] = fmt.Sprintf("%s  sale #%d  %s", s.Customer.DisplayName(), s.Sale.ID, s.Service)
	}
	i, err := m.p.choose("Shipment to resolve", options)
	if err != nil {
		return err
	}
	s := pending[i]

	cost, err := m.p.amount("Service cost")
	if err != nil {
		return err
	}
	var courier *domain.Courier
	if s.RequiresCourier() {
		courier = &domain.Courier{}
		if courier.Name, err = m.p.text("Courier name"); err != nil {
			return err
		}
		if courier.Phone, err = m.p.text("Courier phone"); err != nil {
			return err
		}
		if courier.Plate, err = m.p.text("Courier plate"); err != nil {
			return err
		}
	}

	if _, err := m.sess.Shipments.Resolve(s.ID, cost, courier); err != nil {
		return err
	}
	m.ok("Shipment for sale #%d completed", s.Sale.ID)
	return nil
}

func (m *Menu) searchShipments() error {
	i, err := m.p.choose("Search by", []string{"Customer", "Date"})
	if err != nil {
		return err
	}
	var criterion domain.ShipmentCriterion
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
	m.print(tui.RenderShipments(m.sess.Shipments.Search(criterion)))
	return nil
}
