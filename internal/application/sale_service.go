package application

import (
	"fmt"
	"time"

	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// SaleService runs the sale workflow: customer selection, cart, payment terms,
// instrument, shipping, computation and commit.
type SaleService struct {
	store *Store
	cfg   domain.Config
	rates domain.Rates
}

func NewSaleService(store *Store, cfg domain.Config) *SaleService {
	cfg = cfg.WithDefaults()
	return &SaleService{store: store, cfg: cfg, rates: cfg.Rates()}
}

// Draft is a sale in progress. Nothing in the store changes until Commit,
// so an abandoned draft leaves inventory untouched.
type Draft struct {
	Customer   domain.Customer
	Cart       *domain.Cart
	Plan       domain.PaymentPlan
	Instrument domain.Instrument
	Shipping   domain.ShippingMethod
}

// Receipt is everything a commit creates.
type Receipt struct {
	Sale     *domain.Sale
	Payments []*domain.Payment
	Shipment *domain.Shipment
}

// Start opens a draft for the customer. It fails with
// domain.ErrBlockedByPendingPayment while any of their payments is pending.
func (s *SaleService) Start(customerKey string) (*Draft, error) {
	c, _, err := s.store.customer(customerKey)
	if err != nil {
		return nil, err
	}
	if s.store.hasPending(customerKey) {
		return nil, fmt.Errorf("%s: %w", c.DisplayName(), domain.ErrBlockedByPendingPayment)
	}
	return &Draft{Customer: c, Cart: domain.NewCart(), Plan: domain.CashPlan()}, nil
}

// AddItem puts qty units of the product into the draft's cart.
func (s *SaleService) AddItem(d *Draft, productID, qty int) error {
	p, _, err := s.store.product(productID)
	if err != nil {
		return err
	}
	return d.Cart.Add(p, qty)
}

// CreditTerms lists the credit periods offered to organizations.
func (s *SaleService) CreditTerms() []int {
	return s.cfg.CreditTerms
}

// SetPlan chooses cash or credit. Only organizations may buy on credit.
func (s *SaleService) SetPlan(d *Draft, plan domain.PaymentPlan) error {
	switch plan.Terms {
	case domain.CashTerms:
		d.Plan = domain.CashPlan()
		return nil
	case domain.CreditTerms:
		if d.Customer.Kind() != domain.KindOrganization {
			return fmt.Errorf("%w: credit is only available to organizations", domain.ErrValidation)
		}
		if !s.cfg.AllowsCreditTerm(plan.CreditDays) {
			return fmt.Errorf("%w: credit term of %d days is not offered", domain.ErrValidation, plan.CreditDays)
		}
		d.Plan = plan
		return nil
	default:
		return fmt.Errorf("%w: unknown terms %q", domain.ErrValidation, plan.Terms)
	}
}

// Preview computes the figures the draft would commit with.
func (s *SaleService) Preview(d *Draft) domain.Breakdown {
	return s.rates.Compute(d.Cart.Subtotal(), d.Customer.Kind(), d.Plan, d.Instrument.Currency())
}

// Commit validates the draft against the current catalog, decrements
// inventory, and records the sale with its payments and pending shipment.
func (s *SaleService) Commit(d *Draft) (*Receipt, error) {
	if err := s.validate(d); err != nil {
		return nil, err
	}

	lines := d.Cart.Lines()
	products := make([]*domain.Product, len(lines))
	for i, l := range lines {
		p, _, err := s.store.product(l.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%s was removed from the catalog: %w", l.Name, err)
		}
		if p.Inventory < l.Quantity {
			return nil, fmt.Errorf("%w: only %d units of %s left", domain.ErrValidation, p.Inventory, p.Name)
		}
		products[i] = p
	}
	for i, p := range products {
		p.Inventory -= lines[i].Quantity
	}

	now := s.store.Now()
	currency := d.Instrument.Currency()
	sale := &domain.Sale{
		ID:         s.store.takeSaleID(),
		Date:       now,
		Customer:   d.Customer,
		Lines:      lines,
		Plan:       d.Plan,
		Instrument: d.Instrument,
		Currency:   currency,
		Shipping:   d.Shipping,
		Breakdown:  s.rates.Compute(d.Cart.Subtotal(), d.Customer.Kind(), d.Plan, currency),
	}
	s.store.Sales = append(s.store.Sales, sale)

	payments := s.payments(sale, now)
	s.store.Payments = append(s.store.Payments, payments...)

	shipment := domain.NewShipment(sale, now)
	s.store.Shipments = append(s.store.Shipments, shipment)

	return &Receipt{Sale: sale, Payments: payments, Shipment: shipment}, nil
}

// payments splits the sale into installments. Cash pays total plus surcharge
// now. Credit pays half plus the surcharge on that half now, and leaves the
// other half pending without surcharge.
func (s *SaleService) payments(sale *domain.Sale, now time.Time) []*domain.Payment {
	if sale.Plan.Terms != domain.CreditTerms {
		return []*domain.Payment{
			domain.NewCompletedPayment(sale, sale.Total.Add(sale.Surcharge), sale.Instrument, now),
		}
	}
	half := sale.Total.Div(decimal.NewFromInt(2))
	initial := half.Add(s.rates.SurchargeOn(half, sale.Currency))
	return []*domain.Payment{
		domain.NewCompletedPayment(sale, initial, sale.Instrument, now),
		domain.NewPendingPayment(sale, half, sale.Plan.CreditDays, now),
	}
}

func (s *SaleService) validate(d *Draft) error {
	if d.Customer == nil {
		return fmt.Errorf("%w: no customer selected", domain.ErrValidation)
	}
	if s.store.hasPending(d.Customer.Key()) {
		return fmt.Errorf("%s: %w", d.Customer.DisplayName(), domain.ErrBlockedByPendingPayment)
	}
	if d.Cart == nil || d.Cart.Empty() {
		return fmt.Errorf("%w: cart is empty", domain.ErrValidation)
	}
	if !d.Instrument.Valid() {
		return fmt.Errorf("%w: no payment instrument selected", domain.ErrValidation)
	}
	if d.Shipping != domain.CourierService && d.Shipping != domain.Delivery {
		return fmt.Errorf("%w: no shipping method selected", domain.ErrValidation)
	}
	return s.SetPlan(d, d.Plan)
}

// Search returns the sales matching c in the order they were made.
func (s *SaleService) Search(c domain.SaleCriterion) []*domain.Sale {
	var out []*domain.Sale
	for _, sale := range s.store.Sales {
		if c.Match(sale) {
			out = append(out, sale)
		}
	}
	return out
}

func (s *SaleService) All() []*domain.Sale {
	return s.store.Sales
}
