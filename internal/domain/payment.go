package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is one installment against a sale.
type Payment struct {
	ID       uuid.UUID       `json:"id"`
	Date     time.Time       `json:"date"`
	Customer Customer        `json:"-"`
	Sale     *Sale           `json:"-"`
	Amount   decimal.Decimal `json:"amount"`
	// Instrument and Currency are nil while a credit installment is pending.
	Instrument *Instrument `json:"instrument,omitempty"`
	Currency   *Currency   `json:"currency,omitempty"`
	Completed  bool        `json:"completed"`
	DueDate    *time.Time  `json:"due_date,omitempty"`
}

// NewCompletedPayment records money received now.
func NewCompletedPayment(sale *Sale, amount decimal.Decimal, instrument Instrument, now time.Time) *Payment {
	currency := instrument.Currency()
	return &Payment{
		ID:         uuid.New(),
		Date:       now,
		Customer:   sale.Customer,
		Sale:       sale,
		Amount:     Cents(amount),
		Instrument: &instrument,
		Currency:   &currency,
		Completed:  true,
	}
}

// NewPendingPayment records an installment due days after now.
func NewPendingPayment(sale *Sale, amount decimal.Decimal, days int, now time.Time) *Payment {
	due := now.AddDate(0, 0, days)
	return &Payment{
		ID:       uuid.New(),
		Date:     now,
		Customer: sale.Customer,
		Sale:     sale,
		Amount:   Cents(amount),
		DueDate:  &due,
	}
}

// Resolve settles a pending installment.
func (p *Payment) Resolve(instrument Instrument, now time.Time) error {
	if p.Completed {
		return fmt.Errorf("%w: payment %s is already completed", ErrStateConflict, p.ID)
	}
	if !instrument.Valid() {
		return invalid("instrument", fmt.Sprintf("unknown instrument %q", instrument))
	}
	currency := instrument.Currency()
	p.Instrument = &instrument
	p.Currency = &currency
	p.Completed = true
	p.Date = now
	return nil
}

func (p *Payment) Status() string {
	if p.Completed {
		return "Completado"
	}
	return "Pendiente"
}

// PaymentCriterion selects payments for a search. Zero-valued fields are ignored.
type PaymentCriterion struct {
	CustomerKey string
	Date        *time.Time
	Instrument  string
	Currency    string
}

func (c PaymentCriterion) Match(p *Payment) bool {
	if c.CustomerKey != "" && (p.Customer == nil || p.Customer.Key() != c.CustomerKey) {
		return false
	}
	if c.Date != nil && !SameDay(p.Date, *c.Date) {
		return false
	}
	if c.Instrument != "" && (p.Instrument == nil || !equalFold(string(*p.Instrument), c.Instrument)) {
		return false
	}
	if c.Currency != "" && (p.Currency == nil || !equalFold(string(*p.Currency), c.Currency)) {
		return false
	}
	return true
}
