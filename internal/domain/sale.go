package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Terms is the payment-timing choice of a sale.
type Terms string

const (
	CashTerms   Terms = "Contado"
	CreditTerms Terms = "Crédito"
)

// ShippingMethod is the delivery label chosen at sale time.
type ShippingMethod string

const (
	CourierService ShippingMethod = "Zoom"
	Delivery       ShippingMethod = "Delivery"
)

// ShippingMethods lists every shipping method in menu order.
var ShippingMethods = []ShippingMethod{CourierService, Delivery}

// PaymentPlan is the terms selected for one sale. CreditDays is zero for cash.
type PaymentPlan struct {
	Terms      Terms `json:"terms"`
	CreditDays int   `json:"credit_days,omitempty"`
}

// CashPlan is the only plan available to individuals.
func CashPlan() PaymentPlan { return PaymentPlan{Terms: CashTerms} }

// CreditPlan defers half of the total by days.
func CreditPlan(days int) PaymentPlan { return PaymentPlan{Terms: CreditTerms, CreditDays: days} }

// SaleLine is one product of a sale. Name and UnitPrice are captured when the
// line is added so a later catalog edit or removal does not alter the sale.
type SaleLine struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l SaleLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates lines keyed by product id, in first-added order.
type Cart struct {
	lines []SaleLine
	index map[int]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[int]int)}
}

// Quantity returns how many units of the product are already in the cart.
func (c *Cart) Quantity(productID int) int {
	if i, ok := c.index[productID]; ok {
		return c.lines[i].Quantity
	}
	return 0
}

// Available is the product inventory not yet claimed by this cart.
func (c *Cart) Available(p *Product) int {
	return p.Inventory - c.Quantity(p.ID)
}

// Add claims qty units of p. Quantities for a repeated product are summed.
func (c *Cart) Add(p *Product, qty int) error {
	available := c.Available(p)
	if available <= 0 {
		return fmt.Errorf("%w: %s is out of stock", ErrValidation, p.Name)
	}
	if qty < 1 || qty > available {
		return invalid("quantity", fmt.Sprintf("must be between 1 and %d", available))
	}
	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity += qty
		return nil
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, SaleLine{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price, Quantity: qty})
	return nil
}

func (c *Cart) Lines() []SaleLine {
	out := make([]SaleLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Amount())
	}
	return sum
}

// Rates are the fiscal percentages applied to every sale.
type Rates struct {
	Tax          decimal.Decimal // IVA
	Surcharge    decimal.Decimal // IGTF, USD only
	CashDiscount decimal.Decimal // organizations paying cash
}

// DefaultRates are 16% IVA, 3% IGTF and 5% cash discount.
func DefaultRates() Rates {
	return Rates{
		Tax:          decimal.RequireFromString("0.16"),
		Surcharge:    decimal.RequireFromString("0.03"),
		CashDiscount: decimal.RequireFromString("0.05"),
	}
}

// Breakdown holds the computed figures of a sale.
type Breakdown struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Tax       decimal.Decimal `json:"tax"`
	Surcharge decimal.Decimal `json:"surcharge"`
	// Total excludes Surcharge.
	Total decimal.Decimal `json:"total"`
}

// Compute applies discount, tax and surcharge in that order. The surcharge is
// reported but not folded into Total.
func (r Rates) Compute(subtotal decimal.Decimal, kind CustomerKind, plan PaymentPlan, currency Currency) Breakdown {
	discount := decimal.Zero
	if kind == KindOrganization && plan.Terms == CashTerms {
		discount = subtotal.Mul(r.CashDiscount)
	}
	discounted := subtotal.Sub(discount)
	tax := discounted.Mul(r.Tax)
	total := discounted.Add(tax)
	return Breakdown{
		Subtotal:  subtotal,
		Discount:  discount,
		Tax:       tax,
		Surcharge: r.SurchargeOn(total, currency),
		Total:     total,
	}
}

// SurchargeOn returns the IGTF due on amount, zero unless currency is USD.
func (r Rates) SurchargeOn(amount decimal.Decimal, currency Currency) decimal.Decimal {
	if currency != USD {
		return decimal.Zero
	}
	return amount.Mul(r.Surcharge)
}

// Sale is an immutable committed order.
type Sale struct {
	ID         int            `json:"id"`
	Date       time.Time      `json:"date"`
	Customer   Customer       `json:"-"`
	Lines      []SaleLine     `json:"lines"`
	Plan       PaymentPlan    `json:"plan"`
	Instrument Instrument     `json:"instrument"`
	Currency   Currency       `json:"currency"`
	Shipping   ShippingMethod `json:"shipping"`
	Breakdown
}

// Quantity returns the units of productID sold in this sale.
func (s *Sale) Quantity(productID int) int {
	for _, l := range s.Lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}
