package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shipment tracks delivery of one sale.
type Shipment struct {
	ID       uuid.UUID      `json:"id"`
	Date     time.Time      `json:"date"`
	Customer Customer       `json:"-"`
	Sale     *Sale          `json:"-"`
	Service  ShippingMethod `json:"service"`
	// The remaining fields stay nil until the shipment is dispatched.
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	CourierName  *string          `json:"courier_name,omitempty"`
	CourierPhone *string          `json:"courier_phone,omitempty"`
	CourierPlate *string          `json:"courier_plate,omitempty"`
	Completed    bool             `json:"completed"`
}

// NewShipment opens a pending shipment for a freshly committed sale.
func NewShipment(sale *Sale, now time.Time) *Shipment {
	return &Shipment{
		ID:       uuid.New(),
		Date:     now,
		Customer: sale.Customer,
		Sale:     sale,
		Service:  sale.Shipping,
	}
}

// Courier identifies the rider of a Delivery shipment.
type Courier struct {
	Name  string
	Phone string
	Plate string
}

// RequiresCourier reports whether dispatch needs rider details.
func (s *Shipment) RequiresCourier() bool {
	return strings.EqualFold(string(s.Service), string(Delivery))
}

// Resolve dispatches the shipment. Courier details are required only for
// Delivery and ignored otherwise.
func (s *Shipment) Resolve(cost decimal.Decimal, courier *Courier) error {
	if s.Completed {
		return fmt.Errorf("%w: shipment %s is already completed", ErrStateConflict, s.ID)
	}
	if cost.IsNegative() {
		return invalid("cost", "must be non-negative")
	}
	if s.RequiresCourier() {
		if courier == nil {
			return invalid("courier", "required for delivery")
		}
		name, phone, plate := strings.TrimSpace(courier.Name), strings.TrimSpace(courier.Phone), strings.TrimSpace(courier.Plate)
		if name == "" || phone == "" || plate == "" {
			return invalid("courier", "name, phone and plate must not be empty")
		}
		s.CourierName, s.CourierPhone, s.CourierPlate = &name, &phone, &plate
	}
	s.Cost = &cost
	s.Completed = true
	return nil
}

func (s *Shipment) Status() string {
	if s.Completed {
		return "Completado"
	}
	return "Pendiente"
}

// ShipmentCriterion selects shipments for a search. Zero-valued fields are ignored.
type ShipmentCriterion struct {
	CustomerKey string
	Date        *time.Time
}

func (c ShipmentCriterion) Match(s *Shipment) bool {
	if c.CustomerKey != "" && (s.Customer == nil || s.Customer.Key() != c.CustomerKey) {
		return false
	}
	if c.Date != nil && !SameDay(s.Date, *c.Date) {
		return false
	}
	return true
}

// SaleCriterion selects sales for a search. Zero-valued fields are ignored.
type SaleCriterion struct {
	CustomerKey string
	Date        *time.Time
}

func (c SaleCriterion) Match(s *Sale) bool {
	if c.CustomerKey != "" && (s.Customer == nil || s.Customer.Key() != c.CustomerKey) {
		return false
	}
	if c.Date != nil && !SameDay(s.Date, *c.Date) {
		return false
	}
	return true
}

// DateLayout is the calendar-day format used in prompts and records.
const DateLayout = "2006-01-02"

// ParseDay reads a YYYY-MM-DD date in the local zone.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, invalid("date", "must be YYYY-MM-DD")
	}
	return t, nil
}

// SameDay compares the calendar date portion of two instants in a's zone.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
