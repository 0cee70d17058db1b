package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the denomination of a payment instrument.
type Currency string

const (
	Bolivares Currency = "Bolívares"
	USD       Currency = "USD"
)

// Instrument is how a payment is made. Each instrument carries a fixed currency.
type Instrument string

const (
	PointOfSale   Instrument = "Punto de Venta"
	MobilePayment Instrument = "Pago móvil"
	WireTransfer  Instrument = "Transferencia"
	Zelle         Instrument = "Zelle"
	PayPal        Instrument = "PayPal"
	CashUSD       Instrument = "Efectivo"
)

// Instruments lists every instrument in menu order.
var Instruments = []Instrument{PointOfSale, MobilePayment, WireTransfer, Zelle, PayPal, CashUSD}

func (i Instrument) Currency() Currency {
	switch i {
	case Zelle, PayPal, CashUSD:
		return USD
	default:
		return Bolivares
	}
}

func (i Instrument) Valid() bool {
	for _, known := range Instruments {
		if i == known {
			return true
		}
	}
	return false
}

func (i Instrument) String() string {
	return fmt.Sprintf("%s (%s)", string(i), i.Currency())
}

// ParseAmount reads a decimal amount typed by a user or stored in a record.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// ParseCount reads a non-negative integer made only of digits.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !isDigits(s) {
		return 0, fmt.Errorf("%q is not a non-negative integer", s)
	}
	return strconv.Atoi(s)
}

// Cents rounds an amount to two decimal places, the convention for both
// currencies handled here.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
