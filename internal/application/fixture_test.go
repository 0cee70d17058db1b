package application_test

import (
	"testing"
	"time"

	"github.com/partsdesk/partsdesk/internal/application"
	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var march14 = time.Date(2025, 3, 14, 10, 30, 0, 0, time.Local)

// newSession seeds a brake pad (#0, 10.00 x5) and an oil filter (#1, 5.00 x3)
// and registers Ana (individual) and Acme (organization).
func newSession(t *testing.T) *application.Session {
	t.Helper()
	pad, err := domain.NewProduct(0, "Brake pad", "Front pads", decimal.NewFromInt(10), "Brakes", 5, []string{"Corolla"})
	require.NoError(t, err)
	filter, err := domain.NewProduct(1, "Oil filter", "Spin-on", decimal.NewFromInt(5), "Engine", 3, nil)
	require.NoError(t, err)

	store := application.NewStore([]*domain.Product{pad, filter})
	store.SetClock(func() time.Time { return march14 })
	sess := application.NewSession(t.TempDir(), domain.DefaultConfig(), store)

	_, err = sess.Customers.RegisterIndividual("ana@example.com", "Av. Bolivar 12", "04141234567", "Ana Perez", "1234567")
	require.NoError(t, err)
	_, err = sess.Customers.RegisterOrganization("ops@acme.com", "Zona Industrial", "02129876543", "Acme Repuestos",
		"J12345678", "Luis Diaz", "04241112233", "luis@acme.com")
	require.NoError(t, err)
	return sess
}

const (
	anaKey  = "Natural:1234567"
	acmeKey = "Juridico:J12345678"
)

// sell commits a sale of qty units of product for the customer.
func sell(t *testing.T, sess *application.Session, customerKey string, product, qty int, plan domain.PaymentPlan, in domain.Instrument, ship domain.ShippingMethod) *application.Receipt {
	t.Helper()
	d, err := sess.Sales.Start(customerKey)
	require.NoError(t, err)
	require.NoError(t, sess.Sales.AddItem(d, product, qty))
	require.NoError(t, sess.Sales.SetPlan(d, plan))
	d.Instrument = in
	d.Shipping = ship
	r, err := sess.Sales.Commit(d)
	require.NoError(t, err)
	return r
}
