package application_test

import (
	"testing"

	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleService_CashSaleInDollars(t *testing.T) {
	sess := newSession(t)
	d, err := sess.Sales.Start(anaKey)
	require.NoError(t, err)
	require.NoError(t, sess.Sales.AddItem(d, 0, 2))
	require.NoError(t, sess.Sales.AddItem(d, 1, 1))
	d.Instrument = domain.Zelle
	d.Shipping = domain.CourierService

	preview := sess.Sales.Preview(d)
	assert.Equal(t, "29", preview.Total.String())
	assert.Equal(t, 5, sess.Store.Products[0].Inventory, "preview leaves stock alone")

	r, err := sess.Sales.Commit(d)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Sale.ID)
	assert.Equal(t, march14, r.Sale.Date)
	assert.Equal(t, domain.USD, r.Sale.Currency)
	assert.Equal(t, "29", r.Sale.Total.String())
	assert.Equal(t, "0.87", r.Sale.Surcharge.String())

	require.Len(t, r.Payments, 1)
	assert.Equal(t, "29.87", r.Payments[0].Amount.String())
	assert.True(t, r.Payments[0].Completed)

	assert.False(t, r.Shipment.Completed)
	assert.Equal(t, domain.CourierService, r.Shipment.Service)
	assert.Same(t, r.Sale, r.Shipment.Sale)

	assert.Equal(t, 3, sess.Store.Products[0].Inventory)
	assert.Equal(t, 2, sess.Store.Products[1].Inventory)
}

func TestSaleService_OrganizationCashDiscount(t *testing.T) {
	sess := newSession(t)
	r := sell(t, sess, acmeKey, 0, 4, domain.CashPlan(), domain.PointOfSale, domain.Delivery)

	assert.Equal(t, "2", r.Sale.Discount.String())
	assert.Equal(t, "44.08", r.Sale.Total.String())
	assert.Equal(t, "44.08", r.Payments[0].Amount.String())
}

func TestSaleService_CreditSplitsInHalf(t *testing.T) {
	sess := newSession(t)
	r := sell(t, sess, acmeKey, 0, 2, domain.CreditPlan(30), domain.PayPal, domain.Delivery)

	assert.True(t, r.Sale.Discount.IsZero())
	assert.Equal(t, "23.2", r.Sale.Total.String())
	require.Len(t, r.Payments, 2)

	now, later := r.Payments[0], r.Payments[1]
	assert.Equal(t, "11.95", now.Amount.String(), "half plus 3% on that half")
	assert.True(t, now.Completed)
	assert.Equal(t, "11.6", later.Amount.String())
	assert.False(t, later.Completed)
	assert.Nil(t, later.Currency)
	assert.Equal(t, "2025-04-13", later.DueDate.Format(domain.DateLayout))
	assert.True(t, sess.Payments.HasPending(acmeKey))
}

func TestSaleService_PendingPaymentBlocksNextSale(t *testing.T) {
	sess := newSession(t)
	r := sell(t, sess, acmeKey, 0, 1, domain.CreditPlan(15), domain.PointOfSale, domain.CourierService)

	_, err := sess.Sales.Start(acmeKey)
	assert.ErrorIs(t, err, domain.ErrBlockedByPendingPayment)
	assert.Len(t, sess.Store.Sales, 1)
	assert.Len(t, sess.Store.Payments, 2)
	assert.Len(t, sess.Store.Shipments, 1)
	assert.Equal(t, 4, sess.Store.Products[0].Inventory)

	_, err = sess.Payments.Resolve(r.Payments[1].ID, domain.WireTransfer)
	require.NoError(t, err)
	_, err = sess.Sales.Start(acmeKey)
	assert.NoError(t, err)
}

func TestSaleService_CreditOnlyForOrganizations(t *testing.T) {
	sess := newSession(t)
	d, err := sess.Sales.Start(anaKey)
	require.NoError(t, err)

	assert.ErrorIs(t, sess.Sales.SetPlan(d, domain.CreditPlan(15)), domain.ErrValidation)
	assert.Equal(t, domain.CashPlan(), d.Plan)

	d, err = sess.Sales.Start(acmeKey)
	require.NoError(t, err)
	err = sess.Sales.SetPlan(d, domain.CreditPlan(45))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "45 days")
	assert.Equal(t, []int{15, 30}, sess.Sales.CreditTerms())
}

func TestSaleService_CommitRejectsIncompleteDraft(t *testing.T) {
	sess := newSession(t)
	d, err := sess.Sales.Start(anaKey)
	require.NoError(t, err)

	d.Instrument, d.Shipping = domain.Zelle, domain.Delivery
	_, err = sess.Sales.Commit(d)
	assert.ErrorContains(t, err, "cart is empty")

	require.NoError(t, sess.Sales.AddItem(d, 1, 1))
	d.Instrument = ""
	_, err = sess.Sales.Commit(d)
	assert.ErrorContains(t, err, "instrument")

	d.Instrument, d.Shipping = domain.Zelle, ""
	_, err = sess.Sales.Commit(d)
	assert.ErrorContains(t, err, "shipping")
	assert.Empty(t, sess.Store.Sales)
}

func TestSaleService_CommitRechecksStock(t *testing.T) {
	sess := newSession(t)
	d, err := sess.Sales.Start(anaKey)
	require.NoError(t, err)
	require.NoError(t, sess.Sales.AddItem(d, 1, 3))
	d.Instrument, d.Shipping = domain.MobilePayment, domain.CourierService

	require.NoError(t, sess.Catalog.Update(1, domain.ProductInventory, "2"))
	_, err = sess.Sales.Commit(d)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 2, sess.Store.Products[1].Inventory)

	require.NoError(t, sess.Catalog.Remove(1))
	_, err = sess.Sales.Commit(d)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleService_IDsAreSequential(t *testing.T) {
	sess := newSession(t)
	first := sell(t, sess, anaKey, 0, 1, domain.CashPlan(), domain.CashUSD, domain.CourierService)
	second := sell(t, sess, anaKey, 1, 1, domain.CashPlan(), domain.CashUSD, domain.CourierService)
	assert.Equal(t, 0, first.Sale.ID)
	assert.Equal(t, 1, second.Sale.ID)

	found := sess.Sales.Search(domain.SaleCriterion{CustomerKey: anaKey})
	assert.Len(t, found, 2)
	assert.Empty(t, sess.Sales.Search(domain.SaleCriterion{CustomerKey: acmeKey}))
}
