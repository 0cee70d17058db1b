package domain_test

import (
	"testing"

	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_SumsRepeatedProduct(t *testing.T) {
	pad := brakePad(t)
	cart := domain.NewCart()

	require.NoError(t, cart.Add(pad, 2))
	require.NoError(t, cart.Add(pad, 1))
	assert.Equal(t, 3, cart.Quantity(pad.ID))
	assert.Equal(t, 2, cart.Available(pad))
	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, "30", cart.Subtotal().String())
	assert.Equal(t, 5, pad.Inventory, "adding to a cart does not touch inventory")
}

func TestCart_RejectsOverdraw(t *testing.T) {
	pad := brakePad(t)
	cart := domain.NewCart()

	err := cart.Add(pad, 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 5")
	assert.True(t, cart.Empty())

	require.NoError(t, cart.Add(pad, 5))
	err = cart.Add(pad, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of stock")
	assert.ErrorIs(t, cart.Add(pad, 0), domain.ErrValidation)
}

func TestCart_LinesCaptureNameAndPrice(t *testing.T) {
	pad := brakePad(t)
	cart := domain.NewCart()
	require.NoError(t, cart.Add(pad, 1))

	lines := cart.Lines()
	require.NoError(t, pad.Set(domain.ProductPrice, "99"))
	assert.Equal(t, "Brake pad", lines[0].Name)
	assert.Equal(t, "10", lines[0].UnitPrice.String())
}

func TestCompute(t *testing.T) {
	rates := domain.DefaultRates()
	tests := []struct {
		name      string
		subtotal  string
		kind      domain.CustomerKind
		plan      domain.PaymentPlan
		currency  domain.Currency
		discount  string
		tax       string
		total     string
		surcharge string
	}{
		{"individual in bolívares", "25", domain.KindIndividual, domain.CashPlan(), domain.Bolivares, "0", "4", "29", "0"},
		{"individual in dollars", "25", domain.KindIndividual, domain.CashPlan(), domain.USD, "0", "4", "29", "0.87"},
		{"organization paying cash", "100", domain.KindOrganization, domain.CashPlan(), domain.Bolivares, "5", "15.2", "110.2", "0"},
		{"organization on credit", "100", domain.KindOrganization, domain.CreditPlan(30), domain.USD, "0", "16", "116", "3.48"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := rates.Compute(decimal.RequireFromString(tt.subtotal), tt.kind, tt.plan, tt.currency)
			assert.Equal(t, tt.subtotal, bd.Subtotal.String())
			assert.Equal(t, tt.discount, bd.Discount.String())
			assert.Equal(t, tt.tax, bd.Tax.String())
			assert.Equal(t, tt.total, bd.Total.String())
			assert.Equal(t, tt.surcharge, bd.Surcharge.String())
		})
	}
}

func TestCompute_TotalIsDiscountedPlusTax(t *testing.T) {
	rates := domain.DefaultRates()
	for _, sub := range []string{"0", "0.01", "7.33", "1234.56"} {
		bd := rates.Compute(decimal.RequireFromString(sub), domain.KindOrganization, domain.CashPlan(), domain.USD)
		assert.True(t, bd.Total.Equal(bd.Subtotal.Sub(bd.Discount).Add(bd.Tax)), sub)
		assert.False(t, bd.Surcharge.IsNegative(), sub)
	}
}

func TestSaleQuantity(t *testing.T) {
	sale := &domain.Sale{Lines: []domain.SaleLine{{ProductID: 4, Quantity: 2}}}
	assert.Equal(t, 2, sale.Quantity(4))
	assert.Equal(t, 0, sale.Quantity(5))
	assert.Equal(t, "6", domain.SaleLine{UnitPrice: decimal.NewFromInt(3), Quantity: 2}.Amount().String())
}
