package domain_test

import (
	"testing"
	"time"

	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipment_ResolveCourierService(t *testing.T) {
	s := domain.NewShipment(&domain.Sale{Customer: ana(t), Shipping: domain.CourierService}, march14)
	assert.False(t, s.RequiresCourier())

	require.NoError(t, s.Resolve(decimal.NewFromInt(4), &domain.Courier{Name: "ignored"}))
	assert.True(t, s.Completed)
	assert.Nil(t, s.CourierName)
	assert.Equal(t, "4", s.Cost.String())

	assert.ErrorIs(t, s.Resolve(decimal.NewFromInt(4), nil), domain.ErrStateConflict)
}

func TestShipment_ResolveDeliveryNeedsCourier(t *testing.T) {
	s := domain.NewShipment(&domain.Sale{Customer: acme(t), Shipping: domain.Delivery}, march14)
	assert.True(t, s.RequiresCourier())

	assert.ErrorIs(t, s.Resolve(decimal.NewFromInt(3), nil), domain.ErrValidation)
	assert.ErrorIs(t, s.Resolve(decimal.NewFromInt(3), &domain.Courier{Name: "Jose", Phone: "0412"}), domain.ErrValidation)
	assert.ErrorIs(t, s.Resolve(decimal.NewFromInt(-3), &domain.Courier{Name: "Jose", Phone: "0412", Plate: "AB1"}), domain.ErrValidation)
	assert.False(t, s.Completed)
	assert.Nil(t, s.Cost)

	require.NoError(t, s.Resolve(decimal.RequireFromString("3.5"), &domain.Courier{Name: " Jose ", Phone: "04120000000", Plate: "AB123CD"}))
	assert.Equal(t, "Jose", *s.CourierName)
	assert.Equal(t, "AB123CD", *s.CourierPlate)
	assert.Equal(t, "Completado", s.Status())
}

func TestParseDay(t *testing.T) {
	day, err := domain.ParseDay(" 2025-03-14 ")
	require.NoError(t, err)
	assert.True(t, domain.SameDay(day, march14))
	assert.False(t, domain.SameDay(day, march14.AddDate(0, 0, 1)))

	_, err = domain.ParseDay("14/03/2025")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSaleAndShipmentCriteria(t *testing.T) {
	sale := &domain.Sale{Customer: acme(t), Date: march14, Shipping: domain.Delivery}
	s := domain.NewShipment(sale, march14)
	other := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	assert.True(t, domain.SaleCriterion{CustomerKey: "Juridico:J12345678"}.Match(sale))
	assert.False(t, domain.SaleCriterion{Date: &other}.Match(sale))
	assert.True(t, domain.ShipmentCriterion{CustomerKey: "Juridico:J12345678"}.Match(s))
	assert.False(t, domain.ShipmentCriterion{Date: &other}.Match(s))
}
