package tui_test

import (
	"testing"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatistics(t *testing.T) {
	st := domain.Statistics{
		SalesCount:        3,
		SalesTotal:        decimal.RequireFromString("120.5"),
		TopProducts:       []domain.Ranked{{Name: "Brake pad", Count: 5}, {Name: "Oil filter", Count: 2}},
		FrequentCustomers: []domain.Ranked{{Name: "Acme Repuestos", Count: 2}},
		PaymentsCount:     4,
		Collected:         decimal.RequireFromString("80"),
		Outstanding:       decimal.RequireFromString("40.5"),
		PendingPayers:     []string{"Acme Repuestos"},
		ShipmentsCount:    3,
	}

	output := tui.RenderStatistics(st)
	assert.Contains(t, output, "Statistics")
	assert.Contains(t, output, "120.50")
	assert.Contains(t, output, "Brake pad")
	assert.Contains(t, output, "Acme Repuestos")
	assert.Contains(t, output, "40.50")
	assert.Contains(t, output, "█")
}

func TestRenderStatistics_Empty(t *testing.T) {
	output := tui.RenderStatistics(domain.Statistics{})
	assert.Contains(t, output, "none")
	assert.Contains(t, output, "0.00")
}
