package tui_test

import (
	"testing"
	"time"

	"github.com/partsdesk/partsdesk/internal/adapters/outbound/tui"
	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(t *testing.T) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(4, "Brake pad", "Ceramic front pads", decimal.RequireFromString("35.5"), "Brakes", 12,
		[]string{"Corolla 2018", "Civic 2020"})
	require.NoError(t, err)
	return p
}

func sampleOrganization(t *testing.T) *domain.Organization {
	t.Helper()
	c, err := domain.NewOrganization("ops@acme.com", "Zona Industrial", "02129876543",
		"Acme Repuestos", "J12345678", "Luis Diaz", "04241112233", "luis@acme.com")
	require.NoError(t, err)
	return c
}

func TestRenderBanner(t *testing.T) {
	output := tui.RenderBanner(42, "products.json")
	assert.Contains(t, output, "partsdesk")
	assert.Contains(t, output, "42 products")
}

func TestRenderProducts(t *testing.T) {
	out := sampleProduct(t)
	out.Inventory = 0
	output := tui.RenderProducts([]*domain.Product{sampleProduct(t), out})
	assert.Contains(t, output, "Brake pad")
	assert.Contains(t, output, "35.50")
	assert.Contains(t, output, "12 in stock")
	assert.Contains(t, output, "out of stock")
}

func TestRenderProducts_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderProducts(nil), "No products found.")
}

func TestRenderProduct_NumbersCompatibleVehicles(t *testing.T) {
	output := tui.RenderProduct(sampleProduct(t))
	assert.Contains(t, output, "Ceramic front pads")
	assert.Contains(t, output, "1. Corolla 2018")
	assert.Contains(t, output, "2. Civic 2020")
}

func TestRenderCustomer(t *testing.T) {
	output := tui.RenderCustomer(sampleOrganization(t))
	assert.Contains(t, output, "Acme Repuestos")
	assert.Contains(t, output, "J12345678")
	assert.Contains(t, output, "Luis Diaz")
	assert.Contains(t, output, "Juridico")
}

func TestRenderCustomers(t *testing.T) {
	ana, err := domain.NewIndividual("ana@example.com", "Av. Bolivar 12", "04141234567", "Ana Perez", "1234567")
	require.NoError(t, err)

	output := tui.RenderCustomers([]domain.Customer{ana, sampleOrganization(t)})
	assert.Contains(t, output, "Ana Perez")
	assert.Contains(t, output, "1234567")
	assert.Contains(t, output, "Acme Repuestos")
	assert.Contains(t, tui.RenderCustomers(nil), "No customers registered.")
}

func TestRenderManifest(t *testing.T) {
	m := &domain.Manifest{
		SavedAt:    time.Now(),
		CommitHash: "abc1234def5678",
		Counts:     map[string]int{"customers": 2, "sales": 3},
	}
	output := tui.RenderManifest("data", m)
	assert.Contains(t, output, "abc1234")
	assert.NotContains(t, output, "abc1234d")
	assert.Contains(t, output, "2 customers")
	assert.Contains(t, output, "3 sales")
}

func TestRenderMenu_NumbersFromOne(t *testing.T) {
	output := tui.RenderMenu("Products", []string{"List", "Back"})
	assert.Contains(t, output, "Products")
	assert.Contains(t, output, " 1. List")
	assert.Contains(t, output, " 2. Back")
}

func TestRenderNotices(t *testing.T) {
	assert.Contains(t, tui.RenderError(domain.ErrNotFound), "error not found")
	assert.Contains(t, tui.RenderSuccess("Saved"), "✓ Saved")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No saves recorded.")

	output := tui.RenderHistory([]domain.Manifest{
		{SavedAt: time.Date(2025, 3, 14, 18, 5, 0, 0, time.UTC), CommitHash: "0123456789", Counts: map[string]int{"sales": 4}},
		{SavedAt: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), Counts: map[string]int{"sales": 6, "payments": 7}},
	})
	assert.Contains(t, output, "Save History")
	assert.Contains(t, output, "2025-03-14 18:05")
	assert.Contains(t, output, "0123456")
	assert.Contains(t, output, "4 sales")
	assert.Contains(t, output, "6 sales, 7 payments")
}
