package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/partsdesk/partsdesk/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	totalStyle         = lipgloss.NewStyle().Bold(true).Foreground(success)
)

// RenderSale renders an invoice for a committed sale.
func RenderSale(s *domain.Sale) string {
	var b strings.Builder

	header := titleStyle.Render(fmt.Sprintf("Sale #%d", s.ID)) + "  " +
		dimStyle.Render(s.Date.Format("2006-01-02 15:04"))
	customer := ""
	if s.Customer != nil {
		customer = dimStyle.Render(fmt.Sprintf("%s (%s)", s.Customer.DisplayName(), s.Customer.Identifier()))
	}
	b.WriteString(boxStyle.Render(header + "\n" + customer))
	b.WriteString("\n")

	renderLines(&b, s.Lines)
	renderBreakdown(&b, s.Breakdown, s.Currency)

	b.WriteString("\n")
	terms := string(s.Plan.Terms)
	if s.Plan.Terms == domain.CreditTerms {
		terms = fmt.Sprintf("%s %d days", terms, s.Plan.CreditDays)
	}
	field(&b, "Terms", terms)
	field(&b, "Instrument", s.Instrument.String())
	field(&b, "Shipping", string(s.Shipping))
	return b.String()
}

// RenderPreview renders the figures of a sale before it is committed.
func RenderPreview(lines []domain.SaleLine, bd domain.Breakdown, currency domain.Currency) string {
	var b strings.Builder
	renderLines(&b, lines)
	renderBreakdown(&b, bd, currency)
	b.WriteString("\n  " + hintStyle.Render("Inventory is only taken when the sale is confirmed.") + "\n")
	return b.String()
}

func renderLines(b *strings.Builder, lines []domain.SaleLine) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render("Items"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(lines))),
	)
	for _, l := range lines {
		fmt.Fprintf(b, "    %s %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%3d x", l.Quantity)),
			padRight(l.Name, 28),
			dimStyle.Render("@ "+money(l.UnitPrice)),
			money(l.Amount()),
		)
	}
}

func renderBreakdown(b *strings.Builder, bd domain.Breakdown, currency domain.Currency) {
	b.WriteString("\n  " + separatorLine + "\n")
	field(b, "Subtotal", amountIn(bd.Subtotal, currency))
	if !bd.Discount.IsZero() {
		field(b, "Discount", "-"+amountIn(bd.Discount, currency))
	}
	field(b, "IVA", amountIn(bd.Tax, currency))
	field(b, "Total", totalStyle.Render(amountIn(bd.Total, currency)))
	if !bd.Surcharge.IsZero() {
		field(b, "IGTF", amountIn(bd.Surcharge, currency))
		field(b, "Charged", totalStyle.Render(amountIn(bd.Total.Add(bd.Surcharge), currency)))
	}
}

// RenderSales renders one line per sale.
func RenderSales(sales []*domain.Sale) string {
	if len(sales) == 0 {
		return "  " + dimStyle.Render("No sales found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, s := range sales {
		name := ""
		if s.Customer != nil {
			name = s.Customer.DisplayName()
		}
		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(fmt.Sprintf("#%-3d", s.ID)),
			dimStyle.Render(s.Date.Format(domain.DateLayout)),
			titleStyle.Render(padRight(name, 28)),
			amountIn(s.Total, s.Currency),
		)
	}
	return b.String()
}

// RenderPayments renders the payment ledger, pending entries flagged.
func RenderPayments(payments []*domain.Payment) string {
	if len(payments) == 0 {
		return "  " + dimStyle.Render("No payments found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range payments {
		status := passStyle.Render("●")
		detail := ""
		if p.Instrument != nil {
			detail = p.Instrument.String()
		}
		if !p.Completed {
			status = warnStyle.Render("●")
			if p.DueDate != nil {
				detail = "due " + p.DueDate.Format(domain.DateLayout)
			}
		}
		currency := domain.Bolivares
		if p.Currency != nil {
			currency = *p.Currency
		} else if p.Sale != nil {
			currency = p.Sale.Currency
		}
		name, sale := "", ""
		if p.Customer != nil {
			name = p.Customer.DisplayName()
		}
		if p.Sale != nil {
			sale = fmt.Sprintf("sale #%d", p.Sale.ID)
		}
		fmt.Fprintf(&b, "  %s %s %s  %s  %s  %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			status,
			padRight(p.Status(), 10),
			titleStyle.Render(padRight(name, 24)),
			amountIn(p.Amount, currency),
			dimStyle.Render(sale),
			faintStyle.Render(detail),
		)
	}
	return b.String()
}

// RenderShipments renders the shipment ledger, pending entries flagged.
func RenderShipments(shipments []*domain.Shipment) string {
	if len(shipments) == 0 {
		return "  " + dimStyle.Render("No shipments found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, s := range shipments {
		status := passStyle.Render("●")
		if !s.Completed {
			status = warnStyle.Render("●")
		}
		name, sale := "", ""
		if s.Customer != nil {
			name = s.Customer.DisplayName()
		}
		if s.Sale != nil {
			sale = fmt.Sprintf("sale #%d", s.Sale.ID)
		}
		fmt.Fprintf(&b, "  %s %s %s  %s  %s  %s\n",
			dimStyle.Render(fmt.Sprintf("%2d.", i+1)),
			status,
			padRight(s.Status(), 10),
			titleStyle.Render(padRight(name, 24)),
			padRight(string(s.Service), 8),
			dimStyle.Render(sale),
		)
		if s.Cost != nil {
			fmt.Fprintf(&b, "         %s\n", faintStyle.Render("cost "+money(*s.Cost)))
		}
		if s.CourierName != nil {
			fmt.Fprintf(&b, "         %s\n", faintStyle.Render(fmt.Sprintf("courier %s, %s, plate %s",
				*s.CourierName, deref(s.CourierPhone), deref(s.CourierPlate))))
		}
	}
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
