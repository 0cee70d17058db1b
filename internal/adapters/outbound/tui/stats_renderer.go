package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/partsdesk/partsdesk/internal/domain"
)

// RenderStatistics renders the sales, payments and shipments report.
func RenderStatistics(st domain.Statistics) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render("Statistics")))
	b.WriteString("\n")

	section(&b, "Sales")
	field(&b, "Sales", fmt.Sprintf("%d", st.SalesCount))
	field(&b, "Amount sold", money(st.SalesTotal))
	renderRanking(&b, "Top products", st.TopProducts)
	renderRanking(&b, "Frequent customers", st.FrequentCustomers)

	section(&b, "Payments")
	field(&b, "Payments", fmt.Sprintf("%d", st.PaymentsCount))
	field(&b, "Collected", passStyle.Render(money(st.Collected)))
	field(&b, "Outstanding", warnStyle.Render(money(st.Outstanding)))
	renderNames(&b, "Pending payers", st.PendingPayers)

	section(&b, "Shipments")
	field(&b, "Shipments", fmt.Sprintf("%d", st.ShipmentsCount))
	renderRanking(&b, "Top shipped products", st.TopShippedProducts)
	renderNames(&b, "Awaiting shipment", st.PendingShipmentsFor)

	b.WriteString("\n")
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n  " + sectionHeaderStyle.Render(title) + "\n")
}

func renderRanking(b *strings.Builder, title string, ranked []domain.Ranked) {
	if len(ranked) == 0 {
		field(b, title, dimStyle.Render("none"))
		return
	}
	field(b, title, "")
	top := ranked[0].Count
	for _, r := range ranked {
		fmt.Fprintf(b, "      %s %s %s\n",
			padRight(r.Name, 24),
			bar(r.Count, top, 16),
			dimStyle.Render(fmt.Sprintf("%d", r.Count)),
		)
	}
}

func renderNames(b *strings.Builder, title string, names []string) {
	if len(names) == 0 {
		field(b, title, dimStyle.Render("none"))
		return
	}
	field(b, title, strings.Join(names, ", "))
}

// bar draws count relative to top on width cells.
func bar(count, top, width int) string {
	filled := width
	if top > 0 {
		filled = max(0, min(count*width/top, width))
	}
	filledStr := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", width-filled))
	return filledStr + emptyStr
}
