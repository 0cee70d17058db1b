package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// ── Workshop palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Foreground(dim).Width(22)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderBanner renders the session banner shown before the main menu.
func RenderBanner(products int, source string) string {
	title := headerStyle.Render("partsdesk")
	subtitle := dimStyle.Render(fmt.Sprintf("%d products loaded from %s", products, source))
	return boxStyle.Render(title+"\n"+subtitle) + "\n"
}

// RenderMenu renders a numbered list of options under a title.
func RenderMenu(title string, options []string) string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(title) + "\n")
	for i, o := range options {
		fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render(fmt.Sprintf("%2d.", i+1)), o)
	}
	return b.String()
}

// RenderError renders a failed operation.
func RenderError(err error) string {
	return "  " + errorTagStyle.Render("error") + " " + err.Error() + "\n"
}

// RenderSuccess renders a completed operation.
func RenderSuccess(msg string) string {
	return "  " + passStyle.Render("✓") + " " + msg + "\n"
}

// RenderProducts renders a compact catalog listing.
func RenderProducts(products []*domain.Product) string {
	if len(products) == 0 {
		return "  " + dimStyle.Render("No products found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, p := range products {
		stock := passStyle.Render(fmt.Sprintf("%d in stock", p.Inventory))
		if p.Inventory == 0 {
			stock = failStyle.Render("out of stock")
		}
		fmt.Fprintf(&b, "  %s %s  %s  %s  %s\n",
			dimStyle.Render(fmt.Sprintf("#%-3d", p.ID)),
			titleStyle.Render(padRight(p.Name, 24)),
			dimStyle.Render(padRight(p.Category, 14)),
			money(p.Price),
			stock,
		)
	}
	return b.String()
}

// RenderProduct renders every field of one product.
func RenderProduct(p *domain.Product) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(p.Name), dimStyle.Render(fmt.Sprintf("#%d", p.ID)))
	field(&b, "Description", p.Description)
	field(&b, "Category", p.Category)
	field(&b, "Price", money(p.Price))
	field(&b, "Inventory", fmt.Sprintf("%d", p.Inventory))
	if len(p.Compatible) == 0 {
		field(&b, "Compatible vehicles", dimStyle.Render("none"))
		return b.String()
	}
	field(&b, "Compatible vehicles", "")
	for i, v := range p.Compatible {
		fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render(fmt.Sprintf("%d.", i+1)), v)
	}
	return b.String()
}

// RenderCustomers renders one line per customer.
func RenderCustomers(customers []domain.Customer) string {
	if len(customers) == 0 {
		return "  " + dimStyle.Render("No customers registered.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, c := range customers {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			warnStyle.Render(padRight(string(c.Kind()), 9)),
			titleStyle.Render(padRight(c.DisplayName(), 28)),
			dimStyle.Render(c.Identifier()),
		)
	}
	return b.String()
}

// RenderCustomer renders every field of one customer.
func RenderCustomer(c domain.Customer) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render(c.DisplayName()), dimStyle.Render(string(c.Kind())))

	info := c.ContactInfo()
	switch v := c.(type) {
	case *domain.Individual:
		field(&b, "National ID", v.NationalID)
	case *domain.Organization:
		field(&b, "Tax ID", v.TaxID)
	}
	field(&b, "Email", info.Email)
	field(&b, "Address", info.Address)
	field(&b, "Phone", info.Phone)
	if org, ok := c.(*domain.Organization); ok {
		field(&b, "Contact", org.ContactName)
		field(&b, "Contact phone", org.ContactPhone)
		field(&b, "Contact email", org.ContactEmail)
	}
	return b.String()
}

// RenderManifest summarises a saved snapshot.
func RenderManifest(dir string, m *domain.Manifest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s  %s\n",
		passStyle.Render("Saved"),
		dir,
		faintStyle.Render(shortHash(m.CommitHash)),
	)
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf(
		"%d customers, %d products, %d sales, %d payments, %d shipments",
		m.Counts["customers"], m.Counts["products"], m.Counts["sales"], m.Counts["payments"], m.Counts["shipments"],
	)))
	return b.String()
}

// RenderHistory lists every save of a data directory, oldest first.
func RenderHistory(entries []domain.Manifest) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No saves recorded.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Save History") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  %s  %s  %d sales, %d payments, %d customers\n",
			dimStyle.Render(e.SavedAt.Format("2006-01-02 15:04")),
			faintStyle.Render(shortHash(e.CommitHash)),
			e.Counts["sales"], e.Counts["payments"], e.Counts["customers"],
		)
	}
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	if hash == "" {
		return "·······"
	}
	return hash
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "    %s %s\n", labelStyle.Render(label), value)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// amountIn formats an amount in the denomination of a currency.
func amountIn(d decimal.Decimal, currency domain.Currency) string {
	if currency == domain.USD {
		return "$" + money(d)
	}
	return "Bs. " + money(d)
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
