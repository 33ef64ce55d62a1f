package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/comanda/comanda/internal/domain"
)

// ── warm terminal palette ──
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
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	createStyle = lipgloss.NewStyle().Foreground(accent)
	stateStyle  = lipgloss.NewStyle().Bold(true).Foreground(warning)
	notifyStyle = lipgloss.NewStyle().Foreground(success)
	removeStyle = lipgloss.NewStyle().Foreground(danger)
	priceStyle  = lipgloss.NewStyle().Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderTranscript formats a scenario run for the terminal.
func RenderTranscript(t *domain.Transcript) string {
	var b strings.Builder

	title := headerStyle.Render("comanda")
	subtitle := dimStyle.Render(t.Title)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	for _, e := range t.Events {
		renderEvent(&b, e)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	return b.String()
}

func renderEvent(b *strings.Builder, e domain.Event) {
	switch e.Kind {
	case domain.EventDishCreated:
		fmt.Fprintf(b, "  %s Plato creado: %s  %s\n",
			createStyle.Render("+"),
			e.Dish,
			priceStyle.Render("$"+e.Price),
		)
	case domain.EventDishDecorated:
		fmt.Fprintf(b, "  %s Plato decorado: %s  %s\n",
			createStyle.Render("~"),
			e.Dish,
			priceStyle.Render("$"+e.Price),
		)
	case domain.EventOrderCreated:
		b.WriteString("\n  " + titleStyle.Render(fmt.Sprintf("Pedido #%d creado", e.OrderID)) + "\n")
	case domain.EventItemAdded:
		fmt.Fprintf(b, "  %s %q agregado al pedido %d  %s\n",
			dimStyle.Render("·"),
			e.Dish,
			e.OrderID,
			priceStyle.Render("$"+e.Price),
		)
	case domain.EventObserverRegistered:
		fmt.Fprintf(b, "  %s %s\n",
			notifyStyle.Render("●"),
			dimStyle.Render(fmt.Sprintf("Cliente %q observa el pedido %d", e.Customer, e.OrderID)),
		)
	case domain.EventObserverRemoved:
		fmt.Fprintf(b, "  %s %s\n",
			removeStyle.Render("○"),
			dimStyle.Render(fmt.Sprintf("Cliente %q ya no observa el pedido %d", e.Customer, e.OrderID)),
		)
	case domain.EventStateChanged:
		fmt.Fprintf(b, "\n  %s Pedido %d: %s %s %s\n",
			stateStyle.Render("»"),
			e.OrderID,
			e.From,
			faintStyle.Render("→"),
			stateStyle.Render(e.To),
		)
	case domain.EventCustomerNotified:
		fmt.Fprintf(b, "      %s %s\n",
			notifyStyle.Render("✉"),
			dimStyle.Render(fmt.Sprintf("Notificación para %q: el pedido %d cambió a %s",
				e.Customer, e.OrderID, e.State)),
		)
	case domain.EventOrderDetail:
		renderDetail(b, e)
	}
}

func renderDetail(b *strings.Builder, e domain.Event) {
	b.WriteString("\n  " + titleStyle.Render(fmt.Sprintf("Detalle del Pedido %d", e.OrderID)) + "\n")
	fmt.Fprintf(b, "  %s %s\n", dimStyle.Render("Estado:"), stateStyle.Render(e.State))
	if len(e.Items) == 0 {
		b.WriteString("  " + faintStyle.Render("El pedido está vacío.") + "\n")
	}
	for _, item := range e.Items {
		fmt.Fprintf(b, "    - %s %s\n",
			padRight(item.Description, 48),
			priceStyle.Render("$"+item.Price),
		)
	}
	fmt.Fprintf(b, "  %s %s\n",
		titleStyle.Render("Total:"),
		titleStyle.Render("$"+e.Total),
	)
}

// RenderMenu formats a list of dishes as a priced menu.
func RenderMenu(title string, dishes []domain.Dish) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render("comanda") + "\n" + dimStyle.Render(title)))
	b.WriteString("\n\n")

	if len(dishes) == 0 {
		b.WriteString("  " + dimStyle.Render("El menú está vacío.") + "\n")
		return b.String()
	}

	for _, d := range dishes {
		fmt.Fprintf(&b, "  %s %s\n",
			padRight(d.Description(), 52),
			priceStyle.Render("$"+d.Price().StringFixed(2)),
		)
	}

	b.WriteString("\n")
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
