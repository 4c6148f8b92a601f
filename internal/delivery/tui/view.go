package tui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/dexview/backend/internal/presenter"
)

// Palette for chrome that is not driven by a record type
const (
	ColorHeader   = lipgloss.Color("#EF4444")
	ColorLabel    = lipgloss.Color("#6B7280")
	ColorValue    = lipgloss.Color("#F9FAFB")
	ColorMuted    = lipgloss.Color("#9CA3AF")
	ColorSelected = lipgloss.Color("#FACC15")
	ColorError    = lipgloss.Color("#DC2626")
)

const (
	statBarCells = 25
	listChrome   = 6
)

// View renders the current state
func (m *Model) View() string {
	switch m.state {
	case ViewStateLoading:
		return lipgloss.NewStyle().Foreground(ColorMuted).Render("Loading Pokémon...") + "\n"
	case ViewStateDetail:
		if m.detail != nil {
			return renderDetail(*m.detail, m.width)
		}
	case ViewStateQuitting:
		if m.err != nil {
			return lipgloss.NewStyle().Foreground(ColorError).Render("Error: "+m.err.Error()) + "\n"
		}
		return ""
	}
	return m.renderList()
}

func (m *Model) renderList() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	b.WriteString(titleStyle.Render("Pokédex"))
	if m.browser != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d / %d", len(m.cards), m.browser.Total())))
	}
	if m.pending {
		b.WriteString(mutedStyle.Italic(true).Render("  updating..."))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.cards) == 0 {
		if !m.pending {
			b.WriteString(mutedStyle.Italic(true).Render("No Pokémon found"))
			b.WriteString("\n")
		}
		b.WriteString(renderHelp("type to filter", "esc clear", "ctrl+c quit"))
		return b.String()
	}

	start, end := visibleWindow(len(m.cards), m.selected, m.height-listChrome)
	for i := start; i < end; i++ {
		b.WriteString(renderCardLine(m.cards[i], i == m.selected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelp("↑/↓ select", "enter details", "esc clear", "ctrl+c quit"))
	return b.String()
}

// visibleWindow returns the [start, end) slice of n rows to show so that
// selected stays on screen
func visibleWindow(n, selected, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := selected - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

func renderCardLine(card presenter.Card, selected bool) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(ColorValue)
	if selected {
		cursor = lipgloss.NewStyle().Foreground(ColorSelected).Render("> ")
		nameStyle = nameStyle.Foreground(ColorSelected).Bold(true)
	}

	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	name := nameStyle.Width(16).Render(capitalize(card.Name))

	return cursor + labelStyle.Render(card.Label) + " " + name + " " + renderChips(card.Types) +
		labelStyle.Render(fmt.Sprintf("  %s  %s", card.Height, card.Weight))
}

func renderChips(chips []presenter.TypeChip) string {
	parts := make([]string, 0, len(chips))
	for _, chip := range chips {
		parts = append(parts, chipStyle(chip.Color).Render(capitalize(chip.Name)))
	}
	return strings.Join(parts, " ")
}

func chipStyle(c presenter.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1)
}

func renderDetail(d presenter.Detail, width int) string {
	var b strings.Builder

	theme := lipgloss.Color(d.Theme.Hex)
	titleStyle := lipgloss.NewStyle().Foreground(theme).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	b.WriteString(titleStyle.Render(capitalize(d.Name)))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(d.Label))
	b.WriteString("\n")
	b.WriteString(renderChips(d.Types))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Height ") + valueStyle.Render(d.Height))
	b.WriteString("   ")
	b.WriteString(labelStyle.Render("Weight ") + valueStyle.Render(d.Weight))
	b.WriteString("\n")
	if d.Image != "" {
		b.WriteString(mutedStyle.Render(d.Image))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Abilities"))
	b.WriteString("\n")
	for _, a := range d.Abilities {
		line := "  " + capitalize(a.Name)
		if a.Hidden {
			line += mutedStyle.Italic(true).Render(" (Hidden)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Base Stats"))
	b.WriteString("\n")
	for _, s := range d.Stats {
		b.WriteString(renderStatBar(s))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %-16s", "Total")) + valueStyle.Render(fmt.Sprintf("%3d", d.StatTotal)))
	b.WriteString("\n")

	if d.Moves.Total > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Moves"))
		b.WriteString("\n")
		moves := make([]string, 0, len(d.Moves.Moves))
		for _, mv := range d.Moves.Moves {
			moves = append(moves, capitalize(mv))
		}
		b.WriteString(lipgloss.NewStyle().MaxWidth(max(width, 1)).Render("  " + strings.Join(moves, ", ")))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("  " + d.Moves.Caption + " moves"))
		b.WriteString("\n")
	}

	if len(d.Gallery) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Sprites"))
		b.WriteString("\n")
		for _, img := range d.Gallery {
			b.WriteString(labelStyle.Render(fmt.Sprintf("  %-13s", img.Label)) + mutedStyle.Render(img.URL))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(renderHelp("esc back", "ctrl+c quit"))
	return b.String()
}

func renderStatBar(s presenter.StatBar) string {
	filled := s.Width * statBarCells / 100
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color.Hex)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorLabel).Render(strings.Repeat("░", statBarCells-filled))

	return lipgloss.NewStyle().Foreground(ColorLabel).Render(fmt.Sprintf("  %-16s", capitalize(s.Name))) +
		lipgloss.NewStyle().Foreground(ColorValue).Render(fmt.Sprintf("%3d ", s.Value)) + bar
}

func renderHelp(items ...string) string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Join(items, " • "))
}

// capitalize upper-cases the first letter of each word
func capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
