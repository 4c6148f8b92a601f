package presenter

import (
	"fmt"
	"strings"
)

const (
	// MovePreviewSize is how many moves the detail view lists
	MovePreviewSize = 10

	// maxStatWidth is the bar width cap, in percent
	maxStatWidth = 100

	// EmptyStateImage is shown by the list view when nothing matches
	EmptyStateImage = "/static/empty-state.svg"
)

// FormatID renders an identifier zero-padded to three digits: 1 -> "#001"
func FormatID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// FormatHeight renders a height in decimetres as metres: 7 -> "0.7m"
func FormatHeight(decimetres int) string {
	return fmt.Sprintf("%.1fm", float64(decimetres)/10)
}

// FormatWeight renders a weight in hectograms as kilograms: 905 -> "90.5kg"
func FormatWeight(hectograms int) string {
	return fmt.Sprintf("%.1fkg", float64(hectograms)/10)
}

// Humanize replaces dashes with spaces: "special-attack" -> "special attack"
func Humanize(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}

// StatWidth clamps a base value to a bar width between 0 and 100
func StatWidth(base int) int {
	if base > maxStatWidth {
		return maxStatWidth
	}
	if base < 0 {
		return 0
	}
	return base
}

// MoveCaption renders the count caption under the move preview
func MoveCaption(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d", shown, total)
}
