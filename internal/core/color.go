package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for arena elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// HealthColor grades a health value: green above half, yellow above a
// quarter, red otherwise. A non-positive max yields red.
func HealthColor(health, maxHealth float64) Color {
	switch {
	case maxHealth <= 0 || health <= maxHealth/4:
		return ColorBrightRed
	case health <= maxHealth/2:
		return ColorBrightYellow
	default:
		return ColorBrightGreen
	}
}
