package chart

import "fmt"

// Theme selects the chart palette.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Toggle switches between light and dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Palette is the set of colours a theme draws with.
type Palette struct {
	Background string
	Border     string
	Grid       string
	GuideLine  string
	Axis       string
	Text       string
	Heading    string
	Value      string
	PointRing  string
	Line       string
	Strong     string
	Moderate   string
	Weak       string
}

var palettes = map[Theme]Palette{
	Light: {
		Background: "#ffffff",
		Border:     "#e2e8f0",
		Grid:       "#f1f5f9",
		GuideLine:  "#e2e8f0",
		Axis:       "#475569",
		Text:       "#475569",
		Heading:    "#334155",
		Value:      "#1d4ed8",
		PointRing:  "#ffffff",
		Line:       "#3b82f6",
		Strong:     "#10b981",
		Moderate:   "#f59e0b",
		Weak:       "#ef4444",
	},
	Dark: {
		Background: "#1e293b",
		Border:     "#475569",
		Grid:       "#334155",
		GuideLine:  "#334155",
		Axis:       "#64748b",
		Text:       "#94a3b8",
		Heading:    "#cbd5e1",
		Value:      "#60a5fa",
		PointRing:  "#1e293b",
		Line:       "#3b82f6",
		Strong:     "#10b981",
		Moderate:   "#f59e0b",
		Weak:       "#ef4444",
	},
}

// Palette returns the colours for t. Unknown themes fall back to Light.
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Light]
}
