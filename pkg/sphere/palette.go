package sphere

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme is the page's light/dark flag
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme parses "light" or "dark" (case-insensitive)
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q", s)
	}
}

// Palette holds the colours of one theme. Primary and Decorative are opaque;
// their alpha is computed per label from depth.
type Palette struct {
	Primary    color.NRGBA
	Decorative color.NRGBA
	Line       color.NRGBA
	Highlight  color.NRGBA
	Background color.NRGBA
}

// Colours follow the page's slate, sky and purple accents
var (
	lightPalette = Palette{
		Primary:    color.NRGBA{R: 15, G: 23, B: 42, A: 255},
		Decorative: color.NRGBA{R: 100, G: 116, B: 139, A: 255},
		Line:       color.NRGBA{R: 15, G: 23, B: 42, A: 13},
		Highlight:  color.NRGBA{A: 255},
		Background: color.NRGBA{R: 248, G: 250, B: 252, A: 255},
	}
	darkPalette = Palette{
		Primary:    color.NRGBA{R: 56, G: 189, B: 248, A: 255},
		Decorative: color.NRGBA{R: 168, G: 85, B: 247, A: 255},
		Line:       color.NRGBA{R: 56, G: 189, B: 248, A: 38},
		Highlight:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Background: color.NRGBA{R: 10, G: 10, B: 12, A: 255},
	}
)

// PaletteFor returns the palette of a theme
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}

// withAlpha returns c with its alpha replaced by a in [0, 1]
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}
