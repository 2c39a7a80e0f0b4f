package viewer

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeDuration is the backdrop cross-fade time in seconds
const FadeDuration = 0.5

// Backdrop is the page background behind the sphere. It cross-fades to the
// new theme's background when the theme changes; the sphere itself switches
// palettes immediately.
type Backdrop struct {
	theme   sphere.Theme
	from    colorful.Color
	to      colorful.Color
	tween   *gween.Tween
	current color.NRGBA
}

// NewBackdrop creates a backdrop showing the theme's background
func NewBackdrop(theme sphere.Theme) *Backdrop {
	return &Backdrop{
		theme:   theme,
		current: sphere.PaletteFor(theme).Background,
	}
}

// SetTheme starts a fade toward the theme's background from the colour
// currently shown, so toggling mid-fade reverses smoothly
func (b *Backdrop) SetTheme(theme sphere.Theme) {
	if theme == b.theme {
		return
	}
	b.theme = theme
	b.from = toColorful(b.current)
	b.to = toColorful(sphere.PaletteFor(theme).Background)
	b.tween = gween.New(0, 1, FadeDuration, ease.InOutQuad)
}

// Update advances the fade by dt seconds and returns the colour to show
func (b *Backdrop) Update(dt float32) color.NRGBA {
	if b.tween == nil {
		return b.current
	}

	t, done := b.tween.Update(dt)
	if done {
		b.tween = nil
		b.current = sphere.PaletteFor(b.theme).Background
		return b.current
	}

	r, g, bl := b.from.BlendLab(b.to, float64(t)).Clamped().RGB255()
	b.current = color.NRGBA{R: r, G: g, B: bl, A: 255}
	return b.current
}

// Color returns the colour currently shown
func (b *Backdrop) Color() color.NRGBA {
	return b.current
}

// Fading reports whether a cross-fade is in progress
func (b *Backdrop) Fading() bool {
	return b.tween != nil
}

func toColorful(c color.NRGBA) colorful.Color {
	cf, _ := colorful.MakeColor(c)
	return cf
}
