package viewer

import (
	"testing"

	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/stretchr/testify/assert"
)

func TestBackdropStartsOnTheme(t *testing.T) {
	b := NewBackdrop(sphere.Dark)
	assert.Equal(t, sphere.PaletteFor(sphere.Dark).Background, b.Color())
	assert.False(t, b.Fading())
	assert.Equal(t, b.Color(), b.Update(1))
}

func TestBackdropFades(t *testing.T) {
	light := sphere.PaletteFor(sphere.Light).Background
	dark := sphere.PaletteFor(sphere.Dark).Background

	b := NewBackdrop(sphere.Light)
	b.SetTheme(sphere.Dark)
	assert.True(t, b.Fading())

	mid := b.Update(FadeDuration / 2)
	assert.Less(t, mid.R, light.R)
	assert.Greater(t, mid.R, dark.R)

	prev := mid
	for i := 0; i < 10; i++ {
		c := b.Update(FadeDuration / 20)
		assert.LessOrEqual(t, c.R, prev.R, "fade to dark only darkens")
		prev = c
	}

	assert.Equal(t, dark, b.Update(FadeDuration))
	assert.False(t, b.Fading())
}

func TestBackdropSameThemeIsNoop(t *testing.T) {
	b := NewBackdrop(sphere.Light)
	b.SetTheme(sphere.Light)
	assert.False(t, b.Fading())
}

func TestBackdropReverseMidFade(t *testing.T) {
	light := sphere.PaletteFor(sphere.Light).Background

	b := NewBackdrop(sphere.Light)
	b.SetTheme(sphere.Dark)
	mid := b.Update(FadeDuration / 2)

	b.SetTheme(sphere.Light)
	first := b.Update(0.01)
	assert.InDelta(t, int(mid.R), int(first.R), 10, "reversal starts from the colour shown")

	assert.Equal(t, light, b.Update(FadeDuration))
}
