package sphere

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected Theme
		wantErr  bool
	}{
		{"light", Light, false},
		{"dark", Dark, false},
		{" Dark ", Dark, false},
		{"LIGHT", Light, false},
		{"sepia", Light, true},
		{"", Light, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			theme, err := ParseTheme(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, theme)
			assert.Equal(t, tt.expected.String(), theme.String())
		})
	}
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, "dark", Dark.String())
	assert.Equal(t, "light", Light.String())
}

func TestPalettes(t *testing.T) {
	light, dark := PaletteFor(Light), PaletteFor(Dark)

	assert.Equal(t, color.NRGBA{R: 56, G: 189, B: 248, A: 255}, dark.Primary)
	assert.Equal(t, color.NRGBA{R: 15, G: 23, B: 42, A: 255}, light.Primary)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, dark.Highlight)
	assert.Equal(t, color.NRGBA{A: 255}, light.Highlight)
	assert.Greater(t, dark.Line.A, light.Line.A)
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 255}

	assert.Equal(t, uint8(0), withAlpha(c, -0.5).A)
	assert.Equal(t, uint8(128), withAlpha(c, 0.5).A)
	assert.Equal(t, uint8(255), withAlpha(c, 1.7).A)
	assert.Equal(t, uint8(3), withAlpha(c, 0.5).B)
}
