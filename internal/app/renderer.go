package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// baselineRatio approximates the baseline of the default raylib font
// relative to its size
const baselineRatio = 0.8

// rlSurface draws sphere frames with raylib. Calls must happen between
// BeginDrawing and EndDrawing.
type rlSurface struct {
	font       rl.Font
	background color.NRGBA
}

func newRLSurface(font rl.Font) *rlSurface {
	return &rlSurface{font: font}
}

func toRL(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (s *rlSurface) Clear() {
	rl.ClearBackground(toRL(s.background))
}

func (s *rlSurface) Line(x1, y1, x2, y2 float64, c color.NRGBA) {
	rl.DrawLineV(
		rl.NewVector2(float32(x1), float32(y1)),
		rl.NewVector2(float32(x2), float32(y2)),
		toRL(c),
	)
}

func (s *rlSurface) Text(text string, x, y, size float64, c color.NRGBA) {
	fontSize := float32(size)
	spacing := fontSize / 10
	measured := rl.MeasureTextEx(s.font, text, fontSize, spacing)

	pos := rl.NewVector2(float32(x)-measured.X/2, float32(y)-fontSize*baselineRatio)
	rl.DrawTextEx(s.font, text, pos, fontSize, spacing, toRL(c))
}

func (s *rlSurface) Dot(x, y, radius float64, c color.NRGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(radius), toRL(c))
}
