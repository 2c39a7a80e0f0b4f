package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/seclabx-org/portal/pkg/sphere"
)

// drawUI draws the hint line in the bottom-left corner
func (app *App) drawUI() {
	fontSize := float32(14)
	screenHeight := float32(rl.GetScreenHeight())

	palette := sphere.PaletteFor(app.View.theme)
	hint := palette.Decorative
	hint.A = 160

	text := fmt.Sprintf("drag to rotate | T: %s theme", app.View.theme.Toggle())
	pos := rl.NewVector2(12, screenHeight-fontSize-12)
	rl.DrawTextEx(app.View.surface.font, text, pos, fontSize, fontSize/10, toRL(hint))
}
