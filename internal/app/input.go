package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/seclabx-org/portal/pkg/sphere"
)

// pointerFrom normalises raylib input to a single pointer: the first touch
// point when the screen is touched, the mouse otherwise
func pointerFrom(touches int32, touch, mouse rl.Vector2) sphere.Pointer {
	if touches > 0 {
		return sphere.Pointer{X: float64(touch.X), Y: float64(touch.Y)}
	}
	return sphere.Pointer{X: float64(mouse.X), Y: float64(mouse.Y)}
}

// pointerEvent is one polled input transition
type pointerEvent int

const (
	pointerNone pointerEvent = iota
	pointerDown
	pointerMove
	pointerUp
)

// classify turns the polled button state into the event the sphere sees.
// raylib is polled once per frame, so a held button only counts as a move
// when the pointer actually changed position.
func classify(pressed, released, down, onScreen, moved bool) pointerEvent {
	switch {
	case pressed:
		return pointerDown
	case released || (down && !onScreen):
		return pointerUp
	case down && moved:
		return pointerMove
	default:
		return pointerNone
	}
}

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyT) {
		app.setTheme(app.View.theme.Toggle())
	}

	pos := pointerFrom(rl.GetTouchPointCount(), rl.GetTouchPosition(0), rl.GetMousePosition())
	moved := !app.Interaction.hasPointer || pos != app.Interaction.lastPointer
	app.Interaction.lastPointer = pos
	app.Interaction.hasPointer = true

	event := classify(
		rl.IsMouseButtonPressed(rl.MouseLeftButton),
		rl.IsMouseButtonReleased(rl.MouseLeftButton),
		rl.IsMouseButtonDown(rl.MouseLeftButton),
		rl.IsCursorOnScreen(),
		moved,
	)
	app.applyPointer(event, pos)
}

// applyPointer feeds one event to the rotation state machine
func (app *App) applyPointer(event pointerEvent, pos sphere.Pointer) {
	if app.Sphere.renderer == nil {
		return
	}
	motion := app.Sphere.renderer.Motion()

	switch event {
	case pointerDown:
		motion.Press(pos)
	case pointerMove:
		motion.Move(pos)
	case pointerUp:
		motion.Release()
	}
}
