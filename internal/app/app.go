package app

import (
	"context"
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/seclabx-org/portal/pkg/sphere"
	"go.uber.org/zap"
)

// Run opens the sphere window and blocks until it is closed or ctx is done.
// raylib requires this to run on the main OS thread.
func Run(ctx context.Context, opts Options, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return errors.New("window size must be positive")
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))

	app := newApp(opts, rl.GetFontDefault(), log)
	app.setup()

	log.Info("window opened",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Stringer("theme", opts.Theme))

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			log.Info("window closing", zap.Error(ctx.Err()))
			return nil
		case theme := <-opts.ThemeUpdates:
			app.setTheme(theme)
		default:
		}

		app.handleResize()
		app.handleInput()

		background := app.View.backdrop.Update(rl.GetFrameTime())
		app.View.surface.background = background

		rl.BeginDrawing()
		if app.Sphere.renderer != nil {
			app.Sphere.renderer.Frame(app.View.surface, app.View.theme)
		} else {
			app.View.surface.Clear()
		}
		app.drawUI()
		rl.EndDrawing()
	}

	log.Info("window closed")
	return nil
}

// setup creates the renderer once the window has an area
func (app *App) setup() {
	if app.Sphere.renderer != nil {
		return
	}
	width, height := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())

	r, err := sphere.NewRenderer(width, height, app.Sphere.labels, app.Sphere.params)
	if err != nil {
		// No area yet (minimised); retried on the next resize
		return
	}
	app.Sphere.renderer = r
}

// handleResize follows window size changes; the sphere keeps its radius
func (app *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	if app.Sphere.renderer == nil {
		app.setup()
		return
	}
	app.Sphere.renderer.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
}

// setTheme switches palette and starts the backdrop fade
func (app *App) setTheme(theme sphere.Theme) {
	if theme == app.View.theme {
		return
	}
	app.View.theme = theme
	app.View.backdrop.SetTheme(theme)
	app.log.Info("theme changed", zap.Stringer("theme", theme))
}
