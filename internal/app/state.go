package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/seclabx-org/portal/pkg/viewer"
	"go.uber.org/zap"
)

// Options configures the sphere window
type Options struct {
	Title  string
	Width  int
	Height int
	FPS    int
	Theme  sphere.Theme
	Labels []string
	Params sphere.Params

	// ThemeUpdates delivers theme changes from outside the window, e.g. a
	// reloaded settings file. May be nil.
	ThemeUpdates <-chan sphere.Theme
}

// SphereState holds the renderer, created once the window has an area
type SphereState struct {
	renderer *sphere.Renderer
	labels   []string
	params   sphere.Params
}

// InteractionState holds pointer polling state
type InteractionState struct {
	lastPointer sphere.Pointer
	hasPointer  bool
}

// ViewState holds theme and background
type ViewState struct {
	theme    sphere.Theme
	backdrop *viewer.Backdrop
	surface  *rlSurface
}

// App is the raylib host of the sphere renderer
type App struct {
	Sphere      SphereState
	Interaction InteractionState
	View        ViewState
	log         *zap.Logger
}

func newApp(opts Options, font rl.Font, log *zap.Logger) *App {
	return &App{
		Sphere: SphereState{
			labels: opts.Labels,
			params: opts.Params,
		},
		View: ViewState{
			theme:    opts.Theme,
			backdrop: viewer.NewBackdrop(opts.Theme),
			surface:  newRLSurface(font),
		},
		log: log,
	}
}
