package viewer

import (
	"context"
	"errors"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/seclabx-org/portal/pkg/sphere"
	"go.uber.org/zap"
)

// labelStyle matches the page's semibold monospace labels
var labelStyle = fyne.TextStyle{Bold: true, Monospace: true}

// SphereWidget hosts the sphere renderer in a fyne canvas.
//
// All state is touched on the fyne main goroutine: input callbacks and
// layout run there, and animation ticks are marshalled there with fyne.Do.
type SphereWidget struct {
	widget.BaseWidget

	labels   []string
	params   sphere.Params
	log      *zap.Logger
	renderer *sphere.Renderer // nil until the widget has been laid out with an area
	theme    sphere.Theme
	backdrop *Backdrop
	surface  *canvasSurface
	animator *sphere.Animator
	last     time.Time
	size     fyne.Size
	left     bool // a mouse drag ended by the pointer leaving; ignore drags until the next press
}

// NewSphereWidget creates a widget that animates at fps once started
func NewSphereWidget(labels []string, params sphere.Params, theme sphere.Theme, fps int, log *zap.Logger) *SphereWidget {
	if log == nil {
		log = zap.NewNop()
	}
	w := &SphereWidget{
		labels:   labels,
		params:   params,
		log:      log,
		theme:    theme,
		backdrop: NewBackdrop(theme),
		surface:  newCanvasSurface(),
	}
	w.animator = sphere.NewAnimator(fps, w.tick)
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer creates the renderer for the widget
func (w *SphereWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sphereWidgetRenderer{
		widget:     w,
		background: canvas.NewRectangle(w.backdrop.Color()),
	}
}

// Start begins the animation loop
func (w *SphereWidget) Start() error {
	w.last = time.Now()
	if err := w.animator.Start(context.Background()); err != nil {
		return err
	}
	w.log.Debug("sphere animation started")
	return nil
}

// Stop ends the animation loop; no frame is drawn after it returns
func (w *SphereWidget) Stop() {
	if !w.animator.Running() {
		return
	}
	w.animator.Stop()
	w.log.Debug("sphere animation stopped")
}

// Theme returns the current theme
func (w *SphereWidget) Theme() sphere.Theme {
	return w.theme
}

// SetTheme switches the palette from the next frame on
func (w *SphereWidget) SetTheme(theme sphere.Theme) {
	if theme == w.theme {
		return
	}
	w.theme = theme
	w.backdrop.SetTheme(theme)
	w.log.Info("theme changed", zap.Stringer("theme", theme))
}

// ToggleTheme flips between light and dark
func (w *SphereWidget) ToggleTheme() {
	w.SetTheme(w.theme.Toggle())
}

// tick runs on the animator goroutine
func (w *SphereWidget) tick(ctx context.Context) {
	fyne.Do(func() {
		// Stop may have run while this call was queued
		if ctx.Err() != nil {
			return
		}
		w.step(time.Now())
	})
}

// step draws one frame
func (w *SphereWidget) step(now time.Time) {
	dt := now.Sub(w.last).Seconds()
	w.last = now
	w.backdrop.Update(float32(dt))

	if w.renderer != nil {
		w.renderer.Frame(w.surface, w.theme)
	}
	w.Refresh()
}

// layout sets up the renderer on the first layout with an area and
// resizes it afterwards
func (w *SphereWidget) layout(size fyne.Size) {
	w.size = size
	width, height := float64(size.Width), float64(size.Height)

	if w.renderer != nil {
		w.renderer.Resize(width, height)
		return
	}

	r, err := sphere.NewRenderer(width, height, w.labels, w.params)
	if errors.Is(err, sphere.ErrNoSurface) {
		// Not laid out yet; the next layout retries
		return
	}
	w.renderer = r
}

// pointerAt converts a fyne position to a sphere pointer. Mouse and touch
// positions both arrive as widget-relative fyne positions.
func pointerAt(pos fyne.Position) sphere.Pointer {
	return sphere.Pointer{X: float64(pos.X), Y: float64(pos.Y)}
}

// MouseDown starts a drag with the primary button
func (w *SphereWidget) MouseDown(event *desktop.MouseEvent) {
	if w.renderer == nil || event.Button != desktop.MouseButtonPrimary {
		return
	}
	w.left = false
	w.renderer.Motion().Press(pointerAt(event.Position))
}

// MouseUp ends the drag
func (w *SphereWidget) MouseUp(*desktop.MouseEvent) {
	w.release()
}

// MouseIn is part of desktop.Hoverable
func (w *SphereWidget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved is part of desktop.Hoverable; drag motion arrives via Dragged
func (w *SphereWidget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut ends the drag when the pointer leaves the widget. fyne keeps
// delivering Dragged events after that; they are ignored until the next press.
func (w *SphereWidget) MouseOut() {
	if w.renderer != nil && w.renderer.Motion().Dragging() {
		w.left = true
	}
	w.release()
}

// Dragged feeds pointer motion to the sphere. Touch drags have no
// MouseDown, so the first event opens the session at its start point.
func (w *SphereWidget) Dragged(event *fyne.DragEvent) {
	if w.renderer == nil || w.left {
		return
	}
	motion := w.renderer.Motion()
	if !motion.Dragging() {
		motion.Press(pointerAt(event.Position.Subtract(event.Dragged)))
	}
	motion.Move(pointerAt(event.Position))
}

// DragEnd ends the drag
func (w *SphereWidget) DragEnd() {
	w.left = false
	w.release()
}

func (w *SphereWidget) release() {
	if w.renderer != nil {
		w.renderer.Motion().Release()
	}
}

// sphereWidgetRenderer implements fyne.WidgetRenderer
type sphereWidgetRenderer struct {
	widget     *SphereWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *sphereWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.widget.layout(size)
}

func (r *sphereWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sphereWidgetRenderer) Refresh() {
	r.background.FillColor = r.widget.backdrop.Color()

	r.objects = append(r.objects[:0], r.background)
	r.objects = append(r.objects, r.widget.surface.objects...)

	canvas.Refresh(r.widget)
}

func (r *sphereWidgetRenderer) Objects() []fyne.CanvasObject {
	if len(r.objects) == 0 {
		return []fyne.CanvasObject{r.background}
	}
	return r.objects
}

func (r *sphereWidgetRenderer) Destroy() {
	r.widget.Stop()
}

// canvasSurface turns drawing commands into fyne canvas objects, reusing
// the objects of previous frames
type canvasSurface struct {
	lines   []*canvas.Line
	texts   []*canvas.Text
	dots    []*canvas.Circle
	nLines  int
	nTexts  int
	nDots   int
	objects []fyne.CanvasObject
}

func newCanvasSurface() *canvasSurface {
	return &canvasSurface{}
}

func (s *canvasSurface) Clear() {
	s.nLines, s.nTexts, s.nDots = 0, 0, 0
	s.objects = s.objects[:0]
}

func (s *canvasSurface) Line(x1, y1, x2, y2 float64, c color.NRGBA) {
	if s.nLines == len(s.lines) {
		s.lines = append(s.lines, canvas.NewLine(c))
	}
	line := s.lines[s.nLines]
	s.nLines++

	line.StrokeColor = c
	line.StrokeWidth = 1
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	s.objects = append(s.objects, line)
}

func (s *canvasSurface) Text(text string, x, y, size float64, c color.NRGBA) {
	if s.nTexts == len(s.texts) {
		s.texts = append(s.texts, canvas.NewText("", c))
	}
	t := s.texts[s.nTexts]
	s.nTexts++

	t.Text = text
	t.Color = c
	t.TextSize = float32(size)
	t.TextStyle = labelStyle

	// Canvas text is placed by its top-left corner
	bounds, baseline := fyne.CurrentApp().Driver().RenderedTextSize(text, t.TextSize, labelStyle, nil)
	t.Resize(bounds)
	t.Move(fyne.NewPos(float32(x)-bounds.Width/2, float32(y)-baseline))
	s.objects = append(s.objects, t)
}

func (s *canvasSurface) Dot(x, y, radius float64, c color.NRGBA) {
	if s.nDots == len(s.dots) {
		s.dots = append(s.dots, canvas.NewCircle(c))
	}
	dot := s.dots[s.nDots]
	s.nDots++

	dot.FillColor = c
	d := float32(2 * radius)
	dot.Resize(fyne.NewSize(d, d))
	dot.Move(fyne.NewPos(float32(x-radius), float32(y-radius)))
	s.objects = append(s.objects, dot)
}
