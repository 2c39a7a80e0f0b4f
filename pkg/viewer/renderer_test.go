package viewer

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWidget(t *testing.T) *SphereWidget {
	t.Helper()
	test.NewTempApp(t)

	w := NewSphereWidget(sphere.DefaultLabels(), sphere.DefaultParams(), sphere.Light, 60, nil)
	test.WidgetRenderer(w)
	return w
}

func mouseAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func dragTo(x, y, dx, dy float32) *fyne.DragEvent {
	return &fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Dragged:    fyne.NewDelta(dx, dy),
	}
}

func TestWidgetSkipsSetupWithoutArea(t *testing.T) {
	w := newTestWidget(t)

	assert.Nil(t, w.renderer)
	assert.NotPanics(t, func() {
		w.MouseDown(mouseAt(1, 1))
		w.Dragged(dragTo(2, 2, 1, 1))
		w.DragEnd()
		w.step(time.Now())
	})

	w.Resize(fyne.NewSize(400, 300))
	require.NotNil(t, w.renderer)
	assert.InDelta(t, 105.0, w.renderer.Radius(), 1e-4)
}

func TestWidgetResizeKeepsRadius(t *testing.T) {
	w := newTestWidget(t)
	w.Resize(fyne.NewSize(400, 300))
	radius := w.renderer.Radius()

	w.Resize(fyne.NewSize(800, 800))
	assert.Equal(t, radius, w.renderer.Radius())

	width, height := w.renderer.Size()
	assert.Equal(t, 800.0, width)
	assert.Equal(t, 800.0, height)
}

func TestWidgetFrameBuildsObjects(t *testing.T) {
	w := newTestWidget(t)
	w.Resize(fyne.NewSize(400, 300))
	w.step(time.Now())

	objects := test.WidgetRenderer(w).Objects()
	texts := 0
	for _, o := range objects {
		if _, ok := o.(*canvas.Text); ok {
			texts++
		}
	}
	assert.Equal(t, 60, texts)
	_, isBackground := objects[0].(*canvas.Rectangle)
	assert.True(t, isBackground)

	// Objects are reused between frames
	w.step(time.Now())
	assert.Len(t, w.surface.texts, 60)
}

func TestWidgetMouseDrag(t *testing.T) {
	w := newTestWidget(t)
	w.Resize(fyne.NewSize(400, 300))
	motion := w.renderer.Motion()

	w.MouseDown(mouseAt(100, 100))
	assert.True(t, motion.Dragging())

	w.Dragged(dragTo(90, 80, -10, -20))
	assert.InDelta(t, 0.005, motion.Yaw, 1e-12)
	assert.InDelta(t, 0.01, motion.Pitch, 1e-12)

	w.MouseUp(mouseAt(90, 80))
	assert.False(t, motion.Dragging())
}

func TestWidgetTouchDrag(t *testing.T) {
	w := newTestWidget(t)
	w.Resize(fyne.NewSize(400, 300))
	motion := w.renderer.Motion()

	// No MouseDown on touch screens
	w.Dragged(dragTo(90, 80, -10, -20))
	assert.True(t, motion.Dragging())
	assert.InDelta(t, 0.005, motion.Yaw, 1e-12)
	assert.InDelta(t, 0.01, motion.Pitch, 1e-12)

	w.DragEnd()
	assert.False(t, motion.Dragging())
}

func TestWidgetSecondaryButtonDoesNotDrag(t *testing.T) {
	w := newTestWidget(t)
	w.Resize(fyne.NewSize(400, 300))

	event := mouseAt(10, 10)
	event.Button = desktop.MouseButtonSecondary
	w.MouseDown(event)
	assert.False(t, w.renderer.Motion().Dragging())
}

func TestWidgetMouseOutEndsDrag(t *testing.T) {
	w := newTestWidget(t)
	w.Resize(fyne.NewSize(400, 300))

	motion := w.renderer.Motion()
	yaw := motion.Yaw

	w.MouseDown(mouseAt(390, 100))
	w.MouseOut()
	assert.False(t, motion.Dragging())

	// Drag events keep arriving outside the widget
	w.Dragged(dragTo(450, 100, 60, 0))
	assert.False(t, motion.Dragging())
	assert.Equal(t, yaw, motion.Yaw)

	w.DragEnd()

	// The next press starts a new session
	w.MouseDown(mouseAt(100, 100))
	w.Dragged(dragTo(90, 100, -10, 0))
	assert.True(t, motion.Dragging())
	assert.InDelta(t, 0.005, motion.Yaw, 1e-12)
}

func TestWidgetTouchDragAfterMouseOut(t *testing.T) {
	w := newTestWidget(t)
	w.Resize(fyne.NewSize(400, 300))
	motion := w.renderer.Motion()

	// Leaving without an active drag does not block touch drags
	w.MouseOut()
	w.Dragged(dragTo(90, 80, -10, -20))
	assert.True(t, motion.Dragging())
}

func TestWidgetThemeToggle(t *testing.T) {
	w := newTestWidget(t)
	w.Resize(fyne.NewSize(400, 300))
	w.step(time.Now())

	w.ToggleTheme()
	assert.Equal(t, sphere.Dark, w.Theme())
	assert.True(t, w.backdrop.Fading())

	w.step(time.Now())
	dark := sphere.PaletteFor(sphere.Dark)
	for _, text := range w.surface.texts {
		c := text.Color.(color.NRGBA)
		c.A = 255
		assert.Contains(t, []color.NRGBA{dark.Primary, dark.Decorative}, c)
	}
}

func TestWidgetStartStop(t *testing.T) {
	w := newTestWidget(t)

	require.NoError(t, w.Start())
	assert.Error(t, w.Start())
	w.Stop()
	w.Stop()
	assert.False(t, w.animator.Running())
}
