// Package sphere renders a rotating point cloud of labels on a sphere.
//
// The renderer owns all mutable animation state and is driven one frame at a
// time by its host. It is not safe for concurrent use; hosts call Frame and
// the pointer methods from a single goroutine.
package sphere

import (
	"errors"
	"image/color"
	"math"
	"slices"
)

// ErrNoSurface is returned when the drawing surface has no area yet
var ErrNoSurface = errors.New("sphere: drawing surface unavailable")

// Renderer is the interactive point-cloud sphere
type Renderer struct {
	params Params
	points []Point
	radius float64
	width  float64
	height float64
	motion *Motion
}

// NewRenderer lays out the labels on a sphere sized to the surface.
// The radius is fixed from here on; later resizes only move the centre.
// It is capped below the focal length so every point stays in front of
// the camera.
func NewRenderer(width, height float64, labels []string, params Params) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNoSurface
	}

	radius := math.Min(
		math.Min(width, height)*params.RadiusFraction,
		params.FocalLength*params.RadiusLimit,
	)

	return &Renderer{
		params: params,
		points: Layout(labels, radius),
		radius: radius,
		width:  width,
		height: height,
		motion: NewMotion(params),
	}, nil
}

// Resize updates the surface dimensions
func (r *Renderer) Resize(width, height float64) {
	r.width = width
	r.height = height
}

// Size returns the current surface dimensions
func (r *Renderer) Size() (float64, float64) {
	return r.width, r.height
}

// Radius returns the sphere radius chosen at setup
func (r *Renderer) Radius() float64 {
	return r.radius
}

// Motion returns the rotation state for pointer input
func (r *Renderer) Motion() *Motion {
	return r.motion
}

// Points returns a copy of the points in their current draw order
func (r *Renderer) Points() []Point {
	return slices.Clone(r.points)
}

// Frame advances the animation by one frame and draws it to s
func (r *Renderer) Frame(s Surface, theme Theme) {
	r.motion.Step()

	s.Clear()

	r.rotate(r.motion.Pitch, r.motion.Yaw)
	r.project()

	palette := PaletteFor(theme)
	r.drawEdges(s, palette)

	// Painter's algorithm: farthest first
	r.sortByDepth()
	r.drawLabels(s, palette)
}

// rotate applies this frame's angles to every point in place. There is no
// cumulative rotation matrix, so float drift builds up over long sessions.
func (r *Renderer) rotate(pitch, yaw float64) {
	for i := range r.points {
		p := &r.points[i]
		p.Pos = p.Pos.RotateX(pitch).RotateY(yaw)
	}
}

// project computes screen coordinates with a simple perspective divide.
// focal + z stays positive because |z| <= radius <= focal*RadiusLimit.
func (r *Renderer) project() {
	cx := r.width / 2
	cy := r.height / 2
	focal := r.params.FocalLength

	for i := range r.points {
		p := &r.points[i]
		scale := focal / (focal + p.Pos.Z)
		p.ScreenX = cx + p.Pos.X*scale
		p.ScreenY = cy + p.Pos.Y*scale
		p.Scale = scale
	}
}

// drawEdges connects close pairs. Each unordered pair is tested once, in
// slice order, so the front-facing test applies to the pair's first point.
// O(N²): fine for tens of points.
func (r *Renderer) drawEdges(s Surface, palette Palette) {
	for i := 0; i < len(r.points); i++ {
		a := &r.points[i]
		for j := i + 1; j < len(r.points); j++ {
			b := &r.points[j]
			if r.connected(a, b) {
				s.Line(a.ScreenX, a.ScreenY, b.ScreenX, b.ScreenY, palette.Line)
			}
		}
	}
}

func (r *Renderer) connected(a, b *Point) bool {
	dist := math.Hypot(a.ScreenX-b.ScreenX, a.ScreenY-b.ScreenY)
	return dist < r.params.EdgeDistance && a.Scale > r.params.FrontScale
}

func (r *Renderer) sortByDepth() {
	slices.SortStableFunc(r.points, func(a, b Point) int {
		switch {
		case a.Pos.Z < b.Pos.Z:
			return -1
		case a.Pos.Z > b.Pos.Z:
			return 1
		default:
			return 0
		}
	})
}

func (r *Renderer) drawLabels(s Surface, palette Palette) {
	for i := range r.points {
		p := &r.points[i]
		depth := (p.Pos.Z + r.radius) / (2 * r.radius)

		var size float64
		var c color.NRGBA
		if p.Kind == Primary {
			size = r.params.PrimarySize * p.Scale
			c = withAlpha(palette.Primary, depth*0.9+0.1)
		} else {
			size = r.params.DecorativeSize * p.Scale
			c = withAlpha(palette.Decorative, depth*0.7)
		}

		s.Text(p.Text, p.ScreenX, p.ScreenY+r.params.BaselineOffset, size, c)

		if p.Scale > r.params.HighlightScale {
			s.Dot(p.ScreenX, p.ScreenY-size, r.params.DotRadius*p.Scale, palette.Highlight)
		}
	}
}
