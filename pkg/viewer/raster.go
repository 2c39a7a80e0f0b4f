package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// largeTextSize is the label size from which the larger bitmap face is used
const largeTextSize = 12

// ImageSurface draws sphere frames into an in-memory RGBA image.
// Labels use fixed-size bitmap faces, so size only picks between two faces.
type ImageSurface struct {
	img        *image.RGBA
	Background color.NRGBA
	small      font.Face
	large      font.Face
}

// NewImageSurface creates a surface of the given pixel size
func NewImageSurface(width, height int, background color.NRGBA) *ImageSurface {
	return &ImageSurface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		Background: background,
		small:      basicfont.Face7x13,
		large:      inconsolata.Bold8x16,
	}
}

// Image returns the backing image. It is overwritten by the next frame.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the current image
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Clear fills the image with the background colour
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
}

// Line draws a line using Bresenham's algorithm
func (s *ImageSurface) Line(x1, y1, x2, y2 float64, c color.NRGBA) {
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))
	ix2, iy2 := int(math.Round(x2)), int(math.Round(y2))

	dx := abs(ix2 - ix1)
	dy := abs(iy2 - iy1)

	sx, sy := 1, 1
	if ix1 > ix2 {
		sx = -1
	}
	if iy1 > iy2 {
		sy = -1
	}

	err := dx - dy

	for {
		s.blend(ix1, iy1, c)

		if ix1 == ix2 && iy1 == iy2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			ix1 += sx
		}
		if e2 < dx {
			err += dx
			iy1 += sy
		}
	}
}

// Text draws a label centred on x with its baseline at y
func (s *ImageSurface) Text(text string, x, y, size float64, c color.NRGBA) {
	face := s.small
	if size >= largeTextSize {
		face = s.large
	}

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(text)
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.Dot.X -= width / 2
	d.DrawString(text)
}

// Dot fills a circle
func (s *ImageSurface) Dot(x, y, radius float64, c color.NRGBA) {
	bounds := s.img.Bounds()
	minY := int(math.Max(float64(bounds.Min.Y), math.Floor(y-radius)))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(y+radius)))
	minX := int(math.Max(float64(bounds.Min.X), math.Floor(x-radius)))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(x+radius)))

	r2 := radius * radius
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			// Sample at the pixel centre
			dx := float64(px) + 0.5 - x
			dy := float64(py) + 0.5 - y
			if dx*dx+dy*dy <= r2 {
				s.blend(px, py, c)
			}
		}
	}
}

// blend composites c over the pixel at (x, y); out of bounds is a no-op.
// The destination is treated as opaque, which holds after Clear.
func (s *ImageSurface) blend(x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		return
	}
	if c.A == 255 {
		s.img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		return
	}

	dst := s.img.RGBAAt(x, y)
	a := uint32(c.A)
	inv := 255 - a
	s.img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(c.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(c.B)*a + uint32(dst.B)*inv) / 255),
		A: uint8(a + uint32(dst.A)*inv/255),
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
