package sphere

import "image/color"

// Surface receives the drawing commands of one frame.
// Coordinates are in surface pixels with the origin at the top left.
type Surface interface {
	// Clear erases the previous frame
	Clear()
	// Line draws a one pixel segment
	Line(x1, y1, x2, y2 float64, c color.NRGBA)
	// Text draws a label horizontally centred on x with its baseline at y
	Text(text string, x, y, size float64, c color.NRGBA)
	// Dot draws a filled circle
	Dot(x, y, radius float64, c color.NRGBA)
}
