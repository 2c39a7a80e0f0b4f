package sphere

import "image/color"

type recordedLine struct {
	x1, y1, x2, y2 float64
	c              color.NRGBA
}

type recordedText struct {
	text string
	x, y float64
	size float64
	c    color.NRGBA
}

type recordedDot struct {
	x, y, radius float64
	c            color.NRGBA
}

// recorder is a Surface that keeps the commands of the last frame
type recorder struct {
	clears int
	lines  []recordedLine
	texts  []recordedText
	dots   []recordedDot
	order  []string
}

func (r *recorder) Clear() {
	r.clears++
	r.lines = nil
	r.texts = nil
	r.dots = nil
	r.order = nil
}

func (r *recorder) Line(x1, y1, x2, y2 float64, c color.NRGBA) {
	r.lines = append(r.lines, recordedLine{x1, y1, x2, y2, c})
	r.order = append(r.order, "line")
}

func (r *recorder) Text(text string, x, y, size float64, c color.NRGBA) {
	r.texts = append(r.texts, recordedText{text, x, y, size, c})
	r.order = append(r.order, "text")
}

func (r *recorder) Dot(x, y, radius float64, c color.NRGBA) {
	r.dots = append(r.dots, recordedDot{x, y, radius, c})
	r.order = append(r.order, "dot")
}
