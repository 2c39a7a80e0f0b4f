package sphere

import (
	"math"

	"github.com/seclabx-org/portal/pkg/geometry"
)

// Layout places one point per label on a sphere of the given radius.
//
// Placement is the fibonacci sphere: polar angles are evenly spaced in
// cosine so the poles do not cluster, and the azimuth advances by
// sqrt(N*pi) per radian of polar angle. The result is deterministic.
func Layout(labels []string, radius float64) []Point {
	n := len(labels)
	points := make([]Point, n)
	spiral := math.Sqrt(float64(n) * math.Pi)

	for i, text := range labels {
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := spiral * phi

		points[i] = Point{
			Text:  text,
			Kind:  KindOf(text),
			Pos:   geometry.FromSpherical(radius, theta, phi),
			Scale: 1,
		}
	}

	return points
}
