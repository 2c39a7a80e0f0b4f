package sphere

import "github.com/seclabx-org/portal/pkg/geometry"

// Kind selects the size and colour weight of a label
type Kind int

const (
	Primary Kind = iota
	Decorative
)

func (k Kind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Decorative:
		return "decorative"
	default:
		return "unknown"
	}
}

// PrimaryLabel is the brand label; every other label is decorative
const PrimaryLabel = "SeclabX"

// Point is one labeled particle on the sphere
type Point struct {
	Text string
	Kind Kind
	Pos  geometry.Vector3 // Rotated in place every frame

	// Derived by the projection step of each frame
	ScreenX float64
	ScreenY float64
	Scale   float64
}

// KindOf classifies a label
func KindOf(text string) Kind {
	if text == PrimaryLabel {
		return Primary
	}
	return Decorative
}

// DefaultLabels returns the 60 hero labels: 40 primary, 10 "BLOCK", 10 "CHAIN"
func DefaultLabels() []string {
	labels := make([]string, 0, 60)
	labels = appendRepeat(labels, PrimaryLabel, 40)
	labels = appendRepeat(labels, "BLOCK", 10)
	labels = appendRepeat(labels, "CHAIN", 10)
	return labels
}

func appendRepeat(labels []string, text string, n int) []string {
	for i := 0; i < n; i++ {
		labels = append(labels, text)
	}
	return labels
}
