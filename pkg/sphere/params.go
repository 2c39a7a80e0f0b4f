package sphere

// Params holds the renderer's tuning constants. They are fixed at build time;
// DefaultParams is what every shell uses, other values exist for tests.
type Params struct {
	RadiusFraction float64 // Sphere radius as a fraction of the smaller surface dimension
	RadiusLimit    float64 // Max sphere radius as a fraction of FocalLength, must be below 1
	IdlePitch      float64 // Idle rotation around X, radians per frame
	IdleYaw        float64 // Idle rotation around Y, radians per frame
	Sensitivity    float64 // Radians per pixel of drag
	Decay          float64 // Weight kept from the current velocity each idle frame
	EdgeDistance   float64 // Max screen distance for a connective line
	FrontScale     float64 // Min perspective scale for a point to start a line
	HighlightScale float64 // Min perspective scale for the highlight dot
	FocalLength    float64 // Perspective focal length
	PrimarySize    float64 // Font size of primary labels at scale 1
	DecorativeSize float64 // Font size of decorative labels at scale 1
	BaselineOffset float64 // Label baseline below the projected point
	DotRadius      float64 // Highlight dot radius at scale 1
}

// DefaultParams returns the constants the hero sphere ships with
func DefaultParams() Params {
	return Params{
		RadiusFraction: 0.35,
		RadiusLimit:    0.9,
		IdlePitch:      0.001,
		IdleYaw:        0.002,
		Sensitivity:    0.0005,
		Decay:          0.95,
		EdgeDistance:   60,
		FrontScale:     0.6,
		HighlightScale: 0.9,
		FocalLength:    300,
		PrimarySize:    14,
		DecorativeSize: 10,
		BaselineOffset: 5,
		DotRadius:      2,
	}
}
