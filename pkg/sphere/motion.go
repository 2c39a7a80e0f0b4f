package sphere

// Pointer is a normalised pointer position in surface coordinates.
// Shells convert mouse and touch events to it at the input boundary.
type Pointer struct {
	X, Y float64
}

// Motion is the rotation state machine. Pitch and Yaw are the angles applied
// on the current frame; they are either set from the latest drag delta or
// blended toward the idle spin, never integrated.
type Motion struct {
	Pitch float64
	Yaw   float64

	params   Params
	dragging bool
	last     Pointer
}

// NewMotion creates a motion state spinning at the idle rate
func NewMotion(params Params) *Motion {
	return &Motion{
		Pitch:  params.IdlePitch,
		Yaw:    params.IdleYaw,
		params: params,
	}
}

// Dragging reports whether a drag session is active
func (m *Motion) Dragging() bool {
	return m.dragging
}

// Press starts a drag session at p
func (m *Motion) Press(p Pointer) {
	m.dragging = true
	m.last = p
}

// Move sets the velocity from the delta since the previous pointer position.
// The sign is inverted so the sphere follows the grab. Returns false when no
// drag is active and the event was ignored.
func (m *Motion) Move(p Pointer) bool {
	if !m.dragging {
		return false
	}

	dx := p.X - m.last.X
	dy := p.Y - m.last.Y

	m.Yaw = -dx * m.params.Sensitivity
	m.Pitch = -dy * m.params.Sensitivity
	m.last = p
	return true
}

// Release ends the drag session (pointer up or pointer leave)
func (m *Motion) Release() {
	m.dragging = false
}

// Step advances the velocity by one frame. While idle it eases back toward
// the idle spin; during a drag the last drag velocity is kept.
func (m *Motion) Step() {
	if m.dragging {
		return
	}

	keep := m.params.Decay
	m.Pitch = m.Pitch*keep + m.params.IdlePitch*(1-keep)
	m.Yaw = m.Yaw*keep + m.params.IdleYaw*(1-keep)
}
