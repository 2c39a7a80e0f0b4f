package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	assert.InDelta(t, 5.0, v.Length(), 1e-10)
	assert.InDelta(t, 13.0, NewVector3(3, -4, 12).Length(), 1e-10)
}

func TestFromSpherical(t *testing.T) {
	tests := []struct {
		name       string
		theta, phi float64
		expected   Vector3
	}{
		{"north pole", 0, 0, NewVector3(0, 0, 2)},
		{"south pole", 0, math.Pi, NewVector3(0, 0, -2)},
		{"equator +X", 0, math.Pi / 2, NewVector3(2, 0, 0)},
		{"equator +Y", math.Pi / 2, math.Pi / 2, NewVector3(0, 2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromSpherical(2, tt.theta, tt.phi)
			assert.InDelta(t, tt.expected.X, v.X, 1e-9)
			assert.InDelta(t, tt.expected.Y, v.Y, 1e-9)
			assert.InDelta(t, tt.expected.Z, v.Z, 1e-9)
			assert.InDelta(t, 2.0, v.Length(), 1e-9)
		})
	}
}

func TestVector3IsFinite(t *testing.T) {
	assert.True(t, NewVector3(1, -2, 3).IsFinite())
	assert.False(t, NewVector3(math.NaN(), 0, 0).IsFinite())
	assert.False(t, NewVector3(0, math.Inf(1), 0).IsFinite())
	assert.False(t, NewVector3(0, 0, math.Inf(-1)).IsFinite())
}

func TestVector3RotateX(t *testing.T) {
	v := NewVector3(1, 1, 0).RotateX(math.Pi / 2)

	assert.InDelta(t, 1.0, v.X, 1e-12, "X is the rotation axis")
	assert.InDelta(t, 0.0, v.Y, 1e-12)
	assert.InDelta(t, 1.0, v.Z, 1e-12)
}

func TestVector3RotateY(t *testing.T) {
	v := NewVector3(1, 5, 0).RotateY(math.Pi / 2)

	assert.InDelta(t, 0.0, v.X, 1e-12)
	assert.InDelta(t, 5.0, v.Y, 1e-12, "Y is the rotation axis")
	assert.InDelta(t, 1.0, v.Z, 1e-12)
}

func TestRotationPreservesLength(t *testing.T) {
	v := NewVector3(3, -4, 12)
	for i := 0; i < 1000; i++ {
		v = v.RotateX(0.013).RotateY(-0.021)
	}
	assert.InDelta(t, 13.0, v.Length(), 1e-9)
}
