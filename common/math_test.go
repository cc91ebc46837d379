package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestXZRoundtrip(t *testing.T) {
	v := mgl32.Vec3{1, 2, 3}
	require.Equal(t, mgl32.Vec2{1, 3}, XZ(v))
	require.Equal(t, mgl32.Vec3{1, 0, 3}, FromXZ(XZ(v)))
}

func TestCross2DSign(t *testing.T) {
	// Positive when v lies counter-clockwise of u.
	require.Equal(t, float32(1), Cross2D(mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}))
	require.Equal(t, float32(-1), Cross2D(mgl32.Vec2{0, 1}, mgl32.Vec2{1, 0}))
	require.Equal(t, float32(0), Cross2D(mgl32.Vec2{2, 2}, mgl32.Vec2{1, 1}))
}

func TestPerp2D(t *testing.T) {
	require.Equal(t, mgl32.Vec2{0, 1}, Perp2D(mgl32.Vec2{1, 0}))
	require.Equal(t, mgl32.Vec2{-1, 0}, Perp2D(mgl32.Vec2{0, 1}))
}

func TestNormalizeOrZero(t *testing.T) {
	got := NormalizeOrZero2D(mgl32.Vec2{3, 4})
	require.InDelta(t, 0.6, got[0], 1e-6)
	require.InDelta(t, 0.8, got[1], 1e-6)

	require.Equal(t, mgl32.Vec2{}, NormalizeOrZero2D(mgl32.Vec2{}))
	require.Equal(t, mgl32.Vec3{}, NormalizeOrZero3D(mgl32.Vec3{1e-9, 0, 0}))
}

func TestClampLen(t *testing.T) {
	// Under the limit: untouched.
	v := mgl32.Vec2{1, 1}
	require.Equal(t, v, ClampLen2D(v, 10))

	// Over the limit: direction preserved, magnitude clamped.
	got := ClampLen2D(mgl32.Vec2{30, 40}, 5)
	require.InDelta(t, 3.0, got[0], 1e-5)
	require.InDelta(t, 4.0, got[1], 1e-5)

	require.Equal(t, mgl32.Vec3{}, ClampLen3D(mgl32.Vec3{}, 5))
	got3 := ClampLen3D(mgl32.Vec3{0, 0, -20}, 2)
	require.InDelta(t, -2.0, got3[2], 1e-5)
}

func TestDist2DIgnoresY(t *testing.T) {
	a := mgl32.Vec3{0, 100, 0}
	b := mgl32.Vec3{3, -50, 4}
	require.InDelta(t, 5.0, Dist2D(a, b), 1e-5)
	require.InDelta(t, 25.0, Dist2DSqr(a, b), 1e-4)
}
