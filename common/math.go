package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Planar helpers. All crowd math happens on the xz-plane with y treated as
// the up axis; the y component is carried through untouched by the solver.

// / Projects a world-space vector onto the xz-plane.
// / @param[in]		v	The vector. [(x, y, z)]
// / @return The planar vector. [(x, z)]
func XZ(v mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v[0], v[2]}
}

// / Lifts a planar vector back to world space with y = 0.
// / @param[in]		v	The planar vector. [(x, z)]
// / @return The world-space vector. [(x, 0, z)]
func FromXZ(v mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[1]}
}

// / Derives the xz-plane 2D perp product of the two vectors. (ux*vy - uy*vx)
// / @param[in]		u		The LHV vector [(x, z)]
// / @param[in]		v		The RHV vector [(x, z)]
// / @return The perp dot product on the xz-plane.
func Cross2D(u, v mgl32.Vec2) float32 {
	return u[0]*v[1] - u[1]*v[0]
}

// / Returns the vector rotated 90 degrees counter-clockwise on the plane.
func Perp2D(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{-v[1], v[0]}
}

// / Normalizes the vector, degenerating to the zero vector when the
// / magnitude is too small to produce a meaningful direction.
func NormalizeOrZero2D(v mgl32.Vec2) mgl32.Vec2 {
	d := v.Len()
	if d <= 1e-8 {
		return mgl32.Vec2{}
	}
	return v.Mul(1 / d)
}

// / Normalizes the vector, degenerating to the zero vector when the
// / magnitude is too small to produce a meaningful direction.
func NormalizeOrZero3D(v mgl32.Vec3) mgl32.Vec3 {
	d := v.Len()
	if d <= 1e-8 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / d)
}

// / Limits the vector to the specified magnitude, preserving direction.
func ClampLen2D(v mgl32.Vec2, maxLen float32) mgl32.Vec2 {
	d := v.Len()
	if d <= maxLen || d == 0 {
		return v
	}
	return v.Mul(maxLen / d)
}

// / Limits the vector to the specified magnitude, preserving direction.
func ClampLen3D(v mgl32.Vec3, maxLen float32) mgl32.Vec3 {
	d := v.Len()
	if d <= maxLen || d == 0 {
		return v
	}
	return v.Mul(maxLen / d)
}

// / Derives the distance between the specified points on the xz-plane.
func Dist2D(a, b mgl32.Vec3) float32 {
	dx := b[0] - a[0]
	dz := b[2] - a[2]
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

// / Derives the square of the distance between the points on the xz-plane.
func Dist2DSqr(a, b mgl32.Vec3) float32 {
	dx := b[0] - a[0]
	dz := b[2] - a[2]
	return dx*dx + dz*dz
}
