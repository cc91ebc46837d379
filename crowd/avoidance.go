package crowd

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gorustyt/gocrowd/common"
)

const (
	// epsilon is the float32 machine epsilon, used to soften the hard speed
	// clamp after integration.
	epsilon = 1.1920929e-07

	// minDivisor floors divisions by horizon and dt.
	minDivisor = 0.001

	// overlapEps floors near-zero distances when two agents sit almost on
	// top of each other.
	overlapEps = 1e-3

	// separationSlack pads the combined radius so the separation corrector
	// keeps pushing until agents are fully clear of each other.
	separationSlack = 1.05
)

// orcaConstraint is a half-plane of admissible velocities: every velocity v
// with (v - point)·normal <= 0 keeps the agent clear of one neighbor within
// the collision horizon.
type orcaConstraint struct {
	point  mgl32.Vec2
	normal mgl32.Vec2
}

// buildConstraints constructs one half-plane per neighbor from the truncated
// velocity-obstacle cone between the two agents.
//
// The anchor point takes the full relative-velocity shift instead of half:
// each agent resolves its own side of the avoidance unilaterally, so it
// still reacts when the neighbor lags or does not cooperate.
func buildConstraints(pos, vel mgl32.Vec3, set AgentSettings, neighbors []agentSnapshot, dt float32, out []orcaConstraint) []orcaConstraint {
	invTau := 1 / max(set.Horizon, float32(minDivisor))
	invDt := 1 / max(dt, float32(minDivisor))
	selfVel := common.XZ(vel)

	for _, nei := range neighbors {
		relPos := common.XZ(nei.pos.Sub(pos))     // self toward neighbor
		relVel := selfVel.Sub(common.XZ(nei.vel)) // self relative to neighbor
		combined := set.Radius + nei.radius
		combinedSqr := combined * combined
		distSqr := relPos.LenSqr()

		var shift, normal mgl32.Vec2
		if distSqr > combinedSqr {
			// Not colliding yet: project the relative velocity onto the
			// truncated cone sized by the horizon.
			w := relVel.Sub(relPos.Mul(invTau))
			wLenSqr := w.LenSqr()
			dot := w.Dot(relPos)

			if dot < 0 && dot*dot > combinedSqr*wLenSqr {
				// Closest to the cutoff circle capping the cone.
				wLen := float32(math.Sqrt(float64(wLenSqr)))
				unitW := w.Mul(1 / wLen)
				normal = unitW
				shift = unitW.Mul(combined*invTau - wLen)
			} else {
				// Closest to one of the cone legs; pick the side the
				// relative velocity already leans toward.
				dist := float32(math.Sqrt(float64(distSqr)))
				leg := float32(math.Sqrt(float64(distSqr - combinedSqr)))
				unitP := relPos.Mul(1 / dist)

				var legDir mgl32.Vec2
				if common.Cross2D(relVel, relPos) > 0 {
					legDir = mgl32.Vec2{
						unitP[0]*leg - unitP[1]*combined,
						unitP[0]*combined + unitP[1]*leg,
					}.Mul(1 / dist)
				} else {
					legDir = mgl32.Vec2{
						unitP[0]*leg + unitP[1]*combined,
						-unitP[0]*combined + unitP[1]*leg,
					}.Mul(1 / dist)
				}
				normal = common.NormalizeOrZero2D(common.Perp2D(legDir))
				shift = normal.Mul(relVel.Dot(normal))
			}
		} else {
			// Already overlapping: immediate separating push sized by the
			// penetration depth and the inverse timestep, resolving the
			// overlap in roughly one tick instead of over the horizon.
			dist := float32(math.Sqrt(float64(distSqr)))
			if dist < overlapEps {
				dist = overlapEps
			}
			normal = relPos.Mul(1 / dist)
			shift = normal.Mul((combined - dist) * invDt)
		}

		out = append(out, orcaConstraint{point: selfVel.Add(shift), normal: normal})
	}
	return out
}

// solveConstraints greedily clips the preferred velocity against each
// half-plane in build order, re-clamping to maxSpeed after every projection.
// This is not a linear program: when constraints conflict the result can
// depend on visitation order, and no feasibility fallback is attempted.
func solveConstraints(preferred mgl32.Vec2, constraints []orcaConstraint, maxSpeed float32) mgl32.Vec2 {
	result := common.ClampLen2D(preferred, maxSpeed)

	for _, c := range constraints {
		violation := result.Sub(c.point).Dot(c.normal)
		if violation <= 0 {
			continue
		}
		result = result.Sub(c.normal.Mul(violation))
		result = common.ClampLen2D(result, maxSpeed)
	}
	return result
}

// separationImpulse sums penetration-resolution pushes from every neighbor
// still inside the padded combined radius. The sum is deliberately left
// uncapped; dense overlaps may exceed maxSpeed and the caller's final
// magnitude clamp bounds the result.
func separationImpulse(pos mgl32.Vec3, radius float32, neighbors []agentSnapshot, dt float32) mgl32.Vec2 {
	invDt := 1 / max(dt, float32(minDivisor))

	var sep mgl32.Vec2
	for _, nei := range neighbors {
		offset := common.XZ(pos.Sub(nei.pos))
		dist := offset.Len()
		combined := radius + nei.radius
		if dist < combined*separationSlack && dist > overlapEps {
			push := (combined*separationSlack - dist) * invDt
			sep = sep.Add(offset.Mul(push / dist))
		}
	}
	return sep
}
