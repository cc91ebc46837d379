package crowd

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gorustyt/gocrowd/common"
)

// DirectionSampler yields the desired planar travel direction at a world
// position. Returning the zero vector means the field has no defined
// direction there (e.g. standing on the destination cell).
type DirectionSampler interface {
	SampleDirection(pos mgl32.Vec3) mgl32.Vec2
}

// DirectionFunc adapts a plain function to a DirectionSampler.
type DirectionFunc func(pos mgl32.Vec3) mgl32.Vec2

func (f DirectionFunc) SampleDirection(pos mgl32.Vec3) mgl32.Vec2 { return f(pos) }

// FlowGroup is one externally managed group of agents following a shared
// flow field toward a destination. The crowd writes one steering entry per
// managed unit per tick into SteeringMap; downstream movement and debug
// consumers read it after the tick completes.
type FlowGroup struct {
	Units       []AgentID
	Destination mgl32.Vec3
	Sampler     DirectionSampler
	SteeringMap map[AgentID]mgl32.Vec3
}

func NewFlowGroup(destination mgl32.Vec3, sampler DirectionSampler) *FlowGroup {
	return &FlowGroup{
		Destination: destination,
		Sampler:     sampler,
		SteeringMap: make(map[AgentID]mgl32.Vec3),
	}
}

func (g *FlowGroup) AddUnits(ids ...AgentID) {
	g.Units = append(g.Units, ids...)
}

const minSlowRadius = 0.1

// preferredVelocity derives the goal-seeking velocity for one agent: the
// sampled flow direction scaled by the preferred speed, reduced inside the
// slow radius so agents arrive without overshoot oscillation.
func (g *FlowGroup) preferredVelocity(pos mgl32.Vec3, set AgentSettings) mgl32.Vec2 {
	dir := common.NormalizeOrZero2D(g.Sampler.SampleDirection(pos))

	goalDist := pos.Sub(g.Destination).Len()
	if goalDist < epsilon {
		goalDist = epsilon
	}
	slowRadius := max(set.SensorRange*2, float32(minSlowRadius))
	speedScale := float32(1)
	if goalDist < slowRadius {
		speedScale = common.Clamp(goalDist/slowRadius, 0, 1)
	}
	return dir.Mul(set.PreferredSpeed * speedScale)
}
