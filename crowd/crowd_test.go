package crowd

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func towardDest(dest mgl32.Vec3) DirectionSampler {
	return DirectionFunc(func(pos mgl32.Vec3) mgl32.Vec2 {
		d := mgl32.Vec2{dest[0] - pos[0], dest[2] - pos[2]}
		if l := d.Len(); l > 1e-6 {
			return d.Mul(1 / l)
		}
		return mgl32.Vec2{}
	})
}

func TestUpdateSingleAgentAcceleratesTowardGoal(t *testing.T) {
	cw := NewCrowd(NewGrid(50, 50, 10, 25))
	dest := mgl32.Vec3{100, 0, 0}
	g := NewFlowGroup(dest, towardDest(dest))
	id := cw.AddAgent(mgl32.Vec3{}, DefaultAgentSettings())
	g.AddUnits(id)
	cw.AddGroup(g)

	cw.Update(0.1)

	ag, ok := cw.Agent(id)
	require.True(t, ok)
	// From rest, one tick of acceleration at 100 u/s^2 over 0.1 s.
	require.InDelta(t, 10.0, ag.Velocity[0], 1e-3)
	require.InDelta(t, 0.0, ag.Velocity[1], 1e-5)
	require.InDelta(t, 0.0, ag.Velocity[2], 1e-3)
	require.Equal(t, ag.Velocity, ag.Steering)
}

func TestUpdateOverlappingPairSeparates(t *testing.T) {
	cw := NewCrowd(NewGrid(50, 50, 10, 25))
	g := NewFlowGroup(mgl32.Vec3{}, DirectionFunc(func(mgl32.Vec3) mgl32.Vec2 {
		return mgl32.Vec2{}
	}))
	a := cw.AddAgent(mgl32.Vec3{0, 0, 0}, DefaultAgentSettings())
	b := cw.AddAgent(mgl32.Vec3{3, 0, 0}, DefaultAgentSettings())
	g.AddUnits(a, b)
	cw.AddGroup(g)

	cw.Update(0.1)

	agA, _ := cw.Agent(a)
	agB, _ := cw.Agent(b)
	require.Negative(t, agA.Velocity[0], "left agent pushes further left")
	require.Positive(t, agB.Velocity[0], "right agent pushes further right")
	require.InDelta(t, 0.0, agA.Velocity[2], 1e-4)
	require.InDelta(t, 0.0, agB.Velocity[2], 1e-4)
}

func TestUpdateRespectsSpeedLimit(t *testing.T) {
	set := DefaultAgentSettings()
	set.PreferredSpeed = 500
	set.MaxAccel = 1e6

	cw := NewCrowd(NewGrid(50, 50, 10, 25))
	dest := mgl32.Vec3{1000, 0, 0}
	g := NewFlowGroup(dest, towardDest(dest))
	id := cw.AddAgent(mgl32.Vec3{}, set)
	g.AddUnits(id)
	cw.AddGroup(g)

	for i := 0; i < 10; i++ {
		cw.Update(0.1)
	}

	ag, _ := cw.Agent(id)
	require.LessOrEqual(t, ag.Velocity.Len(), set.MaxSpeed+2*epsilon)
}

func TestUpdateRespectsAccelerationLimit(t *testing.T) {
	cw := NewCrowd(NewGrid(50, 50, 10, 25))
	dest := mgl32.Vec3{100, 0, 0}
	g := NewFlowGroup(dest, towardDest(dest))
	id := cw.AddAgent(mgl32.Vec3{}, DefaultAgentSettings())
	g.AddUnits(id)
	cw.AddGroup(g)

	dt := float32(0.01)
	prev := mgl32.Vec3{}
	for i := 0; i < 20; i++ {
		cw.Update(dt)
		ag, _ := cw.Agent(id)
		dv := ag.Velocity.Sub(prev).Len()
		require.LessOrEqual(t, dv, ag.Settings.MaxAccel*dt+1e-3)
		prev = ag.Velocity
	}
}

func TestUpdateIsDeterministic(t *testing.T) {
	run := func() []mgl32.Vec3 {
		cw := NewCrowd(NewGrid(50, 50, 10, 25))
		dest := mgl32.Vec3{100, 0, 100}
		g := NewFlowGroup(dest, towardDest(dest))
		for i := 0; i < 12; i++ {
			id := cw.AddAgent(mgl32.Vec3{float32(i % 4 * 3), 0, float32(i / 4 * 3)}, DefaultAgentSettings())
			g.AddUnits(id)
		}
		cw.AddGroup(g)
		for i := 0; i < 30; i++ {
			cw.Update(1.0 / 60.0)
			for _, ag := range cw.Agents() {
				ag.Position = ag.Position.Add(ag.Velocity.Mul(1.0 / 60.0))
			}
		}
		var out []mgl32.Vec3
		for _, ag := range cw.Agents() {
			out = append(out, ag.Velocity)
		}
		return out
	}

	require.Equal(t, run(), run())
}

func TestUpdateSkipsRemovedUnits(t *testing.T) {
	cw := NewCrowd(NewGrid(50, 50, 10, 25))
	dest := mgl32.Vec3{100, 0, 0}
	g := NewFlowGroup(dest, towardDest(dest))
	a := cw.AddAgent(mgl32.Vec3{}, DefaultAgentSettings())
	b := cw.AddAgent(mgl32.Vec3{0, 0, 20}, DefaultAgentSettings())
	g.AddUnits(a, b)
	cw.AddGroup(g)

	cw.RemoveAgent(a)
	require.NotPanics(t, func() { cw.Update(0.1) })

	_, ok := g.SteeringMap[a]
	require.False(t, ok, "removed unit must not get a steering entry")
	_, ok = g.SteeringMap[b]
	require.True(t, ok)
}

func TestUpdateWritesSteeringMapPerUnit(t *testing.T) {
	cw := NewCrowd(NewGrid(50, 50, 10, 25))
	dest := mgl32.Vec3{100, 0, 0}
	g := NewFlowGroup(dest, towardDest(dest))
	var ids []AgentID
	for i := 0; i < 5; i++ {
		id := cw.AddAgent(mgl32.Vec3{0, 0, float32(i) * 10}, DefaultAgentSettings())
		ids = append(ids, id)
	}
	g.AddUnits(ids...)
	cw.AddGroup(g)

	cw.Update(0.1)

	require.Len(t, g.SteeringMap, len(ids))
	for _, id := range ids {
		ag, _ := cw.Agent(id)
		require.Equal(t, ag.Velocity, g.SteeringMap[id])
	}
}

func TestRemoveAgentReindexes(t *testing.T) {
	cw := NewCrowd(NewGrid(10, 10, 10, 5))
	a := cw.AddAgent(mgl32.Vec3{1, 0, 0}, DefaultAgentSettings())
	b := cw.AddAgent(mgl32.Vec3{2, 0, 0}, DefaultAgentSettings())
	c := cw.AddAgent(mgl32.Vec3{3, 0, 0}, DefaultAgentSettings())

	cw.RemoveAgent(b)
	require.Equal(t, 2, cw.AgentCount())

	agA, ok := cw.Agent(a)
	require.True(t, ok)
	require.Equal(t, float32(1), agA.Position[0])
	agC, ok := cw.Agent(c)
	require.True(t, ok)
	require.Equal(t, float32(3), agC.Position[0])
	_, ok = cw.Agent(b)
	require.False(t, ok)
}

func TestUpdateAgentSettings(t *testing.T) {
	cw := NewCrowd(NewGrid(10, 10, 10, 5))
	id := cw.AddAgent(mgl32.Vec3{}, DefaultAgentSettings())

	set := DefaultAgentSettings()
	set.MaxSpeed = 12
	require.True(t, cw.UpdateAgentSettings(id, set))
	ag, _ := cw.Agent(id)
	require.Equal(t, float32(12), ag.Settings.MaxSpeed)

	require.False(t, cw.UpdateAgentSettings(AgentID(999), set))
}
