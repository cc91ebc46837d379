package crowd

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/gorustyt/gocrowd/common"
)

// Crowd provides local collision-avoidance steering for groups of agents.
// Each Update is one deterministic pass: snapshot all agents, rebuild the
// spatial partition, then solve every managed unit against the frame-start
// snapshot. Ticks must be serialized relative to readers and writers of the
// steering maps; within that discipline no locking is needed.
type Crowd struct {
	grid   *Grid
	agents []*Agent // insertion order, also the solve order
	index  map[AgentID]int
	groups []*FlowGroup
	nextID AgentID
	log    *zap.Logger
}

func NewCrowd(grid *Grid) *Crowd {
	common.AssertTrue(grid != nil, "crowd: nil grid")
	return &Crowd{
		grid:  grid,
		index: make(map[AgentID]int),
		log:   zap.NewNop(),
	}
}

// SetLogger installs a logger for per-tick diagnostics. The default is a nop
// logger.
func (c *Crowd) SetLogger(l *zap.Logger) {
	if l != nil {
		c.log = l
	}
}

func (c *Crowd) Grid() *Grid { return c.grid }

// AddAgent registers an agent at the given position and returns its handle.
func (c *Crowd) AddAgent(pos mgl32.Vec3, set AgentSettings) AgentID {
	id := c.nextID
	c.nextID++
	c.index[id] = len(c.agents)
	c.agents = append(c.agents, &Agent{ID: id, Position: pos, Settings: set})
	return id
}

// RemoveAgent unregisters an agent. Groups that still reference the handle
// simply skip it on subsequent ticks.
func (c *Crowd) RemoveAgent(id AgentID) {
	i, ok := c.index[id]
	if !ok {
		return
	}
	c.agents = append(c.agents[:i], c.agents[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.agents); j++ {
		c.index[c.agents[j].ID] = j
	}
}

// Agent returns the live agent state for a handle.
func (c *Crowd) Agent(id AgentID) (*Agent, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.agents[i], true
}

// Agents returns the managed agents in solve order. Callers must not mutate
// the slice; agent fields may be updated between ticks.
func (c *Crowd) Agents() []*Agent { return c.agents }

func (c *Crowd) AgentCount() int { return len(c.agents) }

// UpdateAgentSettings replaces one agent's steering parameters.
func (c *Crowd) UpdateAgentSettings(id AgentID, set AgentSettings) bool {
	ag, ok := c.Agent(id)
	if !ok {
		return false
	}
	ag.Settings = set
	return true
}

func (c *Crowd) AddGroup(g *FlowGroup) {
	if g != nil {
		c.groups = append(c.groups, g)
	}
}

func (c *Crowd) Groups() []*FlowGroup { return c.groups }

type pendingSteer struct {
	id  AgentID
	vel mgl32.Vec3
}

// Update advances every managed agent by one tick of duration dt seconds.
//
// All neighbor reads use the frame-start snapshot, never the in-progress
// value of an agent solved earlier in the same tick. Each group's steering
// map is flushed only after the group's full unit list has been solved.
func (c *Crowd) Update(dt float32) {
	pg := newProximityGrid(c.grid, len(c.agents))
	for _, ag := range c.agents {
		pg.add(agentSnapshot{
			id:     ag.ID,
			pos:    ag.Position,
			vel:    ag.Velocity,
			radius: ag.Settings.Radius,
		})
	}

	var (
		neighbors   []agentSnapshot
		constraints []orcaConstraint
	)
	for _, g := range c.groups {
		pending := make([]pendingSteer, 0, len(g.Units))

		for _, id := range g.Units {
			i, ok := c.index[id]
			if !ok {
				// Removed while still referenced by the group; skip for
				// this tick.
				continue
			}
			ag := c.agents[i]
			set := ag.Settings

			neighbors = pg.queryNeighbors(id, ag.Position, set.SensorRange, neighbors[:0])

			preferred := g.preferredVelocity(ag.Position, set)
			constraints = buildConstraints(ag.Position, ag.Velocity, set, neighbors, dt, constraints[:0])
			solved := solveConstraints(preferred, constraints, set.MaxSpeed)
			sep := separationImpulse(ag.Position, set.Radius, neighbors, dt)

			desired := common.ClampLen2D(solved.Add(sep), set.MaxSpeed)
			newVel := integrate(ag.Velocity, common.FromXZ(desired), set, dt)

			ag.Velocity = newVel
			ag.Steering = newVel
			pending = append(pending, pendingSteer{id: id, vel: newVel})
		}

		for _, p := range pending {
			g.SteeringMap[p.id] = p.vel
		}
	}

	c.log.Debug("crowd tick",
		zap.Float32("dt", dt),
		zap.Int("agents", len(c.agents)),
		zap.Int("groups", len(c.groups)),
	)
}

// integrate drives the current velocity toward the desired velocity, with
// the change bounded by the acceleration limit over this tick.
func integrate(vel, desired mgl32.Vec3, set AgentSettings, dt float32) mgl32.Vec3 {
	maxDelta := set.MaxAccel * dt
	dv := common.ClampLen3D(desired.Sub(vel), maxDelta)
	return common.ClampLen3D(vel.Add(dv), set.MaxSpeed+epsilon)
}
