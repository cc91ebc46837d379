package crowd

import "github.com/go-gl/mathgl/mgl32"

// AgentID is an opaque handle for an agent managed by a Crowd. The
// surrounding application creates and destroys agents; the crowd only reads
// position and updates velocity/steering on the agents it is told to manage.
type AgentID int64

// AgentSettings holds the tunable steering parameters of one agent. It is a
// plain value type; an external configuration step may overwrite it between
// ticks, and the crowd treats it as authoritative during a tick.
type AgentSettings struct {
	// Desired cruise speed along the flow field direction.
	PreferredSpeed float32
	// Maximum speed clamp.
	MaxSpeed float32
	// Maximum linear acceleration applied per second.
	MaxAccel float32
	// Lookahead time window for predicting collisions. [Limit: > 0]
	Horizon float32
	// Physical radius of the agent in world units. [Limit: > 0]
	Radius float32
	// Maximum neighbor distance considered for avoidance. [Limit: >= 0]
	SensorRange float32
}

func DefaultAgentSettings() AgentSettings {
	return AgentSettings{
		PreferredSpeed: 50.0,
		MaxSpeed:       60.0,
		MaxAccel:       100.0,
		Horizon:        3.0,
		Radius:         2.5,
		SensorRange:    8.0,
	}
}

// Agent is one simulated entity. Positions and velocities live in world
// space; the solver works on the xz-plane and leaves y alone.
type Agent struct {
	ID       AgentID
	Position mgl32.Vec3
	// Current linear velocity used by the solver. Never exceeds
	// Settings.MaxSpeed by more than a float32 epsilon after a tick.
	Velocity mgl32.Vec3
	// Last chosen steering velocity, kept for downstream consumers.
	Steering mgl32.Vec3
	Settings AgentSettings
}
