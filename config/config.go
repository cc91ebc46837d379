package config

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/gorustyt/gocrowd/common/message"
	"github.com/gorustyt/gocrowd/crowd"
)

// AgentTuning is the uniform steering parameter set pushed onto every
// managed agent between ticks, typically edited from a debug UI or an
// external configuration source.
type AgentTuning = crowd.AgentSettings

// Config bundles the agent tuning with the debug draw toggles. The toggles
// gate optional diagnostic overlays only; nothing feeds back into the
// solver.
type Config struct {
	Tuning AgentTuning

	// DrawSpatialGrid overlays the spatial partition lattice.
	DrawSpatialGrid bool
	// DrawSensorRange overlays each agent's sensing-radius circle.
	DrawSensorRange bool
}

func NewConfig() *Config {
	c := &Config{}
	c.Reset()
	return c
}

func (c *Config) Reset() {
	c.Tuning = crowd.DefaultAgentSettings()
	c.DrawSpatialGrid = false
	c.DrawSensorRange = false
}

// Apply synchronizes the uniform tuning onto every agent the crowd manages.
// Call it between ticks; the crowd treats settings as authoritative per-agent
// state during a tick.
func (c *Config) Apply(cw *crowd.Crowd) {
	for _, ag := range cw.Agents() {
		ag.Settings = c.Tuning
	}
}

// Marshal encodes the config for transport to an external editor.
func (c *Config) Marshal() ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"preferred_speed":   float64(c.Tuning.PreferredSpeed),
		"max_speed":         float64(c.Tuning.MaxSpeed),
		"max_accel":         float64(c.Tuning.MaxAccel),
		"horizon":           float64(c.Tuning.Horizon),
		"radius":            float64(c.Tuning.Radius),
		"sensor_range":      float64(c.Tuning.SensorRange),
		"draw_spatial_grid": c.DrawSpatialGrid,
		"draw_sensor_range": c.DrawSensorRange,
	})
	if err != nil {
		return nil, err
	}
	return message.Encode(s)
}

// Unmarshal overwrites the config from an encoded payload. Fields absent
// from the payload keep their current values.
func (c *Config) Unmarshal(data []byte) error {
	s := &structpb.Struct{}
	if err := message.Decode(data, s); err != nil {
		return err
	}
	fields := s.GetFields()

	setF := func(key string, dst *float32) {
		if v, ok := fields[key]; ok {
			*dst = float32(v.GetNumberValue())
		}
	}
	setB := func(key string, dst *bool) {
		if v, ok := fields[key]; ok {
			*dst = v.GetBoolValue()
		}
	}
	setF("preferred_speed", &c.Tuning.PreferredSpeed)
	setF("max_speed", &c.Tuning.MaxSpeed)
	setF("max_accel", &c.Tuning.MaxAccel)
	setF("horizon", &c.Tuning.Horizon)
	setF("radius", &c.Tuning.Radius)
	setF("sensor_range", &c.Tuning.SensorRange)
	setB("draw_spatial_grid", &c.DrawSpatialGrid)
	setB("draw_sensor_range", &c.DrawSensorRange)
	return nil
}
