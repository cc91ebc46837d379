package debug_utils

import (
	"math"

	"github.com/gorustyt/gocrowd/crowd"
)

// DuDebugDrawProximityGrid overlays the spatial partition lattice covering
// the grid's world bounds. Lines fall on bucket boundaries relative to the
// hashing origin, so the overlay matches what the neighbor query sees.
func DuDebugDrawProximityGrid(dd DuDebugDraw, c *crowd.Crowd, col Colorb, lineWidth float32) {
	if dd == nil {
		return
	}
	g := c.Grid()
	bx, by := g.BucketSize()
	origin := g.Origin()

	minX, maxX := -g.Width()/2, g.Width()/2
	minZ, maxZ := -g.Depth()/2, g.Depth()/2

	dd.Begin(DU_DRAW_LINES, lineWidth)
	i0 := int(math.Ceil(float64((minX - origin[0]) / bx)))
	i1 := int(math.Floor(float64((maxX - origin[0]) / bx)))
	for i := i0; i <= i1; i++ {
		x := origin[0] + float32(i)*bx
		DuAppendLine(dd, x, 0, minZ, x, 0, maxZ, col)
	}
	j0 := int(math.Ceil(float64((minZ - origin[2]) / by)))
	j1 := int(math.Floor(float64((maxZ - origin[2]) / by)))
	for j := j0; j <= j1; j++ {
		z := origin[2] + float32(j)*by
		DuAppendLine(dd, minX, 0, z, maxX, 0, z, col)
	}
	dd.End()
}

// DuDebugDrawSensorRanges overlays each agent's sensing-radius circle.
func DuDebugDrawSensorRanges(dd DuDebugDraw, c *crowd.Crowd, col Colorb, lineWidth float32) {
	if dd == nil {
		return
	}
	dd.Begin(DU_DRAW_LINES, lineWidth)
	for _, ag := range c.Agents() {
		p := ag.Position
		DuAppendCircle(dd, p[0], p[1], p[2], ag.Settings.SensorRange, col)
	}
	dd.End()
}

// DuDebugDrawAgents overlays each agent's body circle and its current
// steering velocity as an arrow.
func DuDebugDrawAgents(dd DuDebugDraw, c *crowd.Crowd, bodyCol, velCol Colorb, lineWidth float32) {
	if dd == nil {
		return
	}
	dd.Begin(DU_DRAW_LINES, lineWidth)
	for _, ag := range c.Agents() {
		p := ag.Position
		DuAppendCircle(dd, p[0], p[1], p[2], ag.Settings.Radius, bodyCol)

		v := ag.Steering
		if v.Len() > 0.001 {
			DuAppendArrow(dd, p[0], p[1], p[2],
				p[0]+v[0], p[1]+v[1], p[2]+v[2],
				ag.Settings.Radius*0.5, velCol)
		}
	}
	dd.End()
}
