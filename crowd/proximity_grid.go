package crowd

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// agentSnapshot is the frame-start state of one agent. All neighbor reads
// during a tick go through snapshots, never through the live agents, so the
// solve result cannot depend on the order agents are processed in.
type agentSnapshot struct {
	id     AgentID
	pos    mgl32.Vec3
	vel    mgl32.Vec3
	radius float32
}

type bucketCoord struct {
	x, y int32
}

// proximityGrid partitions a per-tick snapshot of agent state into uniform
// buckets for neighbor lookup. It has no persistent identity: the whole map
// is discarded and rebuilt from scratch next tick.
type proximityGrid struct {
	origin      mgl32.Vec3
	bucketSizeX float32
	bucketSizeY float32
	buckets     map[bucketCoord][]agentSnapshot
}

func newProximityGrid(g *Grid, capacityHint int) *proximityGrid {
	bx, by := g.BucketSize()
	return &proximityGrid{
		origin:      g.Origin(),
		bucketSizeX: bx,
		bucketSizeY: by,
		buckets:     make(map[bucketCoord][]agentSnapshot, capacityHint),
	}
}

func (p *proximityGrid) bucketAt(pos mgl32.Vec3) bucketCoord {
	return bucketCoord{
		x: int32(math.Floor(float64((pos[0] - p.origin[0]) / p.bucketSizeX))),
		y: int32(math.Floor(float64((pos[2] - p.origin[2]) / p.bucketSizeY))),
	}
}

func (p *proximityGrid) add(s agentSnapshot) {
	c := p.bucketAt(s.pos)
	p.buckets[c] = append(p.buckets[c], s)
}

// queryNeighbors collects every snapshotted agent other than self whose
// distance to pos is within sensorRange plus the neighbor's own radius.
// The bucket window is expanded per axis by ceil(sensorRange/bucketSize),
// so the result set does not depend on the partition granularity.
func (p *proximityGrid) queryNeighbors(self AgentID, pos mgl32.Vec3, sensorRange float32, out []agentSnapshot) []agentSnapshot {
	c := p.bucketAt(pos)
	rx := int32(math.Ceil(float64(sensorRange / p.bucketSizeX)))
	ry := int32(math.Ceil(float64(sensorRange / p.bucketSizeY)))

	for dx := -rx; dx <= rx; dx++ {
		for dy := -ry; dy <= ry; dy++ {
			bucket, ok := p.buckets[bucketCoord{x: c.x + dx, y: c.y + dy}]
			if !ok {
				continue
			}
			for _, other := range bucket {
				if other.id == self {
					continue
				}
				reach := sensorRange + other.radius
				if pos.Sub(other.pos).LenSqr() <= reach*reach {
					out = append(out, other)
				}
			}
		}
	}
	return out
}
