package crowd

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gorustyt/gocrowd/common"
)

// Grid describes the static environment the crowd lives in: SizeX by SizeY
// square cells of CellDiameter world units, centered on the world origin.
// Buckets is the per-axis bucket count of the spatial hash built over the
// grid every tick.
type Grid struct {
	SizeX, SizeY int
	CellDiameter float32
	Buckets      int
}

// NewGrid builds the grid geometry. A grid with zero cells in any dimension
// is a caller fault, not a recoverable runtime case.
func NewGrid(sizeX, sizeY int, cellDiameter float32, buckets int) *Grid {
	common.AssertTrue(sizeX > 0 && sizeY > 0, "crowd: grid needs at least one cell per axis, got %dx%d", sizeX, sizeY)
	common.AssertTrue(cellDiameter > 0, "crowd: grid cell diameter must be positive, got %v", cellDiameter)
	common.AssertTrue(buckets > 0, "crowd: grid bucket count must be positive, got %d", buckets)
	return &Grid{SizeX: sizeX, SizeY: sizeY, CellDiameter: cellDiameter, Buckets: buckets}
}

// Width returns the world extent along x.
func (g *Grid) Width() float32 { return float32(g.SizeX) * g.CellDiameter }

// Depth returns the world extent along z.
func (g *Grid) Depth() float32 { return float32(g.SizeY) * g.CellDiameter }

// CellWorldPos returns the world position of the center of cell (x, y).
func (g *Grid) CellWorldPos(x, y int) mgl32.Vec3 {
	wx := -g.Width()/2 + (float32(x)+0.5)*g.CellDiameter
	wz := -g.Depth()/2 + (float32(y)+0.5)*g.CellDiameter
	return mgl32.Vec3{wx, 0, wz}
}

// Origin returns the hashing origin of the spatial partition: the world
// position of the grid's center cell.
func (g *Grid) Origin() mgl32.Vec3 {
	return g.CellWorldPos(g.SizeX/2, g.SizeY/2)
}

// BucketSize returns the spatial hash bucket extent along each world axis.
// Cells need not be square in world space, so the two extents can differ.
func (g *Grid) BucketSize() (x, y float32) {
	return g.Width() / float32(g.Buckets), g.Depth() / float32(g.Buckets)
}
