package debug_utils

import "math"

type DuDebugDrawPrimitives int

const (
	DU_DRAW_POINTS DuDebugDrawPrimitives = iota
	DU_DRAW_LINES
	DU_DRAW_TRIS
)

type Colorb [4]uint8

func (c Colorb) R() uint8 { return c[0] }
func (c Colorb) G() uint8 { return c[1] }
func (c Colorb) B() uint8 { return c[2] }
func (c Colorb) A() uint8 { return c[3] }

func (c Colorb) Int() uint32 {
	return uint32(c.R()) | (uint32(c.G()) << 8) | (uint32(c.B()) << 16) | (uint32(c.A()) << 24)
}

func DuRGBA[T int | int32 | uint8](r, g, b, a T) Colorb {
	return Colorb{uint8(r), uint8(g), uint8(b), uint8(a)}
}

func DuRGBAf(fr, fg, fb, fa float32) Colorb {
	return DuRGBA(int(fr*255.0), int(fg*255.0), int(fb*255.0), int(fa*255.0))
}

// DuDebugDraw receives debug geometry from the overlay helpers. Backends
// decide what to do with it; the crowd never depends on one.
type DuDebugDraw interface {
	Begin(prim DuDebugDrawPrimitives, size ...float32) // size defaults to 1.0
	Vertex1(x, y, z float32, color Colorb)
	End()
}

func DuAppendLine(dd DuDebugDraw, x0, y0, z0, x1, y1, z1 float32, col Colorb) {
	if dd == nil {
		return
	}
	dd.Vertex1(x0, y0, z0, col)
	dd.Vertex1(x1, y1, z1, col)
}

func DuAppendCircle(dd DuDebugDraw, x, y, z, r float32, col Colorb) {
	if dd == nil {
		return
	}
	const NUM_SEG = 40
	j := NUM_SEG - 1
	for i := 0; i < NUM_SEG; i++ {
		aj := float32(j) / NUM_SEG * math.Pi * 2
		ai := float32(i) / NUM_SEG * math.Pi * 2
		dd.Vertex1(x+float32(math.Cos(float64(aj)))*r, y, z+float32(math.Sin(float64(aj)))*r, col)
		dd.Vertex1(x+float32(math.Cos(float64(ai)))*r, y, z+float32(math.Sin(float64(ai)))*r, col)
		j = i
	}
}

func DuAppendCross(dd DuDebugDraw, x, y, z, s float32, col Colorb) {
	if dd == nil {
		return
	}
	dd.Vertex1(x-s, y, z, col)
	dd.Vertex1(x+s, y, z, col)
	dd.Vertex1(x, y, z-s, col)
	dd.Vertex1(x, y, z+s, col)
}

func DuAppendArrow(dd DuDebugDraw, x0, y0, z0, x1, y1, z1, headScale float32, col Colorb) {
	if dd == nil {
		return
	}
	dd.Vertex1(x0, y0, z0, col)
	dd.Vertex1(x1, y1, z1, col)
	if headScale > 0.001 {
		appendArrowHead(dd, x1, y1, z1, x0, y0, z0, headScale, col)
	}
}

// appendArrowHead draws the two barbs of an arrow ending at p, pointing
// back toward q, on the xz-plane.
func appendArrowHead(dd DuDebugDraw, px, py, pz, qx, qy, qz, s float32, col Colorb) {
	dx := qx - px
	dz := qz - pz
	d := float32(math.Sqrt(float64(dx*dx + dz*dz)))
	if d < 0.001 {
		return
	}
	dx /= d
	dz /= d

	const ang = 0.4
	cos := float32(math.Cos(ang))
	sin := float32(math.Sin(ang))
	dd.Vertex1(px, py, pz, col)
	dd.Vertex1(px+(dx*cos-dz*sin)*s, py, pz+(dx*sin+dz*cos)*s, col)
	dd.Vertex1(px, py, pz, col)
	dd.Vertex1(px+(dx*cos+dz*sin)*s, py, pz+(-dx*sin+dz*cos)*s, col)
}
