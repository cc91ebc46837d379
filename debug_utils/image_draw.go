package debug_utils

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// ImageDebugDraw is a headless DuDebugDraw backend that rasterizes line
// primitives into an RGBA image, mapping the world rect onto the canvas.
// Point and triangle primitives are ignored; the crowd overlays only emit
// lines.
type ImageDebugDraw struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	minX float32
	minZ float32
	sx   float32
	sz   float32

	prim      DuDebugDrawPrimitives
	lineWidth float32
	verts     []imageVertex
}

type imageVertex struct {
	x, z float32
	col  Colorb
}

// NewImageDebugDraw builds a canvas of w by h pixels covering the world
// rect [minX,maxX] x [minZ,maxZ] on the xz-plane.
func NewImageDebugDraw(w, h int, minX, minZ, maxX, maxZ float32) *ImageDebugDraw {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return &ImageDebugDraw{
		img:  img,
		ras:  vector.NewRasterizer(w, h),
		minX: minX,
		minZ: minZ,
		sx:   float32(w) / (maxX - minX),
		sz:   float32(h) / (maxZ - minZ),
	}
}

func (d *ImageDebugDraw) Image() *image.RGBA { return d.img }

func (d *ImageDebugDraw) Begin(prim DuDebugDrawPrimitives, size ...float32) {
	d.prim = prim
	d.lineWidth = 1.0
	if len(size) > 0 {
		d.lineWidth = size[0]
	}
	d.verts = d.verts[:0]
}

func (d *ImageDebugDraw) Vertex1(x, _, z float32, col Colorb) {
	d.verts = append(d.verts, imageVertex{
		x:   (x - d.minX) * d.sx,
		z:   (z - d.minZ) * d.sz,
		col: col,
	})
}

func (d *ImageDebugDraw) End() {
	if d.prim != DU_DRAW_LINES {
		return
	}
	for i := 0; i+1 < len(d.verts); i += 2 {
		d.strokeSegment(d.verts[i], d.verts[i+1])
	}
	d.verts = d.verts[:0]
}

// strokeSegment fills the quad spanned by the segment extruded to the
// current line width.
func (d *ImageDebugDraw) strokeSegment(a, b imageVertex) {
	dx := b.x - a.x
	dz := b.z - a.z
	length := dx*dx + dz*dz
	if length == 0 {
		return
	}
	// Half-width offset perpendicular to the segment.
	inv := d.lineWidth * 0.5 / float32(math.Sqrt(float64(length)))
	ox := -dz * inv
	oz := dx * inv

	d.ras.Reset(d.img.Bounds().Dx(), d.img.Bounds().Dy())
	d.ras.MoveTo(a.x+ox, a.z+oz)
	d.ras.LineTo(b.x+ox, b.z+oz)
	d.ras.LineTo(b.x-ox, b.z-oz)
	d.ras.LineTo(a.x-ox, a.z-oz)
	d.ras.ClosePath()

	src := image.NewUniform(color.RGBA{R: a.col.R(), G: a.col.G(), B: a.col.B(), A: a.col.A()})
	d.ras.Draw(d.img, d.img.Bounds(), src, image.Point{})
}

func (d *ImageDebugDraw) WritePNG(w io.Writer) error {
	return png.Encode(w, d.img)
}
