// Package pixelblit walks a render plan and draws each glyph's alpha
// coverage onto a pixel sink, opening whatever fallback faces the plan's
// script annotations call for at most once per call.
package pixelblit

import (
	"bytes"
	"image"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/vector"

	"github.com/inkwell/glyphcore/fallbackfont"
	"github.com/inkwell/glyphcore/renderplan"
	"github.com/inkwell/glyphcore/scriptscan"
)

// Sink is the only capability the rasterizer needs from a framebuffer: a
// single blended-write primitive. The framebuffer itself is out of scope.
type Sink interface {
	SetBlendedPixel(x, y uint32, color uint8, alpha float32)
}

// Rasterizer draws the glyphs of a plan produced against primary, at ppem
// pixels per em, reusing one vector.Rasterizer scratch buffer across glyphs.
type Rasterizer struct {
	primary *font.Face
	ppem    uint16
	scratch vector.Rasterizer
}

// New returns a rasterizer bound to primary at ppem.
func New(primary *font.Face, ppem uint16) *Rasterizer {
	return &Rasterizer{primary: primary, ppem: ppem}
}

// Render walks plan's glyphs starting at origin, drawing each one's alpha
// coverage onto sink in color. Fallback faces named by plan.Scripts are
// opened at most once per call and discarded when Render returns.
func (r *Rasterizer) Render(plan *renderplan.Plan, color uint8, origin renderplan.Point, sink Sink) {
	pos := origin
	fallbackFaces := make(map[scriptscan.Script]*font.Face)

	for i, g := range plan.Glyphs {
		face := r.primary
		if script, ok := plan.Scripts[i]; ok {
			if f := r.fallbackFace(fallbackFaces, script); f != nil {
				face = f
			}
		}
		r.blit(face, g, pos, color, sink)
		pos.X += g.Advance.X
		pos.Y += g.Advance.Y
	}
}

func (r *Rasterizer) fallbackFace(cache map[scriptscan.Script]*font.Face, script scriptscan.Script) *font.Face {
	if f, ok := cache[script]; ok {
		return f
	}
	blob, err := fallbackfont.Blob(script)
	if err != nil {
		cache[script] = nil
		return nil
	}
	f, err := font.ParseTTF(bytes.NewReader(blob))
	if err != nil {
		cache[script] = nil
		return nil
	}
	cache[script] = f
	return f
}

func (r *Rasterizer) blit(face *font.Face, g renderplan.GlyphPlan, pos renderplan.Point, color uint8, sink Sink) {
	if face == nil {
		return
	}
	data := face.GlyphData(font.GID(g.Codepoint))
	outline, ok := data.(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return
	}

	scale := float32(r.ppem) / float32(face.Upem())
	minX, minY, maxX, maxY := outlineBounds(outline, scale)
	w := int(math.Ceil(float64(maxX-minX))) + 2
	h := int(math.Ceil(float64(maxY-minY))) + 2
	if w <= 0 || h <= 0 {
		return
	}

	r.scratch.Reset(w, h)
	r.scratch.DrawOp = draw.Src
	for _, seg := range outline.Segments {
		p := func(i int) (float32, float32) {
			return seg.Args[i].X*scale - minX + 1, maxY - seg.Args[i].Y*scale + 1
		}
		switch seg.Op {
		case font.SegmentOpMoveTo:
			x, y := p(0)
			r.scratch.MoveTo(x, y)
		case font.SegmentOpLineTo:
			x, y := p(0)
			r.scratch.LineTo(x, y)
		case font.SegmentOpQuadTo:
			x0, y0 := p(0)
			x1, y1 := p(1)
			r.scratch.QuadTo(x0, y0, x1, y1)
		case font.SegmentOpCubeTo:
			x0, y0 := p(0)
			x1, y1 := p(1)
			x2, y2 := p(2)
			r.scratch.CubeTo(x0, y0, x1, y1, x2, y2)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.scratch.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	topLeft := renderplan.Point{
		X: pos.X + g.Offset.X + int32(math.Round(float64(minX))) - 1,
		Y: pos.Y + g.Offset.Y - int32(math.Round(float64(maxY))) - 1,
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			alpha := float32(a) / 255
			px := topLeft.X + int32(x)
			py := topLeft.Y + int32(y)
			if px < 0 || py < 0 {
				continue
			}
			sink.SetBlendedPixel(uint32(px), uint32(py), color, alpha)
		}
	}
}

func outlineBounds(outline font.GlyphOutline, scale float32) (minX, minY, maxX, maxY float32) {
	first := true
	for _, seg := range outline.Segments {
		n := 1
		switch seg.Op {
		case font.SegmentOpQuadTo:
			n = 2
		case font.SegmentOpCubeTo:
			n = 3
		}
		for i := 0; i < n; i++ {
			x := seg.Args[i].X * scale
			y := seg.Args[i].Y * scale
			if first {
				minX, maxX, minY, maxY = x, x, y, y
				first = false
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return
}
