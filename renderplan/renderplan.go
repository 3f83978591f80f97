// Package renderplan holds the positioned glyph sequence a shaping call
// produces and the operations that trim, split or space it out while
// keeping its width and per-index script annotations consistent.
package renderplan

import "github.com/inkwell/glyphcore/scriptscan"

// Point is an integer pixel offset or advance.
type Point struct {
	X, Y int32
}

// GlyphPlan is one positioned glyph ready to be rasterized: a shaper glyph
// id, the byte offset into the original UTF-8 text where the character(s)
// producing it begin, and its offset/advance in integer pixels (the
// shaper's 26.6 values divided by 64, truncating).
type GlyphPlan struct {
	Codepoint uint32
	Cluster   int
	Offset    Point
	Advance   Point
}

// Plan is a positioned glyph sequence with a running width and a sparse
// index-to-script map. The width invariant — Width equals the sum of every
// glyph's X advance — holds after every method below returns; an absent key
// in Scripts means "use the primary face of the Font that produced this
// plan".
type Plan struct {
	Width   uint32
	Glyphs  []GlyphPlan
	Scripts map[int]scriptscan.Script
}

// New returns an empty plan.
func New() *Plan {
	return &Plan{Scripts: make(map[int]scriptscan.Script)}
}

// SpaceOut adds letterSpacing to the advance of every glyph except the
// last, growing Width to match. This is letter-spacing, not word-spacing:
// it touches every glyph boundary in the plan, not just inter-word gaps.
func (p *Plan) SpaceOut(letterSpacing uint32) {
	if letterSpacing == 0 || len(p.Glyphs) == 0 {
		return
	}
	n := len(p.Glyphs) - 1
	for i := 0; i < n; i++ {
		p.Glyphs[i].Advance.X += int32(letterSpacing)
	}
	p.Width += uint32(n) * letterSpacing
}

// CropRight truncates the plan to maxWidth, appending ellipsis's glyphs. A
// no-op if the plan already fits. Pops glyphs from the tail until the
// remaining width, plus the ellipsis's own width, fits within maxWidth.
func (p *Plan) CropRight(ellipsis *Plan, maxWidth uint32) {
	if p.Width <= maxWidth {
		return
	}
	p.Width += ellipsis.Width
	for len(p.Glyphs) > 0 {
		last := p.Glyphs[len(p.Glyphs)-1]
		p.Glyphs = p.Glyphs[:len(p.Glyphs)-1]
		p.Width -= uint32(last.Advance.X)
		if p.Width <= maxWidth {
			break
		}
	}
	pruneScripts(p.Scripts, len(p.Glyphs))
	p.Glyphs = append(p.Glyphs, ellipsis.Glyphs...)
}

// CropAround symmetrically expands around a pivot index, alternating sides,
// until the next glyph would exceed maxWidth, then crops every side that
// still has glyphs left over, appending/prepending ellipsis's glyphs on that
// side. Returns the number of glyphs dropped from the left, i.e. the
// original index of the first glyph kept after the leading ellipsis (0 if
// the left side was not cropped).
func (p *Plan) CropAround(ellipsis *Plan, index int, maxWidth uint32) int {
	if p.Width <= maxWidth {
		return 0
	}

	n := len(p.Glyphs)
	var width uint32
	polarity := 0
	upper := index
	lower := index - 1

	for {
		if upper < n && (polarity%2 == 0 || lower < 0) {
			next := width + uint32(p.Glyphs[upper].Advance.X)
			if next > maxWidth {
				break
			}
			width = next
			upper++
		} else if lower >= 0 && (polarity%2 == 1 || upper == n) {
			next := width + uint32(p.Glyphs[lower].Advance.X)
			if next > maxWidth {
				break
			}
			width = next
			lower--
		} else {
			break
		}
		polarity++
	}

	if upper < n {
		width += ellipsis.Width
		upper--
		for width > maxWidth && upper > max(lower, 0) {
			width -= uint32(p.Glyphs[upper].Advance.X)
			upper--
		}
		p.Glyphs = p.Glyphs[:upper+1]
		p.Glyphs = append(p.Glyphs, ellipsis.Glyphs...)
	}

	if lower >= 0 {
		width += ellipsis.Width
		lower++
		for width > maxWidth && lower < upper {
			width -= uint32(p.Glyphs[lower].Advance.X)
			lower++
		}
		tail := append([]GlyphPlan{}, p.Glyphs[lower:]...)
		p.Glyphs = append(append([]GlyphPlan{}, ellipsis.Glyphs...), tail...)
	}

	lowerFloor := max(lower, 0)
	for k := range p.Scripts {
		if k < lowerFloor || k > upper {
			delete(p.Scripts, k)
		}
	}
	if lower > 0 {
		shifted := make(map[int]scriptscan.Script, len(p.Scripts))
		for k, v := range p.Scripts {
			shifted[k-lower+1] = v
		}
		p.Scripts = shifted
	}
	p.Width = width

	if lower < 0 {
		return 0
	}
	return lower
}

// CutPoint finds a line break at or before maxWidth: starting from the last
// glyph, it peels glyphs until the remaining width fits, then walks further
// back to the nearest glyph whose codepoint is spaceCodepoint. If peeling
// to maxWidth already consumes every glyph before a space is found, it
// falls back to the hard cut. Note the redundant subtract-then-test on the
// first peel: even a plan that already fits loses its trailing glyph, by
// design inherited from the source this was ported from.
func (p *Plan) CutPoint(maxWidth uint32, spaceCodepoint uint32) (int, uint32) {
	width := p.Width
	glyphs := p.Glyphs
	i := len(glyphs) - 1

	width -= uint32(glyphs[i].Advance.X)
	for i > 0 && width > maxWidth {
		i--
		width -= uint32(glyphs[i].Advance.X)
	}

	j := i
	lastWidth := width

	for i > 0 && glyphs[i].Codepoint != spaceCodepoint {
		i--
		width -= uint32(glyphs[i].Advance.X)
	}

	if i == 0 {
		i = j
		width = lastWidth
	}

	return i, width
}

// SplitOff splits the plan at index, leaving the receiver holding the front
// (width exactly width) and returning the rear as a new plan whose width is
// the remainder and whose Scripts map is reindexed by -index.
func (p *Plan) SplitOff(index int, width uint32) *Plan {
	nextScripts := make(map[int]scriptscan.Script)
	if len(p.Scripts) > 0 {
		for i := index; i < len(p.Glyphs); i++ {
			if s, ok := p.Scripts[i]; ok {
				delete(p.Scripts, i)
				nextScripts[i-index] = s
			}
		}
	}
	nextGlyphs := append([]GlyphPlan{}, p.Glyphs[index:]...)
	p.Glyphs = p.Glyphs[:index]
	nextWidth := p.Width - width
	p.Width = width
	return &Plan{Width: nextWidth, Glyphs: nextGlyphs, Scripts: nextScripts}
}

// GlyphAdvance returns the X advance of the glyph at index.
func (p *Plan) GlyphAdvance(index int) int32 {
	return p.Glyphs[index].Advance.X
}

// TotalAdvance sums the X advance of every glyph before index.
func (p *Plan) TotalAdvance(index int) int32 {
	var sum int32
	for _, g := range p.Glyphs[:index] {
		sum += g.Advance.X
	}
	return sum
}

// IndexFromAdvance returns the glyph index whose cumulative advance is
// closest to advance, rounding to whichever side of the boundary glyph is
// nearer.
func (p *Plan) IndexFromAdvance(advance int32) int {
	var sum int32
	index := 0
	for index < len(p.Glyphs) {
		gad := p.GlyphAdvance(index)
		sum += gad
		if sum > advance {
			if sum-advance < advance-sum+gad {
				index++
			}
			break
		}
		index++
	}
	return index
}

func pruneScripts(scripts map[int]scriptscan.Script, keepLen int) {
	for k := range scripts {
		if k >= keepLen {
			delete(scripts, k)
		}
	}
}
