package renderplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell/glyphcore/scriptscan"
)

func latinPlan(advances ...int32) *Plan {
	p := New()
	var width uint32
	for i, a := range advances {
		p.Glyphs = append(p.Glyphs, GlyphPlan{
			Codepoint: uint32(i + 1),
			Cluster:   i,
			Advance:   Point{X: a},
		})
		width += uint32(a)
	}
	p.Width = width
	return p
}

func TestSpaceOutGrowsWidthAndSkipsLastGlyph(t *testing.T) {
	p := latinPlan(10, 10, 10)
	p.SpaceOut(2)

	require.Equal(t, int32(12), p.Glyphs[0].Advance.X)
	require.Equal(t, int32(12), p.Glyphs[1].Advance.X)
	require.Equal(t, int32(10), p.Glyphs[2].Advance.X, "last glyph's advance is untouched")
	assert.EqualValues(t, 34, p.Width)
}

func TestSpaceOutNoopOnEmptyOrZeroSpacing(t *testing.T) {
	p := latinPlan(10, 10)
	before := p.Width
	p.SpaceOut(0)
	assert.Equal(t, before, p.Width)

	empty := New()
	empty.SpaceOut(5)
	assert.EqualValues(t, 0, empty.Width)
}

func TestCropRightNoopWhenWithinBudget(t *testing.T) {
	p := latinPlan(10, 10, 10)
	ellipsis := latinPlan(5)
	p.CropRight(ellipsis, 30)
	assert.EqualValues(t, 30, p.Width)
	assert.Len(t, p.Glyphs, 3)
}

func TestCropRightFitsAndAppendsEllipsis(t *testing.T) {
	p := latinPlan(10, 10, 10, 10)
	ellipsis := latinPlan(5)
	p.CropRight(ellipsis, 25)

	assert.LessOrEqual(t, p.Width, uint32(25))
	last := p.Glyphs[len(p.Glyphs)-1]
	assert.Equal(t, ellipsis.Glyphs[0].Codepoint, last.Codepoint)
}

func TestCropRightPrunesScriptsBeyondKeptLength(t *testing.T) {
	p := latinPlan(10, 10, 10, 10)
	p.Scripts[3] = scriptscan.SymbolArrow
	ellipsis := latinPlan(5)
	p.CropRight(ellipsis, 15)

	for k := range p.Scripts {
		assert.Less(t, k, len(p.Glyphs))
	}
}

func TestCropAroundFitsWithinBudget(t *testing.T) {
	p := latinPlan(10, 10, 10, 10, 10, 10, 10)
	ellipsis := latinPlan(5)
	newIndex := p.CropAround(ellipsis, 3, 25)

	assert.LessOrEqual(t, p.Width, uint32(25))
	assert.GreaterOrEqual(t, newIndex, 0)
}

func TestCropAroundNoopWhenWithinBudget(t *testing.T) {
	p := latinPlan(10, 10, 10)
	idx := p.CropAround(latinPlan(5), 1, 100)
	assert.Equal(t, 0, idx)
	assert.EqualValues(t, 30, p.Width)
}

func TestCutPointFallsBackToHardCutWithoutSpace(t *testing.T) {
	p := latinPlan(10, 10, 10, 10)
	idx, width := p.CutPoint(25, 0xFFFFFFFF)
	assert.Less(t, idx, len(p.Glyphs))
	assert.LessOrEqual(t, width, uint32(25))
}

func TestCutPointBreaksAtSpace(t *testing.T) {
	p := New()
	// "ab cd" worth of glyphs: a(10) b(10) space(10) c(10) d(10)
	widths := []int32{10, 10, 10, 10, 10}
	var total uint32
	for i, w := range widths {
		cp := uint32(i + 1)
		if i == 2 {
			cp = 99 // space codepoint
		}
		p.Glyphs = append(p.Glyphs, GlyphPlan{Codepoint: cp, Advance: Point{X: w}})
		total += uint32(w)
	}
	p.Width = total

	idx, width := p.CutPoint(35, 99)
	assert.Equal(t, uint32(99), p.Glyphs[idx].Codepoint)
	assert.Equal(t, uint32(20), width)
}

func TestSplitOffLaw(t *testing.T) {
	p := latinPlan(10, 10, 10, 10, 10)
	p.Scripts[3] = scriptscan.SymbolArrow
	p.Scripts[4] = scriptscan.SymbolDingbat

	original := p.Width
	rear := p.SplitOff(3, 30)

	assert.EqualValues(t, 30, p.Width)
	assert.Len(t, p.Glyphs, 3)
	assert.EqualValues(t, original-30, rear.Width)
	assert.Len(t, rear.Glyphs, 2)

	for k := range p.Scripts {
		assert.Less(t, k, 3)
	}
	assert.Equal(t, scriptscan.SymbolArrow, rear.Scripts[0])
	assert.Equal(t, scriptscan.SymbolDingbat, rear.Scripts[1])
}

func TestTotalAdvanceAndIndexFromAdvanceRoundTrip(t *testing.T) {
	p := latinPlan(10, 10, 10, 10)
	for i := 0; i < len(p.Glyphs); i++ {
		adv := p.TotalAdvance(i)
		idx := p.IndexFromAdvance(adv)
		assert.InDelta(t, i, idx, 1)
	}
}

func TestGlyphAdvance(t *testing.T) {
	p := latinPlan(7, 11)
	assert.EqualValues(t, 7, p.GlyphAdvance(0))
	assert.EqualValues(t, 11, p.GlyphAdvance(1))
}
