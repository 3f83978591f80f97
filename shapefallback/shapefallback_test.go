package shapefallback

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"

	"github.com/inkwell/glyphcore/renderplan"
	"github.com/inkwell/glyphcore/scriptscan"
)

func TestRuneByteOffsetsASCII(t *testing.T) {
	offsets := runeByteOffsets([]rune("abc"))
	assert.Equal(t, []int{0, 1, 2, 3}, offsets)
}

func TestRuneByteOffsetsMultibyte(t *testing.T) {
	// "a" (1 byte) + "é" (2 bytes) + "中" (3 bytes)
	offsets := runeByteOffsets([]rune("aé中"))
	assert.Equal(t, []int{0, 1, 3, 6}, offsets)
}

func TestRuneByteOffsetsEmpty(t *testing.T) {
	assert.Equal(t, []int{0}, runeByteOffsets(nil))
}

func TestClampRune(t *testing.T) {
	assert.Equal(t, 0, clampRune(-5, 10))
	assert.Equal(t, 10, clampRune(15, 10))
	assert.Equal(t, 5, clampRune(5, 10))
}

func TestClampNonNegative(t *testing.T) {
	assert.Equal(t, 0, clampNonNegative(-3))
	assert.Equal(t, 0, clampNonNegative(0))
	assert.Equal(t, 7, clampNonNegative(7))
}

func TestDetectScriptKnownScript(t *testing.T) {
	assert.Equal(t, language.Arabic, detectScript("ا"))
}

func TestDetectScriptEscalatesUndeterminedToClassifier(t *testing.T) {
	assert.Equal(t, scriptscan.SymbolArrow, detectScript("←"))
}

func TestDetectScriptEmptyChunk(t *testing.T) {
	assert.Equal(t, language.Unknown, detectScript(""))
}

func TestSpliceGlyphsReplacesMiddleRange(t *testing.T) {
	glyphs := []renderplan.GlyphPlan{
		{Codepoint: 1}, {Codepoint: 0}, {Codepoint: 0}, {Codepoint: 4},
	}
	replacement := []renderplan.GlyphPlan{{Codepoint: 20}, {Codepoint: 21}}

	out := spliceGlyphs(glyphs, 1, 3, replacement)

	assert.Len(t, out, 4)
	assert.EqualValues(t, 1, out[0].Codepoint)
	assert.EqualValues(t, 20, out[1].Codepoint)
	assert.EqualValues(t, 21, out[2].Codepoint)
	assert.EqualValues(t, 4, out[3].Codepoint)
}

func TestSpliceGlyphsGrowsWhenReplacementIsLarger(t *testing.T) {
	glyphs := []renderplan.GlyphPlan{{Codepoint: 0}}
	replacement := []renderplan.GlyphPlan{{Codepoint: 1}, {Codepoint: 2}, {Codepoint: 3}}

	out := spliceGlyphs(glyphs, 0, 1, replacement)
	assert.Len(t, out, 3)
}

func TestSpliceGlyphsShrinksWhenReplacementIsSmaller(t *testing.T) {
	glyphs := []renderplan.GlyphPlan{
		{Codepoint: 1}, {Codepoint: 0}, {Codepoint: 0}, {Codepoint: 0}, {Codepoint: 5},
	}
	replacement := []renderplan.GlyphPlan{{Codepoint: 99}}

	out := spliceGlyphs(glyphs, 1, 4, replacement)
	assert.Len(t, out, 3)
	assert.EqualValues(t, 99, out[1].Codepoint)
}
