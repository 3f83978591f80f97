package scriptscan

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
)

func TestClassifyArrowRange(t *testing.T) {
	assert.Equal(t, SymbolArrow, Classify(0x2190))
	assert.Equal(t, SymbolArrow, Classify(0x21FF))
}

func TestClassifyChessRange(t *testing.T) {
	assert.Equal(t, SymbolGameChess, Classify(0x2654))
	assert.Equal(t, SymbolGameChess, Classify(0x265F))
}

func TestClassifyDominoRange(t *testing.T) {
	assert.Equal(t, SymbolGameDomino, Classify(0x1F030))
}

func TestClassifyPlayingCardRange(t *testing.T) {
	assert.Equal(t, SymbolGamePlayingCard, Classify(0x1F0A0))
}

func TestClassifyEmoticonRange(t *testing.T) {
	assert.Equal(t, SymbolEmoticon, Classify(0x1F600))
	assert.Equal(t, SymbolEmoticon, Classify(0x1F64F))
}

func TestClassifyBracketCJKRange(t *testing.T) {
	assert.Equal(t, PunctuationBracketCJK, Classify(0x3008))
}

func TestClassifyDingbatRange(t *testing.T) {
	assert.Equal(t, SymbolDingbat, Classify(0x2722))
}

func TestClassifyGeometricRange(t *testing.T) {
	assert.Equal(t, SymbolGeometric, Classify(0x25A0))
}

func TestClassifyTechnicalRange(t *testing.T) {
	assert.Equal(t, SymbolTechnical, Classify(0x2318))
}

func TestClassifyUnknownOutsideAllRanges(t *testing.T) {
	assert.Equal(t, language.Unknown, Classify('A'))
	assert.Equal(t, language.Unknown, Classify(0x0041))
}

func TestIsUndetermined(t *testing.T) {
	assert.True(t, IsUndetermined(language.Unknown))
	assert.True(t, IsUndetermined(language.Common))
	assert.False(t, IsUndetermined(language.Latin))
	assert.False(t, IsUndetermined(SymbolArrow))
}

func TestSyntheticTagsDoNotCollideWithShaperSpace(t *testing.T) {
	tags := []Script{
		SymbolArrow, SymbolTechnical, SymbolGeometric, SymbolDingbat,
		SymbolEmoticon, SymbolGameChess, SymbolGameDomino,
		SymbolGamePlayingCard, SymbolGraphicForm, PunctuationBracketCJK,
	}
	seen := make(map[Script]bool)
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate synthetic tag %v", tag)
		seen[tag] = true
		assert.GreaterOrEqual(t, int32(tag), int32(0xF000))
	}
}
