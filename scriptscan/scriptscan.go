// Package scriptscan classifies a Unicode codepoint into a script tag when
// the shaper itself could not decide (it reported INVALID or UNKNOWN for a
// run). It extends the shaper's own script space with a handful of
// synthetic tags for symbol blocks the shaper has no script for at all.
package scriptscan

import (
	"unicode"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/rangetable"
)

// Script is the tag space this classifier returns: every script the shaper
// recognizes, plus the synthetic tags below.
type Script = language.Script

// Synthetic tags the shaper does not emit. Values are chosen well outside
// the shaper's own script numbering to avoid collisions.
const (
	SymbolArrow Script = Script(0xF000 + iota)
	SymbolTechnical
	SymbolGeometric
	SymbolDingbat
	SymbolEmoticon
	SymbolGameChess
	SymbolGameDomino
	SymbolGamePlayingCard
	SymbolGraphicForm
	PunctuationBracketCJK
)

var (
	arrowRanges = rangetable.Merge(
		rangeTable(0x2190, 0x21FF),
		rangeTable(0x2B00, 0x2B0D),
		rangeTable(0x2B4D, 0x2B4F),
		rangeTable(0x2B5A, 0x2B73),
		rangeTable(0x2B76, 0x2B95),
		rangeTable(0x2B98, 0x2BB9),
		rangeTable(0x2BEC, 0x2BEF),
		rangeTable(0x2900, 0x297F),
	)
	technicalRanges = rangetable.Merge(
		rangeTable(0x2318, 0x2318),
		rangeTable(0x231A, 0x231B),
		rangeTable(0x232B, 0x232B),
		rangeTable(0x2324, 0x2328),
		rangeTable(0x2394, 0x2394),
		rangeTable(0x23CE, 0x23CF),
		rangeTable(0x23E9, 0x23EA),
		rangeTable(0x23ED, 0x23EF),
		rangeTable(0x23F1, 0x23FE),
		rangeTable(0x2BBD, 0x2BBF),
	)
	chessRanges        = rangeTable(0x2654, 0x265F)
	dominoRanges       = rangeTable(0x1F030, 0x1F093)
	playingCardRanges  = rangeTable(0x1F0A0, 0x1F0F5)
	graphicFormRanges  = rangeTable(0x2500, 0x257F)
	geometricRanges    = rangetable.Merge(
		rangeTable(0x25A0, 0x25EF),
		rangeTable(0x25F8, 0x25FF),
		rangeTable(0x26AA, 0x26AC),
		rangeTable(0x2B12, 0x2B2F),
		rangeTable(0x2B53, 0x2B54),
		rangeTable(0x2BC0, 0x2BD1),
	)
	dingbatRanges = rangetable.Merge(
		rangeTable(0x2722, 0x274B),
		rangeTable(0x274D, 0x274D),
		rangeTable(0x274F, 0x2753),
		rangeTable(0x2756, 0x2775),
		rangeTable(0x2794, 0x2794),
		rangeTable(0x2798, 0x27AF),
		rangeTable(0x27B1, 0x27BE),
	)
	bracketCJKRanges = rangetable.Merge(
		rangeTable(0x3008, 0x3011),
		rangeTable(0x3014, 0x301B),
		rangeTable(0xFF5F, 0xFF60),
		rangeTable(0xFF62, 0xFF63),
	)
	emoticonRanges = rangeTable(0x1F600, 0x1F64F)
)

func rangeTable(lo, hi rune) *unicode.RangeTable {
	return &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}},
	}
}

// Classify returns the synthetic script tag for r, or Unknown if r falls
// outside every literal range this classifier knows about. Callers consult
// this only once the shaper itself has reported INVALID/UNKNOWN for a run.
func Classify(r rune) Script {
	switch {
	case unicode.Is(arrowRanges, r):
		return SymbolArrow
	case unicode.Is(technicalRanges, r):
		return SymbolTechnical
	case unicode.Is(chessRanges, r):
		return SymbolGameChess
	case unicode.Is(dominoRanges, r):
		return SymbolGameDomino
	case unicode.Is(playingCardRanges, r):
		return SymbolGamePlayingCard
	case unicode.Is(graphicFormRanges, r):
		return SymbolGraphicForm
	case unicode.Is(geometricRanges, r):
		return SymbolGeometric
	case unicode.Is(dingbatRanges, r):
		return SymbolDingbat
	case unicode.Is(bracketCJKRanges, r):
		return PunctuationBracketCJK
	case unicode.Is(emoticonRanges, r):
		return SymbolEmoticon
	default:
		return language.Unknown
	}
}

// IsUndetermined reports whether a shaper-reported script should be
// escalated to Classify: the shaper found no script, or doesn't know one.
func IsUndetermined(s Script) bool {
	return s == language.Unknown || s == language.Common
}
