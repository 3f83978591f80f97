// Package shapefallback implements the shaping-with-fallback pipeline: shape
// a run with the primary face, find the codepoint-0 gaps the shaper left
// behind, infer a script per gap, reshape each gap with a fallback face, and
// splice the replacement glyphs back into the plan.
package shapefallback

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/fixed"

	"github.com/inkwell/glyphcore/fallbackfont"
	"github.com/inkwell/glyphcore/renderplan"
	"github.com/inkwell/glyphcore/scriptscan"
)

func tracer() tracing.Trace { return tracing.Select("glyphcore.shapefallback") }

// Engine owns the single shaper instance this module's single-threaded
// ownership model allows one Font's shaping calls to share.
type Engine struct {
	shaper shaping.HarfbuzzShaper
}

// New returns a ready-to-use shaping-with-fallback engine.
func New() *Engine {
	return &Engine{}
}

type gap struct {
	start, end int // half-open glyph-index range
}

// Shape shapes text with primary at size/features, then patches every
// codepoint-0 run it finds with the matching fallback face, reshaped at the
// same size so visual metrics line up with the primary run.
func (e *Engine) Shape(primary *font.Face, text string, size fixed.Int26_6, features []shaping.FontFeature) *renderplan.Plan {
	runes := []rune(text)
	byteAt := runeByteOffsets(runes)

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    di.DirectionLTR,
		Face:         primary,
		Size:         size,
		FontFeatures: features,
	}
	output := e.shaper.Shape(input)

	plan := renderplan.New()
	var gaps []gap

	for _, g := range output.Glyphs {
		cluster := byteAt[clampRune(g.ClusterIndex, len(runes))]
		gp := renderplan.GlyphPlan{
			Codepoint: uint32(g.GlyphID),
			Cluster:   cluster,
			Offset:    renderplan.Point{X: int32(g.XOffset) >> 6, Y: -(int32(g.YOffset) >> 6)},
			Advance:   renderplan.Point{X: int32(g.XAdvance) >> 6, Y: int32(g.YAdvance) >> 6},
		}
		if g.GlyphID == 0 {
			if n := len(gaps); n > 0 && gaps[n-1].end == len(plan.Glyphs) {
				gaps[n-1].end++
			} else {
				gaps = append(gaps, gap{len(plan.Glyphs), len(plan.Glyphs) + 1})
			}
		} else {
			plan.Width += uint32(gp.Advance.X)
		}
		plan.Glyphs = append(plan.Glyphs, gp)
	}

	e.patch(text, size, features, plan, gaps)
	return plan
}

// patch re-shapes every gap with a per-gap fallback face and splices the
// result back into plan, maintaining drift as the glyph count shifts.
func (e *Engine) patch(text string, size fixed.Int26_6, features []shaping.FontFeature, plan *renderplan.Plan, gaps []gap) {
	drift := 0
	for _, g := range gaps {
		s := clampNonNegative(g.start + drift)
		end := clampNonNegative(g.end + drift)

		startByte := plan.Glyphs[s].Cluster
		endByte := len(text)
		if end < len(plan.Glyphs) {
			endByte = plan.Glyphs[end].Cluster
		}
		chunk := text[startByte:endByte]
		if chunk == "" {
			continue
		}

		script := detectScript(chunk)
		blob, err := fallbackfont.Blob(script)
		if err != nil {
			tracer().Infof("glyphcore: no fallback blob for script %v: %v", script, err)
			continue
		}
		fallbackFace, err := font.ParseTTF(bytes.NewReader(blob))
		if err != nil {
			tracer().Infof("glyphcore: fallback face failed to open for script %v: %v", script, err)
			continue
		}

		chunkRunes := []rune(chunk)
		chunkByteAt := runeByteOffsets(chunkRunes)

		input := shaping.Input{
			Text:         chunkRunes,
			RunStart:     0,
			RunEnd:       len(chunkRunes),
			Direction:    di.DirectionLTR,
			Face:         fallbackFace,
			Size:         size,
			FontFeatures: features,
		}
		output := e.shaper.Shape(input)

		replacement := make([]renderplan.GlyphPlan, len(output.Glyphs))
		for i, g2 := range output.Glyphs {
			plan.Width += uint32(int32(g2.XAdvance) >> 6)
			replacement[i] = renderplan.GlyphPlan{
				Codepoint: uint32(g2.GlyphID),
				Cluster:   startByte + chunkByteAt[clampRune(g2.ClusterIndex, len(chunkRunes))],
				Offset:    renderplan.Point{X: int32(g2.XOffset) >> 6, Y: -(int32(g2.YOffset) >> 6)},
				Advance:   renderplan.Point{X: int32(g2.XAdvance) >> 6, Y: int32(g2.YAdvance) >> 6},
			}
			plan.Scripts[s+i] = script
		}

		plan.Glyphs = spliceGlyphs(plan.Glyphs, s, end, replacement)
		drift += len(replacement) - (end - s)
	}
}

// detectScript mirrors hb_buffer_guess_segment_properties + a fallback to
// the literal-range classifier: look up the script of the chunk's first
// rune, and escalate to the synthetic-symbol tables when the shaper's own
// script space has nothing to say about it.
func detectScript(chunk string) scriptscan.Script {
	for _, r := range chunk {
		s := language.LookupScript(r)
		if scriptscan.IsUndetermined(s) {
			return scriptscan.Classify(r)
		}
		return s
	}
	return language.Unknown
}

func spliceGlyphs(glyphs []renderplan.GlyphPlan, start, end int, replacement []renderplan.GlyphPlan) []renderplan.GlyphPlan {
	out := make([]renderplan.GlyphPlan, 0, len(glyphs)-(end-start)+len(replacement))
	out = append(out, glyphs[:start]...)
	out = append(out, replacement...)
	out = append(out, glyphs[end:]...)
	return out
}

func runeByteOffsets(runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offsets[i] = b
		b += len(string(r))
	}
	offsets[len(runes)] = b
	return offsets
}

func clampRune(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func clampNonNegative(i int) int {
	if i < 0 {
		return 0
	}
	return i
}
