// Package face implements the Font Handle: one opened face paired with one
// shaper-font at one (size, dpi), exposing metrics, variation axes and
// glyph planning/rendering. It composes shapefallback, renderplan and
// pixelblit the way the original Font type in the source this was ported
// from composed FreeType and HarfBuzz handles.
package face

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/fixed"

	"github.com/inkwell/glyphcore/ferr"
	"github.com/inkwell/glyphcore/pixelblit"
	"github.com/inkwell/glyphcore/renderplan"
	"github.com/inkwell/glyphcore/shapefallback"
)

func tracer() tracing.Trace { return tracing.Select("glyphcore.face") }

// library is the process-wide font-engine resource. Every Font acquires it
// on open and releases it on Close; the last release tears it down. A pure
// Go opentype stack has no global init/teardown of its own, but the
// reference-counted shape is kept so the ownership model stays faithful to
// the source this module adapts — one process-wide handle shared by every
// open Font.
var (
	libMu   sync.Mutex
	libRefs int
)

func acquireLibrary() {
	libMu.Lock()
	defer libMu.Unlock()
	libRefs++
	if libRefs == 1 {
		tracer().Debugf("glyphcore: font-engine library initialized")
	}
}

func releaseLibrary() {
	libMu.Lock()
	defer libMu.Unlock()
	libRefs--
	if libRefs == 0 {
		tracer().Debugf("glyphcore: font-engine library torn down")
	}
}

// Font owns one face, one (size, dpi), a pre-rendered ellipsis plan, cached
// x-heights, and the glyph id of U+0020 in the face. It must have SetSize
// called at least once before Plan or Render are used.
type Font struct {
	primary *font.Face
	engine  *shapefallback.Engine

	size   fixed.Int26_6
	dpi    uint16
	ppem   uint16
	sizePx fixed.Int26_6 // f.ppem expressed as a 26.6 pixel size, what the shaper actually wants

	ellipsis       *renderplan.Plan
	xHeightLower   uint32
	xHeightUpper   uint32
	spaceCodepoint uint32

	raster *pixelblit.Rasterizer
}

// Open parses a face from a file path. The file-system read itself is the
// deliberately-out-of-scope collaborator; everything from parsing onward is
// this module's concern.
func Open(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferr.Wrap("face.Open", ferr.KindFatal, ferr.CodeCannotOpenResource, err)
	}
	return OpenMemory(data)
}

// OpenMemory parses a face from an in-memory blob.
func OpenMemory(data []byte) (*Font, error) {
	f, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, ferr.Wrap("face.OpenMemory", ferr.KindFatal, ferr.CodeUnknownFileFormat, err)
	}
	acquireLibrary()
	fnt := &Font{
		primary: f,
		engine:  shapefallback.New(),
	}
	if gid, ok := f.Cmap.Lookup(' '); ok {
		fnt.spaceCodepoint = uint32(gid)
	}
	return fnt, nil
}

// Close releases the face and, if this was the last live Font, the
// process-wide library handle.
func (f *Font) Close() {
	releaseLibrary()
}

// FamilyName returns the face's family name, or ok=false if the face
// carries none.
func (f *Font) FamilyName() (string, bool) {
	d := f.primary.Describe()
	return d.Family, d.Family != ""
}

// StyleName returns the face's style (subfamily) name, or ok=false.
func (f *Font) StyleName() (string, bool) {
	d := f.primary.Describe()
	return d.Style, d.Style != ""
}

// SetSize re-parameterizes the font at size (26.6 points) and dpi. A no-op
// if both are already current. Recomputes the ellipsis plan and x-heights,
// the same side effects the source's set_size runs after FT_Set_Char_Size
// succeeds.
func (f *Font) SetSize(size fixed.Int26_6, dpi uint16) {
	if f.ppem != 0 && f.size == size && f.dpi == dpi {
		return
	}
	f.size = size
	f.dpi = dpi
	f.ppem = pixelsPerEm(size, dpi)
	f.sizePx = fixed.Int26_6(f.ppem) << 6
	f.raster = pixelblit.New(f.primary, f.ppem)

	f.ellipsis = f.Plan("…", nil, nil)
	f.xHeightLower = f.Height('x')
	f.xHeightUpper = f.Height('X')
}

// SetVariations applies "TAG=NUM" specs to the face's variation axes,
// clamping each value to its axis's [minimum, maximum] and silently
// skipping unknown tags and specs without '=' at position 4; a NUM that
// does not parse is treated as 0. The library here
// works in plain float32 design-space units rather than FreeType's 16.16
// fixed format, so unlike the Rust source this doesn't scale NUM by 65536;
// the clamp-to-axis-range behavior is preserved, only its numeric
// representation changed (see DESIGN.md).
func (f *Font) SetVariations(specs []string) {
	axes := f.primary.VariationAxes()
	if len(axes) == 0 {
		return
	}
	var vars []font.Variation
	for _, spec := range specs {
		if len(spec) < 5 || spec[4] != '=' {
			continue
		}
		tag := parseTag(spec[:4])
		val, err := strconv.ParseFloat(spec[5:], 32)
		if err != nil {
			val = 0
		}
		for _, ax := range axes {
			if ax.Tag != tag {
				continue
			}
			v := float32(val)
			if v < ax.Minimum {
				v = ax.Minimum
			}
			if v > ax.Maximum {
				v = ax.Maximum
			}
			vars = append(vars, font.Variation{Tag: tag, Value: v})
			break
		}
	}
	if len(vars) == 0 {
		return
	}
	f.primary.SetVariations(vars)
}

// SetVariationsFromName looks up a named instance whose Microsoft/Unicode/
// US-English name-table entry case-insensitively matches name, and applies
// its coordinate vector. Returns whether a match was found.
func (f *Font) SetVariationsFromName(name string) bool {
	instances := f.primary.NamedInstances()
	if len(instances) == 0 {
		return false
	}
	records := f.primary.NameRecords()
	axes := f.primary.VariationAxes()
	for _, inst := range instances {
		for _, rec := range records {
			if rec.NameID != inst.SubfamilyNameID {
				continue
			}
			if rec.PlatformID != 3 || rec.EncodingID != 1 || rec.LanguageID != 0x0409 {
				continue
			}
			if !strings.EqualFold(decodeUTF16BEAscii(rec.Value), name) {
				continue
			}
			vars := make([]font.Variation, 0, len(inst.Coordinates))
			for i, v := range inst.Coordinates {
				if i >= len(axes) {
					break
				}
				vars = append(vars, font.Variation{Tag: axes[i].Tag, Value: v})
			}
			f.primary.SetVariations(vars)
			return true
		}
	}
	tracer().Debugf("glyphcore: no named instance %q", name)
	return false
}

// Plan shapes text with the shaping-with-fallback engine at the face's
// current pixel size (sizePx, derived from ppem — the shaper wants a pixel
// size, not the point size SetSize was called with), optionally cropping
// the result to maxWidth.
func (f *Font) Plan(text string, maxWidth *uint32, features []string) *renderplan.Plan {
	plan := f.engine.Shape(f.primary, text, f.sizePx, parseFeatures(features))
	if maxWidth != nil {
		f.CropRight(plan, *maxWidth)
	}
	return plan
}

// CropRight truncates plan to maxWidth, appending this Font's ellipsis.
func (f *Font) CropRight(plan *renderplan.Plan, maxWidth uint32) {
	plan.CropRight(f.ellipsis, maxWidth)
}

// CropAround symmetrically truncates plan around index to maxWidth,
// returning the post-truncation index of what was originally at index.
func (f *Font) CropAround(plan *renderplan.Plan, index int, maxWidth uint32) int {
	return plan.CropAround(f.ellipsis, index, maxWidth)
}

// CutPoint finds a word-boundary line break in plan at or before maxWidth.
func (f *Font) CutPoint(plan *renderplan.Plan, maxWidth uint32) (int, uint32) {
	return plan.CutPoint(maxWidth, f.spaceCodepoint)
}

// Render draws plan's glyphs onto sink, starting at origin, in color.
func (f *Font) Render(sink pixelblit.Sink, color uint8, plan *renderplan.Plan, origin renderplan.Point) {
	f.raster.Render(plan, color, origin, sink)
}

// Height returns the pixel bounding-box height of c's glyph at the current
// size, the same quantity FT_Load_Char's glyph metrics expose.
func (f *Font) Height(c rune) uint32 {
	gid, ok := f.primary.Cmap.Lookup(c)
	if !ok {
		return 0
	}
	h, ok := glyphBBoxHeight(f.primary, gid, f.ppem)
	if !ok {
		return 0
	}
	return h
}

// XHeights returns the (lowercase, uppercase) x-heights computed the last
// time SetSize ran.
func (f *Font) XHeights() (uint32, uint32) { return f.xHeightLower, f.xHeightUpper }

// Em returns the current pixels-per-em.
func (f *Font) Em() uint16 { return f.ppem }

// Ascender returns the face's ascender in pixels at the current size.
func (f *Font) Ascender() int32 {
	asc, _, _, _ := scaledHExtents(f.primary, f.ppem)
	return asc
}

// Descender returns the face's descender in pixels at the current size.
func (f *Font) Descender() int32 {
	_, desc, _, _ := scaledHExtents(f.primary, f.ppem)
	return desc
}

// LineHeight returns ascender - descender + line gap, in pixels.
func (f *Font) LineHeight() int32 {
	asc, desc, gap, _ := scaledHExtents(f.primary, f.ppem)
	return asc - desc + gap
}

func parseFeatures(specs []string) []shaping.FontFeature {
	if len(specs) == 0 {
		return nil
	}
	out := make([]shaping.FontFeature, 0, len(specs))
	for _, s := range specs {
		ft, err := shaping.ParseFeature(s)
		if err != nil {
			tracer().Infof("glyphcore: dropped unparseable feature %q: %v", s, err)
			continue
		}
		out = append(out, ft)
	}
	return out
}

func pixelsPerEm(size fixed.Int26_6, dpi uint16) uint16 {
	px := int64(size) * int64(dpi) / 72
	return uint16(px >> 6)
}

func parseTag(s string) font.Tag {
	return font.NewTag(s[0], s[1], s[2], s[3])
}

// decodeUTF16BEAscii decodes a name-table string that is assumed to be
// ASCII encoded as UTF-16BE, by keeping every odd byte — the same shortcut
// the Rust source takes rather than running a full UTF-16 decoder.
func decodeUTF16BEAscii(raw []byte) string {
	var b strings.Builder
	for i := 1; i < len(raw); i += 2 {
		b.WriteByte(raw[i])
	}
	return b.String()
}

func glyphBBoxHeight(f *font.Face, gid font.GID, ppem uint16) (uint32, bool) {
	data := f.GlyphData(gid)
	outline, ok := data.(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return 0, false
	}
	scale := float32(ppem) / float32(f.Upem())
	var minY, maxY float32
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
			y := seg.Args[i].Y * scale
			if first {
				minY, maxY = y, y
				first = false
				continue
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if first {
		return 0, false
	}
	h := maxY - minY
	if h < 0 {
		h = -h
	}
	return uint32(h), true
}

func scaledHExtents(f *font.Face, ppem uint16) (ascender, descender, lineGap int32, ok bool) {
	a, d, g, has := f.HExtents()
	if !has {
		return 0, 0, 0, false
	}
	scale := float32(ppem) / float32(f.Upem())
	return int32(a * scale), int32(d * scale), int32(g * scale), true
}
