// Package glyphcore resolves a logical text style to a concrete Font
// Handle: it groups Fonts into families, scans a search path for style
// variants, and picks Regular/Italic/Bold/BoldItalic the way a reader
// device's style sheet would.
package glyphcore

import "golang.org/x/image/math/fixed"

// Family is the logical font family a Style names.
type Family uint8

const (
	SansSerif Family = iota
	Serif
	Monospace
	Keyboard
	Display
)

// Variant is a bitset of style modifiers. BoldItalic is ITALIC|BOLD.
type Variant uint8

const (
	Regular Variant = 0
	Italic  Variant = 1 << 0
	Bold    Variant = 1 << 1
)

// Style names a logical family, a variant bitset, and a size in 26.6
// points — the same triple the original style sheet threaded through
// font_from_style.
type Style struct {
	Family  Family
	Variant Variant
	Size    fixed.Int26_6
}
