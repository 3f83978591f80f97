package glyphcore

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/inkwell/glyphcore/face"
	"github.com/inkwell/glyphcore/ferr"
)

func tracer() tracing.Trace { return tracing.Select("glyphcore") }

// FontFamily is four Fonts keyed by the (italic, bold) bitset.
type FontFamily struct {
	Regular    *face.Font
	Italic     *face.Font
	Bold       *face.Font
	BoldItalic *face.Font
}

// Variant selects one of the four Fonts in fam, applying the fallback
// chain: BoldItalic only when both bits are set, else Italic, else Bold,
// else Regular.
func (fam *FontFamily) Variant(v Variant) *face.Font {
	switch {
	case v&(Italic|Bold) == Italic|Bold:
		return fam.BoldItalic
	case v&Italic != 0:
		return fam.Italic
	case v&Bold != 0:
		return fam.Bold
	default:
		return fam.Regular
	}
}

// styleFiles is the file found for each style name, keyed case-
// insensitively (the original source keys by exact, case-sensitive
// string instead; see DESIGN.md).
type styleFiles map[string]string

// FamilyFromSearchPath walks searchPath for *.ttf/*.otf files, opens each
// far enough to read its family/style name, and builds the FontFamily for
// familyName using the fallback chain from §3: Italic→Regular,
// Bold→Semibold→Medium→Regular, BoldItalic→SemiBoldItalic→MediumItalic→Italic.
//
// The directory walk is the deliberately-out-of-scope collaborator (a glob
// over a search path); everything from style-name keying onward is this
// package's algorithm.
func FamilyFromSearchPath(familyName, searchPath string) (*FontFamily, error) {
	styles := make(styleFiles)

	err := filepath.WalkDir(searchPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}
		f, openErr := face.Open(path)
		if openErr != nil {
			tracer().Infof("glyphcore: skipping %s: %v", path, openErr)
			return nil
		}
		defer f.Close()
		fam, _ := f.FamilyName()
		if fam != familyName {
			return nil
		}
		style, ok := f.StyleName()
		if !ok {
			style = "Regular"
		}
		styles[collateStyleName(style)] = path
		return nil
	})
	if err != nil {
		return nil, ferr.Wrap("FamilyFromSearchPath", ferr.KindFatal, ferr.CodeCannotOpenResource, err)
	}

	regularPath, ok := firstMatch(styles, "regular", "roman", "book")
	if !ok {
		return nil, ferr.New("FamilyFromSearchPath", ferr.KindFatal, ferr.CodeMissingModule)
	}
	italicPath, ok := firstMatch(styles, "italic", "book italic")
	if !ok {
		italicPath = regularPath
	}
	boldPath, ok := firstMatch(styles, "bold", "semibold", "medium")
	if !ok {
		boldPath = regularPath
	}
	boldItalicPath, ok := firstMatch(styles, "bold italic", "semibold italic", "medium italic")
	if !ok {
		boldItalicPath = italicPath
	}

	return openFamily(regularPath, italicPath, boldPath, boldItalicPath)
}

func collateStyleName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func firstMatch(styles styleFiles, names ...string) (string, bool) {
	for _, n := range names {
		if p, ok := styles[n]; ok {
			return p, true
		}
	}
	return "", false
}

func openFamily(regular, italic, bold, boldItalic string) (*FontFamily, error) {
	paths := []string{regular, italic, bold, boldItalic}
	fonts := make([]*face.Font, 0, 4)
	for _, p := range paths {
		f, err := face.Open(p)
		if err != nil {
			for _, opened := range fonts {
				opened.Close()
			}
			return nil, err
		}
		fonts = append(fonts, f)
	}
	return &FontFamily{Regular: fonts[0], Italic: fonts[1], Bold: fonts[2], BoldItalic: fonts[3]}, nil
}

// FamilyNames returns the set of distinct family names found under
// searchPath, for callers building a style picker UI.
func FamilyNames(searchPath string) ([]string, error) {
	seen := make(map[string]bool)
	err := filepath.WalkDir(searchPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}
		f, openErr := face.Open(path)
		if openErr != nil {
			return nil
		}
		defer f.Close()
		if fam, ok := f.FamilyName(); ok {
			seen[fam] = true
		}
		return nil
	})
	if err != nil {
		return nil, ferr.Wrap("FamilyNames", ferr.KindFatal, ferr.CodeCannotOpenResource, err)
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
