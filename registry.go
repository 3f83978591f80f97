package glyphcore

import (
	"github.com/inkwell/glyphcore/face"
)

// Paths is the hard-coded set of face files the Registry opens at startup:
// one file per family variant, plus the two standalone faces.
type Paths struct {
	SansSerifRegular, SansSerifItalic, SansSerifBold, SansSerifBoldItalic string
	SerifRegular, SerifItalic, SerifBold, SerifBoldItalic                string
	MonospaceRegular, MonospaceItalic, MonospaceBold, MonospaceBoldItalic string
	Keyboard, Display                                                    string
}

// Registry holds every Font this process can resolve a Style against.
type Registry struct {
	SansSerif FontFamily
	Serif     FontFamily
	Monospace FontFamily
	Keyboard  *face.Font
	Display   *face.Font
}

// NewRegistry opens every face named in paths. On success, the monospace
// bold and bold-italic variants have their weight axis pinned to 600 — the
// one per-family adjustment the source makes at load time.
func NewRegistry(paths Paths) (*Registry, error) {
	open := func(path string) (*face.Font, error) { return face.Open(path) }

	opened := make([]*face.Font, 0, 14)
	rollback := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	must := func(path string) (*face.Font, error) {
		f, err := open(path)
		if err != nil {
			rollback()
			return nil, err
		}
		opened = append(opened, f)
		return f, nil
	}

	sansRegular, err := must(paths.SansSerifRegular)
	if err != nil {
		return nil, err
	}
	sansItalic, err := must(paths.SansSerifItalic)
	if err != nil {
		return nil, err
	}
	sansBold, err := must(paths.SansSerifBold)
	if err != nil {
		return nil, err
	}
	sansBoldItalic, err := must(paths.SansSerifBoldItalic)
	if err != nil {
		return nil, err
	}

	serifRegular, err := must(paths.SerifRegular)
	if err != nil {
		return nil, err
	}
	serifItalic, err := must(paths.SerifItalic)
	if err != nil {
		return nil, err
	}
	serifBold, err := must(paths.SerifBold)
	if err != nil {
		return nil, err
	}
	serifBoldItalic, err := must(paths.SerifBoldItalic)
	if err != nil {
		return nil, err
	}

	monoRegular, err := must(paths.MonospaceRegular)
	if err != nil {
		return nil, err
	}
	monoItalic, err := must(paths.MonospaceItalic)
	if err != nil {
		return nil, err
	}
	monoBold, err := must(paths.MonospaceBold)
	if err != nil {
		return nil, err
	}
	monoBoldItalic, err := must(paths.MonospaceBoldItalic)
	if err != nil {
		return nil, err
	}

	keyboard, err := must(paths.Keyboard)
	if err != nil {
		return nil, err
	}
	display, err := must(paths.Display)
	if err != nil {
		return nil, err
	}

	monoBold.SetVariations([]string{"wght=600"})
	monoBoldItalic.SetVariations([]string{"wght=600"})

	return &Registry{
		SansSerif: FontFamily{Regular: sansRegular, Italic: sansItalic, Bold: sansBold, BoldItalic: sansBoldItalic},
		Serif:     FontFamily{Regular: serifRegular, Italic: serifItalic, Bold: serifBold, BoldItalic: serifBoldItalic},
		Monospace: FontFamily{Regular: monoRegular, Italic: monoItalic, Bold: monoBold, BoldItalic: monoBoldItalic},
		Keyboard:  keyboard,
		Display:   display,
	}, nil
}

// Close releases every Font the Registry opened.
func (r *Registry) Close() {
	for _, fam := range []*FontFamily{&r.SansSerif, &r.Serif, &r.Monospace} {
		fam.Regular.Close()
		fam.Italic.Close()
		fam.Bold.Close()
		fam.BoldItalic.Close()
	}
	r.Keyboard.Close()
	r.Display.Close()
}

// Resolve picks the family by style.Family, the variant by style.Variant,
// calls SetSize at the given dpi, and returns the Font — the Go analogue
// of font_from_style.
func (r *Registry) Resolve(style Style, dpi uint16) *face.Font {
	var f *face.Font
	switch style.Family {
	case SansSerif:
		f = r.SansSerif.Variant(style.Variant)
	case Serif:
		f = r.Serif.Variant(style.Variant)
	case Monospace:
		f = r.Monospace.Variant(style.Variant)
	case Keyboard:
		f = r.Keyboard
	case Display:
		f = r.Display
	default:
		f = r.SansSerif.Variant(style.Variant)
	}
	f.SetSize(style.Size, dpi)
	return f
}
