package glyphcore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell/glyphcore/face"
)

func TestVariantFallbackChain(t *testing.T) {
	regular := &face.Font{}
	italic := &face.Font{}
	bold := &face.Font{}
	boldItalic := &face.Font{}
	fam := &FontFamily{Regular: regular, Italic: italic, Bold: bold, BoldItalic: boldItalic}

	assert.Same(t, regular, fam.Variant(Regular))
	assert.Same(t, italic, fam.Variant(Italic))
	assert.Same(t, bold, fam.Variant(Bold))
	assert.Same(t, boldItalic, fam.Variant(Italic|Bold))
}

func TestCollateStyleNameLowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "bold italic", collateStyleName("  Bold Italic  "))
	assert.Equal(t, "regular", collateStyleName("Regular"))
	assert.Equal(t, "semibold", collateStyleName("SemiBold"))
}

func TestFirstMatchReturnsEarliestNameInPriorityOrder(t *testing.T) {
	styles := styleFiles{
		"medium":   "/fonts/Medium.ttf",
		"semibold": "/fonts/SemiBold.ttf",
	}
	path, ok := firstMatch(styles, "bold", "semibold", "medium")
	assert.True(t, ok)
	assert.Equal(t, "/fonts/SemiBold.ttf", path)
}

func TestFirstMatchMissingReturnsFalse(t *testing.T) {
	styles := styleFiles{"regular": "/fonts/Regular.ttf"}
	_, ok := firstMatch(styles, "bold", "semibold", "medium")
	assert.False(t, ok)
}
