package fallbackfont

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell/glyphcore/scriptscan"
)

func TestBlobReturnsDataForMappedScript(t *testing.T) {
	data, err := Blob(language.Arabic)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBlobFallsBackToGenericSymbolsForUnmappedScript(t *testing.T) {
	generic, err := Blob(language.Unknown)
	require.NoError(t, err)

	direct, err := blobs.ReadFile("data/" + genericSymbols)
	require.NoError(t, err)
	assert.Equal(t, direct, generic)
}

func TestBlobResolvesSyntheticScriptTags(t *testing.T) {
	for _, script := range []scriptscan.Script{
		scriptscan.SymbolArrow,
		scriptscan.SymbolGeometric,
		scriptscan.SymbolDingbat,
		scriptscan.SymbolGameChess,
		scriptscan.SymbolGameDomino,
		scriptscan.SymbolGamePlayingCard,
		scriptscan.SymbolEmoticon,
		scriptscan.SymbolGraphicForm,
		scriptscan.PunctuationBracketCJK,
	} {
		data, err := Blob(script)
		require.NoError(t, err, "script %v", script)
		assert.NotEmpty(t, data)
	}
}

func TestEveryRegisteredFileExistsUnderData(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range scriptFile {
		if seen[name] {
			continue
		}
		seen[name] = true
		_, err := blobs.ReadFile("data/" + name)
		assert.NoError(t, err, "missing embedded fallback blob %s", name)
	}
}
