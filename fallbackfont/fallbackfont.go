// Package fallbackfont maps a script tag to an embedded fallback font blob.
// Entries mirror the Noto/Droid pan-script set a reader device links into
// its binary so every script has somewhere to turn when the primary face
// reports a missing glyph.
//
// The blobs under data/ are placeholders standing in for the real Noto/Droid
// set (see DESIGN.md) — the table and lookup semantics are what this package
// is about, not the bytes themselves.
package fallbackfont

import (
	"embed"
	"fmt"

	"github.com/go-text/typesetting/language"

	"github.com/inkwell/glyphcore/scriptscan"
)

//go:embed data
var blobs embed.FS

// genericSymbols is the face used for SymbolGeometric, SymbolArrow and
// friends, and for any script this table has no entry for at all.
const genericSymbols = "NotoSansSymbols2-Regular.otf"

var scriptFile = map[scriptscan.Script]string{
	language.Hangul: "DroidSansFallback.ttf",
	language.Hiragana: "DroidSansFallback.ttf",
	language.Katakana: "DroidSansFallback.ttf",
	language.Bopomofo: "DroidSansFallback.ttf",
	language.Han: "DroidSansFallback.ttf",
	language.Arabic: "NotoNaskhArabic-Regular.ttf",
	language.Syriac: "NotoSansSyriacWestern-Regular.ttf",
	language.MeroiticCursive: "NotoSansMeroitic-Regular.otf",
	language.MeroiticHieroglyphs: "NotoSansMeroitic-Regular.otf",
	language.Adlam: "NotoSansAdlam-Regular.otf",
	language.Ahom: "NotoSansAhom-Regular.otf",
	language.AnatolianHieroglyphs: "NotoSansAnatolianHieroglyphs-Regular.otf",
	language.Armenian: "NotoSerifArmenian-Regular.otf",
	language.Avestan: "NotoSansAvestan-Regular.otf",
	language.Balinese: "NotoSerifBalinese-Regular.otf",
	language.Bamum: "NotoSansBamum-Regular.otf",
	language.BassaVah: "NotoSansBassaVah-Regular.otf",
	language.Batak: "NotoSansBatak-Regular.otf",
	language.Bengali: "NotoSansBengali-Regular.otf",
	language.Bhaiksuki: "NotoSansBhaiksuki-Regular.otf",
	language.Brahmi: "NotoSansBrahmi-Regular.otf",
	language.Buginese: "NotoSansBuginese-Regular.otf",
	language.Buhid: "NotoSansBuhid-Regular.otf",
	language.CanadianAboriginal: "NotoSansCanadianAboriginal-Regular.otf",
	language.Carian: "NotoSansCarian-Regular.otf",
	language.Chakma: "NotoSansChakma-Regular.otf",
	language.Cham: "NotoSansCham-Regular.otf",
	language.Cherokee: "NotoSansCherokee-Regular.otf",
	language.Coptic: "NotoSansCoptic-Regular.otf",
	language.Cuneiform: "NotoSansCuneiform-Regular.otf",
	language.Cypriot: "NotoSansCypriot-Regular.otf",
	language.Deseret: "NotoSansDeseret-Regular.otf",
	language.Devanagari: "NotoSansDevanagari-Regular.otf",
	language.EgyptianHieroglyphs: "NotoSansEgyptianHieroglyphs-Regular.otf",
	language.Elbasan: "NotoSansElbasan-Regular.otf",
	language.Ethiopic: "NotoSerifEthiopic-Regular.otf",
	language.Georgian: "NotoSerifGeorgian-Regular.otf",
	language.Glagolitic: "NotoSansGlagolitic-Regular.otf",
	language.Gothic: "NotoSansGothic-Regular.otf",
	language.Gujarati: "NotoSerifGujarati-Regular.otf",
	language.Gurmukhi: "NotoSerifGurmukhi-Regular.otf",
	language.Hanunoo: "NotoSansHanunoo-Regular.otf",
	language.Hatran: "NotoSansHatran-Regular.otf",
	language.Hebrew: "NotoSerifHebrew-Regular.otf",
	language.ImperialAramaic: "NotoSansImperialAramaic-Regular.otf",
	language.InscriptionalPahlavi: "NotoSansInscriptionalPahlavi-Regular.otf",
	language.InscriptionalParthian: "NotoSansInscriptionalParthian-Regular.otf",
	language.Javanese: "NotoSansJavanese-Regular.ttf",
	language.Kaithi: "NotoSansKaithi-Regular.otf",
	language.Kannada: "NotoSerifKannada-Regular.otf",
	language.KayahLi: "NotoSansKayahLi-Regular.otf",
	language.Kharoshthi: "NotoSansKharoshthi-Regular.otf",
	language.Khmer: "NotoSerifKhmer-Regular.otf",
	language.Lao: "NotoSerifLao-Regular.otf",
	language.Lepcha: "NotoSansLepcha-Regular.otf",
	language.Limbu: "NotoSansLimbu-Regular.otf",
	language.LinearA: "NotoSansLinearA-Regular.otf",
	language.LinearB: "NotoSansLinearB-Regular.otf",
	language.Lisu: "NotoSansLisu-Regular.otf",
	language.Lycian: "NotoSansLycian-Regular.otf",
	language.Lydian: "NotoSansLydian-Regular.otf",
	language.Malayalam: "NotoSansMalayalam-Regular.otf",
	language.Mandaic: "NotoSansMandaic-Regular.otf",
	language.Manichaean: "NotoSansManichaean-Regular.otf",
	language.Marchen: "NotoSansMarchen-Regular.otf",
	language.MeeteiMayek: "NotoSansMeeteiMayek-Regular.otf",
	language.MendeKikakui: "NotoSansMendeKikakui-Regular.otf",
	language.Miao: "NotoSansMiao-Regular.otf",
	language.Mongolian: "NotoSansMongolian-Regular.ttf",
	language.Mro: "NotoSansMro-Regular.otf",
	language.Multani: "NotoSansMultani-Regular.otf",
	language.Myanmar: "NotoSerifMyanmar-Regular.otf",
	language.Nabataean: "NotoSansNabataean-Regular.otf",
	language.Newa: "NotoSansNewa-Regular.otf",
	language.NewTaiLue: "NotoSansNewTaiLue-Regular.otf",
	language.Nko: "NotoSansNKo-Regular.otf",
	language.Ogham: "NotoSansOgham-Regular.otf",
	language.OldItalic: "NotoSansOldItalic-Regular.otf",
	language.OldNorthArabian: "NotoSansOldNorthArabian-Regular.otf",
	language.OldPermic: "NotoSansOldPermic-Regular.otf",
	language.OldPersian: "NotoSansOldPersian-Regular.otf",
	language.OldSouthArabian: "NotoSansOldSouthArabian-Regular.otf",
	language.OldTurkic: "NotoSansOldTurkic-Regular.otf",
	language.OlChiki: "NotoSansOlChiki-Regular.otf",
	language.Oriya: "NotoSansOriya-Regular.ttf",
	language.Osage: "NotoSansOsage-Regular.otf",
	language.Osmanya: "NotoSansOsmanya-Regular.otf",
	language.PahawhHmong: "NotoSansPahawhHmong-Regular.otf",
	language.Palmyrene: "NotoSansPalmyrene-Regular.otf",
	language.PauCinHau: "NotoSansPauCinHau-Regular.otf",
	language.PhagsPa: "NotoSansPhagsPa-Regular.otf",
	language.Phoenician: "NotoSansPhoenician-Regular.otf",
	language.Rejang: "NotoSansRejang-Regular.otf",
	language.Runic: "NotoSansRunic-Regular.otf",
	language.Samaritan: "NotoSansSamaritan-Regular.otf",
	language.Saurashtra: "NotoSansSaurashtra-Regular.otf",
	language.Sharada: "NotoSansSharada-Regular.otf",
	language.Shavian: "NotoSansShavian-Regular.otf",
	language.Sinhala: "NotoSerifSinhala-Regular.otf",
	language.SoraSompeng: "NotoSansSoraSompeng-Regular.otf",
	language.Sundanese: "NotoSansSundanese-Regular.otf",
	language.SylotiNagri: "NotoSansSylotiNagri-Regular.otf",
	language.Tagalog: "NotoSansTagalog-Regular.otf",
	language.Tagbanwa: "NotoSansTagbanwa-Regular.otf",
	language.TaiLe: "NotoSansTaiLe-Regular.otf",
	language.TaiTham: "NotoSansTaiTham-Regular.ttf",
	language.TaiViet: "NotoSansTaiViet-Regular.otf",
	language.Tamil: "NotoSerifTamil-Regular.otf",
	language.Telugu: "NotoSerifTelugu-Regular.ttf",
	language.Thaana: "NotoSansThaana-Regular.ttf",
	language.Thai: "NotoSerifThai-Regular.otf",
	language.Tibetan: "NotoSansTibetan-Regular.ttf",
	language.Tifinagh: "NotoSansTifinagh-Regular.otf",
	language.Ugaritic: "NotoSansUgaritic-Regular.otf",
	language.Vai: "NotoSansVai-Regular.otf",
	language.Yi: "NotoSansYi-Regular.otf",
	language.Braille: "NotoSansSymbols2-Regular.otf",
	scriptscan.SymbolGeometric: "NotoSansSymbols2-Regular.otf",
	scriptscan.SymbolArrow: "NotoSansSymbols2-Regular.otf",
	scriptscan.SymbolTechnical: "NotoSansSymbols2-Regular.otf",
	scriptscan.SymbolDingbat: "NotoSansSymbols2-Regular.otf",
	scriptscan.SymbolGameChess: "NotoSansSymbols2-Regular.otf",
	scriptscan.SymbolGameDomino: "NotoSansSymbols2-Regular.otf",
	scriptscan.SymbolGamePlayingCard: "NotoSansSymbols2-Regular.otf",
	scriptscan.SymbolEmoticon: "NotoEmoji-Regular.ttf",
	scriptscan.SymbolGraphicForm: "DroidSansFallback.ttf",
	scriptscan.PunctuationBracketCJK: "DroidSansFallback.ttf",
}

// Blob returns the embedded font bytes registered for script. A script with
// no entry, or language.Unknown, resolves to the generic symbols face: the
// registry has no concept of a missing mapping, only a catch-all one.
func Blob(script scriptscan.Script) ([]byte, error) {
	name, ok := scriptFile[script]
	if !ok {
		name = genericSymbols
	}
	data, err := blobs.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("fallbackfont: reading %s: %w", name, err)
	}
	return data, nil
}
