package wcwidth

// ucsRange is a half-open-on-neither-end (inclusive) codepoint range:
// [Start, Stop].
type ucsRange struct {
	Start, Stop rune
}

// ucsInvalid holds codepoints that render as nothing sensible on a
// monospace grid: UTF-16 surrogates and the noncharacter blocks. C0/C1/DEL
// are handled directly in Width rather than listed here.
var ucsInvalid = []ucsRange{
	{0xD800, 0xDFFF},   // UTF-16 surrogate halves
	{0xFDD0, 0xFDEF},   // noncharacters
	{0xFFFE, 0xFFFF},
	{0x1FFFE, 0x1FFFF},
	{0x2FFFE, 0x2FFFF},
	{0x3FFFE, 0x3FFFF},
	{0x4FFFE, 0x4FFFF},
	{0x5FFFE, 0x5FFFF},
	{0x6FFFE, 0x6FFFF},
	{0x7FFFE, 0x7FFFF},
	{0x8FFFE, 0x8FFFF},
	{0x9FFFE, 0x9FFFF},
	{0xAFFFE, 0xAFFFF},
	{0xBFFFE, 0xBFFFF},
	{0xCFFFE, 0xCFFFF},
	{0xDFFFE, 0xDFFFF},
	{0xEFFFE, 0xEFFFF},
	{0xFFFFE, 0xFFFFF},
	{0x10FFFE, 0x10FFFF},
}

// ucsZeroWidth holds combining marks, format characters, and other
// codepoints that occupy no monospace cell of their own: combining
// diacriticals, variation selectors, zero-width joiners/spaces, and
// nonspacing Hangul jamo.
var ucsZeroWidth = []ucsRange{
	{0x0300, 0x036F},   // combining diacritical marks
	{0x0483, 0x0489},   // Cyrillic combining marks
	{0x0591, 0x05BD},   // Hebrew points
	{0x05BF, 0x05BF},
	{0x05C1, 0x05C2},
	{0x05C4, 0x05C5},
	{0x05C7, 0x05C7},
	{0x0610, 0x061A},   // Arabic marks
	{0x064B, 0x065F},
	{0x0670, 0x0670},
	{0x06D6, 0x06DC},
	{0x06DF, 0x06E4},
	{0x06E7, 0x06E8},
	{0x06EA, 0x06ED},
	{0x0711, 0x0711},   // Syriac
	{0x0730, 0x074A},
	{0x07A6, 0x07B0},   // Thaana
	{0x07EB, 0x07F3},
	{0x0816, 0x0823},   // Samaritan
	{0x0825, 0x082D},
	{0x0900, 0x0902},   // Devanagari
	{0x093A, 0x093A},
	{0x093C, 0x093C},
	{0x0941, 0x0948},
	{0x094D, 0x094D},
	{0x0951, 0x0957},
	{0x0962, 0x0963},
	{0x1AB0, 0x1AFF},   // combining diacritical marks extended
	{0x1DC0, 0x1DFF},   // combining diacritical marks supplement
	{0x200B, 0x200F},   // ZWSP, ZWNJ, ZWJ, LRM, RLM
	{0x2028, 0x202E},   // line/paragraph separators, directional formatting
	{0x2060, 0x2064},   // word joiner, invisible operators
	{0x2066, 0x206F},   // directional isolates
	{0x20D0, 0x20FF},   // combining marks for symbols
	{0xFB1E, 0xFB1E},   // Hebrew point judeo-spanish varika
	{0xFE00, 0xFE0F},   // variation selectors
	{0xFE20, 0xFE2F},   // combining half marks
	{0xFEFF, 0xFEFF},   // zero width no-break space / BOM
	{0x101FD, 0x101FD},
	{0x10A01, 0x10A03},
	{0x10A05, 0x10A06},
	{0x10A0C, 0x10A0F},
	{0x1D167, 0x1D169}, // musical combining marks
	{0x1D17B, 0x1D182},
	{0x1D185, 0x1D18B},
	{0x1D1AA, 0x1D1AD},
	{0xE0100, 0xE01EF}, // variation selectors supplement
}

// ucsDoubleWidth holds codepoints that occupy two monospace cells: CJK
// ideographs and syllabaries, fullwidth forms, and the emoji blocks.
var ucsDoubleWidth = []ucsRange{
	{0x1100, 0x115F},   // Hangul jamo
	{0x2329, 0x232A},   // angle brackets
	{0x2E80, 0x303E},   // CJK radicals, kangxi, CJK symbols and punctuation
	{0x3041, 0x33FF},   // hiragana .. CJK compatibility
	{0x3400, 0x4DBF},   // CJK unified ideographs extension A
	{0x4E00, 0x9FFF},   // CJK unified ideographs
	{0xA000, 0xA4CF},   // Yi syllables and radicals
	{0xAC00, 0xD7A3},   // Hangul syllables
	{0xF900, 0xFAFF},   // CJK compatibility ideographs
	{0xFE30, 0xFE4F},   // CJK compatibility forms
	{0xFF00, 0xFF60},   // fullwidth forms
	{0xFFE0, 0xFFE6},   // fullwidth signs
	{0x16FE0, 0x16FE4},
	{0x17000, 0x187F7},  // Tangut
	{0x18800, 0x18CD5},
	{0x1B000, 0x1B2FB},  // Kana supplement .. extended-B
	{0x1F004, 0x1F004},  // mahjong tile red dragon
	{0x1F0CF, 0x1F0CF},  // playing card black joker
	{0x1F18E, 0x1F18E},
	{0x1F191, 0x1F19A},
	{0x1F200, 0x1F2FF},  // enclosed ideographic supplement
	{0x1F300, 0x1F64F},  // misc symbols and pictographs, emoticons
	{0x1F680, 0x1F6FF},  // transport and map symbols
	{0x1F900, 0x1F9FF},  // supplemental symbols and pictographs
	{0x1FA70, 0x1FAFF},  // symbols and pictographs extended-A
	{0x20000, 0x2FFFD},  // CJK unified ideographs extension B..F, supplementary ideographic plane
	{0x30000, 0x3FFFD},  // CJK unified ideographs extension G, tertiary ideographic plane
}
