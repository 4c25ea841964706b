// Package wcwidth classifies a Unicode codepoint by how many monospace
// grid cells it occupies, the terminal-layout analogue of POSIX wcwidth.
package wcwidth

import "sort"

// Width maps a codepoint to its monospace cell footprint:
//
//	-1  not representable (control characters, surrogates, noncharacters)
//	 0  combining / zero-width
//	 1  narrow
//	 2  wide (CJK, emoji)
//
// cp == 0 is special-cased to 0 rather than treated as a C string
// terminator, matching StringWidth's stop condition.
func Width(cp rune) int {
	switch {
	case cp == 0:
		return 0
	case cp < 32 || (cp >= 0x7f && cp < 0xa0):
		return -1
	case cp == 0x00ad:
		// Soft hyphen: the original classifier returns 1 here with a
		// "return 0 instead?" TODO left unresolved. Preserved as-is.
		return 1
	}

	if inTable(ucsDoubleWidth, cp) {
		return 2
	}
	if inTable(ucsZeroWidth, cp) {
		return 0
	}
	if inTable(ucsInvalid, cp) {
		return -1
	}
	return 1
}

// inTable reports whether cp falls in one of table's ranges. It checks the
// table's overall bounds before binary-searching, so the common ASCII path
// (cp below every table's first Start) costs two comparisons.
func inTable(table []ucsRange, cp rune) bool {
	if len(table) == 0 || cp < table[0].Start || cp > table[len(table)-1].Stop {
		return false
	}
	i := sort.Search(len(table), func(i int) bool { return table[i].Stop >= cp })
	return i < len(table) && cp >= table[i].Start
}

// StringWidth sums Width over the first n runes of s, stopping early at a
// NUL rune. It returns -1 if any counted rune is not representable.
func StringWidth(s []rune, n int) int {
	total := 0
	for i := 0; i < n && i < len(s); i++ {
		if s[i] == 0 {
			break
		}
		w := Width(s[i])
		if w < 0 {
			return -1
		}
		total += w
	}
	return total
}
