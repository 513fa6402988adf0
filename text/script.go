package text

import (
	"unicode"
)

// Script identifies the dominant writing system of a string, detected from
// Unicode block ranges.
type Script int

const (
	ScriptUnknown Script = iota
	ScriptLatin
	ScriptCyrillic
	ScriptGreek
	ScriptArabic
	ScriptHebrew
	ScriptCJK
	ScriptDevanagari
	ScriptThai
)

// String returns a lower-case name for the script.
func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "latin"
	case ScriptCyrillic:
		return "cyrillic"
	case ScriptGreek:
		return "greek"
	case ScriptArabic:
		return "arabic"
	case ScriptHebrew:
		return "hebrew"
	case ScriptCJK:
		return "cjk"
	case ScriptDevanagari:
		return "devanagari"
	case ScriptThai:
		return "thai"
	default:
		return "unknown"
	}
}

// HasCase reports whether the script distinguishes letter case. Casing
// heuristics (ALL-CAPS, Title Case) are meaningless for caseless scripts.
func (s Script) HasCase() bool {
	switch s {
	case ScriptLatin, ScriptCyrillic, ScriptGreek:
		return true
	default:
		return false
	}
}

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic and Hebrew.
	RTL
	// Neutral for numbers, punctuation, and symbols.
	Neutral
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectScript returns the dominant script of a string by counting letters
// per Unicode block. Returns ScriptUnknown for text with no letters.
func DetectScript(s string) Script {
	counts := make(map[Script]int)
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		counts[runeScript(r)]++
	}
	best, bestCount := ScriptUnknown, 0
	for script, count := range counts {
		if script == ScriptUnknown {
			continue
		}
		if count > bestCount {
			best, bestCount = script, count
		}
	}
	return best
}

// DetectDirection analyzes a string and returns its dominant text direction
// based on strong directional characters. Returns Neutral when none are
// present.
func DetectDirection(s string) Direction {
	if s == "" {
		return Neutral
	}
	ltrCount := 0
	rtlCount := 0
	for _, r := range s {
		switch CharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}
	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// CharDirection returns the inherent direction of a single rune. Digits,
// punctuation, whitespace, and symbols are Neutral; Arabic and Hebrew are
// RTL; everything else is LTR.
func CharDirection(r rune) Direction {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}
	switch runeScript(r) {
	case ScriptArabic, ScriptHebrew:
		return RTL
	default:
		return LTR
	}
}

// runeScript maps a rune to its script via Unicode block ranges.
func runeScript(r rune) Script {
	switch {
	case isLatin(r):
		return ScriptLatin
	case isCyrillic(r):
		return ScriptCyrillic
	case isGreek(r):
		return ScriptGreek
	case isArabic(r):
		return ScriptArabic
	case isHebrew(r):
		return ScriptHebrew
	case isCJK(r):
		return ScriptCJK
	case isDevanagari(r):
		return ScriptDevanagari
	case isThai(r):
		return ScriptThai
	default:
		return ScriptUnknown
	}
}

// isLatin reports whether r is in a Latin Unicode block.
// This includes:
//   - Basic Latin: U+0000–U+007F
//   - Latin-1 Supplement: U+0080–U+00FF
//   - Latin Extended-A: U+0100–U+017F
//   - Latin Extended-B: U+0180–U+024F
//   - Latin Extended Additional: U+1E00–U+1EFF
func isLatin(r rune) bool {
	return (r >= 0x0041 && r <= 0x005A) ||
		(r >= 0x0061 && r <= 0x007A) ||
		(r >= 0x00C0 && r <= 0x00FF) ||
		(r >= 0x0100 && r <= 0x017F) ||
		(r >= 0x0180 && r <= 0x024F) ||
		(r >= 0x1E00 && r <= 0x1EFF)
}

// isCyrillic reports whether r is in a Cyrillic Unicode block.
// This includes:
//   - Cyrillic: U+0400–U+04FF
//   - Cyrillic Supplement: U+0500–U+052F
func isCyrillic(r rune) bool {
	return (r >= 0x0400 && r <= 0x04FF) ||
		(r >= 0x0500 && r <= 0x052F)
}

// isGreek reports whether r is in a Greek Unicode block.
// This includes:
//   - Greek and Coptic: U+0370–U+03FF
//   - Greek Extended: U+1F00–U+1FFF
func isGreek(r rune) bool {
	return (r >= 0x0370 && r <= 0x03FF) ||
		(r >= 0x1F00 && r <= 0x1FFF)
}

// isArabic reports whether r is in an Arabic Unicode block.
// This includes:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Extended-A: U+08A0–U+08FF
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// isHebrew reports whether r is in a Hebrew Unicode block.
// This includes:
//   - Hebrew: U+0590–U+05FF
//   - Hebrew Presentation Forms: U+FB1D–U+FB4F
func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}

// isCJK reports whether r is in a CJK (Chinese, Japanese, Korean) block.
// This includes:
//   - CJK Unified Ideographs: U+4E00–U+9FFF
//   - CJK Extension A: U+3400–U+4DBF
//   - Hiragana: U+3040–U+309F
//   - Katakana: U+30A0–U+30FF
//   - Hangul: U+AC00–U+D7AF
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF)
}

// isDevanagari reports whether r is in the Devanagari block (U+0900–U+097F).
func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

// isThai reports whether r is in the Thai block (U+0E00–U+0E7F).
func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}
