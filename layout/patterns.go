package layout

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/inkline/outliner/text"
)

// PatternInfo holds the structural and content signals detected in one
// span's text. Signals raise classification confidence; none of them can
// resurrect a span rejected by the ratio gate.
type PatternInfo struct {
	// HasNumbering is true for decimal ("1.", "1.1", "1.1.1"), lettered
	// ("a.", "A."), roman ("IV."), and section-word ("Chapter 3",
	// "Appendix A") prefixes.
	HasNumbering bool

	// NumberPrefix is the matched numbering prefix, trimmed.
	NumberPrefix string

	// HasBullet is true when the text starts with a bullet marker.
	HasBullet bool

	// IsAllCaps is true when at least 90% of the cased letters are upper
	// case and the text has three or more letters.
	IsAllCaps bool

	// IsTitleCase is true when the text has two or more words and at
	// least 60% of them start with an upper-case letter.
	IsTitleCase bool

	// HasSectionVocabulary is true when the text contains a known
	// section name ("Introduction", "References", "Appendix", ...).
	HasSectionVocabulary bool

	// Script is the dominant writing system of the text.
	Script text.Script

	// Direction is the dominant writing direction of the text.
	Direction text.Direction
}

// Structural reports whether the text carries a structural marker
// (numbering or bullet) at its start.
func (p PatternInfo) Structural() bool {
	return p.HasNumbering || p.HasBullet
}

// Content reports whether the text carries a content signal: casing that
// suggests a heading, or known section vocabulary. Casing signals only
// count for scripts that have letter case.
func (p PatternInfo) Content() bool {
	if p.HasSectionVocabulary {
		return true
	}
	return p.Script.HasCase() && (p.IsAllCaps || p.IsTitleCase)
}

var (
	// Numbering prefixes, most specific first so NumberPrefix captures the
	// full "1.2.3" rather than "1.".
	numberingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\s*\d+\.\d+\.\d+\.?\s+`),           // 1.1.1 or 1.1.1.
		regexp.MustCompile(`^\s*\d+\.\d+\.?\s+`),                // 1.1 or 1.1.
		regexp.MustCompile(`^\s*\d+\.\s+`),                      // 1.
		regexp.MustCompile(`^\s*[IVXLCDM]+\.\s+`),               // IV.
		regexp.MustCompile(`^\s*[ivxlcdm]+\.\s+`),               // iv.
		regexp.MustCompile(`^\s*[A-Za-z]\.\s+`),                 // A. or a.
		regexp.MustCompile(`(?i)^\s*(chapter|section|part)\s+\d+`), // Chapter 3
		regexp.MustCompile(`(?i)^\s*appendix\s+[A-Z]`),          // Appendix A
	}

	bulletPattern = regexp.MustCompile(`^\s*[-•‣⁃▪▫◦*+»]\s+`)

	// Extractors often report right-to-left lines in visual order, which
	// places a logically leading "1." at the end of the string, possibly
	// with its dot and digits swapped.
	rtlTrailingNumbering = regexp.MustCompile(`\s\.?\d+(?:\.\d+)*\.?$`)

	// Page furniture that repeats on every page and is never a heading.
	furniturePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}$`),
		regexp.MustCompile(`(?i)^page\s+\d+`),
		regexp.MustCompile(`(?i)confidential`),
		regexp.MustCompile(`(?i)internal\s+use`),
		regexp.MustCompile(`(?i)^draft$`),
		regexp.MustCompile(`©\s*\d{4}`),
		regexp.MustCompile(`(?i)all\s+rights\s+reserved`),
	}
)

// sectionVocabulary lists section names that commonly head a document
// division, matched case-insensitively as substrings.
var sectionVocabulary = []string{
	"introduction", "overview", "summary", "conclusion", "background",
	"methodology", "methods", "results", "discussion", "references",
	"bibliography", "appendix", "table of contents", "abstract",
	"acknowledgments", "acknowledgements", "chapter", "section", "part",
	"objectives", "goals", "requirements", "specifications", "guidelines",
	"procedures", "glossary", "timeline",
}

// DetectPatterns evaluates all structural and content predicates for one
// text. The input is expected to be normalized (see text.Normalize).
func DetectPatterns(s string) PatternInfo {
	trimmed := strings.TrimSpace(s)
	info := PatternInfo{
		Script:    text.DetectScript(trimmed),
		Direction: text.DetectDirection(trimmed),
	}

	for _, pattern := range numberingPatterns {
		if match := pattern.FindString(trimmed); match != "" {
			info.HasNumbering = true
			info.NumberPrefix = strings.TrimSpace(match)
			break
		}
	}
	if !info.HasNumbering && info.Direction == text.RTL {
		if match := rtlTrailingNumbering.FindString(trimmed); match != "" {
			info.HasNumbering = true
			info.NumberPrefix = strings.TrimSpace(match)
		}
	}
	info.HasBullet = bulletPattern.MatchString(trimmed)
	info.IsAllCaps = isAllCaps(trimmed)
	info.IsTitleCase = isTitleCase(trimmed)
	info.HasSectionVocabulary = hasSectionVocabulary(trimmed)
	return info
}

// IsPageFurniture reports whether the text is a running header, footer,
// page number, or boilerplate notice rather than document content.
func IsPageFurniture(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	for _, pattern := range furniturePatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// IsBoldFont reports whether a font name hints at a bold weight.
func IsBoldFont(fontName string) bool {
	lower := strings.ToLower(fontName)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}

// isAllCaps reports whether at least 90% of the cased letters are upper
// case. Texts with fewer than three letters never qualify.
func isAllCaps(s string) bool {
	upper, lower := 0, 0
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}

// isTitleCase reports whether at least 60% of the words start with an
// upper-case letter. Single words never qualify; they are covered by the
// all-caps and vocabulary signals instead.
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) < 2 {
		return false
	}
	capitalized := 0
	for _, word := range words {
		r := []rune(word)[0]
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	return float64(capitalized)/float64(len(words)) >= 0.6
}

func hasSectionVocabulary(s string) bool {
	lower := strings.ToLower(s)
	for _, word := range sectionVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
