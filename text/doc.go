// Package text provides Unicode normalization and script heuristics for
// span text.
//
// # Normalization
//
// [Normalize] canonicalizes extracted text to NFC form, collapses runs of
// spaces, and preserves literal tab and newline characters as content. It
// never fails: malformed byte sequences pass through best-effort.
//
// # Scripts and Direction
//
// The package detects the dominant [Script] of a string from Unicode block
// ranges (no language models) and its writing [Direction]:
//
//   - LTR - left-to-right (Latin, Cyrillic, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew)
//   - Neutral - direction-neutral characters (numbers, punctuation)
//
// These signals keep the layout package's pattern matching honest on
// non-Latin headings, where casing heuristics do not apply.
package text
