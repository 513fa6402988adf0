package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/inkline/outliner/model"
)

// fontSizeTolerance treats font sizes within this delta as equal when
// ranking title candidates, absorbing sub-point rendering jitter.
const fontSizeTolerance = 0.01

// TitleExtractor selects the document title from first-page spans. It is a
// single-shot classifier: it runs once per document and considers only
// spans with PageIndex 0.
type TitleExtractor struct {
	config Config
}

// NewTitleExtractor creates a title extractor with the default configuration.
func NewTitleExtractor() *TitleExtractor {
	return NewTitleExtractorWithConfig(DefaultConfig())
}

// NewTitleExtractorWithConfig creates a title extractor with a custom
// configuration.
func NewTitleExtractorWithConfig(config Config) *TitleExtractor {
	return &TitleExtractor{config: config}
}

// Extract selects the best title candidate from the given spans. Spans not
// on page 0 are ignored. Selection order: largest font size; among ties,
// the first span covering more than the configured width ratio; among
// remaining ties, first in document order. Candidates shorter than the
// configured minimum are rejected outright.
//
// When no candidate qualifies, Extract falls back to the first page-0 span
// with non-trivial text, so the result is empty only for a first page with
// no usable text at all.
func (e *TitleExtractor) Extract(spans []model.Span) (string, bool) {
	var candidates []model.Span
	for _, span := range spans {
		if span.PageIndex != 0 {
			continue
		}
		trimmed := strings.TrimSpace(span.Text)
		if utf8.RuneCountInString(trimmed) < e.config.MinTitleLength {
			continue
		}
		candidates = append(candidates, span)
	}
	if len(candidates) == 0 {
		return "", false
	}

	largest := candidates[0].FontSize
	for _, span := range candidates[1:] {
		if span.FontSize > largest {
			largest = span.FontSize
		}
	}

	var ties []model.Span
	for _, span := range candidates {
		if span.FontSize >= largest-fontSizeTolerance {
			ties = append(ties, span)
		}
	}

	// Prefer a wide span among the size ties: titles typically run most
	// of the line width. Document order breaks any remaining tie, which
	// the ordered scan gives us for free.
	for _, span := range ties {
		if span.LineWidthRatio > e.config.TitleWidthRatio {
			return strings.TrimSpace(span.Text), true
		}
	}
	return strings.TrimSpace(ties[0].Text), true
}
