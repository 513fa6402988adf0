package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/inkline/outliner/model"
)

// Classifier decides, for one span at a time, whether the span is a heading
// and at what level. Decisions combine the span's font-size ratio against
// its page baseline, its indentation, and the structural/content patterns
// in its text, evaluated as a fixed-priority rule chain.
//
// Classification is pure: the same span, page statistics, and Config always
// yield the same result, and classifying one span never depends on another
// span's classification.
type Classifier struct {
	config Config
	rules  []rule
}

// rule is one step of the chain. A step may reject the candidate or refine
// its provisional level; once rejected, no later step runs.
type rule func(*Classifier, *candidate)

// candidate is the mutable-until-finalized working state for one span.
type candidate struct {
	span     model.Span
	text     string // trimmed, normalized text
	ratio    float64
	patterns PatternInfo
	level    model.HeadingLevel
	// borderline marks a span whose ratio fell below the H3 band, kept
	// alive only by a structural marker; it must validate at rule 5.
	borderline bool
	rejected   bool
}

// NewClassifier creates a classifier with the default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with a custom configuration.
// The Config should have been validated; see Config.Validate.
func NewClassifierWithConfig(config Config) *Classifier {
	return &Classifier{
		config: config,
		// The chain order is the priority order: the ratio gate decides
		// admission, the ratio bands set the level, indentation refines
		// it, patterns confirm borderline candidates, and the length
		// and furniture filters cull what is left.
		rules: []rule{
			(*Classifier).gateRatio,
			(*Classifier).assignLevelFromRatio,
			(*Classifier).refineByIndent,
			(*Classifier).validateBorderline,
			(*Classifier).filterLengthAndContext,
		},
	}
}

// Classify evaluates one span against its page statistics and returns
// either a leveled heading or a rejection.
func (c *Classifier) Classify(span model.Span, stats model.PageStats) model.Classification {
	cand := candidate{
		span:  span,
		text:  strings.TrimSpace(span.Text),
		ratio: stats.Ratio(span.FontSize),
	}
	cand.patterns = DetectPatterns(cand.text)

	for _, step := range c.rules {
		step(c, &cand)
		if cand.rejected {
			return model.Rejected()
		}
	}
	if !cand.level.Valid() {
		return model.Rejected()
	}
	return model.ClassifiedAs(model.Heading{
		Level:     cand.level,
		Text:      cand.text,
		PageIndex: span.PageIndex,
		Order:     span.Order,
	})
}

// gateRatio rejects plain body text: a ratio below 1.0 with no structural
// marker. A numbering or bullet prefix keeps the span in play even when
// its font is no larger than the page baseline.
func (c *Classifier) gateRatio(cand *candidate) {
	if cand.ratio < 1.0 && !cand.patterns.Structural() {
		cand.rejected = true
	}
}

// assignLevelFromRatio maps the font-size ratio onto the primary level
// bands. Ratios below the H3 band produce a borderline H4 candidate that
// must later justify itself with a structural or content signal.
func (c *Classifier) assignLevelFromRatio(cand *candidate) {
	switch {
	case cand.ratio >= c.config.MinH1SizeRatio:
		cand.level = model.HeadingLevel1
	case cand.ratio >= c.config.MinH2SizeRatio:
		cand.level = model.HeadingLevel2
	case cand.ratio >= c.config.MinH3SizeRatio:
		cand.level = model.HeadingLevel3
	default:
		cand.level = model.HeadingLevel4
		cand.borderline = true
	}
}

// refineByIndent resolves the H2/H3 boundary by horizontal position:
// flush-left spans keep or gain H2, moderately indented spans sit at H3,
// and deeply indented spans demote to H4.
func (c *Classifier) refineByIndent(cand *candidate) {
	if cand.level != model.HeadingLevel2 && cand.level != model.HeadingLevel3 {
		return
	}
	switch {
	case cand.span.X0 <= c.config.H2IndentThreshold:
		cand.level = model.HeadingLevel2
	case cand.span.X0 <= c.config.H3IndentThreshold:
		cand.level = model.HeadingLevel3
	default:
		cand.level = model.HeadingLevel4
	}
}

// validateBorderline confirms borderline H4 candidates. A span whose ratio
// never reached the H3 band is only a heading when its text carries a
// structural marker, a content signal (ALL-CAPS, Title Case, or known
// section vocabulary), or a bold font weight setting it apart from the
// surrounding body text. Uniform-font pages, where every ratio is 1.0,
// therefore produce no spurious headings.
func (c *Classifier) validateBorderline(cand *candidate) {
	if !cand.borderline {
		return
	}
	if cand.patterns.Structural() || cand.patterns.Content() {
		return
	}
	if IsBoldFont(cand.span.FontName) {
		return
	}
	cand.rejected = true
}

// filterLengthAndContext culls stray glyphs, over-long body text misread
// as a heading, and running page furniture.
func (c *Classifier) filterLengthAndContext(cand *candidate) {
	length := utf8.RuneCountInString(cand.text)
	if length < c.config.MinHeadingLength || length > c.config.MaxHeadingLength {
		cand.rejected = true
		return
	}
	if IsPageFurniture(cand.text) {
		cand.rejected = true
	}
}
