package model

// Span represents a contiguous run of text sharing one font and position,
// as reported by the upstream text-extraction collaborator. Spans are
// immutable inputs to the pipeline; no stage modifies one after creation.
type Span struct {
	// Text is the span's content, already Unicode-normalized by the
	// producing source (see the text package).
	Text string

	// FontSize is the rendered font size in points. Always positive for
	// well-formed input; non-positive sizes fall through the ratio gate
	// and classify as body text.
	FontSize float64

	// X0 is the left offset of the span from the page edge, in points.
	X0 float64

	// LineWidthRatio is the fraction of the page's usable line width this
	// span covers, in [0, 1].
	LineWidthRatio float64

	// PageIndex is the 0-based page the span appears on.
	PageIndex int

	// Order is the span's position in document reading order. Assigned by
	// the span source; the pipeline never re-derives reading order.
	Order int

	// FontName is an optional font name hint ("Helvetica-Bold" etc.) used
	// for weight detection. May be empty.
	FontName string
}

// PageStats holds the per-page font statistics used as the denominator for
// font-size ratio computation. One PageStats value is derived per page and
// never recomputed within a run.
type PageStats struct {
	// PageIndex is the 0-based page these statistics describe.
	PageIndex int

	// BaselineFontSize is the representative font size for the page:
	// the median of span sizes when more than three spans are present,
	// otherwise the mean. Zero for a page with no spans.
	BaselineFontSize float64

	// SpanCount is the number of spans observed on the page.
	SpanCount int
}

// Ratio returns size divided by the page baseline, or 1.0 when the page has
// no usable baseline. A page with a single span or a uniform font size
// therefore yields 1.0 for every span on it.
func (s PageStats) Ratio(size float64) float64 {
	if s.BaselineFontSize <= 0 {
		return 1.0
	}
	return size / s.BaselineFontSize
}
