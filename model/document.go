package model

// Page holds the spans extracted from one page, in reading order.
type Page struct {
	Index  int     // 0-based page index
	Width  float64 // Page width in points (0 if the source does not report it)
	Height float64 // Page height in points
	Spans  []Span
}

// Document is an ordered sequence of pages produced by a span source.
type Document struct {
	Pages []*Page
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Pages: make([]*Page, 0)}
}

// AddPage appends a page and assigns its index.
func (d *Document) AddPage(page *Page) {
	page.Index = len(d.Pages)
	d.Pages = append(d.Pages, page)
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// SpanCount returns the total number of spans across all pages.
func (d *Document) SpanCount() int {
	n := 0
	for _, page := range d.Pages {
		n += len(page.Spans)
	}
	return n
}

// AllSpans returns every span in document order.
func (d *Document) AllSpans() []Span {
	spans := make([]Span, 0, d.SpanCount())
	for _, page := range d.Pages {
		spans = append(spans, page.Spans...)
	}
	return spans
}

// FirstPage returns page 0, or nil for an empty document.
func (d *Document) FirstPage() *Page {
	if len(d.Pages) == 0 {
		return nil
	}
	return d.Pages[0]
}
