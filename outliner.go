// Package outliner infers a document outline - a title plus leveled H1-H4
// headings with page numbers - from positioned text spans with font
// metadata. It needs no machine-learning models, network access, or
// language-specific training data: classification is driven by per-page
// font-size ratios, indentation bands, and structural/content patterns.
//
// Basic usage:
//
//	outline, err := outliner.Open("report.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With threshold overrides:
//
//	outline, err := outliner.Open("report.pdf").
//	    MinH1SizeRatio(1.6).
//	    H2IndentThreshold(25).
//	    Outline()
//
// Spans from any source can be classified directly:
//
//	doc := model.NewDocument()
//	doc.AddPage(&model.Page{Spans: spans})
//	outline, err := outliner.FromDocument(doc).Outline()
//
// For lower-level control, the layout package exposes the classifier,
// title extractor, and assembler individually.
package outliner

import (
	"github.com/inkline/outliner/format"
	"github.com/inkline/outliner/model"
)

// Open prepares an Extractor for the named file. The input format (PDF or
// HTML) is detected from the filename extension; the file is not read until
// a terminal operation such as Outline() runs.
//
// Example:
//
//	outline, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over spans already produced by a span
// source. The document is used as-is; the caller guarantees one page index
// per page and spans in reading order.
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// FromSpans creates an Extractor over a flat span sequence, grouping the
// spans into pages by their PageIndex.
func FromSpans(spans []model.Span) *Extractor {
	maxPage := -1
	for _, span := range spans {
		if span.PageIndex > maxPage {
			maxPage = span.PageIndex
		}
	}
	doc := model.NewDocument()
	for i := 0; i <= maxPage; i++ {
		doc.AddPage(&model.Page{})
	}
	for _, span := range spans {
		if span.PageIndex < 0 {
			continue
		}
		page := doc.Pages[span.PageIndex]
		page.Spans = append(page.Spans, span)
	}
	return FromDocument(doc)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
