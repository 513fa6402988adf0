package outliner

import (
	"fmt"
	"os"

	"github.com/inkline/outliner/format"
	"github.com/inkline/outliner/htmlspan"
	"github.com/inkline/outliner/layout"
	"github.com/inkline/outliner/model"
	"github.com/inkline/outliner/pdfspan"
)

// Extractor provides a fluent interface for configuring and running
// outline extraction. Each configuration method returns a new Extractor
// instance, making chains safe for concurrent use.
type Extractor struct {
	// Source: either a filename to load lazily or an already-built document.
	filename string
	format   format.Format
	doc      *model.Document

	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with a copy of its options, so
// each chain method returns an independent instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		format:   e.format,
		doc:      e.doc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// WithConfig replaces the full threshold configuration.
func (e *Extractor) WithConfig(config layout.Config) *Extractor {
	ne := e.clone()
	ne.options.config = config
	return ne
}

// Config returns the extractor's current threshold configuration.
func (e *Extractor) Config() layout.Config {
	return e.options.config
}

// MinH1SizeRatio overrides the minimum font-size ratio for H1 headings.
func (e *Extractor) MinH1SizeRatio(v float64) *Extractor {
	ne := e.clone()
	ne.options.config.MinH1SizeRatio = v
	return ne
}

// MinH2SizeRatio overrides the minimum font-size ratio for H2 headings.
func (e *Extractor) MinH2SizeRatio(v float64) *Extractor {
	ne := e.clone()
	ne.options.config.MinH2SizeRatio = v
	return ne
}

// MinH3SizeRatio overrides the minimum font-size ratio for H3 headings.
func (e *Extractor) MinH3SizeRatio(v float64) *Extractor {
	ne := e.clone()
	ne.options.config.MinH3SizeRatio = v
	return ne
}

// H2IndentThreshold overrides the H2 indentation boundary, in points.
func (e *Extractor) H2IndentThreshold(v float64) *Extractor {
	ne := e.clone()
	ne.options.config.H2IndentThreshold = v
	return ne
}

// H3IndentThreshold overrides the H3 indentation boundary, in points.
func (e *Extractor) H3IndentThreshold(v float64) *Extractor {
	ne := e.clone()
	ne.options.config.H3IndentThreshold = v
	return ne
}

// MinHeadingLength overrides the minimum heading text length, in runes.
func (e *Extractor) MinHeadingLength(v int) *Extractor {
	ne := e.clone()
	ne.options.config.MinHeadingLength = v
	return ne
}

// MinTitleLength overrides the minimum title text length, in runes.
func (e *Extractor) MinTitleLength(v int) *Extractor {
	ne := e.clone()
	ne.options.config.MinTitleLength = v
	return ne
}

// sniffFormat reads the file's leading bytes for content-based detection,
// covering inputs whose extension says nothing about their format.
func sniffFormat(path string) format.Format {
	f, err := os.Open(path)
	if err != nil {
		return format.Unknown
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	return format.DetectFromMagic(buf[:n])
}

// ensureDocument loads the span source when the extractor was created from
// a filename.
func (e *Extractor) ensureDocument() error {
	if e.doc != nil {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no input specified")
	}
	if e.format == format.Unknown {
		e.format = sniffFormat(e.filename)
	}
	switch e.format {
	case format.PDF:
		doc, err := pdfspan.Load(e.filename)
		if err != nil {
			return err
		}
		e.doc = doc
		return nil
	case format.HTML:
		doc, err := htmlspan.Load(e.filename)
		if err != nil {
			return err
		}
		e.doc = doc
		return nil
	default:
		return fmt.Errorf("unsupported input format for %q", e.filename)
	}
}

// Outline is the terminal operation: it loads the span source if needed,
// validates the configuration, and runs the classification pipeline.
//
// The pipeline is deterministic and single-pass: per-page font statistics
// feed a span-by-span classifier, the title extractor runs over page 0,
// and the assembler deduplicates and orders the surviving headings. An
// empty outline with no title is a valid result for a document with no
// detectable structure, not an error.
func (e *Extractor) Outline() (*model.Outline, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.options.config.Validate(); err != nil {
		return nil, err
	}
	if err := e.ensureDocument(); err != nil {
		return nil, err
	}

	config := e.options.config
	classifier := layout.NewClassifierWithConfig(config)

	// Spans are classified independently against their page statistics,
	// so this loop could fan out across pages; sequential classification
	// keeps allocation and ordering trivial at linear cost.
	var classifications []model.Classification
	for _, page := range e.doc.Pages {
		stats := layout.ComputePageStats(page.Index, page.Spans)
		for _, span := range page.Spans {
			classifications = append(classifications, classifier.Classify(span, stats))
		}
	}

	var titleSpans []model.Span
	if first := e.doc.FirstPage(); first != nil {
		titleSpans = first.Spans
	}
	title, hasTitle := layout.NewTitleExtractorWithConfig(config).Extract(titleSpans)

	return layout.NewAssembler().Assemble(classifications, title, hasTitle), nil
}

// Document returns the loaded span document, loading it if necessary.
// Useful for callers that want to inspect or re-classify the raw spans.
func (e *Extractor) Document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return nil, err
	}
	return e.doc, nil
}
