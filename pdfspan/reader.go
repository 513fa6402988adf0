package pdfspan

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/inkline/outliner/model"
	"github.com/inkline/outliner/text"
)

// baselineTolerance is the maximum Y difference, in points, for two glyph
// runs to be considered part of the same text line.
const baselineTolerance = 2.0

// Load opens a PDF file and extracts one span per rendered text line.
func Load(path string) (*model.Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdfspan: open %s: %w", path, err)
	}
	defer f.Close()

	doc := model.NewDocument()
	order := 0

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.AddPage(&model.Page{})
			continue
		}

		width, height := pageSize(page)
		mp := &model.Page{Width: width, Height: height}

		content := page.Content()
		for _, line := range groupLines(content.Text) {
			span := line.toSpan(width)
			if strings.TrimSpace(span.Text) == "" {
				continue
			}
			span.PageIndex = len(doc.Pages)
			span.Order = order
			order++
			mp.Spans = append(mp.Spans, span)
		}
		doc.AddPage(mp)
	}
	return doc, nil
}

// pageSize reads the MediaBox. Falls back to US Letter when absent.
func pageSize(page pdflib.Page) (width, height float64) {
	width, height = 612, 792
	box := page.V.Key("MediaBox")
	if box.Kind() != pdflib.Array || box.Len() < 4 {
		return width, height
	}
	llx := box.Index(0).Float64()
	lly := box.Index(1).Float64()
	urx := box.Index(2).Float64()
	ury := box.Index(3).Float64()
	if urx > llx {
		width = urx - llx
	}
	if ury > lly {
		height = ury - lly
	}
	return width, height
}

// line accumulates glyph runs sharing one baseline and font.
type line struct {
	y        float64
	x0       float64
	xEnd     float64
	fontSize float64
	font     string
	builder  strings.Builder
}

func (l *line) toSpan(pageWidth float64) model.Span {
	span := model.Span{
		Text:     text.Normalize(l.builder.String()),
		FontSize: l.fontSize,
		X0:       l.x0,
		FontName: l.font,
	}
	if pageWidth > 0 {
		ratio := (l.xEnd - l.x0) / pageWidth
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		span.LineWidthRatio = ratio
	}
	return span
}

// groupLines merges positioned glyph runs into reading-order lines. Runs on
// the same baseline with the same font size continue the current line; a
// new baseline or a font-size change starts a new one. PDF Y grows upward,
// so lines are emitted top-to-bottom by sorting on descending Y.
func groupLines(texts []pdflib.Text) []*line {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdflib.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if diff := sorted[i].Y - sorted[j].Y; diff > baselineTolerance || diff < -baselineTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []*line
	var current *line
	var prevEnd float64

	for _, t := range sorted {
		sameLine := current != nil &&
			absFloat(t.Y-current.y) <= baselineTolerance &&
			absFloat(t.FontSize-current.fontSize) < 0.01

		if !sameLine {
			current = &line{
				y:        t.Y,
				x0:       t.X,
				xEnd:     t.X + t.W,
				fontSize: t.FontSize,
				font:     t.Font,
			}
			lines = append(lines, current)
			current.builder.WriteString(t.S)
			prevEnd = t.X + t.W
			continue
		}

		// Insert a space when the horizontal gap between runs exceeds a
		// third of the font size; character-level PDFs rarely carry
		// explicit space glyphs.
		if gap := t.X - prevEnd; gap > current.fontSize/3 && !strings.HasSuffix(current.builder.String(), " ") {
			current.builder.WriteString(" ")
		}
		current.builder.WriteString(t.S)
		if end := t.X + t.W; end > current.xEnd {
			current.xEnd = end
		}
		prevEnd = t.X + t.W
	}
	return lines
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
