package layout

import (
	"sort"

	"github.com/inkline/outliner/model"
)

// ComputePageStats derives the representative font size for one page's
// spans. Every span counts once regardless of its text length. With more
// than three spans the median is used, which is robust against a single
// oversized title or footnote; with three or fewer the mean is used, since
// a median over so few values degenerates to one of them anyway.
func ComputePageStats(pageIndex int, spans []model.Span) model.PageStats {
	stats := model.PageStats{PageIndex: pageIndex}

	sizes := make([]float64, 0, len(spans))
	for _, span := range spans {
		if span.FontSize > 0 {
			sizes = append(sizes, span.FontSize)
		}
	}
	stats.SpanCount = len(spans)
	if len(sizes) == 0 {
		return stats
	}

	if len(sizes) > 3 {
		stats.BaselineFontSize = median(sizes)
	} else {
		stats.BaselineFontSize = mean(sizes)
	}
	return stats
}

// ComputeDocumentStats derives PageStats for every page of a document,
// indexed by page.
func ComputeDocumentStats(doc *model.Document) map[int]model.PageStats {
	stats := make(map[int]model.PageStats, len(doc.Pages))
	for _, page := range doc.Pages {
		stats[page.Index] = ComputePageStats(page.Index, page.Spans)
	}
	return stats
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
