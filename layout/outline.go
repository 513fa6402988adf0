package layout

import (
	"sort"
	"strings"

	"github.com/inkline/outliner/model"
)

// Assembler packages classified headings and the title result into the
// final outline. Assembly is idempotent: running it twice over the same
// classifications yields the same entries.
type Assembler struct{}

// NewAssembler creates an assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// dedupKey identifies a logical heading: the same text on the same page,
// compared case-insensitively, is one heading no matter how many times the
// renderer repeated it.
type dedupKey struct {
	text string
	page int
}

// Assemble drops rejections, collapses duplicate headings, orders entries
// by page and document order, and packages the result. Heading levels are
// never altered here; levels are fixed at classification time.
func (a *Assembler) Assemble(classifications []model.Classification, title string, hasTitle bool) *model.Outline {
	outline := &model.Outline{Entries: []model.Heading{}}
	if hasTitle {
		outline.SetTitle(title)
	}

	seen := make(map[dedupKey]bool)
	for _, c := range classifications {
		heading, ok := c.Heading()
		if !ok {
			continue
		}
		key := dedupKey{
			text: strings.ToLower(strings.TrimSpace(heading.Text)),
			page: heading.PageIndex,
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		outline.Entries = append(outline.Entries, heading)
	}

	// Stable sort keeps first-occurrence order for any entries that share
	// a page and order value.
	sort.SliceStable(outline.Entries, func(i, j int) bool {
		a, b := outline.Entries[i], outline.Entries[j]
		if a.PageIndex != b.PageIndex {
			return a.PageIndex < b.PageIndex
		}
		return a.Order < b.Order
	})

	return outline
}
