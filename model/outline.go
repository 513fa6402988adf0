package model

// HeadingLevel represents the hierarchical level of a heading (H1-H4).
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Chapter / major section
	HeadingLevel2                    // H2 - Section
	HeadingLevel3                    // H3 - Subsection
	HeadingLevel4                    // H4 - Minor heading
)

// String returns the wire representation of the heading level ("H1".."H4").
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	case HeadingLevel4:
		return "H4"
	default:
		return "unknown"
	}
}

// Valid reports whether l is one of the four assignable levels.
func (l HeadingLevel) Valid() bool {
	return l >= HeadingLevel1 && l <= HeadingLevel4
}

// Heading is one classified outline entry.
type Heading struct {
	// Level is the assigned heading level (H1-H4).
	Level HeadingLevel

	// Text is the heading text content.
	Text string

	// PageIndex is the 0-based page the heading appears on.
	PageIndex int

	// Order is the source span's document order, used by the assembler to
	// keep entries in reading order within a page.
	Order int
}

// Classification is the outcome of evaluating one span: either rejected or
// a leveled heading. The zero value is a rejection, so downstream code can
// never mistake an unpopulated result for a heading.
type Classification struct {
	heading Heading
	ok      bool
}

// Rejected returns the rejection classification.
func Rejected() Classification {
	return Classification{}
}

// ClassifiedAs returns a heading classification.
func ClassifiedAs(h Heading) Classification {
	return Classification{heading: h, ok: true}
}

// Heading returns the classified heading and whether the span was accepted.
func (c Classification) Heading() (Heading, bool) {
	return c.heading, c.ok
}

// IsHeading reports whether the span was classified as a heading.
func (c Classification) IsHeading() bool {
	return c.ok
}

// Outline is the final artifact for one document: an optional title plus the
// ordered heading entries. Entries are sorted by (PageIndex, Order) and no
// two entries share the same (Text, PageIndex).
type Outline struct {
	// Title is the detected document title. Meaningful only when HasTitle
	// is true; it serializes as null otherwise.
	Title string

	// HasTitle reports whether a title was found. False only when the
	// first page carried no usable text.
	HasTitle bool

	// Entries are the classified headings in document order.
	Entries []Heading
}

// SetTitle records a detected title.
func (o *Outline) SetTitle(title string) {
	o.Title = title
	o.HasTitle = true
}

// EntryCount returns the number of outline entries.
func (o *Outline) EntryCount() int {
	if o == nil {
		return 0
	}
	return len(o.Entries)
}

// EntriesAtLevel returns all entries at a specific level, in document order.
func (o *Outline) EntriesAtLevel(level HeadingLevel) []Heading {
	if o == nil {
		return nil
	}
	var result []Heading
	for _, h := range o.Entries {
		if h.Level == level {
			result = append(result, h)
		}
	}
	return result
}
