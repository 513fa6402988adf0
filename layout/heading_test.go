package layout

import (
	"testing"

	"github.com/inkline/outliner/model"
)

// makeSpan creates a span for classifier tests.
func makeSpan(text string, fontSize, x0 float64) model.Span {
	return model.Span{
		Text:           text,
		FontSize:       fontSize,
		X0:             x0,
		LineWidthRatio: 0.5,
	}
}

// statsWithBaseline builds page statistics with a fixed baseline.
func statsWithBaseline(baseline float64) model.PageStats {
	return model.PageStats{BaselineFontSize: baseline, SpanCount: 10}
}

func TestClassifyRatioBands(t *testing.T) {
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)

	tests := []struct {
		name     string
		span     model.Span
		expected model.HeadingLevel
	}{
		{"ratio 2.0 is H1", makeSpan("Introduction", 24.0, 0), model.HeadingLevel1},
		{"ratio 1.5 is H1", makeSpan("Overview", 18.0, 0), model.HeadingLevel1},
		{"ratio 1.4 flush left is H2", makeSpan("Design Goals", 16.8, 0), model.HeadingLevel2},
		{"ratio 1.2 flush left promotes to H2", makeSpan("Scope Notes", 14.4, 10), model.HeadingLevel2},
		{"ratio 1.2 indented is H3", makeSpan("Error Handling", 14.4, 30), model.HeadingLevel3},
		{"ratio 1.4 deeply indented demotes to H4", makeSpan("Side Notes", 16.8, 60), model.HeadingLevel4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.Classify(tt.span, stats)
			heading, ok := c.Heading()
			if !ok {
				t.Fatalf("Classify(%q) rejected, want %s", tt.span.Text, tt.expected)
			}
			if heading.Level != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.span.Text, heading.Level, tt.expected)
			}
		})
	}
}

func TestClassifyRejectsBodyText(t *testing.T) {
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)

	tests := []struct {
		name string
		span model.Span
	}{
		{"ratio below 1.0 without pattern", makeSpan("the quick brown fox ran over", 10.0, 0)},
		{"ratio 1.08 without pattern", makeSpan("some ordinary body prose here", 13.0, 0)},
		{"single glyph", makeSpan("x", 24.0, 0)},
		{"page number furniture", makeSpan("Page 12", 24.0, 0)},
		{"copyright furniture", makeSpan("© 2024 Example Corp", 24.0, 0)},
		{"overlong body paragraph", makeSpan(repeatText("Lorem Ipsum Dolor ", 20), 18.0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := classifier.Classify(tt.span, stats); c.IsHeading() {
				heading, _ := c.Heading()
				t.Errorf("Classify(%q) = %s, want rejection", tt.span.Text, heading.Level)
			}
		})
	}
}

func repeatText(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}

func TestClassifyNumberedBackground(t *testing.T) {
	// Ratio 1.125 lands in the H3 band; x0 of 25 sits between the H2 and
	// H3 indent thresholds, keeping the span at H3.
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)
	span := makeSpan("1.1 Background", 13.5, 25)

	heading, ok := classifier.Classify(span, stats).Heading()
	if !ok {
		t.Fatal("Classify rejected numbered heading in H3 band")
	}
	if heading.Level != model.HeadingLevel3 {
		t.Errorf("level = %s, want H3", heading.Level)
	}
	if heading.Text != "1.1 Background" {
		t.Errorf("text = %q, want %q", heading.Text, "1.1 Background")
	}
}

func TestClassifyBorderlineValidation(t *testing.T) {
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)

	tests := []struct {
		name       string
		span       model.Span
		wantLevel  model.HeadingLevel
		wantReject bool
	}{
		{"uniform ratio plain prose rejected", makeSpan("just some regular sentence text", 12.0, 0), 0, true},
		{"uniform ratio all caps accepted as H4", makeSpan("GLOSSARY OF TERMS", 12.0, 0), model.HeadingLevel4, false},
		{"uniform ratio section vocabulary accepted", makeSpan("Table of Contents", 12.0, 0), model.HeadingLevel4, false},
		{"numbered below baseline survives gate as H4", makeSpan("2.3.1 Retry policy", 11.0, 0), model.HeadingLevel4, false},
		{"bulleted at baseline accepted as H4", makeSpan("• Delivery guarantees", 12.0, 0), model.HeadingLevel4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.Classify(tt.span, stats)
			heading, ok := c.Heading()
			if tt.wantReject {
				if ok {
					t.Errorf("Classify(%q) = %s, want rejection", tt.span.Text, heading.Level)
				}
				return
			}
			if !ok {
				t.Fatalf("Classify(%q) rejected, want %s", tt.span.Text, tt.wantLevel)
			}
			if heading.Level != tt.wantLevel {
				t.Errorf("Classify(%q) = %s, want %s", tt.span.Text, heading.Level, tt.wantLevel)
			}
		})
	}
}

func TestClassifyBoldValidatesBorderline(t *testing.T) {
	// Same text and geometry, at the page baseline: the bold rendition is a
	// heading, the regular one is body text.
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)

	bold := makeSpan("delivery schedule and dependencies", 12.0, 0)
	bold.FontName = "Helvetica-Bold"
	heading, ok := classifier.Classify(bold, stats).Heading()
	if !ok {
		t.Fatal("bold borderline span rejected, want H4")
	}
	if heading.Level != model.HeadingLevel4 {
		t.Errorf("level = %s, want H4", heading.Level)
	}

	regular := makeSpan("delivery schedule and dependencies", 12.0, 0)
	regular.FontName = "Helvetica"
	if classifier.Classify(regular, stats).IsHeading() {
		t.Error("regular-weight borderline span classified as heading")
	}
}

func TestClassifyBoldNeverResurrectsGateRejection(t *testing.T) {
	// Boldness validates borderline candidates but cannot rescue text the
	// ratio gate already rejected.
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)

	span := makeSpan("a bold footnote below the baseline", 10.0, 0)
	span.FontName = "Georgia-Bold"
	if classifier.Classify(span, stats).IsHeading() {
		t.Error("bold span below the ratio gate should stay rejected")
	}
}

func TestClassifyPatternNeverResurrectsRejection(t *testing.T) {
	// A numbering prefix keeps small text alive, but plain small text
	// stays rejected no matter its content signals.
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)

	span := makeSpan("Important Project Milestones Report", 10.0, 0) // title case, ratio < 1.0, no structure
	if classifier.Classify(span, stats).IsHeading() {
		t.Error("title-case body text below baseline should stay rejected")
	}
}

func TestClassifyDeterminism(t *testing.T) {
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)
	span := makeSpan("3.2 Results", 14.0, 25)

	first := classifier.Classify(span, stats)
	for i := 0; i < 10; i++ {
		got := classifier.Classify(span, stats)
		if got != first {
			t.Fatalf("run %d: classification differs from first run", i)
		}
	}
}

// levelRank orders outcomes for the monotonicity property: rejection is
// lowest, then H4 up to H1.
func levelRank(c model.Classification) int {
	heading, ok := c.Heading()
	if !ok {
		return 0
	}
	switch heading.Level {
	case model.HeadingLevel4:
		return 1
	case model.HeadingLevel3:
		return 2
	case model.HeadingLevel2:
		return 3
	case model.HeadingLevel1:
		return 4
	}
	return 0
}

func TestClassifyRatioMonotonicity(t *testing.T) {
	// Increasing a span's font size while holding everything else fixed
	// must never decrease its assigned level.
	classifier := NewClassifier()
	stats := statsWithBaseline(12.0)

	texts := []string{"1.2 Deployment", "RESULTS", "Some Heading Words", "plain prose fragment here"}
	indents := []float64{0, 25, 50}

	for _, txt := range texts {
		for _, x0 := range indents {
			prev := -1
			for size := 6.0; size <= 30.0; size += 0.5 {
				rank := levelRank(classifier.Classify(makeSpan(txt, size, x0), stats))
				if rank < prev {
					t.Fatalf("text %q x0 %v: level rank decreased from %d to %d at size %v",
						txt, x0, prev, rank, size)
				}
				prev = rank
			}
		}
	}
}

func TestClassifyUniformPageGuard(t *testing.T) {
	// A page where every span shares one font size yields ratio 1.0 for
	// all of them; plain text must not become headings.
	spans := []model.Span{
		makeSpan("first ordinary line of text", 12.0, 0),
		makeSpan("second ordinary line of text", 12.0, 0),
		makeSpan("third ordinary line of text", 12.0, 0),
		makeSpan("fourth ordinary line of text", 12.0, 0),
	}
	stats := ComputePageStats(0, spans)
	classifier := NewClassifier()

	for _, span := range spans {
		if classifier.Classify(span, stats).IsHeading() {
			t.Errorf("uniform-size span %q classified as heading", span.Text)
		}
	}
}

func TestClassifyCustomConfig(t *testing.T) {
	config := DefaultConfig()
	config.MinH1SizeRatio = 2.0
	classifier := NewClassifierWithConfig(config)
	stats := statsWithBaseline(12.0)

	// Ratio 1.5 is H1 by default but only H2 under the raised threshold.
	heading, ok := classifier.Classify(makeSpan("Release Notes", 18.0, 0), stats).Heading()
	if !ok {
		t.Fatal("span rejected under custom config")
	}
	if heading.Level != model.HeadingLevel2 {
		t.Errorf("level = %s, want H2 under MinH1SizeRatio=2.0", heading.Level)
	}
}
