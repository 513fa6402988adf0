package layout

import "fmt"

// Config holds the thresholds used by heading classification and title
// extraction. A Config is an immutable value: every component receives it
// by value and no component modifies it after construction, so one Config
// may be shared across concurrent page runs.
type Config struct {
	// MinH1SizeRatio is the minimum font-size ratio for H1 headings.
	// Default: 1.5
	MinH1SizeRatio float64

	// MinH2SizeRatio is the minimum font-size ratio for H2 headings.
	// Default: 1.3
	MinH2SizeRatio float64

	// MinH3SizeRatio is the minimum font-size ratio for H3 headings.
	// Default: 1.1
	MinH3SizeRatio float64

	// H2IndentThreshold is the maximum left offset, in points, for a span
	// at the H2/H3 boundary to stay at H2. Default: 20
	H2IndentThreshold float64

	// H3IndentThreshold is the maximum left offset, in points, for a span
	// at the H2/H3 boundary to stay at H3; beyond it the span demotes to
	// H4. Default: 40
	H3IndentThreshold float64

	// MinHeadingLength is the minimum trimmed text length, in runes, for a
	// heading candidate. Guards against stray glyphs misread as headings.
	// Default: 2
	MinHeadingLength int

	// MaxHeadingLength is the maximum trimmed text length, in runes, for a
	// heading candidate. Longer spans are body text. Default: 200
	MaxHeadingLength int

	// MinTitleLength is the minimum trimmed text length, in runes, for a
	// title candidate. Default: 4
	MinTitleLength int

	// TitleWidthRatio is the line-width ratio above which a title
	// candidate is preferred among font-size ties. Default: 0.8
	TitleWidthRatio float64
}

// DefaultConfig returns the tuned default thresholds. The numeric cutoffs
// are empirical configuration defaults, not guaranteed-correct constants.
func DefaultConfig() Config {
	return Config{
		MinH1SizeRatio:    1.5,
		MinH2SizeRatio:    1.3,
		MinH3SizeRatio:    1.1,
		H2IndentThreshold: 20.0,
		H3IndentThreshold: 40.0,
		MinHeadingLength:  2,
		MaxHeadingLength:  200,
		MinTitleLength:    4,
		TitleWidthRatio:   0.8,
	}
}

// Validate checks the configuration for values that would misclassify every
// span, returning the first problem found. It should be called once at
// construction time; components assume a validated Config.
func (c Config) Validate() error {
	if c.MinH1SizeRatio <= 0 || c.MinH2SizeRatio <= 0 || c.MinH3SizeRatio <= 0 {
		return fmt.Errorf("layout: size ratios must be positive (h1=%v h2=%v h3=%v)",
			c.MinH1SizeRatio, c.MinH2SizeRatio, c.MinH3SizeRatio)
	}
	if c.MinH3SizeRatio < 1.0 {
		return fmt.Errorf("layout: MinH3SizeRatio %v must be at least 1.0", c.MinH3SizeRatio)
	}
	if c.MinH1SizeRatio <= c.MinH2SizeRatio || c.MinH2SizeRatio <= c.MinH3SizeRatio {
		return fmt.Errorf("layout: size ratios must be strictly descending (h1=%v h2=%v h3=%v)",
			c.MinH1SizeRatio, c.MinH2SizeRatio, c.MinH3SizeRatio)
	}
	if c.H2IndentThreshold <= 0 || c.H3IndentThreshold <= 0 {
		return fmt.Errorf("layout: indent thresholds must be positive (h2=%v h3=%v)",
			c.H2IndentThreshold, c.H3IndentThreshold)
	}
	if c.H2IndentThreshold >= c.H3IndentThreshold {
		return fmt.Errorf("layout: H2IndentThreshold %v must be below H3IndentThreshold %v",
			c.H2IndentThreshold, c.H3IndentThreshold)
	}
	if c.MinHeadingLength < 1 {
		return fmt.Errorf("layout: MinHeadingLength %d must be at least 1", c.MinHeadingLength)
	}
	if c.MaxHeadingLength <= c.MinHeadingLength {
		return fmt.Errorf("layout: MaxHeadingLength %d must exceed MinHeadingLength %d",
			c.MaxHeadingLength, c.MinHeadingLength)
	}
	if c.MinTitleLength < 1 {
		return fmt.Errorf("layout: MinTitleLength %d must be at least 1", c.MinTitleLength)
	}
	if c.TitleWidthRatio <= 0 || c.TitleWidthRatio > 1 {
		return fmt.Errorf("layout: TitleWidthRatio %v must be in (0, 1]", c.TitleWidthRatio)
	}
	return nil
}
