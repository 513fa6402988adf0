// Package layout infers document outline structure from positioned text
// spans.
//
// The package combines three kinds of evidence into one leveled decision
// per span:
//
//   - relative font-size ratios, computed against a per-page baseline
//     (see [ComputePageStats])
//   - horizontal indentation bands
//   - structural and content patterns (numbering schemes, bullets,
//     ALL-CAPS, Title Case, known section vocabulary)
//
// # Components
//
//   - [Classifier] - evaluates one span against its page statistics and
//     yields a heading level or a rejection, via a fixed-priority rule chain
//   - [TitleExtractor] - selects the document title from first-page spans
//   - [Assembler] - deduplicates and orders classified headings into the
//     final [model.Outline]
//
// # Configuration
//
// All thresholds live in [Config], an immutable value passed into every
// component. [DefaultConfig] returns the tuned defaults; [Config.Validate]
// rejects out-of-range values eagerly so a bad threshold cannot silently
// misclassify an entire document.
//
// Classification is deterministic: identical spans and configuration always
// produce identical results. Spans are classified independently of one
// another, so callers may fan out across pages without locking.
package layout
