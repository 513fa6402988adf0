// Package pdfspan produces outline-ready spans from the text layer of a
// PDF document.
//
// It is a thin collaborator in front of the classification pipeline: it
// reads positioned glyph runs with github.com/ledongthuc/pdf, merges runs
// that share a baseline and font into line spans, normalizes their text,
// and reports each span's left offset and line-width ratio. Scanned PDFs
// without a text layer yield an empty document, not an error.
package pdfspan
