// Package model defines the value types shared across the outline
// inference pipeline.
//
// The central type is [Span], a positioned run of text with font metadata
// as reported by an upstream text-extraction collaborator. Spans are
// read-only inputs: every pipeline stage derives new values ([PageStats],
// [Classification], [Outline]) and never mutates a span in place.
//
// # Lifecycle
//
// Spans are produced once per run by a span source (see the pdfspan and
// htmlspan packages). PageStats and Classifications are computed during the
// run and discarded once the Outline has been assembled. Nothing persists
// across documents.
package model
