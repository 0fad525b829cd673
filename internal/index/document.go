// Package index implements a segmented in-memory inverted index.
//
// Documents are analyzed into per-field postings. Segments are sealed once
// they reach the configured document budget; a Reader snapshots the sealed
// segments and serves collection- and term-level statistics across them.
package index

// Document is a single unit of indexable content.
type Document struct {
	// ID is the external document identifier.
	ID string `json:"id"`

	// Fields maps field names to their raw text content.
	Fields map[string]string `json:"fields"`
}
