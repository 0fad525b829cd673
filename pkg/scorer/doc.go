// Package scorer ranks documents with BM25 on top of a term lookup session.
//
// It is the reference consumer of internal/lookup: one SetNextReader per
// segment, one SetNextDoc per candidate document, term cursors requested once
// and reused for the whole pass.
package scorer
