// Package lookup gives scoring code lazy, cached access to per-field and
// per-term statistics over one shard.
//
// A ShardLookup is a single-pass session: the evaluation harness pushes each
// segment reader and then each matching document id into it, and requests
// term cursors between pushes. Cursors are created lazily, cached for the
// life of the session, and re-targeted in place on every context change.
//
// Sessions are single-threaded by design. No locking is provided; an
// instance must not be shared across goroutines.
package lookup

import (
	"log/slog"

	"github.com/Aman-CERP/termlens/internal/errors"
	"github.com/Aman-CERP/termlens/internal/index"
)

// Searcher provides shard-level statistics. Satisfied by *index.Reader.
type Searcher interface {
	// CollectionStatistics returns aggregate statistics for a field.
	CollectionStatistics(field string) (index.CollectionStats, error)

	// TermStatistics returns shard-level statistics for a single term.
	TermStatistics(field, term string) (index.TermStats, error)
}

// Segment is the per-segment postings source cursors re-seek against.
type Segment interface {
	// TermDocs opens a postings cursor for term within field, or returns a
	// nil Postings when the term does not occur in the segment.
	TermDocs(field, term string, includePositions bool) (Postings, error)
}

// Postings is a forward-only cursor over a term's documents in one segment.
type Postings interface {
	// Advance moves to the first document with id >= target.
	Advance(target uint32) (doc uint32, ok bool, err error)

	// Freq returns the term frequency in the current document.
	Freq() int

	// Positions returns the occurrences in the current document.
	Positions() []index.TermPosition
}

// ShardLookup is a per-shard term lookup session. It owns one FieldStats per
// requested field and fans segment/document transitions out to all of them.
type ShardLookup struct {
	searcher Searcher
	fields   map[string]*FieldStats

	curSegment Segment
	curDoc     int
}

// NewShardLookup creates a lookup session over the given statistics source.
func NewShardLookup(searcher Searcher) (*ShardLookup, error) {
	if searcher == nil {
		return nil, errors.InvalidArgument("searcher must not be nil")
	}
	return &ShardLookup{
		searcher: searcher,
		fields:   make(map[string]*FieldStats),
		curDoc:   -1,
	}, nil
}

// Field returns the statistics cache for a field, creating it on first
// request. Repeated requests return the identical cache.
func (l *ShardLookup) Field(name string) (*FieldStats, error) {
	if fs, ok := l.fields[name]; ok {
		return fs, nil
	}

	fs, err := NewFieldStats(name, l)
	if err != nil {
		return nil, err
	}
	l.fields[name] = fs

	slog.Debug("field_stats_created",
		slog.String("field", name),
		slog.Int64("doc_count", fs.DocCount()))
	return fs, nil
}

// SetNextReader pushes a new segment into every field cache. Must be called
// once per segment transition, before any term lookups against the new
// segment. Doc ids are segment-local, so the current document resets.
func (l *ShardLookup) SetNextReader(seg Segment) error {
	if seg == nil {
		return errors.InvalidArgument("segment must not be nil")
	}

	l.curSegment = seg
	l.curDoc = -1

	for _, fs := range l.fields {
		if err := fs.SetNextReader(seg); err != nil {
			return err
		}
	}
	return nil
}

// SetNextDoc pushes a new document id into every field cache. Must be called
// once per document transition, after SetNextReader for the segment.
func (l *ShardLookup) SetNextDoc(docID int) error {
	if docID < 0 {
		return errors.InvalidArgument("document id must not be negative")
	}

	l.curDoc = docID

	for _, fs := range l.fields {
		if err := fs.SetNextDoc(docID); err != nil {
			return err
		}
	}
	return nil
}

// WrapSegment adapts an index segment reader to the Segment interface.
func WrapSegment(seg *index.SegmentReader) Segment {
	return indexSegment{seg: seg}
}

type indexSegment struct {
	seg *index.SegmentReader
}

func (s indexSegment) TermDocs(field, term string, includePositions bool) (Postings, error) {
	it, err := s.seg.TermDocs(field, term, includePositions)
	if err != nil {
		return nil, err
	}
	if it == nil {
		// Avoid a typed-nil Postings: absent terms yield a nil interface.
		return nil, nil
	}
	return indexPostings{it: it}, nil
}

type indexPostings struct {
	it *index.PostingsIterator
}

func (p indexPostings) Advance(target uint32) (uint32, bool, error) {
	doc, ok := p.it.Advance(target)
	return doc, ok, nil
}

func (p indexPostings) Freq() int {
	return p.it.Freq()
}

func (p indexPostings) Positions() []index.TermPosition {
	return p.it.Positions()
}
