package lookup

import (
	"github.com/Aman-CERP/termlens/internal/errors"
	"github.com/Aman-CERP/termlens/internal/index"
)

// FieldStats caches term cursors and aggregate statistics for one field.
//
// Aggregate statistics are fetched exactly once at construction and treated
// as shard-scoped: they are deliberately not refreshed on segment change.
// Term cursors are created lazily on first request and live as long as the
// cache; the map only ever grows, bounded by the distinct terms the scoring
// pass requests.
type FieldStats struct {
	fieldName string
	stats     index.CollectionStats
	searcher  Searcher
	terms     map[string]*TermCursor

	curSegment Segment
	curDoc     int
}

// NewFieldStats creates the statistics cache for fieldName within a session.
// Fails with a STATS_UNAVAILABLE error when the provider cannot answer for
// the field; the cache is unusable afterwards.
func NewFieldStats(fieldName string, session *ShardLookup) (*FieldStats, error) {
	if fieldName == "" {
		return nil, errors.InvalidArgument("field name must not be empty")
	}
	if session == nil {
		return nil, errors.InvalidArgument("lookup session must not be nil")
	}

	stats, err := session.searcher.CollectionStatistics(fieldName)
	if err != nil {
		if errors.GetCode(err) == errors.ErrCodeStatsUnavailable {
			return nil, err
		}
		return nil, errors.StatsUnavailable(fieldName, err)
	}

	return &FieldStats{
		fieldName:  fieldName,
		stats:      stats,
		searcher:   session.searcher,
		terms:      make(map[string]*TermCursor),
		curSegment: session.curSegment,
		curDoc:     session.curDoc,
	}, nil
}

// Name returns the field this cache serves.
func (f *FieldStats) Name() string {
	return f.fieldName
}

// DocCount returns the number of documents containing the field.
func (f *FieldStats) DocCount() int64 {
	return f.stats.DocCount
}

// SumTotalTermFreq returns the total term occurrences in the field across
// all documents.
func (f *FieldStats) SumTotalTermFreq() int64 {
	return f.stats.SumTotalTermFreq
}

// SumDocFreq returns the sum of document frequencies over the field's terms.
func (f *FieldStats) SumDocFreq() int64 {
	return f.stats.SumDocFreq
}

// Term returns the cursor for a term with the default frequency-only flags.
func (f *FieldStats) Term(text string) (*TermCursor, error) {
	return f.TermWithFlags(text, DefaultFlags)
}

// TermWithFlags returns the cursor for a term, creating it on first request.
//
// Repeated requests for the same term text return the identical cursor; the
// requested flags are validated against the cursor's capabilities on every
// request and a wider request fails with FLAGS_MISMATCH. A cursor created
// mid-pass is seeded with the segment and document already pushed into the
// cache.
func (f *FieldStats) TermWithFlags(text string, flags Flags) (*TermCursor, error) {
	if text == "" {
		return nil, errors.InvalidArgument("term text must not be empty")
	}

	if cursor, ok := f.terms[text]; ok {
		if err := cursor.ValidateFlags(flags); err != nil {
			return nil, err
		}
		return cursor, nil
	}

	cursor, err := newTermCursor(text, f.fieldName, flags, f.searcher, f.curSegment, f.curDoc)
	if err != nil {
		return nil, err
	}
	f.terms[text] = cursor
	return cursor, nil
}

// NumTerms returns the number of cursors created so far.
func (f *FieldStats) NumTerms() int {
	return len(f.terms)
}

// SetNextReader re-seeks every cursor ever created against the new segment,
// including cursors not yet queried in it: any of them may be queried again.
// Fails fast on the first cursor that cannot re-seek.
func (f *FieldStats) SetNextReader(seg Segment) error {
	if seg == nil {
		return errors.InvalidArgument("segment must not be nil")
	}

	f.curSegment = seg
	f.curDoc = -1

	for _, cursor := range f.terms {
		if err := cursor.SetNextReader(seg); err != nil {
			return err
		}
	}
	return nil
}

// SetNextDoc advances every cursor to the new document, with the same
// unconditional-forwarding and fail-fast semantics as SetNextReader.
func (f *FieldStats) SetNextDoc(docID int) error {
	if docID < 0 {
		return errors.InvalidArgument("document id must not be negative")
	}

	f.curDoc = docID

	for _, cursor := range f.terms {
		if err := cursor.SetNextDoc(docID); err != nil {
			return err
		}
	}
	return nil
}
