package index

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Aman-CERP/termlens/internal/errors"
)

// Reader is an immutable shard-level view over sealed segments.
type Reader struct {
	segments []*SegmentReader
}

// Segments returns the segment readers in indexing order. The evaluation
// harness walks these, pushing each into its lookup session in turn.
func (r *Reader) Segments() []*SegmentReader {
	return r.segments
}

// NumDocs returns the total number of documents across all segments.
func (r *Reader) NumDocs() int {
	var n int
	for _, s := range r.segments {
		n += s.DocCount()
	}
	return n
}

// CollectionStatistics aggregates field statistics across all segments.
// Fails with a STATS_UNAVAILABLE error when no segment carries the field.
func (r *Reader) CollectionStatistics(field string) (CollectionStats, error) {
	var stats CollectionStats
	found := false

	for _, s := range r.segments {
		fd, ok := s.seg.fields[field]
		if !ok {
			continue
		}
		found = true
		stats.DocCount += fd.docCount
		stats.SumTotalTermFreq += fd.sumTTF
		stats.SumDocFreq += fd.sumDocFreq()
	}

	if !found {
		return CollectionStats{}, errors.StatsUnavailable(field,
			errors.New(errors.ErrCodeUnknownField, "field not present in any segment", nil))
	}
	return stats, nil
}

// TermStatistics aggregates a term's document frequency and total frequency
// across all segments. A term absent from the shard yields zero statistics,
// not an error: scoring a never-seen term is legitimate.
func (r *Reader) TermStatistics(field, term string) (TermStats, error) {
	var stats TermStats
	for _, s := range r.segments {
		fd, ok := s.seg.fields[field]
		if !ok {
			continue
		}
		p, ok := fd.postings[term]
		if !ok {
			continue
		}
		stats.DocFreq += int64(p.docs.GetCardinality())
		stats.TotalTermFreq += p.totalFreq
	}
	return stats, nil
}

// SegmentReader is a read-only view over one sealed segment.
//
// Per-field views are created lazily and kept in a small LRU so that the
// dictionary lookups of hot fields stay cheap without pinning every field
// ever touched.
type SegmentReader struct {
	seg        *segmentData
	fieldViews *lru.Cache[string, *FieldReader]
}

func newSegmentReader(seg *segmentData, fieldCacheSize int) *SegmentReader {
	cache, err := lru.New[string, *FieldReader](fieldCacheSize)
	if err != nil {
		// Only possible with a non-positive size; fall back to the default.
		cache, _ = lru.New[string, *FieldReader](defaultFieldCacheSize)
	}
	return &SegmentReader{seg: seg, fieldViews: cache}
}

// ID returns the segment's ordinal within the shard.
func (s *SegmentReader) ID() int {
	return s.seg.id
}

// DocCount returns the number of documents in the segment.
func (s *SegmentReader) DocCount() int {
	return len(s.seg.extIDs)
}

// ExternalID maps a segment-local doc id back to the external document ID.
func (s *SegmentReader) ExternalID(docID uint32) (string, bool) {
	if int(docID) >= len(s.seg.extIDs) {
		return "", false
	}
	return s.seg.extIDs[docID], true
}

// Field returns the view over one field of the segment.
// Fails with an UNKNOWN_FIELD error when the segment has no such field.
func (s *SegmentReader) Field(name string) (*FieldReader, error) {
	if view, ok := s.fieldViews.Get(name); ok {
		return view, nil
	}

	fd, ok := s.seg.fields[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownField,
			"field not present in segment", nil).WithDetail("field", name)
	}

	view := &FieldReader{name: name, data: fd}
	s.fieldViews.Add(name, view)
	return view, nil
}

// TermDocs opens a postings cursor for term within field.
// Returns a nil iterator (and nil error) when the term does not occur in
// this segment; the caller treats that as tf=0 for every document.
func (s *SegmentReader) TermDocs(field, term string, includePositions bool) (*PostingsIterator, error) {
	view, err := s.Field(field)
	if err != nil {
		// A field absent from this particular segment is not an error for
		// postings access; the term simply has no occurrences here.
		return nil, nil
	}
	return view.termDocs(term, includePositions), nil
}

// DocLength returns the number of tokens the document has in the field.
func (s *SegmentReader) DocLength(field string, docID uint32) int {
	fd, ok := s.seg.fields[field]
	if !ok {
		return 0
	}
	return fd.docLengths[docID]
}

// FieldReader is a per-field dictionary view inside one segment.
type FieldReader struct {
	name string
	data *fieldData
}

// Name returns the field name.
func (f *FieldReader) Name() string {
	return f.name
}

// DocCount returns the number of documents in this segment containing the field.
func (f *FieldReader) DocCount() int64 {
	return f.data.docCount
}

// SumTotalTermFreq returns the total term occurrences in the field.
func (f *FieldReader) SumTotalTermFreq() int64 {
	return f.data.sumTTF
}

// SumDocFreq returns the sum of document frequencies over the field's terms.
func (f *FieldReader) SumDocFreq() int64 {
	return f.data.sumDocFreq()
}

// NumTerms returns the number of distinct terms in the field.
func (f *FieldReader) NumTerms() int {
	return len(f.data.postings)
}

func (f *FieldReader) termDocs(term string, includePositions bool) *PostingsIterator {
	p, ok := f.data.postings[term]
	if !ok {
		return nil
	}
	return newPostingsIterator(term, p, includePositions)
}
