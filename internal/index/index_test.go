package index

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/termlens/internal/errors"
)

func TestWriter_AddAndStats(t *testing.T) {
	// Given: three documents in one field
	w := NewWriter()
	docs := []Document{
		{ID: "1", Fields: map[string]string{"body": "quick brown fox"}},
		{ID: "2", Fields: map[string]string{"body": "quick quick dog"}},
		{ID: "3", Fields: map[string]string{"body": "lazy dog"}},
	}
	for _, d := range docs {
		require.NoError(t, w.Add(d))
	}

	// When: reading collection statistics
	r := w.Reader()
	stats, err := r.CollectionStatistics("body")
	require.NoError(t, err)

	// Then: all three aggregates are correct
	assert.Equal(t, int64(3), stats.DocCount)
	assert.Equal(t, int64(8), stats.SumTotalTermFreq)
	// quick:2 brown:1 fox:1 dog:2 lazy:1
	assert.Equal(t, int64(7), stats.SumDocFreq)
}

func TestReader_CollectionStatistics_UnknownField(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "quick fox"}}))

	_, err := w.Reader().CollectionStatistics("missing")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStatsUnavailable, errors.GetCode(err))
	assert.True(t, errors.IsFatal(err))
}

func TestReader_TermStatistics(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "fox fox dog"}}))
	require.NoError(t, w.Add(Document{ID: "2", Fields: map[string]string{"body": "fox"}}))

	r := w.Reader()

	stats, err := r.TermStatistics("body", "fox")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.DocFreq)
	assert.Equal(t, int64(3), stats.TotalTermFreq)

	// Absent terms yield zero stats, not an error
	stats, err = r.TermStatistics("body", "unicorn")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.DocFreq)
	assert.Equal(t, int64(0), stats.TotalTermFreq)
}

func TestWriter_SegmentSealing(t *testing.T) {
	// Given: a writer sealing every 2 documents
	w := NewWriter(WithMaxSegmentDocs(2))
	for i := 0; i < 5; i++ {
		require.NoError(t, w.Add(Document{
			ID:     fmt.Sprintf("doc-%d", i),
			Fields: map[string]string{"body": "quick fox"},
		}))
	}

	// When: taking a reader
	r := w.Reader()

	// Then: five docs land in three segments (2+2+1)
	segs := r.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, 2, segs[0].DocCount())
	assert.Equal(t, 2, segs[1].DocCount())
	assert.Equal(t, 1, segs[2].DocCount())
	assert.Equal(t, 5, r.NumDocs())

	// And: stats aggregate across segments
	stats, err := r.CollectionStatistics("body")
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.DocCount)
	assert.Equal(t, int64(10), stats.SumTotalTermFreq)
}

func TestWriter_AddBatch_MatchesSequentialAdd(t *testing.T) {
	docs := []Document{
		{ID: "1", Fields: map[string]string{"body": "quick brown fox"}},
		{ID: "2", Fields: map[string]string{"body": "lazy dog"}},
		{ID: "3", Fields: map[string]string{"body": "quick dog"}},
	}

	sequential := NewWriter()
	for _, d := range docs {
		require.NoError(t, sequential.Add(d))
	}
	batched := NewWriter()
	require.NoError(t, batched.AddBatch(context.Background(), docs))

	wantStats, err := sequential.Reader().CollectionStatistics("body")
	require.NoError(t, err)
	gotStats, err := batched.Reader().CollectionStatistics("body")
	require.NoError(t, err)
	assert.Equal(t, wantStats, gotStats)

	// Doc id assignment stays deterministic: local ids follow input order
	seg := batched.Reader().Segments()[0]
	id, ok := seg.ExternalID(1)
	require.True(t, ok)
	assert.Equal(t, "2", id)
}

func TestWriter_Add_EmptyIDRejected(t *testing.T) {
	w := NewWriter()

	err := w.Add(Document{Fields: map[string]string{"body": "quick"}})

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidArgument, errors.GetCode(err))
}

func TestPostingsIterator_AdvanceAndFreq(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "fox fox"}}))
	require.NoError(t, w.Add(Document{ID: "2", Fields: map[string]string{"body": "dog"}}))
	require.NoError(t, w.Add(Document{ID: "3", Fields: map[string]string{"body": "fox"}}))

	seg := w.Reader().Segments()[0]
	it, err := seg.TermDocs("body", "fox", false)
	require.NoError(t, err)
	require.NotNil(t, it)

	// Advance to the first doc
	doc, ok := it.Advance(0)
	require.True(t, ok)
	assert.Equal(t, uint32(0), doc)
	assert.Equal(t, 2, it.Freq())

	// Advancing to the same target again is a no-op
	doc, ok = it.Advance(0)
	require.True(t, ok)
	assert.Equal(t, uint32(0), doc)

	// Doc 1 has no "fox": cursor lands on doc 2
	doc, ok = it.Advance(1)
	require.True(t, ok)
	assert.Equal(t, uint32(2), doc)
	assert.Equal(t, 1, it.Freq())

	// Past the last doc
	_, ok = it.Advance(3)
	assert.False(t, ok)
}

func TestPostingsIterator_Positions(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "fox jumps fox"}}))

	seg := w.Reader().Segments()[0]

	// With positions enabled
	it, err := seg.TermDocs("body", "fox", true)
	require.NoError(t, err)
	require.NotNil(t, it)
	_, ok := it.Advance(0)
	require.True(t, ok)

	positions := it.Positions()
	require.Len(t, positions, 2)
	assert.Equal(t, 1, positions[0].Position)
	assert.Equal(t, 3, positions[1].Position)
	assert.Equal(t, 0, positions[0].StartOffset)
	assert.Equal(t, 3, positions[0].EndOffset)

	// Without positions enabled the iterator yields none
	it, err = seg.TermDocs("body", "fox", false)
	require.NoError(t, err)
	require.NotNil(t, it)
	_, ok = it.Advance(0)
	require.True(t, ok)
	assert.Nil(t, it.Positions())
}

func TestSegmentReader_TermDocs_AbsentTerm(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "quick fox"}}))

	seg := w.Reader().Segments()[0]

	it, err := seg.TermDocs("body", "unicorn", false)
	require.NoError(t, err)
	assert.Nil(t, it)

	// Absent field behaves the same way for postings access
	it, err = seg.TermDocs("missing", "fox", false)
	require.NoError(t, err)
	assert.Nil(t, it)
}

func TestSegmentReader_FieldViewIdentityWhileCached(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "quick fox"}}))

	seg := w.Reader().Segments()[0]

	a, err := seg.Field("body")
	require.NoError(t, err)
	b, err := seg.Field("body")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = seg.Field("missing")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownField, errors.GetCode(err))
}

func TestFieldReader_Stats(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "fox fox dog"}}))
	require.NoError(t, w.Add(Document{ID: "2", Fields: map[string]string{"title": "only title"}}))

	seg := w.Reader().Segments()[0]
	view, err := seg.Field("body")
	require.NoError(t, err)

	assert.Equal(t, int64(1), view.DocCount())
	assert.Equal(t, int64(3), view.SumTotalTermFreq())
	assert.Equal(t, int64(2), view.SumDocFreq())
	assert.Equal(t, 2, view.NumTerms())
}

func TestSegmentReader_DocLength(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "quick brown fox"}}))
	require.NoError(t, w.Add(Document{ID: "2", Fields: map[string]string{"body": "dog"}}))

	seg := w.Reader().Segments()[0]

	assert.Equal(t, 3, seg.DocLength("body", 0))
	assert.Equal(t, 1, seg.DocLength("body", 1))
	assert.Equal(t, 0, seg.DocLength("missing", 0))
}

func TestReader_IsolatedFromLaterWrites(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Add(Document{ID: "1", Fields: map[string]string{"body": "quick fox"}}))

	r1 := w.Reader()
	require.NoError(t, w.Add(Document{ID: "2", Fields: map[string]string{"body": "lazy dog"}}))
	r2 := w.Reader()

	assert.Equal(t, 1, r1.NumDocs())
	assert.Equal(t, 2, r2.NumDocs())
}
