package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/termlens/internal/index"
)

func buildIndex(t *testing.T, maxSegmentDocs int) *index.Reader {
	t.Helper()
	w := index.NewWriter(index.WithMaxSegmentDocs(maxSegmentDocs))
	docs := []index.Document{
		{ID: "a", Fields: map[string]string{"body": "quick brown fox"}},
		{ID: "b", Fields: map[string]string{"body": "fox fox fox"}},
		{ID: "c", Fields: map[string]string{"body": "lazy dog sleeps all day long here"}},
		{ID: "d", Fields: map[string]string{"body": "fox and dog"}},
	}
	for _, d := range docs {
		require.NoError(t, w.Add(d))
	}
	return w.Reader()
}

func TestBM25Scorer_RanksByTermFrequency(t *testing.T) {
	// Given: a corpus where doc "b" repeats the query term most
	reader := buildIndex(t, 128)
	s := NewBM25Scorer("body")

	// When: scoring for "fox"
	results, err := s.Score(reader, []string{"fox"}, 10)
	require.NoError(t, err)

	// Then: only matching docs are returned, most frequent first
	require.Len(t, results, 3)
	assert.Equal(t, "b", results[0].DocID)
	for _, r := range results {
		assert.Greater(t, r.Score, 0.0)
		assert.NotEqual(t, "c", r.DocID)
	}
}

func TestBM25Scorer_MultiTermQuery(t *testing.T) {
	reader := buildIndex(t, 128)
	s := NewBM25Scorer("body")

	results, err := s.Score(reader, []string{"fox", "dog"}, 10)
	require.NoError(t, err)

	// Doc "d" matches both terms and should beat the single-term doc "a"
	require.NotEmpty(t, results)
	assert.Equal(t, "d", results[0].DocID)

	ids := make(map[string]bool)
	for _, r := range results {
		ids[r.DocID] = true
	}
	assert.True(t, ids["c"], "dog-only doc should still match")
	assert.Len(t, results, 4)
}

func TestBM25Scorer_SameResultsAcrossSegmentLayouts(t *testing.T) {
	// The segment layout must not change scores: statistics are shard-scoped
	one := buildIndex(t, 128)
	many := buildIndex(t, 1)
	require.Len(t, many.Segments(), 4)

	s := NewBM25Scorer("body")
	a, err := s.Score(one, []string{"fox", "dog"}, 10)
	require.NoError(t, err)
	b, err := s.Score(many, []string{"fox", "dog"}, 10)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].DocID, b[i].DocID)
		assert.InDelta(t, a[i].Score, b[i].Score, 1e-9)
	}
}

func TestBM25Scorer_LimitApplied(t *testing.T) {
	reader := buildIndex(t, 128)
	s := NewBM25Scorer("body")

	results, err := s.Score(reader, []string{"fox"}, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestBM25Scorer_NoTermsNoResults(t *testing.T) {
	reader := buildIndex(t, 128)
	s := NewBM25Scorer("body")

	results, err := s.Score(reader, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBM25Scorer_UnknownTermMatchesNothing(t *testing.T) {
	reader := buildIndex(t, 128)
	s := NewBM25Scorer("body")

	results, err := s.Score(reader, []string{"unicorn"}, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBM25Scorer_UnknownFieldFails(t *testing.T) {
	reader := buildIndex(t, 128)
	s := NewBM25Scorer("missing")

	_, err := s.Score(reader, []string{"fox"}, 10)
	assert.Error(t, err)
}

func TestBM25Scorer_CustomParameters(t *testing.T) {
	reader := buildIndex(t, 128)

	// b=0 disables length normalization entirely
	s := NewBM25Scorer("body", WithK1(2.0), WithB(0))
	results, err := s.Score(reader, []string{"fox"}, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "b", results[0].DocID)
}
