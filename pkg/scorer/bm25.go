package scorer

import (
	"fmt"
	"math"
	"sort"

	"github.com/Aman-CERP/termlens/internal/index"
	"github.com/Aman-CERP/termlens/internal/lookup"
)

const (
	// DefaultK1 is the BM25 term-frequency saturation parameter.
	DefaultK1 = 1.2
	// DefaultB is the BM25 length-normalization parameter.
	DefaultB = 0.75
)

// Result is a single scored document.
type Result struct {
	// DocID is the external document identifier.
	DocID string

	// Score is the BM25 score. Higher is more relevant.
	Score float64
}

// BM25Scorer scores documents for a set of query terms within one field.
type BM25Scorer struct {
	field string
	k1    float64
	b     float64
}

// Option configures a BM25Scorer.
type Option func(*BM25Scorer)

// WithK1 sets the term-frequency saturation parameter.
func WithK1(k1 float64) Option {
	return func(s *BM25Scorer) {
		s.k1 = k1
	}
}

// WithB sets the length-normalization parameter.
func WithB(b float64) Option {
	return func(s *BM25Scorer) {
		s.b = b
	}
}

// NewBM25Scorer creates a scorer for the given field.
func NewBM25Scorer(field string, opts ...Option) *BM25Scorer {
	s := &BM25Scorer{
		field: field,
		k1:    DefaultK1,
		b:     DefaultB,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score ranks every document containing at least one query term.
// Returns at most limit results, highest score first; limit <= 0 means all.
func (s *BM25Scorer) Score(reader *index.Reader, terms []string, limit int) ([]Result, error) {
	if len(terms) == 0 {
		return []Result{}, nil
	}

	session, err := lookup.NewShardLookup(reader)
	if err != nil {
		return nil, err
	}
	field, err := session.Field(s.field)
	if err != nil {
		return nil, fmt.Errorf("scoring field %q: %w", s.field, err)
	}

	cursors := make([]*lookup.TermCursor, 0, len(terms))
	idfs := make([]float64, 0, len(terms))
	n := float64(field.DocCount())
	for _, term := range terms {
		cursor, err := field.Term(term)
		if err != nil {
			return nil, err
		}
		cursors = append(cursors, cursor)
		df := float64(cursor.Df())
		idfs = append(idfs, math.Log(1+(n-df+0.5)/(df+0.5)))
	}

	var avgLen float64
	if field.DocCount() > 0 {
		avgLen = float64(field.SumTotalTermFreq()) / float64(field.DocCount())
	}

	var results []Result
	for _, seg := range reader.Segments() {
		if err := session.SetNextReader(lookup.WrapSegment(seg)); err != nil {
			return nil, err
		}
		for doc := 0; doc < seg.DocCount(); doc++ {
			if err := session.SetNextDoc(doc); err != nil {
				return nil, err
			}

			score := s.scoreDoc(cursors, idfs, float64(seg.DocLength(s.field, uint32(doc))), avgLen)
			if score <= 0 {
				continue
			}

			extID, ok := seg.ExternalID(uint32(doc))
			if !ok {
				continue
			}
			results = append(results, Result{DocID: extID, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []Result{}
	}
	return results, nil
}

// scoreDoc sums the BM25 contribution of each cursor for the current document.
func (s *BM25Scorer) scoreDoc(cursors []*lookup.TermCursor, idfs []float64, docLen, avgLen float64) float64 {
	var score float64
	for i, cursor := range cursors {
		tf := float64(cursor.Tf())
		if tf == 0 {
			continue
		}
		norm := 1.0
		if avgLen > 0 {
			norm = 1 - s.b + s.b*(docLen/avgLen)
		}
		score += idfs[i] * (tf * (s.k1 + 1)) / (tf + s.k1*norm)
	}
	return score
}
