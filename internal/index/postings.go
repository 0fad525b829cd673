package index

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// PostingsIterator is a forward-only cursor over the documents a term occurs
// in within one segment. Doc ids are segment-local and strictly increasing.
type PostingsIterator struct {
	term         string
	it           roaring.IntPeekable
	freqs        map[uint32]int
	positions    map[uint32][]TermPosition
	withPosition bool

	cur   uint32
	valid bool
}

func newPostingsIterator(term string, p *posting, withPositions bool) *PostingsIterator {
	return &PostingsIterator{
		term:         term,
		it:           p.docs.Iterator(),
		freqs:        p.freqs,
		positions:    p.positions,
		withPosition: withPositions,
	}
}

// Advance moves the cursor to the first document with id >= target and
// reports whether such a document exists. Advancing to the current document
// is a no-op, so repeated calls with the same target are idempotent.
func (p *PostingsIterator) Advance(target uint32) (uint32, bool) {
	if p.valid && p.cur >= target {
		return p.cur, true
	}

	p.it.AdvanceIfNeeded(target)
	if !p.it.HasNext() {
		p.valid = false
		return 0, false
	}

	p.cur = p.it.Next()
	p.valid = true
	return p.cur, true
}

// Doc returns the current document id. Only meaningful after a successful
// Advance.
func (p *PostingsIterator) Doc() uint32 {
	return p.cur
}

// Freq returns the term frequency in the current document.
func (p *PostingsIterator) Freq() int {
	if !p.valid {
		return 0
	}
	return p.freqs[p.cur]
}

// Positions returns the term occurrences in the current document.
// Returns nil unless the iterator was opened with positions enabled.
func (p *PostingsIterator) Positions() []TermPosition {
	if !p.valid || !p.withPosition {
		return nil
	}
	return p.positions[p.cur]
}

// HasPositions reports whether the iterator was opened with positions enabled.
func (p *PostingsIterator) HasPositions() bool {
	return p.withPosition
}
