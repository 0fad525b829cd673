package lookup

import (
	"github.com/Aman-CERP/termlens/internal/errors"
	"github.com/Aman-CERP/termlens/internal/index"
)

// TermCursor is a per-term postings cursor scoped to one lookup session.
//
// Shard-level statistics (document frequency, total term frequency) are
// fetched once at creation. Per-document data (term frequency, positions)
// tracks the segment and document pushed in through SetNextReader and
// SetNextDoc.
type TermCursor struct {
	term  string
	field string
	flags Flags
	stats index.TermStats

	postings  Postings // nil while the term is absent from the current segment
	curDoc    int
	freq      int
	positions []index.TermPosition
}

// newTermCursor creates a cursor and, when the session has already received
// context, seeks it to the current segment and document.
func newTermCursor(term, field string, flags Flags, searcher Searcher, seg Segment, docID int) (*TermCursor, error) {
	stats, err := searcher.TermStatistics(field, term)
	if err != nil {
		return nil, errors.HandleCreate(term, err).WithDetail("field", field)
	}

	c := &TermCursor{
		term:   term,
		field:  field,
		flags:  flags,
		stats:  stats,
		curDoc: -1,
	}

	if seg != nil {
		if err := c.SetNextReader(seg); err != nil {
			return nil, err
		}
		if docID >= 0 {
			if err := c.SetNextDoc(docID); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Text returns the term text.
func (c *TermCursor) Text() string {
	return c.term
}

// Field returns the field the cursor reads from.
func (c *TermCursor) Field() string {
	return c.field
}

// Flags returns the capability set the cursor was created with.
func (c *TermCursor) Flags() Flags {
	return c.flags
}

// Df returns the shard-level document frequency of the term.
func (c *TermCursor) Df() int64 {
	return c.stats.DocFreq
}

// Ttf returns the shard-level total term frequency of the term.
func (c *TermCursor) Ttf() int64 {
	return c.stats.TotalTermFreq
}

// Tf returns the term frequency in the current document, zero when the term
// does not occur in it.
func (c *TermCursor) Tf() int {
	return c.freq
}

// Positions returns the term's occurrences in the current document.
// Fails with FLAGS_MISMATCH unless the cursor was created with FlagPositions.
func (c *TermCursor) Positions() ([]index.TermPosition, error) {
	if !c.flags.Has(FlagPositions) {
		return nil, errors.FlagsMismatch(
			"positions were not requested when the term handle was created")
	}
	return c.positions, nil
}

// ValidateFlags checks a re-request's flags against the cursor's capabilities.
func (c *TermCursor) ValidateFlags(requested Flags) error {
	return c.flags.Validate(requested)
}

// SetNextReader re-seeks the cursor in a new segment. Previously computed
// capabilities are kept; per-document state resets until the next SetNextDoc.
func (c *TermCursor) SetNextReader(seg Segment) error {
	if seg == nil {
		return errors.InvalidArgument("segment must not be nil")
	}

	postings, err := seg.TermDocs(c.field, c.term, c.needsPositions())
	if err != nil {
		return errors.SeekFailed(c.term, err).WithDetail("field", c.field)
	}

	c.postings = postings
	c.curDoc = -1
	c.freq = 0
	c.positions = nil
	return nil
}

// SetNextDoc advances the cursor to a document within the current segment.
// Re-applying the current document id is a no-op. Documents without the term
// yield tf=0 and no positions.
func (c *TermCursor) SetNextDoc(docID int) error {
	if docID < 0 {
		return errors.InvalidArgument("document id must not be negative")
	}
	if docID == c.curDoc {
		return nil
	}

	c.curDoc = docID
	c.freq = 0
	c.positions = nil

	if c.postings == nil {
		return nil
	}

	doc, ok, err := c.postings.Advance(uint32(docID))
	if err != nil {
		return errors.SeekFailed(c.term, err).WithDetail("field", c.field)
	}
	if ok && doc == uint32(docID) {
		c.freq = c.postings.Freq()
		if c.needsPositions() {
			c.positions = c.postings.Positions()
		}
	}
	return nil
}

func (c *TermCursor) needsPositions() bool {
	return c.flags.Has(FlagPositions) || c.flags.Has(FlagOffsets)
}
