package index

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/Aman-CERP/termlens/internal/analysis"
)

// posting holds everything recorded for one term within one field of a segment.
type posting struct {
	docs      *roaring.Bitmap
	freqs     map[uint32]int
	positions map[uint32][]TermPosition
	totalFreq int64
}

// fieldData is the per-field build product of a segment: the term dictionary
// with postings, per-document field lengths, and running field statistics.
type fieldData struct {
	postings   map[string]*posting
	docLengths map[uint32]int
	docCount   int64
	sumTTF     int64
}

// segmentData is a sealed, immutable segment.
type segmentData struct {
	id     int
	extIDs []string // local doc id -> external document ID
	fields map[string]*fieldData
}

// segmentBuilder accumulates documents until the segment is sealed.
type segmentBuilder struct {
	id     int
	extIDs []string
	fields map[string]*fieldData
}

func newSegmentBuilder(id int) *segmentBuilder {
	return &segmentBuilder{
		id:     id,
		fields: make(map[string]*fieldData),
	}
}

func (b *segmentBuilder) numDocs() int {
	return len(b.extIDs)
}

// add indexes one analyzed document into the segment. Tokens are keyed by
// field name and must come from the same analyzer for every document.
func (b *segmentBuilder) add(externalID string, analyzed map[string][]analysis.Token) {
	docID := uint32(len(b.extIDs))
	b.extIDs = append(b.extIDs, externalID)

	for field, tokens := range analyzed {
		if len(tokens) == 0 {
			continue
		}

		fd := b.fields[field]
		if fd == nil {
			fd = &fieldData{
				postings:   make(map[string]*posting),
				docLengths: make(map[uint32]int),
			}
			b.fields[field] = fd
		}

		fd.docCount++
		fd.sumTTF += int64(len(tokens))
		fd.docLengths[docID] = len(tokens)

		for _, tok := range tokens {
			p := fd.postings[tok.Term]
			if p == nil {
				p = &posting{
					docs:      roaring.New(),
					freqs:     make(map[uint32]int),
					positions: make(map[uint32][]TermPosition),
				}
				fd.postings[tok.Term] = p
			}
			p.docs.Add(docID)
			p.freqs[docID]++
			p.totalFreq++
			p.positions[docID] = append(p.positions[docID], TermPosition{
				Position:    tok.Position,
				StartOffset: tok.Start,
				EndOffset:   tok.End,
			})
		}
	}
}

// seal freezes the builder into an immutable segment.
func (b *segmentBuilder) seal() *segmentData {
	for _, fd := range b.fields {
		for _, p := range fd.postings {
			p.docs.RunOptimize()
		}
	}
	return &segmentData{
		id:     b.id,
		extIDs: b.extIDs,
		fields: b.fields,
	}
}

// sumDocFreq computes the sum of per-term document frequencies for the field.
func (fd *fieldData) sumDocFreq() int64 {
	var sum int64
	for _, p := range fd.postings {
		sum += int64(p.docs.GetCardinality())
	}
	return sum
}
