package index

// CollectionStats holds aggregate statistics for one field across a shard.
type CollectionStats struct {
	// DocCount is the number of documents containing the field.
	DocCount int64

	// SumTotalTermFreq is the total number of term occurrences in the field
	// across all documents.
	SumTotalTermFreq int64

	// SumDocFreq is the sum of document frequencies over all terms that
	// appear in the field.
	SumDocFreq int64
}

// TermStats holds shard-level statistics for a single term within a field.
type TermStats struct {
	// DocFreq is the number of documents containing the term.
	DocFreq int64

	// TotalTermFreq is the total number of occurrences of the term.
	TotalTermFreq int64
}

// TermPosition is one occurrence of a term inside a document, with the
// analyzer position and the byte offsets into the original field text.
type TermPosition struct {
	Position    int
	StartOffset int
	EndOffset   int
}
