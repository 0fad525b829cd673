package index

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Aman-CERP/termlens/internal/analysis"
	"github.com/Aman-CERP/termlens/internal/errors"
)

const (
	defaultMaxSegmentDocs = 128
	defaultFieldCacheSize = 8
)

// Writer builds segments from documents.
//
// Documents accumulate in the current segment until it reaches the document
// budget, at which point the segment is sealed and a fresh one started.
// Safe for concurrent use.
type Writer struct {
	analyzer       *analysis.Analyzer
	maxSegmentDocs int
	fieldCacheSize int

	mu      sync.Mutex
	sealed  []*segmentData
	current *segmentBuilder
	nextID  int
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithAnalyzer sets the analyzer used for all fields.
func WithAnalyzer(a *analysis.Analyzer) WriterOption {
	return func(w *Writer) {
		w.analyzer = a
	}
}

// WithMaxSegmentDocs sets the number of documents per segment before sealing.
func WithMaxSegmentDocs(n int) WriterOption {
	return func(w *Writer) {
		if n > 0 {
			w.maxSegmentDocs = n
		}
	}
}

// WithFieldCacheSize sets the per-segment LRU size for field dictionary views.
func WithFieldCacheSize(n int) WriterOption {
	return func(w *Writer) {
		if n > 0 {
			w.fieldCacheSize = n
		}
	}
}

// NewWriter creates a Writer with the default analyzer unless overridden.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		analyzer:       analysis.NewAnalyzer(),
		maxSegmentDocs: defaultMaxSegmentDocs,
		fieldCacheSize: defaultFieldCacheSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.current = newSegmentBuilder(w.nextID)
	return w
}

// Add analyzes and indexes a single document.
func (w *Writer) Add(doc Document) error {
	if doc.ID == "" {
		return errors.InvalidArgument("document ID must not be empty")
	}

	analyzed := w.analyze(doc)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.add(doc.ID, analyzed)
	return nil
}

// AddBatch analyzes documents concurrently, then applies them to segments in
// input order so that doc id assignment stays deterministic.
func (w *Writer) AddBatch(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	analyzed := make([]map[string][]analysis.Token, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, doc := range docs {
		if doc.ID == "" {
			return errors.InvalidArgument("document ID must not be empty")
		}
		i, doc := i, doc // per-iteration copies; go directive < 1.22 shares loop vars
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			analyzed[i] = w.analyze(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i, doc := range docs {
		w.add(doc.ID, analyzed[i])
	}

	slog.Debug("batch_indexed",
		slog.Int("docs", len(docs)),
		slog.Int("sealed_segments", len(w.sealed)))
	return nil
}

// Reader seals the current segment if it has documents and returns a
// point-in-time view over everything indexed so far.
func (w *Writer) Reader() *Reader {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current.numDocs() > 0 {
		w.seal()
	}

	segments := make([]*SegmentReader, len(w.sealed))
	for i, seg := range w.sealed {
		segments[i] = newSegmentReader(seg, w.fieldCacheSize)
	}
	return &Reader{segments: segments}
}

func (w *Writer) analyze(doc Document) map[string][]analysis.Token {
	analyzed := make(map[string][]analysis.Token, len(doc.Fields))
	for field, text := range doc.Fields {
		analyzed[field] = w.analyzer.Analyze(text)
	}
	return analyzed
}

// add applies one analyzed document. Caller holds w.mu.
func (w *Writer) add(externalID string, analyzed map[string][]analysis.Token) {
	w.current.add(externalID, analyzed)
	if w.current.numDocs() >= w.maxSegmentDocs {
		w.seal()
	}
}

// seal freezes the current segment and starts a new one. Caller holds w.mu.
func (w *Writer) seal() {
	seg := w.current.seal()
	w.sealed = append(w.sealed, seg)
	w.nextID++
	w.current = newSegmentBuilder(w.nextID)

	slog.Debug("segment_sealed",
		slog.Int("segment", seg.id),
		slog.Int("docs", len(seg.extIDs)),
		slog.Int("fields", len(seg.fields)))
}
