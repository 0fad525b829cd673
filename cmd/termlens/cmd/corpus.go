package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Aman-CERP/termlens/internal/analysis"
	"github.com/Aman-CERP/termlens/internal/config"
	"github.com/Aman-CERP/termlens/internal/errors"
	"github.com/Aman-CERP/termlens/internal/index"
)

// loadCorpus reads a JSON-lines corpus, one document per line:
//
//	{"id": "doc-1", "fields": {"body": "quick brown fox"}}
func loadCorpus(path string) ([]index.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.ErrCodeCorpusNotFound,
			fmt.Sprintf("cannot open corpus file %s", path), err).
			WithSuggestion("pass an existing JSON-lines file via --corpus")
	}
	defer func() { _ = f.Close() }()

	var docs []index.Document
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var doc index.Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			return nil, errors.New(errors.ErrCodeCorpusInvalid,
				fmt.Sprintf("invalid document on line %d of %s", lineNo, path), err)
		}
		if doc.ID == "" {
			return nil, errors.New(errors.ErrCodeCorpusInvalid,
				fmt.Sprintf("document on line %d of %s has no id", lineNo, path), nil)
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New(errors.ErrCodeCorpusInvalid,
			fmt.Sprintf("cannot read corpus file %s", path), err)
	}

	return docs, nil
}

// buildReader indexes the corpus with the configured analyzer and segment
// layout and returns the shard reader.
func buildReader(ctx context.Context, cfg *config.Config, docs []index.Document) (*index.Reader, error) {
	analyzer := analysis.NewAnalyzer(
		analysis.WithMinTokenLength(cfg.Analysis.MinTokenLength),
		analysis.WithStopWords(cfg.Analysis.StopWords),
	)
	w := index.NewWriter(
		index.WithAnalyzer(analyzer),
		index.WithMaxSegmentDocs(cfg.Index.MaxSegmentDocs),
		index.WithFieldCacheSize(cfg.Index.FieldCacheSize),
	)
	if err := w.AddBatch(ctx, docs); err != nil {
		return nil, err
	}
	return w.Reader(), nil
}
