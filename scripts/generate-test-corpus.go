//go:build ignore

// Package main generates a synthetic JSON-lines corpus for benchmarking.
// Usage: go run scripts/generate-test-corpus.go -docs 10000 -output testdata/bench.jsonl
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var (
	numDocs = flag.Int("docs", 10000, "Number of documents to generate")
	output  = flag.String("output", "testdata/bench.jsonl", "Output file")
	seed    = flag.Int64("seed", 42, "Random seed for reproducibility")
)

// vocabulary follows a rough Zipf shape: early words occur far more often.
var vocabulary = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"search", "index", "segment", "term", "field", "document", "score",
	"frequency", "position", "offset", "reader", "writer", "cache",
	"lookup", "statistics", "postings", "shard", "query", "token",
	"analyzer", "corpus", "ranking", "relevance", "retrieval",
}

type document struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "cannot create output directory: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	enc := json.NewEncoder(w)
	for i := 0; i < *numDocs; i++ {
		doc := document{
			ID: fmt.Sprintf("doc-%06d", i),
			Fields: map[string]string{
				"title": sentence(rng, 3+rng.Intn(5)),
				"body":  sentence(rng, 20+rng.Intn(180)),
			},
		}
		if err := enc.Encode(doc); err != nil {
			fmt.Fprintf(os.Stderr, "cannot write document: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("wrote %d documents to %s\n", *numDocs, *output)
}

// sentence draws n words with a bias toward the front of the vocabulary.
func sentence(rng *rand.Rand, n int) string {
	words := make([]string, n)
	for i := range words {
		// Square the draw to skew toward low indexes
		r := rng.Float64()
		idx := int(r * r * float64(len(vocabulary)))
		if idx >= len(vocabulary) {
			idx = len(vocabulary) - 1
		}
		words[i] = vocabulary[idx]
	}
	return strings.Join(words, " ")
}
