// Package analysis turns field text into position-annotated terms for indexing.
//
// The pipeline is built from Bleve analysis components: an identifier-aware
// tokenizer (camelCase and snake_case splitting), the Bleve lowercase token
// filter, and a stop-word token filter.
package analysis

import (
	"strings"

	blevean "github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
)

// Token is a single analyzed term with its position inside the field.
// Positions are 1-based; Start and End are byte offsets into the original text.
type Token struct {
	Term     string
	Position int
	Start    int
	End      int
}

// Analyzer runs the tokenize/filter pipeline over field text.
type Analyzer struct {
	tokenizer blevean.Tokenizer
	filters   []blevean.TokenFilter
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStopWords installs a stop-word filter with the given words.
func WithStopWords(words []string) Option {
	return func(a *Analyzer) {
		if len(words) > 0 {
			a.filters = append(a.filters, &stopTokenFilter{stopWords: BuildStopWordMap(words)})
		}
	}
}

// WithMinTokenLength drops tokens shorter than n runes (default 2).
func WithMinTokenLength(n int) Option {
	return func(a *Analyzer) {
		if t, ok := a.tokenizer.(*identifierTokenizer); ok {
			t.minLength = n
		}
	}
}

// NewAnalyzer creates the default analyzer: identifier tokenizer,
// lowercase filter, then any configured stop-word filter.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		tokenizer: &identifierTokenizer{minLength: 2},
		filters:   []blevean.TokenFilter{lowercase.NewLowerCaseFilter()},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the pipeline and returns the surviving tokens.
// Stop-word removal leaves position gaps, matching standard phrase semantics.
func (a *Analyzer) Analyze(text string) []Token {
	stream := a.tokenizer.Tokenize([]byte(text))
	for _, f := range a.filters {
		stream = f.Filter(stream)
	}

	tokens := make([]Token, 0, len(stream))
	for _, t := range stream {
		tokens = append(tokens, Token{
			Term:     string(t.Term),
			Position: t.Position,
			Start:    t.Start,
			End:      t.End,
		})
	}
	return tokens
}

// identifierTokenizer implements blevean.Tokenizer with code-aware splitting.
type identifierTokenizer struct {
	minLength int
}

// Tokenize implements blevean.Tokenizer.
func (t *identifierTokenizer) Tokenize(input []byte) blevean.TokenStream {
	text := string(input)

	result := make(blevean.TokenStream, 0, 16)
	pos := 1

	for _, span := range tokenRegex.FindAllStringIndex(text, -1) {
		word := text[span[0]:span[1]]
		offset := span[0]
		for _, sub := range SplitToken(word) {
			start := offset + strings.Index(text[offset:span[1]], sub)
			end := start + len(sub)
			offset = end
			if len(sub) < t.minLength {
				continue
			}
			result = append(result, &blevean.Token{
				Term:     []byte(sub),
				Start:    start,
				End:      end,
				Position: pos,
				Type:     blevean.AlphaNumeric,
			})
			pos++
		}
	}

	return result
}

// stopTokenFilter implements blevean.TokenFilter for stop-word removal.
type stopTokenFilter struct {
	stopWords map[string]struct{}
}

// Filter implements blevean.TokenFilter.
func (f *stopTokenFilter) Filter(input blevean.TokenStream) blevean.TokenStream {
	result := make(blevean.TokenStream, 0, len(input))
	for _, token := range input {
		if _, isStop := f.stopWords[strings.ToLower(string(token.Term))]; !isStop {
			result = append(result, token)
		}
	}
	return result
}
