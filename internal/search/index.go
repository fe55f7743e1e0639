// Package search provides a small, deterministic, concurrency-safe
// in-memory index over medication text. It has no dependencies on storage
// and does no logging; callers build an index from documents and query it.
//
//   - Functional options (Option pattern)
//   - Unicode-aware tokenization with full case folding (golang.org/x/text)
//   - Immutable after construction, so safe for concurrent use
//   - Deterministic scoring and stable ordering for ties
//
// Scoring is Jaccard similarity between the query token set Q and a
// document token set D, score = |Q ∩ D| / |Q ∪ D|, where a query token of
// at least three runes also matches any document token it prefixes
// ("ibu" finds "ibuprofen"). A document whose name covers every query
// token gets NameBoost added, so name hits outrank mentions elsewhere.
package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// NameBoost is added to the score of documents whose name matches every
// query token.
const NameBoost = 1.0

// minPrefixRunes is the shortest query token allowed to prefix-match.
const minPrefixRunes = 3

// Document is one searchable unit.
type Document struct {
	ID   int64
	Name string
	Text string
}

// Result is a ranked document with its score.
type Result struct {
	ID    int64
	Name  string
	Score float64
}

// Index is the minimal interface implemented by all search indices.
type Index interface {
	TopK(query string, k int) []Result
	Len() int
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	stopwords map[string]struct{}
	maxDocs   int
}

func defaultConfig() config {
	return config{}
}

// WithStopwords drops the given words from documents and queries.
func WithStopwords(words []string) Option {
	return func(c *config) {
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			w = fold(strings.TrimSpace(w))
			if w != "" {
				m[w] = struct{}{}
			}
		}
		if len(m) > 0 {
			c.stopwords = m
		}
	}
}

// WithMaxDocs caps how many documents are indexed.
func WithMaxDocs(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDocs = n
		}
	}
}

// ----------------------------------------------------------------------------
// Implementation

type doc struct {
	id    int64
	name  string
	names map[string]struct{}
	toks  map[string]struct{}
}

type index struct {
	cfg  config
	docs []doc
}

// NewIndex builds an Index from docs. Documents without any token are skipped.
func NewIndex(docs []Document, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	out := make([]doc, 0, len(docs))
	for _, d := range docs {
		names := tokenize(d.Name, cfg.stopwords)
		toks := tokenize(d.Name+" "+d.Text, cfg.stopwords)
		if len(toks) == 0 {
			continue
		}
		out = append(out, doc{id: d.ID, name: d.Name, names: names, toks: toks})
		if cfg.maxDocs > 0 && len(out) >= cfg.maxDocs {
			break
		}
	}
	return &index{cfg: cfg, docs: out}
}

func (i *index) Len() int { return len(i.docs) }

// TopK returns up to k best-matching documents. k <= 0 means 10.
// Ties are broken by document id.
func (i *index) TopK(q string, k int) []Result {
	if len(i.docs) == 0 || strings.TrimSpace(q) == "" {
		return nil
	}
	if k <= 0 {
		k = 10
	}
	qTokens := tokenize(q, i.cfg.stopwords)
	if len(qTokens) == 0 {
		return nil
	}

	buf := make([]Result, 0, min(k*4, len(i.docs)))
	for _, d := range i.docs {
		over := matched(qTokens, d.toks)
		if over == 0 {
			continue
		}
		union := float64(len(qTokens) + len(d.toks) - over)
		if union <= 0 {
			continue
		}
		score := float64(over) / union
		if matched(qTokens, d.names) == len(qTokens) {
			score += NameBoost
		}
		buf = append(buf, Result{ID: d.id, Name: d.name, Score: score})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].Score != buf[b].Score {
			return buf[a].Score > buf[b].Score
		}
		return buf[a].ID < buf[b].ID
	})

	if k > len(buf) {
		k = len(buf)
	}
	return buf[:k]
}

// ----------------------------------------------------------------------------
// Helpers

var wordRE = regexp.MustCompile(`[\p{L}\p{N}]+`)

// fold applies Unicode full case folding. A Caser keeps state, so each
// call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := wordRE.FindAllString(fold(s), -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if stop != nil {
			if _, skip := stop[w]; skip {
				continue
			}
		}
		out[w] = struct{}{}
	}
	return out
}

// matched counts query tokens found in doc, exactly or as a prefix.
func matched(query, doc map[string]struct{}) int {
	if len(query) == 0 || len(doc) == 0 {
		return 0
	}
	n := 0
	for q := range query {
		if _, ok := doc[q]; ok {
			n++
			continue
		}
		if utf8.RuneCountInString(q) < minPrefixRunes {
			continue
		}
		for d := range doc {
			if strings.HasPrefix(d, q) {
				n++
				break
			}
		}
	}
	return n
}
