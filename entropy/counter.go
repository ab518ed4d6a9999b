package entropy

import "sort"

// Symbol is one unit of the alphabet being analyzed: a single character or a
// fixed-width bigram token.
type Symbol string

// Counter accumulates occurrence counts per Symbol.  Unlike a bare map it
// remembers the order in which symbols were first seen, which is what makes
// every downstream ordering (frequency ranking, code construction
// tie-breaks) deterministic.
type Counter struct {
	counts map[Symbol]int
	order  []Symbol
	total  int
}

// Entry is one (symbol, count) pair of a Counter.
type Entry struct {
	Symbol Symbol
	Count  int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[Symbol]int)}
}

// Count builds a Counter over the given token sequence.
func Count(tokens []Symbol) *Counter {
	c := NewCounter()
	for _, tok := range tokens {
		c.Add(tok)
	}
	return c
}

// Add records one occurrence of s.
func (c *Counter) Add(s Symbol) {
	if _, seen := c.counts[s]; !seen {
		c.order = append(c.order, s)
	}
	c.counts[s]++
	c.total++
}

// Get returns the occurrence count for s, zero if s was never added.
func (c *Counter) Get(s Symbol) int {
	return c.counts[s]
}

// Total returns the number of occurrences added across all symbols.
func (c *Counter) Total() int {
	return c.total
}

// Len returns the number of distinct symbols.
func (c *Counter) Len() int {
	return len(c.order)
}

// Symbols returns the distinct symbols in first-seen order.
func (c *Counter) Symbols() []Symbol {
	out := make([]Symbol, len(c.order))
	copy(out, c.order)
	return out
}

// Entries returns (symbol, count) pairs sorted by count descending.  Symbols
// with equal counts keep their first-seen order.  Every ranking in this
// module (Shannon-Fano grouping, frequency filtering) is defined against
// this order.
func (c *Counter) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, s := range c.order {
		entries = append(entries, Entry{Symbol: s, Count: c.counts[s]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Unigrams splits text into single-rune tokens.
func Unigrams(text string) []Symbol {
	runes := []rune(text)
	tokens := make([]Symbol, len(runes))
	for i, r := range runes {
		tokens[i] = Symbol(r)
	}
	return tokens
}

// Bigrams splits text into overlapping two-rune tokens: position i yields
// the token text[i:i+2], so adjacent tokens share one rune.  A text shorter
// than two runes has no bigrams.
func Bigrams(text string) []Symbol {
	runes := []rune(text)
	if len(runes) < 2 {
		return nil
	}
	tokens := make([]Symbol, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		tokens[i] = Symbol(runes[i : i+2])
	}
	return tokens
}

// JoinBigrams reassembles the text that produced an overlapping bigram
// token sequence.  The first token is taken whole; every later token
// overlaps its predecessor by one rune and therefore contributes only its
// last rune.
func JoinBigrams(tokens []Symbol) string {
	if len(tokens) == 0 {
		return ""
	}
	runes := []rune(string(tokens[0]))
	for _, tok := range tokens[1:] {
		rs := []rune(string(tok))
		runes = append(runes, rs[len(rs)-1])
	}
	return string(runes)
}
