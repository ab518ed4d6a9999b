package entropy

import "math"

// Mode selects which end of the frequency ranking RemoveByFrequency drops.
type Mode int

const (
	// Top removes the most frequent symbols.
	Top Mode = iota
	// Bottom removes the least frequent symbols.
	Bottom
)

func (m Mode) String() string {
	switch m {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// RemoveByFrequency drops every occurrence of the frac-th share of the
// alphabet from tokens, ranked by count.  At least one symbol is always
// removed: removeCount = max(1, round(frac * distinct)).  Top removes the
// removeCount highest-ranked symbols, Bottom the lowest-ranked; symbols
// with equal counts rank in first-seen order, same as Counter.Entries.
// The returned sequence preserves the order and multiplicity of the
// retained tokens.  An empty sequence comes back unchanged.
func RemoveByFrequency(tokens []Symbol, mode Mode, frac float64) ([]Symbol, map[Symbol]bool) {
	c := Count(tokens)
	if c.Len() == 0 {
		return tokens, map[Symbol]bool{}
	}

	removeCount := int(math.Round(frac * float64(c.Len())))
	if removeCount < 1 {
		removeCount = 1
	}
	if removeCount > c.Len() {
		removeCount = c.Len()
	}

	entries := c.Entries()
	removed := make(map[Symbol]bool, removeCount)
	switch mode {
	case Top:
		for _, e := range entries[:removeCount] {
			removed[e.Symbol] = true
		}
	case Bottom:
		for _, e := range entries[len(entries)-removeCount:] {
			removed[e.Symbol] = true
		}
	}

	filtered := make([]Symbol, 0, len(tokens))
	for _, tok := range tokens {
		if !removed[tok] {
			filtered = append(filtered, tok)
		}
	}
	return filtered, removed
}
