package entropy

import (
	"reflect"
	"testing"
)

func TestCounter(t *testing.T) {
	c := Count(Unigrams("abracadabra"))

	if got := c.Total(); got != 11 {
		t.Errorf("Total() = %d, want 11", got)
	}
	if got := c.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	expectCounts := map[Symbol]int{"a": 5, "b": 2, "r": 2, "c": 1, "d": 1}
	for sym, want := range expectCounts {
		if got := c.Get(sym); got != want {
			t.Errorf("Get(%q) = %d, want %d", sym, got, want)
		}
	}
	if got := c.Get("z"); got != 0 {
		t.Errorf("Get(%q) = %d, want 0", "z", got)
	}

	expectOrder := []Symbol{"a", "b", "r", "c", "d"}
	if got := c.Symbols(); !reflect.DeepEqual(got, expectOrder) {
		t.Errorf("Symbols() = %v, want %v", got, expectOrder)
	}
}

func TestCounterEntriesStableTies(t *testing.T) {
	// b and r tie at 2, c and d tie at 1; ties must keep first-seen order.
	c := Count(Unigrams("abracadabra"))

	expect := []Entry{
		{Symbol: "a", Count: 5},
		{Symbol: "b", Count: 2},
		{Symbol: "r", Count: 2},
		{Symbol: "c", Count: 1},
		{Symbol: "d", Count: 1},
	}
	if got := c.Entries(); !reflect.DeepEqual(got, expect) {
		t.Errorf("Entries() = %v, want %v", got, expect)
	}
}

func TestBigrams(t *testing.T) {
	// Texts shorter than two runes have no bigrams, so their join is empty
	// rather than the original text.
	testData := []struct {
		text   string
		tokens []Symbol
		joined string
	}{
		{"", nil, ""},
		{"a", nil, ""},
		{"ab", []Symbol{"ab"}, "ab"},
		{"abab", []Symbol{"ab", "ba", "ab"}, "abab"},
		{"abracadabra", []Symbol{"ab", "br", "ra", "ac", "ca", "ad", "da", "ab", "br", "ra"}, "abracadabra"},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			got := Bigrams(row.text)
			if !reflect.DeepEqual(got, row.tokens) {
				t.Errorf("Bigrams(%q) = %v, want %v", row.text, got, row.tokens)
			}
			if joined := JoinBigrams(got); joined != row.joined {
				t.Errorf("JoinBigrams(Bigrams(%q)) = %q, want %q", row.text, joined, row.joined)
			}
		})
	}
}

func TestJoinBigramsOverlap(t *testing.T) {
	// The first token is emitted whole; later tokens contribute only their
	// last rune.  Pair concatenation would produce "abbrra..." instead.
	tokens := []Symbol{"ab", "br", "ra"}
	if got := JoinBigrams(tokens); got != "abra" {
		t.Errorf("JoinBigrams(%v) = %q, want %q", tokens, got, "abra")
	}
}
