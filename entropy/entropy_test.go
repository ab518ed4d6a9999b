package entropy

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestEntropy(t *testing.T) {
	testData := []struct {
		text   string
		expect float64
	}{
		{"", 0},
		{"a", 0},
		{"aaaa", 0},
		{"ab", 1},
		{"aabb", 1},
		{"abcd", 2},
		{"aabbccdd", 2},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			got := Entropy(Count(Unigrams(row.text)))
			if math.Abs(got-row.expect) > tolerance {
				t.Errorf("Entropy(%q) = %v, want %v", row.text, got, row.expect)
			}
		})
	}
}

func TestEntropyProperties(t *testing.T) {
	texts := []string{"", "a", "zzz", "abracadabra", "aaabbbccd", "mississippi"}
	for _, text := range texts {
		c := Count(Unigrams(text))
		h := Entropy(c)
		if h < 0 {
			t.Errorf("Entropy(%q) = %v, negative", text, h)
		}
		if (h == 0) != (c.Len() <= 1) {
			t.Errorf("Entropy(%q) = %v with %d distinct symbols", text, h, c.Len())
		}
		if max := IdealCodeLength(c.Len()); h > max+tolerance {
			t.Errorf("Entropy(%q) = %v exceeds uniform bound %v", text, h, max)
		}
	}
}

func TestIdealCodeLength(t *testing.T) {
	testData := []struct {
		size   int
		expect float64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{4, 2},
		{8, 3},
	}
	for _, row := range testData {
		if got := IdealCodeLength(row.size); math.Abs(got-row.expect) > tolerance {
			t.Errorf("IdealCodeLength(%d) = %v, want %v", row.size, got, row.expect)
		}
	}
}

func TestRedundancy(t *testing.T) {
	// Degenerate code length short-circuits to 0 rather than dividing.
	if got := Redundancy(0, 0); got != 0 {
		t.Errorf("Redundancy(0, 0) = %v, want 0", got)
	}

	c := Count(Unigrams("abracadabra"))
	h := Entropy(c)
	l := IdealCodeLength(c.Len())
	want := 1 - h/l
	if got := Redundancy(h, l); math.Abs(got-want) > tolerance {
		t.Errorf("Redundancy(%v, %v) = %v, want %v", h, l, got, want)
	}
}
