// Package entropy derives frequency statistics and information-theoretic
// metrics (Shannon entropy, uniform code length, redundancy) from symbol
// sequences, and filters sequences by symbol frequency.
package entropy

import "math"

// Entropy computes the Shannon entropy of the frequency distribution in
// bits per symbol.  An empty counter, or one holding a single distinct
// symbol, has entropy 0.
func Entropy(c *Counter) float64 {
	total := float64(c.Total())
	if total == 0 {
		return 0
	}
	var h float64
	for _, s := range c.order {
		p := float64(c.counts[s]) / total
		h += -p * math.Log2(p)
	}
	return h
}

// IdealCodeLength returns the bits-per-symbol cost of a fixed-length
// uniform code over an alphabet of the given size: log2(alphabetSize).
// Degenerate alphabets of size 0 or 1 cost 0 bits, keeping the logarithm
// out of its singularity.
func IdealCodeLength(alphabetSize int) float64 {
	if alphabetSize <= 1 {
		return 0
	}
	return math.Log2(float64(alphabetSize))
}

// Redundancy returns the fractional gap between a uniform code of the given
// length and the entropy bound: 1 - entropy/codeLength.  A degenerate code
// length of 0 yields redundancy 0.
func Redundancy(entropy, codeLength float64) float64 {
	if codeLength <= 0 {
		return 0
	}
	return 1 - entropy/codeLength
}
