package prefixcode

import "github.com/Pelfox/discrete-math/entropy"

// AverageLength returns the expected codeword length in bits per symbol
// under the counter's frequency distribution: Σ (count[s]/total)·len(code[s])
// over the symbols present in both.
func AverageLength(codec Codec, c *entropy.Counter) float64 {
	total := float64(c.Total())
	if total == 0 {
		return 0
	}
	var avg float64
	for sym, word := range codec {
		avg += float64(c.Get(sym)) / total * float64(len(word))
	}
	return avg
}

// Efficiency relates the entropy bound to the achieved average codeword
// length: entropy/avgLength.  A perfect code scores 1.  A degenerate
// average length of 0 yields 0.
func Efficiency(entropyBits, avgLength float64) float64 {
	if avgLength <= 0 {
		return 0
	}
	return entropyBits / avgLength
}
