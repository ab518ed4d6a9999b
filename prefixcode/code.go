// Package prefixcode encodes and decodes symbol sequences with prefix-free
// binary codes.  Codewords and encoded streams are textual bitstrings over
// the digits '0' and '1'; Pack and Unpack convert a bitstring to and from a
// packed byte form without changing decode semantics.
package prefixcode

import (
	"math"
	"strings"

	"github.com/Pelfox/discrete-math/entropy"
)

// Codec maps each symbol of the alphabet to its binary codeword.  A usable
// Codec is injective and prefix-free: no codeword is a proper prefix of
// another, which is what lets Decode resolve a stream left to right with no
// backtracking.
type Codec map[entropy.Symbol]string

// IsPrefixFree reports whether no codeword in the codec is a prefix of
// another (a codeword duplicated under two symbols also fails, as a prefix
// of itself).
func (c Codec) IsPrefixFree() bool {
	words := make([]string, 0, len(c))
	for _, w := range c {
		words = append(words, w)
	}
	for i, a := range words {
		for j, b := range words {
			if i != j && strings.HasPrefix(b, a) {
				return false
			}
		}
	}
	return true
}

// KraftSum returns Σ 2^(-len(codeword)) over the codec.  A complete
// prefix-free code sums to exactly 1; any prefix-free code sums to at
// most 1.
func (c Codec) KraftSum() float64 {
	var sum float64
	for _, w := range c {
		sum += math.Pow(2, -float64(len(w)))
	}
	return sum
}
