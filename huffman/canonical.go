package huffman

import (
	"fmt"
	"sort"

	"github.com/Pelfox/discrete-math/entropy"
	"github.com/Pelfox/discrete-math/prefixcode"
)

// Canonical reassigns the bits of a codec into canonical form while keeping
// every codeword length: symbols are ordered by (length, symbol) and numbered
// sequentially, shifting left each time the length grows.  Two parties that
// agree on the lengths can therefore reconstruct identical bits.  The result
// is prefix-free whenever the input was and decodes with the same average
// length and efficiency.
func Canonical(codec prefixcode.Codec) prefixcode.Codec {
	type symbolAndSize struct {
		symbol entropy.Symbol
		size   int
	}
	sorted := make([]symbolAndSize, 0, len(codec))
	for sym, word := range codec {
		sorted = append(sorted, symbolAndSize{symbol: sym, size: len(word)})
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.size != b.size {
			return a.size < b.size
		}
		return a.symbol < b.symbol
	})

	out := make(prefixcode.Codec, len(codec))
	if len(sorted) == 0 {
		return out
	}

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= uint(item.size - lastSize)
			lastSize = item.size
		}
		out[item.symbol] = fmt.Sprintf("%0*b", item.size, nextCode)
		nextCode++
	}
	return out
}
