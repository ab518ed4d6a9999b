// Package shannonfano builds prefix-free codes by top-down recursive
// partitioning of the frequency-ranked alphabet.
package shannonfano

import (
	"github.com/chronos-tachyon/assert"

	"github.com/Pelfox/discrete-math/entropy"
	"github.com/Pelfox/discrete-math/prefixcode"
)

// Build constructs a prefix-free codec for the counter's alphabet.
//
// The alphabet is ordered by count descending, equal counts keeping their
// first-seen order, and then split recursively: each group is cut at the
// first prefix position whose accumulated weight reaches at least half the
// group's total.  Codewords under the left part gain a '0', under the right
// part a '1', until every group is a single symbol.  The ordering rule makes
// the resulting code lengths fully deterministic.
//
// The counter must hold at least two distinct symbols; a one-symbol
// alphabet is the degenerate case handled upstream without a codec.
func Build(c *entropy.Counter) prefixcode.Codec {
	assert.Assertf(c.Len() >= 2, "shannonfano.Build requires >= 2 distinct symbols, got %d", c.Len())

	codec := make(prefixcode.Codec, c.Len())
	split(c.Entries(), "", codec)
	return codec
}

func split(group []entropy.Entry, prefix string, codec prefixcode.Codec) {
	if len(group) == 1 {
		codec[group[0].Symbol] = prefix
		return
	}

	total := 0
	for _, e := range group {
		total += e.Count
	}

	// With the group in descending order the accumulated weight always
	// crosses half before the last element, so both parts are non-empty.
	acc := 0
	cut := 0
	for i, e := range group {
		acc += e.Count
		if 2*acc >= total {
			cut = i + 1
			break
		}
	}

	split(group[:cut], prefix+"0", codec)
	split(group[cut:], prefix+"1", codec)
}
