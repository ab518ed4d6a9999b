package huffman

import (
	"github.com/Pelfox/discrete-math/entropy"
	"github.com/Pelfox/discrete-math/prefixcode"
)

// DecodeTree resolves a bitstring by walking the code tree: '1' descends
// left and '0' right, mirroring the edge bits Build assigns.  Reaching a
// leaf emits its symbol and restarts from the root.  A stream that ends
// mid-descent, or contains a non-binary character, fails with a
// *prefixcode.CorruptStreamError.
func DecodeTree(bits string, root *Node) ([]entropy.Symbol, error) {
	var tokens []entropy.Symbol

	if root.Leaf() {
		// Single-leaf tree: the lone symbol has codeword "0".
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return nil, &prefixcode.CorruptStreamError{Trailing: bits[i : i+1]}
			}
			tokens = append(tokens, root.Symbol)
		}
		return tokens, nil
	}

	current := root
	start := 0
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '1':
			current = current.Left
		case '0':
			current = current.Right
		default:
			return nil, &prefixcode.CorruptStreamError{Trailing: bits[start : i+1]}
		}
		if current.Leaf() {
			tokens = append(tokens, current.Symbol)
			current = root
			start = i + 1
		}
	}
	if current != root {
		return nil, &prefixcode.CorruptStreamError{Trailing: bits[start:]}
	}
	return tokens, nil
}
