package prefixcode

import (
	"strings"

	"github.com/Pelfox/discrete-math/entropy"
)

// Encode concatenates the codeword of each token in input order.  If any
// token has no codeword the encode fails with a *MissingSymbolError naming
// every distinct uncovered symbol.
func Encode(tokens []entropy.Symbol, codec Codec) (string, error) {
	var missing []entropy.Symbol
	seen := make(map[entropy.Symbol]bool)
	for _, tok := range tokens {
		if _, ok := codec[tok]; !ok && !seen[tok] {
			seen[tok] = true
			missing = append(missing, tok)
		}
	}
	if len(missing) > 0 {
		return "", &MissingSymbolError{Symbols: missing}
	}

	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(codec[tok])
	}
	return sb.String(), nil
}

// Decode resolves a bitstring back into the token sequence it encodes.
// Bits accumulate in a buffer that is tested against the codec's inverse
// mapping after every bit; the prefix-free invariant makes the first match
// unambiguous and final, so the buffer resets and decoding continues.  A
// stream that ends with a non-empty unmatched buffer, or that contains a
// character other than '0' or '1', fails with a *CorruptStreamError.
func Decode(bits string, codec Codec) ([]entropy.Symbol, error) {
	inverse := make(map[string]entropy.Symbol, len(codec))
	for sym, word := range codec {
		inverse[word] = sym
	}

	var tokens []entropy.Symbol
	start := 0
	for i := 0; i < len(bits); i++ {
		if b := bits[i]; b != '0' && b != '1' {
			return nil, &CorruptStreamError{Trailing: bits[start : i+1]}
		}
		if sym, ok := inverse[bits[start:i+1]]; ok {
			tokens = append(tokens, sym)
			start = i + 1
		}
	}
	if start != len(bits) {
		return nil, &CorruptStreamError{Trailing: bits[start:]}
	}
	return tokens, nil
}
