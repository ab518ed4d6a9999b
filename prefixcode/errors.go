package prefixcode

import (
	"fmt"
	"sort"

	"github.com/Pelfox/discrete-math/entropy"
)

// MissingSymbolError reports the symbols of an input sequence that the
// codec assigns no codeword to.
type MissingSymbolError struct {
	Symbols []entropy.Symbol
}

func (e *MissingSymbolError) Error() string {
	quoted := make([]string, len(e.Symbols))
	for i, s := range e.Symbols {
		quoted[i] = fmt.Sprintf("%q", string(s))
	}
	sort.Strings(quoted)
	return fmt.Sprintf("prefixcode: no codeword for symbols %v", quoted)
}

// CorruptStreamError reports a bitstring that does not decompose into
// complete codewords: either it ends with bits that match no codeword, or
// it contains a character outside the binary alphabet.
type CorruptStreamError struct {
	Trailing string
}

func (e *CorruptStreamError) Error() string {
	return fmt.Sprintf("prefixcode: corrupt stream, unresolved trailing bits %q", e.Trailing)
}
