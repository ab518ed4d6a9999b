package prefixcode

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack converts a textual bitstring into packed bytes, first bit in the
// most significant position, final partial byte zero-padded.  Pair it with
// Unpack and the original bit count to get the bitstring back; decode
// semantics are unchanged by the packed detour.
func Pack(bits string) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			if err := w.WriteBool(false); err != nil {
				return nil, err
			}
		case '1':
			if err := w.WriteBool(true); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("prefixcode: invalid bit character %q", bits[i])
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack restores the first n bits of packed data to a textual bitstring.
func Unpack(data []byte, n int) (string, error) {
	if n > 8*len(data) {
		return "", fmt.Errorf("prefixcode: %d bits requested from %d bytes", n, len(data))
	}
	r := bitio.NewReader(bytes.NewReader(data))
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if b {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return string(bits), nil
}
