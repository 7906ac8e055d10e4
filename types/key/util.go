package key

import (
	"encoding/hex"
	"errors"
	"fmt"

	"go4.org/mem"
)

const keyHexPrefix = "key:"

// appendHexKey appends prefix followed by the lowercase hex of key to b.
func appendHexKey(b []byte, prefix string, key []byte) []byte {
	b = append(b, prefix...)
	return hex.AppendEncode(b, key)
}

// parseHex decodes in, which must start with prefix, into out.
// The hex part must be exactly twice len(out) characters.
//
// (Adapted from tailscale)
func parseHex(out []byte, in, prefix mem.RO) error {
	if !mem.HasPrefix(in, prefix) {
		return fmt.Errorf("key hex string doesn't have expected type prefix %s", prefix.StringCopy())
	}
	in = in.SliceFrom(prefix.Len())
	if want := len(out) * 2; in.Len() != want {
		return fmt.Errorf("key hex has the wrong size, got %d want %d", in.Len(), want)
	}
	for i := range out {
		a, ok1 := fromHexChar(in.At(i*2 + 0))
		b, ok2 := fromHexChar(in.At(i*2 + 1))
		if !ok1 || !ok2 {
			return errors.New("invalid hex character in key")
		}
		out[i] = (a << 4) | b
	}
	return nil
}

// fromHexChar converts a hex character into its value and a success flag.
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}
