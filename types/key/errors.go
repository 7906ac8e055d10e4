package key

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when building a Key from a source that is
	// neither Len nor TestLen bytes long.
	ErrInvalidSize = errors.New("invalid size for a key")

	// ErrUnknownKeyType is returned when decoding a KeyType name or
	// discriminant that does not exist.
	ErrUnknownKeyType = errors.New("unknown key type")

	// ErrMalformedKeyType is returned when a binary KeyType is truncated or
	// carries trailing bytes.
	ErrMalformedKeyType = errors.New("malformed key type")
)

func invalidSize(n int) error {
	return fmt.Errorf("%w: got %d bytes, need %d or %d", ErrInvalidSize, n, Len, TestLen)
}
