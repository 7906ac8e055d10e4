package key

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

const (
	// Len is the size of every Key.
	Len = 32

	// TestLen is the short width accepted by FromBytes, zero-padded up to Len.
	TestLen = 8
)

// Key is a fixed-size opaque identifier, used as a handle for signing keys and
// other ledger entities.
//
// The bytes are never interpreted. Keys order byte-lexicographically, and can
// be compared with == and used as map keys.
type Key [Len]byte

// FromArray returns the Key holding exactly a.
func FromArray(a [Len]byte) Key {
	return a
}

// FromBytes copies b into a new Key.
//
// b must be either Len or TestLen bytes long, in the latter case the
// remaining bytes of the Key are zero. Any other length returns an error
// wrapping ErrInvalidSize. b is not retained.
func FromBytes(b []byte) (Key, error) {
	var k Key

	switch len(b) {
	case Len:
		copy(k[:], b)
	case TestLen:
		copy(k[:TestLen], b)
		clear(k[TestLen:])
	default:
		return Key{}, invalidSize(len(b))
	}

	return k, nil
}

// FromBytesStrict is like FromBytes, but only accepts the full Len width.
func FromBytesStrict(b []byte) (Key, error) {
	if len(b) != Len {
		return Key{}, invalidSize(len(b))
	}

	return Key(b), nil
}

// FromString returns the Key built from the raw bytes of s, see FromBytes.
func FromString(s string) (Key, error) {
	return FromBytes([]byte(s))
}

// MustFromBytes is like FromBytes, but panics on error.
//
// Intended for tests and package-level values.
func MustFromBytes(b []byte) Key {
	k, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return k
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Key {
	k, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b.
func Compare(a, b Key) int {
	return bytes.Compare(a[:], b[:])
}

func (k Key) Compare(other Key) int {
	return Compare(k, other)
}

// Less reports whether k sorts before other.
func (k Key) Less(other Key) bool {
	return Compare(k, other) < 0
}

// Equal reports whether k and other hold the same bytes.
func (k Key) Equal(other Key) bool {
	return k == other
}

// EqualBytes reports whether b denotes k.
//
// A Len-byte b must match k exactly, a TestLen-byte b must match the
// first TestLen bytes of k while the rest of k is zero. Any other length is
// never equal.
func (k Key) EqualBytes(b []byte) bool {
	switch len(b) {
	case Len:
		return bytes.Equal(k[:], b)
	case TestLen:
		return bytes.Equal(k[:TestLen], b) && k.IsTestWidth()
	default:
		return false
	}
}

// IsTestWidth reports whether everything past the first TestLen bytes is zero.
func (k Key) IsTestWidth() bool {
	var zero [Len - TestLen]byte
	return bytes.Equal(k[TestLen:], zero[:])
}

// IsZero reports whether k is the zero value.
func (k Key) IsZero() bool {
	return k == Key{}
}

// Bytes returns a copy of the key bytes.
func (k Key) Bytes() []byte {
	b := make([]byte, Len)
	copy(b, k[:])
	return b
}

func (k Key) Array() [Len]byte {
	return k
}

func (k Key) Debug() string {
	return fmt.Sprintf("%x", k[:])
}

func (k Key) HexString() string {
	return hex.EncodeToString(k[:])
}

// String returns the prefixed text form of k, see MarshalText.
func (k Key) String() string {
	b, _ := k.MarshalText()
	return string(b)
}
