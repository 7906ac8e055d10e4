package key

import "fmt"

// Binary layout:
//   Key:     32 raw bytes, no length prefix.
//   KeyType: Kind (1) + Tag (1, only for KindCustom).

// AppendBinary appends the raw Len bytes of k to b.
func (k Key) AppendBinary(b []byte) ([]byte, error) {
	return append(b, k[:]...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (k Key) MarshalBinary() ([]byte, error) {
	return k.AppendBinary(make([]byte, 0, Len))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Only the full Len width is accepted on the wire.
func (k *Key) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytesStrict(b)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// EncodedLen returns the number of bytes the binary form of t takes.
func (t KeyType) EncodedLen() int {
	if t.kind == KindCustom {
		return 2
	}
	return 1
}

func (t KeyType) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, byte(t.kind))
	if t.kind == KindCustom {
		b = append(b, t.tag)
	}
	return b, nil
}

func (t KeyType) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, t.EncodedLen()))
}

func (t *KeyType) UnmarshalBinary(b []byte) error {
	parsed, n, err := DecodeKeyType(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedKeyType, len(b)-n)
	}
	*t = parsed
	return nil
}

// DecodeKeyType decodes a KeyType from the start of b, and returns it
// together with the amount of bytes consumed.
func DecodeKeyType(b []byte) (KeyType, int, error) {
	if len(b) < 1 {
		return KeyType{}, 0, fmt.Errorf("%w: empty", ErrMalformedKeyType)
	}

	kind := Kind(b[0])
	switch kind {
	case KindExternal, KindIdentity, KindMultisig, KindRelayer:
		return KeyType{kind: kind}, 1, nil
	case KindCustom:
		if len(b) < 2 {
			return KeyType{}, 0, fmt.Errorf("%w: missing custom tag", ErrMalformedKeyType)
		}
		return Custom(b[1]), 2, nil
	default:
		return KeyType{}, 0, fmt.Errorf("%w: discriminant %#x", ErrUnknownKeyType, b[0])
	}
}
