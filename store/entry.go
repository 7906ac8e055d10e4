package store

import (
	"fmt"
	"unicode/utf8"

	"github.com/LukaGiorgadze/gonull"
	"github.com/edup2p/primitives/types/key"
)

// Entry is what the registry knows about a key.
type Entry struct {
	Type key.KeyType

	// Optional human-readable label
	Label gonull.Nullable[string]
}

// Record is an Entry together with the key it is registered under.
type Record struct {
	Key key.Key
	Entry
}

// Entry layout:
//   KeyType (1 or 2) + HasLabel (1) + Label (rest, UTF-8)

const maxLabelLen = 256

func (e Entry) MarshalBinary() ([]byte, error) {
	b, err := e.Type.AppendBinary(make([]byte, 0, e.Type.EncodedLen()+1+len(e.Label.Val)))
	if err != nil {
		return nil, err
	}

	if !e.Label.Valid {
		return append(b, 0), nil
	}

	if err := validateLabel(e.Label.Val); err != nil {
		return nil, err
	}

	b = append(b, 1)
	return append(b, e.Label.Val...), nil
}

func (e *Entry) UnmarshalBinary(b []byte) error {
	kt, n, err := key.DecodeKeyType(b)
	if err != nil {
		return err
	}
	b = b[n:]

	if len(b) < 1 {
		return fmt.Errorf("%w: missing label flag", ErrCorrupt)
	}

	var label gonull.Nullable[string]
	switch b[0] {
	case 0:
		if len(b) != 1 {
			return fmt.Errorf("%w: unexpected label bytes", ErrCorrupt)
		}
	case 1:
		if err := validateLabel(string(b[1:])); err != nil {
			return fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		label = gonull.NewNullable(string(b[1:]))
	default:
		return fmt.Errorf("%w: bad label flag %#x", ErrCorrupt, b[0])
	}

	e.Type = kt
	e.Label = label
	return nil
}

func validateLabel(s string) error {
	if len(s) > maxLabelLen {
		return fmt.Errorf("label too long: %d > %d", len(s), maxLabelLen)
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("label is not valid utf-8")
	}
	return nil
}
