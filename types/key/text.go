package key

import (
	"encoding/json"
	"fmt"
	"strings"

	"go4.org/mem"
)

// AppendText implements encoding.TextAppender. It appends a typed prefix
// followed by hex encoded representation of k to b.
func (k Key) AppendText(b []byte) ([]byte, error) {
	return appendHexKey(b, keyHexPrefix, k[:]), nil
}

// MarshalText implements encoding.TextMarshaler. It returns a typed prefix
// followed by a hex encoded representation of k.
func (k Key) MarshalText() ([]byte, error) {
	return k.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler. It expects a typed prefix
// followed by a hex encoded representation of k.
//
// k is left untouched on error.
func (k *Key) UnmarshalText(b []byte) error {
	var tmp Key
	if err := parseHex(tmp[:], mem.B(b), mem.S(keyHexPrefix)); err != nil {
		return err
	}
	*k = tmp
	return nil
}

// ParseKey parses the text form of a Key, either bare or as a JSON string.
func ParseKey(s string) (Key, error) {
	if !strings.HasSuffix(s, "\"") && !strings.HasPrefix(s, "\"") {
		s = fmt.Sprintf("\"%s\"", s)
	}

	var k Key
	if err := json.Unmarshal([]byte(s), &k); err != nil {
		return Key{}, err
	}

	return k, nil
}

func (t KeyType) AppendText(b []byte) ([]byte, error) {
	return append(b, t.String()...), nil
}

func (t KeyType) MarshalText() ([]byte, error) {
	return t.AppendText(nil)
}

func (t *KeyType) UnmarshalText(b []byte) error {
	parsed, err := ParseKeyType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
