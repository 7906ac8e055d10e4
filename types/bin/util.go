package bin

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/edup2p/primitives/types/key"
)

// MaxKeys is the largest key list ReadKeys accepts.
const MaxKeys = 1 << 16

// WriteUint32 writes an uint32 in big-endian order to the writer
func WriteUint32(writer *bufio.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	// Writing a byte at a time is a bit silly,
	// but it causes b not to escape,
	// which more than pays for the silliness.
	for _, c := range &b {
		err := writer.WriteByte(c)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadUint32 reads an uint32 in big-endian order to the reader
func ReadUint32(reader *bufio.Reader) (uint32, error) {
	var b [4]byte
	// Reading a byte at a time is a bit silly,
	// but it causes b not to escape,
	// which more than pays for the silliness.
	for i := range &b {
		c, err := reader.ReadByte()
		if err != nil {
			return 0, err
		}
		b[i] = c
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// WriteKey writes the raw bytes of k.
func WriteKey(writer *bufio.Writer, k key.Key) error {
	_, err := writer.Write(k[:])
	return err
}

// ReadKey reads exactly key.Len bytes as a key.
func ReadKey(reader *bufio.Reader) (key.Key, error) {
	var k key.Key
	if _, err := io.ReadFull(reader, k[:]); err != nil {
		return key.Key{}, err
	}
	return k, nil
}

// WriteKeyType writes the discriminant of t, followed by its tag if it is custom.
func WriteKeyType(writer *bufio.Writer, t key.KeyType) error {
	if err := writer.WriteByte(byte(t.Kind())); err != nil {
		return err
	}
	if tag, ok := t.Tag(); ok {
		return writer.WriteByte(tag)
	}
	return nil
}

func ReadKeyType(reader *bufio.Reader) (key.KeyType, error) {
	d, err := reader.ReadByte()
	if err != nil {
		return key.KeyType{}, err
	}

	if key.Kind(d) != key.KindCustom {
		t, _, err := key.DecodeKeyType([]byte{d})
		return t, err
	}

	tag, err := reader.ReadByte()
	if err != nil {
		return key.KeyType{}, fmt.Errorf("%w: missing custom tag: %w", key.ErrMalformedKeyType, err)
	}
	return key.Custom(tag), nil
}

// WriteKeys writes a length-prefixed list of keys.
func WriteKeys(writer *bufio.Writer, keys []key.Key) error {
	if len(keys) > MaxKeys {
		return fmt.Errorf("too many keys: %d > %d", len(keys), MaxKeys)
	}
	if err := WriteUint32(writer, uint32(len(keys))); err != nil {
		return err
	}
	for _, k := range keys {
		if err := WriteKey(writer, k); err != nil {
			return err
		}
	}
	return nil
}

// ReadKeys reads a list of keys written by WriteKeys.
func ReadKeys(reader *bufio.Reader) ([]key.Key, error) {
	n, err := ReadUint32(reader)
	if err != nil {
		return nil, err
	}
	if n > MaxKeys {
		return nil, fmt.Errorf("too many keys: %d > %d", n, MaxKeys)
	}

	keys := make([]key.Key, n)
	for i := range keys {
		if keys[i], err = ReadKey(reader); err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
	}
	return keys, nil
}
