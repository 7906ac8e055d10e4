package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/edup2p/primitives/types/key"
	"github.com/edup2p/primitives/types/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLines_Key(t *testing.T) {
	k := key.MustFromString("ABCDABCD")

	lines, err := encodeLines(k, nil)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "key bin:  "+k.HexString(), lines[0])
	assert.Equal(t, "key text: "+k.String(), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "key bson: string "), lines[2])
}

func TestEncodeLines_KeyAndType(t *testing.T) {
	kt := key.Custom(7)

	lines, err := encodeLines(key.Key{}, &kt)
	require.NoError(t, err)
	require.Len(t, lines, 6)

	assert.Equal(t, "type bin:  0407", lines[3])
	assert.Equal(t, "type text: custom:7", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "type bson: string "), lines[5])
}

func TestDescribe(t *testing.T) {
	assert.Contains(t, describe(key.Key{}), "zero-padded past 8")
	assert.Contains(t, describe(key.MustFromString("ABCDABCD")), "zero-padded past 8")

	full := key.MustFromBytes(bytes.Repeat([]byte{1}, key.Len))
	assert.Equal(t, full.String(), describe(full))
}

func TestMarks_DumpLoad(t *testing.T) {
	src := keymap.New[string]()
	src.Set(key.MustFromString("ABCDABCD"), "first")
	src.Set(key.MustFromBytes(bytes.Repeat([]byte{1}, key.Len)), "second")
	src.Set(key.Key{}, "")

	dump, err := dumpMarks(src)
	require.NoError(t, err)

	dst := keymap.New[string]()
	dst.Set(key.Key{}, "kept")

	n, err := loadMarks(dst, dump)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, src.Keys(), dst.Keys())

	note, _ := dst.Get(key.Key{})
	assert.Equal(t, "kept", note)
}

func TestLoadMarks_Errors(t *testing.T) {
	m := keymap.New[string]()

	_, err := loadMarks(m, "zz")
	assert.Error(t, err)

	// count of 2, but only one key follows
	_, err = loadMarks(m, "00000002"+strings.Repeat("00", key.Len))
	assert.Error(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestParseKeyArg_HexPrefixWins(t *testing.T) {
	raw := "key:" + strings.Repeat("a", key.Len-4)

	_, err := parseKeyArg(raw)
	assert.Error(t, err)
}
