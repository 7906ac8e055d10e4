package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/edup2p/primitives/store"
	"github.com/edup2p/primitives/types/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `
[[Keys]]
Key = "ABCDABCD"
Type = "relayer"
Label = "relayer 1"

[[Keys]]
Key = "key:0101010101010101010101010101010101010101010101010101010101010101"
Type = "custom:7"

[[Keys]]
Key = "ABCDABCD"
Type = "multisig"
`

func writeSeed(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeed(t *testing.T) {
	reg, err := store.OpenMemory()
	require.NoError(t, err)
	defer reg.Close()

	n, err := loadSeed(writeSeed(t, testSeed), reg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := reg.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// 0x01... sorts before "ABCD..." (0x41)
	assert.Equal(t, key.Custom(7), records[0].Type)
	assert.False(t, records[0].Label.Valid)

	assert.Equal(t, key.MustFromString("ABCDABCD"), records[1].Key)
	assert.Equal(t, key.Multisig, records[1].Type)
}

func TestLoadSeed_BadKey(t *testing.T) {
	reg, err := store.OpenMemory()
	require.NoError(t, err)
	defer reg.Close()

	_, err = loadSeed(writeSeed(t, "[[Keys]]\nKey = \"ABCDABCDx\"\n"), reg)
	assert.ErrorIs(t, err, key.ErrInvalidSize)

	_, err = loadSeed(writeSeed(t, "[[Keys]]\nKey = \"ABCDABCD\"\nType = \"bogus\"\n"), reg)
	assert.ErrorIs(t, err, key.ErrUnknownKeyType)
}

func TestParseKeyArg(t *testing.T) {
	k, err := parseKeyArg("ABCDABCD")
	require.NoError(t, err)

	again, err := parseKeyArg(k.String())
	require.NoError(t, err)
	assert.Equal(t, k, again)

	_, err = parseKeyArg("key:zz")
	assert.Error(t, err)
}

func TestOpenRegistry_BadSeedReleasesDB(t *testing.T) {
	dir := t.TempDir()

	_, err := openRegistry(dir, writeSeed(t, "[[Keys]]\nKey = \"ABCDABCDx\"\n"))
	assert.ErrorIs(t, err, key.ErrInvalidSize)

	// the LevelDB lock must have been released
	r, err := openRegistry(dir, writeSeed(t, testSeed))
	require.NoError(t, err)
	defer r.Close()

	records, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
