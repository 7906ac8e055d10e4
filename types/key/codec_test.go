package key

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestKey_Text(t *testing.T) {
	k := MustFromString("ABCDABCD")

	text, err := k.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "key:4142434441424344"+strings.Repeat("00", Len-TestLen), string(text))

	var back Key
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, k, back)

	parsed, err := ParseKey(string(text))
	require.NoError(t, err)
	assert.Equal(t, k, parsed)

	upper := "key:" + strings.ToUpper(k.HexString())
	parsed, err = ParseKey(upper)
	require.NoError(t, err)
	assert.Equal(t, k, parsed)
}

func TestKey_TextErrors(t *testing.T) {
	orig := MustFromBytes(testFull)

	for _, bad := range []string{
		"",
		"4142434441424344",
		"nodekey:" + strings.Repeat("00", Len),
		"key:" + strings.Repeat("00", TestLen),
		"key:" + strings.Repeat("zz", Len),
	} {
		k := orig
		assert.Error(t, k.UnmarshalText([]byte(bad)), bad)
		assert.Equal(t, orig, k, "key must be untouched on error")
	}
}

func TestKey_JSON(t *testing.T) {
	type doc struct {
		Key  Key
		Type KeyType
	}

	in := doc{Key: MustFromBytes(testFull), Type: Custom(7)}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"custom:7"`)

	var out doc
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestKey_Binary(t *testing.T) {
	for _, k := range []Key{{}, MustFromString("ABCDABCD"), MustFromBytes(testFull)} {
		b, err := k.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, b, Len)
		assert.Equal(t, k[:], b)

		var back Key
		require.NoError(t, back.UnmarshalBinary(b))
		assert.Equal(t, k, back)
	}

	var k Key
	assert.ErrorIs(t, k.UnmarshalBinary(testShort), ErrInvalidSize)
	assert.ErrorIs(t, k.UnmarshalBinary(make([]byte, Len+1)), ErrInvalidSize)
}

func TestKeyType_Binary(t *testing.T) {
	for _, kt := range allTypes {
		b, err := kt.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, b, kt.EncodedLen())
		assert.Equal(t, byte(kt.Kind()), b[0])

		var back KeyType
		require.NoError(t, back.UnmarshalBinary(b))
		assert.Equal(t, kt, back)
	}

	b, err := Custom(7).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x07}, b)

	b, err = Relayer.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03}, b)
}

func TestKeyType_BinaryErrors(t *testing.T) {
	var kt KeyType

	assert.ErrorIs(t, kt.UnmarshalBinary(nil), ErrMalformedKeyType)
	assert.ErrorIs(t, kt.UnmarshalBinary([]byte{0x04}), ErrMalformedKeyType)
	assert.ErrorIs(t, kt.UnmarshalBinary([]byte{0x01, 0x00}), ErrMalformedKeyType)
	assert.ErrorIs(t, kt.UnmarshalBinary([]byte{0x05}), ErrUnknownKeyType)

	assert.Equal(t, External, kt)

	decoded, n, err := DecodeKeyType([]byte{0x04, 0x09, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, Custom(9), decoded)
}

func TestKey_BSON(t *testing.T) {
	type doc struct {
		Key  Key     `bson:"key"`
		Type KeyType `bson:"type"`
	}

	for _, kt := range allTypes {
		in := doc{Key: MustFromString("ABCDABCD"), Type: kt}

		b, err := bson.Marshal(in)
		require.NoError(t, err)

		var out doc
		require.NoError(t, bson.Unmarshal(b, &out))
		assert.Equal(t, in, out)

		raw := bson.Raw(b)
		assert.Equal(t, in.Key.String(), raw.Lookup("key").StringValue())
		assert.Equal(t, kt.String(), raw.Lookup("type").StringValue())
	}
}
