package key

import (
	"encoding"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Keys and key types are stored in BSON through their text form, so
// documents stay readable from the mongo shell.

func textMarshalBson(val encoding.TextMarshaler) (bsontype.Type, []byte, error) {
	textBytes, err := val.MarshalText()
	if err != nil {
		return 0, nil, err
	}

	return bson.MarshalValue(string(textBytes))
}

func textUnmarshalBson(val encoding.TextUnmarshaler, b bsontype.Type, bytes []byte) error {
	var s = new(string)

	if err := bson.UnmarshalValue(b, bytes, s); err != nil {
		return err
	}

	return val.UnmarshalText([]byte(*s))
}

func (k Key) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return textMarshalBson(k)
}

func (k *Key) UnmarshalBSONValue(b bsontype.Type, bytes []byte) error {
	return textUnmarshalBson(k, b, bytes)
}

func (t KeyType) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return textMarshalBson(t)
}

func (t *KeyType) UnmarshalBSONValue(b bsontype.Type, bytes []byte) error {
	return textUnmarshalBson(t, b, bytes)
}
