package key

import (
	"encoding"

	"go.mongodb.org/mongo-driver/bson"
)

type canTextMarshal interface {
	// We need text encoding for JSON and the keytool shell
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

type canBinaryMarshal interface {
	// The fixed wire layout, used by types/bin and the registry store
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

type canBsonMarshal interface {
	bson.ValueMarshaler
	bson.ValueUnmarshaler
}

type ordered[T any] interface {
	Compare(T) int
	Less(T) bool
	Equal(T) bool
}
