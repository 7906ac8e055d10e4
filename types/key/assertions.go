package key

// KEY

var (
	_ ordered[Key] = Key{}

	// We need this to send keys over the wire via JSON
	_ canTextMarshal = &Key{}

	_ canBinaryMarshal = &Key{}

	// We need this to persist keys in mongo documents
	_ canBsonMarshal = &Key{}
)

// KEY TYPE

var (
	_ canTextMarshal = &KeyType{}

	_ canBinaryMarshal = &KeyType{}

	_ canBsonMarshal = &KeyType{}
)
