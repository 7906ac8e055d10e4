package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the discriminant of a KeyType.
type Kind byte

const (
	KindExternal = Kind(0x00)
	KindIdentity = Kind(0x01)
	KindMultisig = Kind(0x02)
	KindRelayer  = Kind(0x03)
	KindCustom   = Kind(0x04)
)

// KeyType describes the role of a signing key.
//
// The zero value is External. KeyTypes are comparable with ==, Custom types
// are equal only when their tags are.
type KeyType struct {
	kind Kind
	tag  uint8
}

var (
	External = KeyType{kind: KindExternal}
	Identity = KeyType{kind: KindIdentity}
	Multisig = KeyType{kind: KindMultisig}
	Relayer  = KeyType{kind: KindRelayer}
)

// Custom returns the custom KeyType carrying tag.
func Custom(tag uint8) KeyType {
	return KeyType{kind: KindCustom, tag: tag}
}

func (t KeyType) Kind() Kind {
	return t.kind
}

// Tag returns the custom tag, ok is false for any non-custom type.
func (t KeyType) Tag() (tag uint8, ok bool) {
	if t.kind != KindCustom {
		return 0, false
	}
	return t.tag, true
}

func (t KeyType) IsCustom() bool {
	return t.kind == KindCustom
}

const customPrefix = "custom:"

var kindNames = map[Kind]string{
	KindExternal: "external",
	KindIdentity: "identity",
	KindMultisig: "multisig",
	KindRelayer:  "relayer",
}

func (t KeyType) String() string {
	if t.kind == KindCustom {
		return customPrefix + strconv.Itoa(int(t.tag))
	}
	if name, ok := kindNames[t.kind]; ok {
		return name
	}
	return fmt.Sprintf("KeyType(%#x)", byte(t.kind))
}

// ParseKeyType parses the text form of a KeyType, as returned by String.
func ParseKeyType(s string) (KeyType, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if tagStr, ok := strings.CutPrefix(s, customPrefix); ok {
		tag, err := strconv.ParseUint(tagStr, 10, 8)
		if err != nil {
			return KeyType{}, fmt.Errorf("%w: bad custom tag %q: %w", ErrUnknownKeyType, tagStr, err)
		}
		return Custom(uint8(tag)), nil
	}

	for kind, name := range kindNames {
		if name == s {
			return KeyType{kind: kind}, nil
		}
	}

	return KeyType{}, fmt.Errorf("%w: %q", ErrUnknownKeyType, s)
}
