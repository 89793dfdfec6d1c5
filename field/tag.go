// Package field implements the typed field catalogue: for every
// supported element type, the serialized size, serialization
// alignment, encode, checked-decode, and unchecked-decode contracts
// that the record package's builder and decoders drive.
package field

import "github.com/flatmsg-dev/flatmsg/internal/hash"

// Tag is the single byte embedded in a field key that identifies its
// element type. List types carry ListBit set over their element
// type's tag.
type Tag uint8

// ListBit, set in a field key's tag byte, marks a list of the
// underlying element type.
const ListBit Tag = 0x80

// Scalar and string tags.
const (
	TagU8 Tag = iota + 1
	TagU16
	TagU32
	TagU64
	TagU128
	TagI8
	TagI16
	TagI32
	TagI64
	TagI128
	TagF32
	TagF64
	TagBool
	TagString
)

// Enum tags, one per representation width, so that renaming a field
// to a differently-represented enum changes its key like any other
// type change.
const (
	TagEnumU8 Tag = iota + 0x10
	TagEnumU16
	TagEnumU32
	TagEnumU64
	TagEnumI8
	TagEnumI16
	TagEnumI32
	TagEnumI64
)

// Flags tags: a bitflag field shares its same-width unsigned integer
// type's wire encoding exactly, but carries a distinct tag so renaming
// a field from, say, u32 to flags32 changes its key like any other
// type change.
const (
	TagFlags8 Tag = iota + 0x18
	TagFlags16
	TagFlags32
	TagFlags64
	TagFlags128
)

// IsList reports whether tag identifies a list of some element type.
func (tag Tag) IsList() bool {
	return tag&ListBit != 0
}

// Elem strips ListBit, returning the element tag a list tag carries.
func (tag Tag) Elem() Tag {
	return tag &^ ListBit
}

// AsList sets ListBit over tag.
func (tag Tag) AsList() Tag {
	return tag | ListBit
}

// Alignment returns the serialization alignment for a payload whose
// element type is identified by tag. List payloads inherit their
// element's alignment; the cardinality prefix in front of a list
// payload has no alignment requirement of its own.
func (tag Tag) Alignment() int {
	switch tag.Elem() {
	case TagU8, TagI8, TagBool, TagString, TagEnumU8, TagEnumI8, TagFlags8:
		return 1
	case TagU16, TagI16, TagEnumU16, TagEnumI16, TagFlags16:
		return 2
	case TagU32, TagI32, TagF32, TagEnumU32, TagEnumI32, TagFlags32:
		return 4
	case TagU64, TagI64, TagF64, TagEnumU64, TagEnumI64, TagFlags64:
		return 8
	case TagU128, TagI128, TagFlags128:
		return 16
	default:
		panic("field: unknown tag")
	}
}

// Key computes the field key for a field named name with type tag.
func Key(name string, tag Tag) uint32 {
	return hash.FieldKey(name, uint8(tag))
}
