package field

import "github.com/flatmsg-dev/flatmsg/wire"

// Encodable is a single named field value ready to be laid out and
// written by the record encoder. Builder accepts a heterogeneous
// slice of Encodable values — one per declared field — and sorts,
// sizes, and emits them without needing to know each field's
// underlying Go type.
type Encodable interface {
	// Name is the field's declared name.
	Name() string
	// Key is the 32-bit field key derived from Name and Tag.
	Key() uint32
	// Tag identifies the field's element type.
	Tag() Tag
	// Alignment is the serialization alignment of the field's payload.
	Alignment() int
	// Size is the exact serialized size, in bytes, of the payload.
	Size() int
	// Encode writes the payload to buf starting at offset and returns
	// the number of bytes written.
	Encode(buf []byte, offset int) int
}

// scalarField is the generic Encodable implementation shared by every
// fixed-width scalar, bool, and string field constructor below.
type scalarField[T any] struct {
	name     string
	tag      Tag
	val      T
	sizeFn   func(T) int
	encodeFn func([]byte, int, T) int
}

func (f scalarField[T]) Name() string      { return f.name }
func (f scalarField[T]) Key() uint32       { return Key(f.name, f.tag) }
func (f scalarField[T]) Tag() Tag          { return f.tag }
func (f scalarField[T]) Alignment() int    { return f.tag.Alignment() }
func (f scalarField[T]) Size() int         { return f.sizeFn(f.val) }
func (f scalarField[T]) Encode(buf []byte, offset int) int {
	return f.encodeFn(buf, offset, f.val)
}

// U8 constructs a uint8 field.
func U8(name string, v uint8) Encodable {
	return scalarField[uint8]{name: name, tag: TagU8, val: v,
		sizeFn:   func(uint8) int { return 1 },
		encodeFn: func(buf []byte, off int, v uint8) int { return wire.PutUint8(buf, off, v) },
	}
}

// U16 constructs a uint16 field.
func U16(name string, v uint16) Encodable {
	return scalarField[uint16]{name: name, tag: TagU16, val: v,
		sizeFn:   func(uint16) int { return 2 },
		encodeFn: func(buf []byte, off int, v uint16) int { return wire.PutUint16(buf, off, v) },
	}
}

// U32 constructs a uint32 field.
func U32(name string, v uint32) Encodable {
	return scalarField[uint32]{name: name, tag: TagU32, val: v,
		sizeFn:   func(uint32) int { return 4 },
		encodeFn: func(buf []byte, off int, v uint32) int { return wire.PutUint32(buf, off, v) },
	}
}

// U64 constructs a uint64 field.
func U64(name string, v uint64) Encodable {
	return scalarField[uint64]{name: name, tag: TagU64, val: v,
		sizeFn:   func(uint64) int { return 8 },
		encodeFn: func(buf []byte, off int, v uint64) int { return wire.PutUint64(buf, off, v) },
	}
}

// U128 constructs a 128-bit unsigned integer field.
func U128(name string, v wire.Uint128) Encodable {
	return scalarField[wire.Uint128]{name: name, tag: TagU128, val: v,
		sizeFn:   func(wire.Uint128) int { return 16 },
		encodeFn: func(buf []byte, off int, v wire.Uint128) int { return wire.PutUint128(buf, off, v) },
	}
}

// Flags8 constructs an 8-bit bitflag field. It shares uint8's exact
// wire encoding but carries a distinct tag, so renaming a field from
// u8 to flags8 changes its key like any other type change.
func Flags8(name string, v uint8) Encodable {
	return scalarField[uint8]{name: name, tag: TagFlags8, val: v,
		sizeFn:   func(uint8) int { return 1 },
		encodeFn: func(buf []byte, off int, v uint8) int { return wire.PutUint8(buf, off, v) },
	}
}

// Flags16 constructs a 16-bit bitflag field, sharing uint16's wire encoding.
func Flags16(name string, v uint16) Encodable {
	return scalarField[uint16]{name: name, tag: TagFlags16, val: v,
		sizeFn:   func(uint16) int { return 2 },
		encodeFn: func(buf []byte, off int, v uint16) int { return wire.PutUint16(buf, off, v) },
	}
}

// Flags32 constructs a 32-bit bitflag field, sharing uint32's wire encoding.
func Flags32(name string, v uint32) Encodable {
	return scalarField[uint32]{name: name, tag: TagFlags32, val: v,
		sizeFn:   func(uint32) int { return 4 },
		encodeFn: func(buf []byte, off int, v uint32) int { return wire.PutUint32(buf, off, v) },
	}
}

// Flags64 constructs a 64-bit bitflag field, sharing uint64's wire encoding.
func Flags64(name string, v uint64) Encodable {
	return scalarField[uint64]{name: name, tag: TagFlags64, val: v,
		sizeFn:   func(uint64) int { return 8 },
		encodeFn: func(buf []byte, off int, v uint64) int { return wire.PutUint64(buf, off, v) },
	}
}

// Flags128 constructs a 128-bit bitflag field, sharing wire.Uint128's encoding.
func Flags128(name string, v wire.Uint128) Encodable {
	return scalarField[wire.Uint128]{name: name, tag: TagFlags128, val: v,
		sizeFn:   func(wire.Uint128) int { return 16 },
		encodeFn: func(buf []byte, off int, v wire.Uint128) int { return wire.PutUint128(buf, off, v) },
	}
}

// I8 constructs an int8 field.
func I8(name string, v int8) Encodable {
	return scalarField[int8]{name: name, tag: TagI8, val: v,
		sizeFn:   func(int8) int { return 1 },
		encodeFn: func(buf []byte, off int, v int8) int { return wire.PutInt8(buf, off, v) },
	}
}

// I16 constructs an int16 field.
func I16(name string, v int16) Encodable {
	return scalarField[int16]{name: name, tag: TagI16, val: v,
		sizeFn:   func(int16) int { return 2 },
		encodeFn: func(buf []byte, off int, v int16) int { return wire.PutInt16(buf, off, v) },
	}
}

// I32 constructs an int32 field.
func I32(name string, v int32) Encodable {
	return scalarField[int32]{name: name, tag: TagI32, val: v,
		sizeFn:   func(int32) int { return 4 },
		encodeFn: func(buf []byte, off int, v int32) int { return wire.PutInt32(buf, off, v) },
	}
}

// I64 constructs an int64 field.
func I64(name string, v int64) Encodable {
	return scalarField[int64]{name: name, tag: TagI64, val: v,
		sizeFn:   func(int64) int { return 8 },
		encodeFn: func(buf []byte, off int, v int64) int { return wire.PutInt64(buf, off, v) },
	}
}

// I128 constructs a 128-bit signed integer field.
func I128(name string, v wire.Int128) Encodable {
	return scalarField[wire.Int128]{name: name, tag: TagI128, val: v,
		sizeFn:   func(wire.Int128) int { return 16 },
		encodeFn: func(buf []byte, off int, v wire.Int128) int { return wire.PutInt128(buf, off, v) },
	}
}

// F32 constructs a float32 field.
func F32(name string, v float32) Encodable {
	return scalarField[float32]{name: name, tag: TagF32, val: v,
		sizeFn:   func(float32) int { return 4 },
		encodeFn: func(buf []byte, off int, v float32) int { return wire.PutFloat32(buf, off, v) },
	}
}

// F64 constructs a float64 field.
func F64(name string, v float64) Encodable {
	return scalarField[float64]{name: name, tag: TagF64, val: v,
		sizeFn:   func(float64) int { return 8 },
		encodeFn: func(buf []byte, off int, v float64) int { return wire.PutFloat64(buf, off, v) },
	}
}

// Bool constructs a bool field, stored as a single 0/1 byte.
func Bool(name string, v bool) Encodable {
	return scalarField[bool]{name: name, tag: TagBool, val: v,
		sizeFn:   func(bool) int { return 1 },
		encodeFn: func(buf []byte, off int, v bool) int { return wire.PutBool(buf, off, v) },
	}
}

// String constructs a UTF-8 string field, stored as a U8withExtension
// byte-length prefix followed by the string's bytes.
func String(name string, v string) Encodable {
	return scalarField[string]{name: name, tag: TagString, val: v,
		sizeFn: func(v string) int {
			return wire.SizeLen(uint32(len(v)), wire.PrefixU8withExtension) + len(v)
		},
		encodeFn: func(buf []byte, off int, v string) int {
			n := wire.WriteSize(buf, off, uint32(len(v)), wire.PrefixU8withExtension)
			copy(buf[off+n:], v)

			return n + len(v)
		},
	}
}
