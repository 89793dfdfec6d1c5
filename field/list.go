package field

import "github.com/flatmsg-dev/flatmsg/wire"

// elemCodec bundles the per-element size and encode functions a list
// field needs; fixed-width elements return a constant size, while
// string elements report each element's own prefix-plus-bytes size.
type elemCodec[T any] struct {
	align      int
	elemSize   func(T) int
	elemEncode func(buf []byte, offset int, v T) int
}

// listField is the generic Encodable implementation shared by every
// list field constructor below.
type listField[T any] struct {
	name  string
	tag   Tag
	vals  []T
	codec elemCodec[T]
}

func (f listField[T]) Name() string   { return f.name }
func (f listField[T]) Key() uint32    { return Key(f.name, f.tag) }
func (f listField[T]) Tag() Tag       { return f.tag }
func (f listField[T]) Alignment() int { return f.codec.align }

func (f listField[T]) Size() int {
	n := wire.SizeLen(uint32(len(f.vals)), prefixKindForAlignment(f.codec.align))
	for _, v := range f.vals {
		n += f.codec.elemSize(v)
	}

	return n
}

func (f listField[T]) Encode(buf []byte, offset int) int {
	start := offset
	offset += wire.WriteSize(buf, offset, uint32(len(f.vals)), prefixKindForAlignment(f.codec.align))

	for _, v := range f.vals {
		offset += f.codec.elemEncode(buf, offset, v)
	}

	return offset - start
}

func fixedElemCodec[T any](align int, encode func([]byte, int, T) int) elemCodec[T] {
	return elemCodec[T]{align: align, elemSize: func(T) int { return align }, elemEncode: encode}
}

// U8List constructs a list of uint8 values.
func U8List(name string, vals []uint8) Encodable {
	return listField[uint8]{name: name, tag: TagU8.AsList(), vals: vals,
		codec: fixedElemCodec(1, func(buf []byte, off int, v uint8) int { return wire.PutUint8(buf, off, v) }),
	}
}

// U16List constructs a list of uint16 values.
func U16List(name string, vals []uint16) Encodable {
	return listField[uint16]{name: name, tag: TagU16.AsList(), vals: vals,
		codec: fixedElemCodec(2, func(buf []byte, off int, v uint16) int { return wire.PutUint16(buf, off, v) }),
	}
}

// U32List constructs a list of uint32 values.
func U32List(name string, vals []uint32) Encodable {
	return listField[uint32]{name: name, tag: TagU32.AsList(), vals: vals,
		codec: fixedElemCodec(4, func(buf []byte, off int, v uint32) int { return wire.PutUint32(buf, off, v) }),
	}
}

// U64List constructs a list of uint64 values.
func U64List(name string, vals []uint64) Encodable {
	return listField[uint64]{name: name, tag: TagU64.AsList(), vals: vals,
		codec: fixedElemCodec(8, func(buf []byte, off int, v uint64) int { return wire.PutUint64(buf, off, v) }),
	}
}

// U128List constructs a list of 128-bit unsigned integer values.
func U128List(name string, vals []wire.Uint128) Encodable {
	return listField[wire.Uint128]{name: name, tag: TagU128.AsList(), vals: vals,
		codec: fixedElemCodec(16, func(buf []byte, off int, v wire.Uint128) int { return wire.PutUint128(buf, off, v) }),
	}
}

// I8List constructs a list of int8 values.
func I8List(name string, vals []int8) Encodable {
	return listField[int8]{name: name, tag: TagI8.AsList(), vals: vals,
		codec: fixedElemCodec(1, func(buf []byte, off int, v int8) int { return wire.PutInt8(buf, off, v) }),
	}
}

// I16List constructs a list of int16 values.
func I16List(name string, vals []int16) Encodable {
	return listField[int16]{name: name, tag: TagI16.AsList(), vals: vals,
		codec: fixedElemCodec(2, func(buf []byte, off int, v int16) int { return wire.PutInt16(buf, off, v) }),
	}
}

// I32List constructs a list of int32 values.
func I32List(name string, vals []int32) Encodable {
	return listField[int32]{name: name, tag: TagI32.AsList(), vals: vals,
		codec: fixedElemCodec(4, func(buf []byte, off int, v int32) int { return wire.PutInt32(buf, off, v) }),
	}
}

// I64List constructs a list of int64 values.
func I64List(name string, vals []int64) Encodable {
	return listField[int64]{name: name, tag: TagI64.AsList(), vals: vals,
		codec: fixedElemCodec(8, func(buf []byte, off int, v int64) int { return wire.PutInt64(buf, off, v) }),
	}
}

// I128List constructs a list of 128-bit signed integer values.
func I128List(name string, vals []wire.Int128) Encodable {
	return listField[wire.Int128]{name: name, tag: TagI128.AsList(), vals: vals,
		codec: fixedElemCodec(16, func(buf []byte, off int, v wire.Int128) int { return wire.PutInt128(buf, off, v) }),
	}
}

// F32List constructs a list of float32 values.
func F32List(name string, vals []float32) Encodable {
	return listField[float32]{name: name, tag: TagF32.AsList(), vals: vals,
		codec: fixedElemCodec(4, func(buf []byte, off int, v float32) int { return wire.PutFloat32(buf, off, v) }),
	}
}

// F64List constructs a list of float64 values.
func F64List(name string, vals []float64) Encodable {
	return listField[float64]{name: name, tag: TagF64.AsList(), vals: vals,
		codec: fixedElemCodec(8, func(buf []byte, off int, v float64) int { return wire.PutFloat64(buf, off, v) }),
	}
}

// BoolList constructs a list of bool values, one byte per element.
func BoolList(name string, vals []bool) Encodable {
	return listField[bool]{name: name, tag: TagBool.AsList(), vals: vals,
		codec: fixedElemCodec(1, func(buf []byte, off int, v bool) int { return wire.PutBool(buf, off, v) }),
	}
}

// StringList constructs a list of UTF-8 strings, each individually
// prefixed by its own U8withExtension byte-length.
func StringList(name string, vals []string) Encodable {
	return listField[string]{name: name, tag: TagString.AsList(), vals: vals,
		codec: elemCodec[string]{
			align: 1,
			elemSize: func(v string) int {
				return wire.SizeLen(uint32(len(v)), wire.PrefixU8withExtension) + len(v)
			},
			elemEncode: func(buf []byte, off int, v string) int {
				n := wire.WriteSize(buf, off, uint32(len(v)), wire.PrefixU8withExtension)
				copy(buf[off+n:], v)

				return n + len(v)
			},
		},
	}
}
