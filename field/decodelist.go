package field

import "github.com/flatmsg-dev/flatmsg/wire"

// ListAccessor bundles the checked and unchecked decode contracts for
// a list field whose elements decode to Go type T.
type ListAccessor[T any] struct {
	Tag             Tag
	DecodeChecked   func(buf []byte, offset int) (vals []T, consumed int, ok bool)
	DecodeUnchecked func(buf []byte, offset int) (vals []T, consumed int)
}

func decodeListChecked[T any](
	buf []byte, offset int, align int, decodeElem func([]byte, int) (T, int, bool),
) ([]T, int, bool) {
	count, prefixLen, ok := wire.ReadSizeChecked(buf, offset, prefixKindForAlignment(align))
	if !ok {
		return nil, 0, false
	}

	pos := offset + prefixLen
	vals := make([]T, 0, count)

	for i := uint32(0); i < count; i++ {
		v, n, ok := decodeElem(buf, pos)
		if !ok {
			return nil, 0, false
		}

		vals = append(vals, v)
		pos += n
	}

	return vals, pos - offset, true
}

func decodeListUnchecked[T any](
	buf []byte, offset int, align int, decodeElem func([]byte, int) (T, int),
) ([]T, int) {
	count, prefixLen := wire.ReadSizeUnchecked(buf, offset, prefixKindForAlignment(align))
	pos := offset + prefixLen
	vals := make([]T, 0, count)

	for i := uint32(0); i < count; i++ {
		v, n := decodeElem(buf, pos)
		vals = append(vals, v)
		pos += n
	}

	return vals, pos - offset
}

// U8ListAccessor decodes lists of uint8.
var U8ListAccessor = ListAccessor[uint8]{
	Tag: TagU8.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]uint8, int, bool) {
		return decodeListChecked(buf, offset, 1, U8Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]uint8, int) {
		return decodeListUnchecked(buf, offset, 1, U8Accessor.DecodeUnchecked)
	},
}

// U16ListAccessor decodes lists of uint16.
var U16ListAccessor = ListAccessor[uint16]{
	Tag: TagU16.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]uint16, int, bool) {
		return decodeListChecked(buf, offset, 2, U16Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]uint16, int) {
		return decodeListUnchecked(buf, offset, 2, U16Accessor.DecodeUnchecked)
	},
}

// U32ListAccessor decodes lists of uint32.
var U32ListAccessor = ListAccessor[uint32]{
	Tag: TagU32.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]uint32, int, bool) {
		return decodeListChecked(buf, offset, 4, U32Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]uint32, int) {
		return decodeListUnchecked(buf, offset, 4, U32Accessor.DecodeUnchecked)
	},
}

// U64ListAccessor decodes lists of uint64.
var U64ListAccessor = ListAccessor[uint64]{
	Tag: TagU64.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]uint64, int, bool) {
		return decodeListChecked(buf, offset, 8, U64Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]uint64, int) {
		return decodeListUnchecked(buf, offset, 8, U64Accessor.DecodeUnchecked)
	},
}

// U128ListAccessor decodes lists of 128-bit unsigned integers.
var U128ListAccessor = ListAccessor[wire.Uint128]{
	Tag: TagU128.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]wire.Uint128, int, bool) {
		return decodeListChecked(buf, offset, 16, U128Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]wire.Uint128, int) {
		return decodeListUnchecked(buf, offset, 16, U128Accessor.DecodeUnchecked)
	},
}

// I8ListAccessor decodes lists of int8.
var I8ListAccessor = ListAccessor[int8]{
	Tag: TagI8.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]int8, int, bool) {
		return decodeListChecked(buf, offset, 1, I8Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]int8, int) {
		return decodeListUnchecked(buf, offset, 1, I8Accessor.DecodeUnchecked)
	},
}

// I16ListAccessor decodes lists of int16.
var I16ListAccessor = ListAccessor[int16]{
	Tag: TagI16.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]int16, int, bool) {
		return decodeListChecked(buf, offset, 2, I16Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]int16, int) {
		return decodeListUnchecked(buf, offset, 2, I16Accessor.DecodeUnchecked)
	},
}

// I32ListAccessor decodes lists of int32.
var I32ListAccessor = ListAccessor[int32]{
	Tag: TagI32.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]int32, int, bool) {
		return decodeListChecked(buf, offset, 4, I32Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]int32, int) {
		return decodeListUnchecked(buf, offset, 4, I32Accessor.DecodeUnchecked)
	},
}

// I64ListAccessor decodes lists of int64.
var I64ListAccessor = ListAccessor[int64]{
	Tag: TagI64.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]int64, int, bool) {
		return decodeListChecked(buf, offset, 8, I64Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]int64, int) {
		return decodeListUnchecked(buf, offset, 8, I64Accessor.DecodeUnchecked)
	},
}

// I128ListAccessor decodes lists of 128-bit signed integers.
var I128ListAccessor = ListAccessor[wire.Int128]{
	Tag: TagI128.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]wire.Int128, int, bool) {
		return decodeListChecked(buf, offset, 16, I128Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]wire.Int128, int) {
		return decodeListUnchecked(buf, offset, 16, I128Accessor.DecodeUnchecked)
	},
}

// F32ListAccessor decodes lists of float32.
var F32ListAccessor = ListAccessor[float32]{
	Tag: TagF32.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]float32, int, bool) {
		return decodeListChecked(buf, offset, 4, F32Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]float32, int) {
		return decodeListUnchecked(buf, offset, 4, F32Accessor.DecodeUnchecked)
	},
}

// F64ListAccessor decodes lists of float64.
var F64ListAccessor = ListAccessor[float64]{
	Tag: TagF64.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]float64, int, bool) {
		return decodeListChecked(buf, offset, 8, F64Accessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]float64, int) {
		return decodeListUnchecked(buf, offset, 8, F64Accessor.DecodeUnchecked)
	},
}

// BoolListAccessor decodes lists of bool, verifying every byte is 0
// or 1 in checked mode.
var BoolListAccessor = ListAccessor[bool]{
	Tag: TagBool.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]bool, int, bool) {
		return decodeListChecked(buf, offset, 1, BoolAccessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]bool, int) {
		return decodeListUnchecked(buf, offset, 1, BoolAccessor.DecodeUnchecked)
	},
}

// StringListAccessor decodes lists of UTF-8 strings, each individually
// prefixed by its own U8withExtension byte-length.
var StringListAccessor = ListAccessor[string]{
	Tag: TagString.AsList(),
	DecodeChecked: func(buf []byte, offset int) ([]string, int, bool) {
		return decodeListChecked(buf, offset, 1, StringAccessor.DecodeChecked)
	},
	DecodeUnchecked: func(buf []byte, offset int) ([]string, int) {
		return decodeListUnchecked(buf, offset, 1, StringAccessor.DecodeUnchecked)
	},
}
