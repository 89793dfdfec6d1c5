package field

import (
	"unicode/utf8"

	"github.com/flatmsg-dev/flatmsg/wire"
)

// Accessor bundles the checked and unchecked decode contracts for a
// single Go type T. record.CheckedDecoder, record.UncheckedDecoder,
// and record.View each drive the same Accessor for a given field,
// diverging only in which of its two functions they call.
type Accessor[T any] struct {
	// Tag identifies the element type this accessor decodes.
	Tag Tag
	// DecodeChecked validates encoded size against buf's length (and,
	// where applicable, UTF-8/boolean/enum-variant validity) before
	// returning. ok is false on any validation failure.
	DecodeChecked func(buf []byte, offset int) (value T, consumed int, ok bool)
	// DecodeUnchecked trusts buf and offset; misuse is undefined
	// behavior.
	DecodeUnchecked func(buf []byte, offset int) (value T, consumed int)
}

func fits(buf []byte, offset, width int) bool {
	return offset >= 0 && width >= 0 && offset+width <= len(buf)
}

// U8Accessor decodes uint8 fields.
var U8Accessor = Accessor[uint8]{
	Tag: TagU8,
	DecodeChecked: func(buf []byte, offset int) (uint8, int, bool) {
		if !fits(buf, offset, 1) {
			return 0, 0, false
		}

		return wire.Uint8(buf, offset), 1, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (uint8, int) {
		return wire.Uint8(buf, offset), 1
	},
}

// U16Accessor decodes uint16 fields.
var U16Accessor = Accessor[uint16]{
	Tag: TagU16,
	DecodeChecked: func(buf []byte, offset int) (uint16, int, bool) {
		if !fits(buf, offset, 2) {
			return 0, 0, false
		}

		return wire.Uint16(buf, offset), 2, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (uint16, int) {
		return wire.Uint16(buf, offset), 2
	},
}

// U32Accessor decodes uint32 fields.
var U32Accessor = Accessor[uint32]{
	Tag: TagU32,
	DecodeChecked: func(buf []byte, offset int) (uint32, int, bool) {
		if !fits(buf, offset, 4) {
			return 0, 0, false
		}

		return wire.Uint32(buf, offset), 4, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (uint32, int) {
		return wire.Uint32(buf, offset), 4
	},
}

// U64Accessor decodes uint64 fields.
var U64Accessor = Accessor[uint64]{
	Tag: TagU64,
	DecodeChecked: func(buf []byte, offset int) (uint64, int, bool) {
		if !fits(buf, offset, 8) {
			return 0, 0, false
		}

		return wire.Uint64(buf, offset), 8, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (uint64, int) {
		return wire.Uint64(buf, offset), 8
	},
}

// U128Accessor decodes 128-bit unsigned integer fields.
var U128Accessor = Accessor[wire.Uint128]{
	Tag: TagU128,
	DecodeChecked: func(buf []byte, offset int) (wire.Uint128, int, bool) {
		if !fits(buf, offset, 16) {
			return wire.Uint128{}, 0, false
		}

		return wire.Uint128At(buf, offset), 16, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (wire.Uint128, int) {
		return wire.Uint128At(buf, offset), 16
	},
}

// Flags8Accessor decodes 8-bit bitflag fields, sharing U8Accessor's wire decode.
var Flags8Accessor = Accessor[uint8]{
	Tag:             TagFlags8,
	DecodeChecked:   U8Accessor.DecodeChecked,
	DecodeUnchecked: U8Accessor.DecodeUnchecked,
}

// Flags16Accessor decodes 16-bit bitflag fields, sharing U16Accessor's wire decode.
var Flags16Accessor = Accessor[uint16]{
	Tag:             TagFlags16,
	DecodeChecked:   U16Accessor.DecodeChecked,
	DecodeUnchecked: U16Accessor.DecodeUnchecked,
}

// Flags32Accessor decodes 32-bit bitflag fields, sharing U32Accessor's wire decode.
var Flags32Accessor = Accessor[uint32]{
	Tag:             TagFlags32,
	DecodeChecked:   U32Accessor.DecodeChecked,
	DecodeUnchecked: U32Accessor.DecodeUnchecked,
}

// Flags64Accessor decodes 64-bit bitflag fields, sharing U64Accessor's wire decode.
var Flags64Accessor = Accessor[uint64]{
	Tag:             TagFlags64,
	DecodeChecked:   U64Accessor.DecodeChecked,
	DecodeUnchecked: U64Accessor.DecodeUnchecked,
}

// Flags128Accessor decodes 128-bit bitflag fields, sharing U128Accessor's wire decode.
var Flags128Accessor = Accessor[wire.Uint128]{
	Tag:             TagFlags128,
	DecodeChecked:   U128Accessor.DecodeChecked,
	DecodeUnchecked: U128Accessor.DecodeUnchecked,
}

// I8Accessor decodes int8 fields.
var I8Accessor = Accessor[int8]{
	Tag: TagI8,
	DecodeChecked: func(buf []byte, offset int) (int8, int, bool) {
		if !fits(buf, offset, 1) {
			return 0, 0, false
		}

		return wire.Int8(buf, offset), 1, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (int8, int) {
		return wire.Int8(buf, offset), 1
	},
}

// I16Accessor decodes int16 fields.
var I16Accessor = Accessor[int16]{
	Tag: TagI16,
	DecodeChecked: func(buf []byte, offset int) (int16, int, bool) {
		if !fits(buf, offset, 2) {
			return 0, 0, false
		}

		return wire.Int16(buf, offset), 2, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (int16, int) {
		return wire.Int16(buf, offset), 2
	},
}

// I32Accessor decodes int32 fields.
var I32Accessor = Accessor[int32]{
	Tag: TagI32,
	DecodeChecked: func(buf []byte, offset int) (int32, int, bool) {
		if !fits(buf, offset, 4) {
			return 0, 0, false
		}

		return wire.Int32(buf, offset), 4, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (int32, int) {
		return wire.Int32(buf, offset), 4
	},
}

// I64Accessor decodes int64 fields.
var I64Accessor = Accessor[int64]{
	Tag: TagI64,
	DecodeChecked: func(buf []byte, offset int) (int64, int, bool) {
		if !fits(buf, offset, 8) {
			return 0, 0, false
		}

		return wire.Int64(buf, offset), 8, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (int64, int) {
		return wire.Int64(buf, offset), 8
	},
}

// I128Accessor decodes 128-bit signed integer fields.
var I128Accessor = Accessor[wire.Int128]{
	Tag: TagI128,
	DecodeChecked: func(buf []byte, offset int) (wire.Int128, int, bool) {
		if !fits(buf, offset, 16) {
			return wire.Int128{}, 0, false
		}

		return wire.Int128At(buf, offset), 16, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (wire.Int128, int) {
		return wire.Int128At(buf, offset), 16
	},
}

// F32Accessor decodes float32 fields.
var F32Accessor = Accessor[float32]{
	Tag: TagF32,
	DecodeChecked: func(buf []byte, offset int) (float32, int, bool) {
		if !fits(buf, offset, 4) {
			return 0, 0, false
		}

		return wire.Float32(buf, offset), 4, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (float32, int) {
		return wire.Float32(buf, offset), 4
	},
}

// F64Accessor decodes float64 fields.
var F64Accessor = Accessor[float64]{
	Tag: TagF64,
	DecodeChecked: func(buf []byte, offset int) (float64, int, bool) {
		if !fits(buf, offset, 8) {
			return 0, 0, false
		}

		return wire.Float64(buf, offset), 8, true
	},
	DecodeUnchecked: func(buf []byte, offset int) (float64, int) {
		return wire.Float64(buf, offset), 8
	},
}

// BoolAccessor decodes bool fields, rejecting any stored byte other
// than 0 or 1 in checked mode.
var BoolAccessor = Accessor[bool]{
	Tag: TagBool,
	DecodeChecked: func(buf []byte, offset int) (bool, int, bool) {
		if !fits(buf, offset, 1) {
			return false, 0, false
		}

		v, ok := wire.BoolChecked(buf, offset)

		return v, 1, ok
	},
	DecodeUnchecked: func(buf []byte, offset int) (bool, int) {
		return wire.Bool(buf, offset), 1
	},
}

// StringAccessor decodes UTF-8 string fields. Decoded strings are
// copied out of buf and do not alias it.
var StringAccessor = Accessor[string]{
	Tag: TagString,
	DecodeChecked: func(buf []byte, offset int) (string, int, bool) {
		n, prefixLen, ok := wire.ReadSizeChecked(buf, offset, wire.PrefixU8withExtension)
		if !ok {
			return "", 0, false
		}

		start := offset + prefixLen
		end := start + int(n)
		if end > len(buf) || end < start {
			return "", 0, false
		}

		b := buf[start:end]
		if !utf8.Valid(b) {
			return "", 0, false
		}

		return string(b), prefixLen + int(n), true
	},
	DecodeUnchecked: func(buf []byte, offset int) (string, int) {
		n, prefixLen := wire.ReadSizeUnchecked(buf, offset, wire.PrefixU8withExtension)
		start := offset + prefixLen
		end := start + int(n)

		return string(buf[start:end]), prefixLen + int(n)
	},
}
