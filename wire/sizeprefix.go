package wire

// PrefixKind identifies one of the five variable-length size-prefix
// encodings. Which kind applies to a given list or string is fixed by
// its element alignment and is never recorded on the wire: reader and
// writer must agree by type.
type PrefixKind uint8

const (
	// PrefixU32 stores the value as 4 bytes, always. Used for the
	// length of 4-byte-aligned element lists.
	PrefixU32 PrefixKind = iota
	// PrefixU32on64bits stores the value as 4 bytes padded to 8.
	// Used for the length of 8-byte-aligned element lists.
	PrefixU32on64bits
	// PrefixU32on128bits stores the value as 4 bytes padded to 16.
	// Used for the length of 16-byte-aligned element lists.
	PrefixU32on128bits
	// PrefixU16withExtension stores the value as 2 bytes when it fits
	// under 0xFFFF, else the sentinel 0xFFFF followed by 4 bytes.
	// Used for the length of 2-byte-aligned element lists.
	PrefixU16withExtension
	// PrefixU8withExtension stores the value as 1 byte when it fits
	// under 0xFE, as the sentinel 0xFE followed by 2 bytes when it
	// fits under 0x10000, else the sentinel 0xFF followed by 4 bytes.
	// Used for string lengths and the length of 1-byte-aligned element lists.
	PrefixU8withExtension
)

// WriteSize encodes value using kind at buf[offset:] and returns the
// number of bytes consumed.
func WriteSize(buf []byte, offset int, value uint32, kind PrefixKind) int {
	switch kind {
	case PrefixU32:
		engine.PutUint32(buf[offset:], value)
		return 4
	case PrefixU32on64bits:
		engine.PutUint32(buf[offset:], value)
		return 8
	case PrefixU32on128bits:
		engine.PutUint32(buf[offset:], value)
		return 16
	case PrefixU16withExtension:
		if value < 0xFFFF {
			engine.PutUint16(buf[offset:], uint16(value))
			return 2
		}

		engine.PutUint16(buf[offset:], 0xFFFF)
		engine.PutUint32(buf[offset+2:], value)
		return 6
	case PrefixU8withExtension:
		switch {
		case value < 0xFE:
			buf[offset] = uint8(value)
			return 1
		case value < 0x10000:
			buf[offset] = 0xFE
			engine.PutUint16(buf[offset+1:], uint16(value))
			return 3
		default:
			buf[offset] = 0xFF
			engine.PutUint32(buf[offset+1:], value)
			return 5
		}
	default:
		panic("wire: unknown size-prefix kind")
	}
}

// SizeLen returns the number of bytes WriteSize would consume for
// value under kind, without writing anything.
func SizeLen(value uint32, kind PrefixKind) int {
	switch kind {
	case PrefixU32:
		return 4
	case PrefixU32on64bits:
		return 8
	case PrefixU32on128bits:
		return 16
	case PrefixU16withExtension:
		if value < 0xFFFF {
			return 2
		}

		return 6
	case PrefixU8withExtension:
		switch {
		case value < 0xFE:
			return 1
		case value < 0x10000:
			return 3
		default:
			return 5
		}
	default:
		panic("wire: unknown size-prefix kind")
	}
}

// minPrefixLen is the number of leading bytes ReadSizeChecked must be
// able to see before it can even tell how long the full prefix is.
func minPrefixLen(kind PrefixKind) int {
	switch kind {
	case PrefixU32, PrefixU32on64bits, PrefixU32on128bits:
		return 4
	case PrefixU16withExtension:
		return 2
	case PrefixU8withExtension:
		return 1
	default:
		panic("wire: unknown size-prefix kind")
	}
}

// ReadSizeChecked decodes a size prefix of the given kind from
// buf[offset:], validating that the buffer holds enough bytes for
// both the prefix itself and any extension it indicates. It returns
// the decoded value, the number of bytes consumed, and false if the
// buffer was too short.
func ReadSizeChecked(buf []byte, offset int, kind PrefixKind) (value uint32, consumed int, ok bool) {
	if offset < 0 || offset+minPrefixLen(kind) > len(buf) {
		return 0, 0, false
	}

	switch kind {
	case PrefixU32:
		return engine.Uint32(buf[offset:]), 4, true
	case PrefixU32on64bits:
		if offset+8 > len(buf) {
			return 0, 0, false
		}

		return engine.Uint32(buf[offset:]), 8, true
	case PrefixU32on128bits:
		if offset+16 > len(buf) {
			return 0, 0, false
		}

		return engine.Uint32(buf[offset:]), 16, true
	case PrefixU16withExtension:
		first := engine.Uint16(buf[offset:])
		if first < 0xFFFF {
			return uint32(first), 2, true
		}

		if offset+6 > len(buf) {
			return 0, 0, false
		}

		return engine.Uint32(buf[offset+2:]), 6, true
	case PrefixU8withExtension:
		first := buf[offset]
		switch first {
		case 0xFE:
			if offset+3 > len(buf) {
				return 0, 0, false
			}

			return uint32(engine.Uint16(buf[offset+1:])), 3, true
		case 0xFF:
			if offset+5 > len(buf) {
				return 0, 0, false
			}

			return engine.Uint32(buf[offset+1:]), 5, true
		default:
			return uint32(first), 1, true
		}
	default:
		panic("wire: unknown size-prefix kind")
	}
}

// ReadSizeUnchecked decodes a size prefix of the given kind from
// buf[offset:] without validating buffer bounds, trusting the caller.
// It returns the decoded value and the number of bytes consumed.
func ReadSizeUnchecked(buf []byte, offset int, kind PrefixKind) (value uint32, consumed int) {
	switch kind {
	case PrefixU32:
		return engine.Uint32(buf[offset:]), 4
	case PrefixU32on64bits:
		return engine.Uint32(buf[offset:]), 8
	case PrefixU32on128bits:
		return engine.Uint32(buf[offset:]), 16
	case PrefixU16withExtension:
		first := engine.Uint16(buf[offset:])
		if first < 0xFFFF {
			return uint32(first), 2
		}

		return engine.Uint32(buf[offset+2:]), 6
	case PrefixU8withExtension:
		first := buf[offset]
		switch first {
		case 0xFE:
			return uint32(engine.Uint16(buf[offset+1:])), 3
		case 0xFF:
			return engine.Uint32(buf[offset+1:]), 5
		default:
			return uint32(first), 1
		}
	default:
		panic("wire: unknown size-prefix kind")
	}
}
