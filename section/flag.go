package section

import "github.com/flatmsg-dev/flatmsg/errs"

// Flag is the packed bitfield carried in the header's flags byte.
//
//	bits 0-1  offset width: 0 => 1 byte, 1 => 2 bytes, 2 => 4 bytes, 3 reserved/invalid
//	bit  2    checksum present (trailing u32)
//	bit  3    name hash present (trailing u32)
//	bit  4    timestamp present (trailing u64)
//	bit  5    unique_id present (trailing u64)
//	bits 6-7  reserved, must be zero
type Flag uint8

const (
	offsetWidthMask  Flag = 0x03
	checksumMask     Flag = 0x04
	nameHashMask     Flag = 0x08
	timestampMask    Flag = 0x10
	uniqueIDMask     Flag = 0x20
	reservedBitsMask Flag = 0xC0
)

// OffsetWidthCode values for bits 0-1.
const (
	OffsetWidth1 uint8 = 0
	OffsetWidth2 uint8 = 1
	OffsetWidth4 uint8 = 2
)

// OffsetWidthCode returns the raw 2-bit offset-width code (bits 0-1).
func (f Flag) OffsetWidthCode() uint8 {
	return uint8(f & offsetWidthMask)
}

// OffsetWidth returns the reference-table offset width in bytes (1, 2, or 4).
// The caller must have validated the flag first; an invalid code (3) panics.
func (f Flag) OffsetWidth() int {
	switch f.OffsetWidthCode() {
	case OffsetWidth1:
		return 1
	case OffsetWidth2:
		return 2
	case OffsetWidth4:
		return 4
	default:
		panic("section: invalid offset width code")
	}
}

// WithOffsetWidthCode sets bits 0-1 to the given code.
func (f Flag) WithOffsetWidthCode(code uint8) Flag {
	return (f &^ offsetWidthMask) | Flag(code&0x03)
}

// HasChecksum reports whether bit 2 (checksum present) is set.
func (f Flag) HasChecksum() bool {
	return f&checksumMask != 0
}

// WithChecksum sets or clears bit 2.
func (f Flag) WithChecksum(enabled bool) Flag {
	return setBit(f, checksumMask, enabled)
}

// HasNameHash reports whether bit 3 (name hash present) is set.
func (f Flag) HasNameHash() bool {
	return f&nameHashMask != 0
}

// WithNameHash sets or clears bit 3.
func (f Flag) WithNameHash(enabled bool) Flag {
	return setBit(f, nameHashMask, enabled)
}

// HasTimestamp reports whether bit 4 (timestamp present) is set.
func (f Flag) HasTimestamp() bool {
	return f&timestampMask != 0
}

// WithTimestamp sets or clears bit 4.
func (f Flag) WithTimestamp(enabled bool) Flag {
	return setBit(f, timestampMask, enabled)
}

// HasUniqueID reports whether bit 5 (unique_id present) is set.
func (f Flag) HasUniqueID() bool {
	return f&uniqueIDMask != 0
}

// WithUniqueID sets or clears bit 5.
func (f Flag) WithUniqueID(enabled bool) Flag {
	return setBit(f, uniqueIDMask, enabled)
}

// Validate rejects the reserved offset-width code (3) and any set
// reserved bit (6-7).
func (f Flag) Validate() error {
	if f.OffsetWidthCode() == 0x03 {
		return errs.ErrInvalidOffsetSize
	}

	if f&reservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// TrailingMetadataSize returns the number of bytes occupied by the
// trailing metadata region implied by this flag's checksum/name/
// timestamp/unique_id bits.
func (f Flag) TrailingMetadataSize() int {
	n := 0
	if f.HasTimestamp() {
		n += 8
	}

	if f.HasUniqueID() {
		n += 8
	}

	if f.HasNameHash() {
		n += 4
	}

	if f.HasChecksum() {
		n += 4
	}

	return n
}

func setBit(f, mask Flag, enabled bool) Flag {
	if enabled {
		return f | mask
	}

	return f &^ mask
}

// OffsetWidthCodeFor returns the flag-bit code for the smallest offset
// width (1, 2, or 4 bytes) that can represent maxOffset.
func OffsetWidthCodeFor(maxOffset uint32) uint8 {
	switch {
	case maxOffset <= 0xFF:
		return OffsetWidth1
	case maxOffset <= 0xFFFF:
		return OffsetWidth2
	default:
		return OffsetWidth4
	}
}
