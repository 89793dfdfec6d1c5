package wire

// PutUintWidth writes v at buf[offset:offset+width] as an unsigned
// little-endian integer of the given width (1, 2, or 4 bytes) — the
// reference-table offset encoding selected by the record header's
// offset-width flag bits. It returns width.
func PutUintWidth(buf []byte, offset int, v uint32, width int) int {
	switch width {
	case 1:
		return PutUint8(buf, offset, uint8(v))
	case 2:
		return PutUint16(buf, offset, uint16(v))
	case 4:
		return PutUint32(buf, offset, v)
	default:
		panic("wire: invalid offset width")
	}
}

// UintWidth reads an unsigned little-endian integer of the given width
// (1, 2, or 4 bytes) at buf[offset:offset+width] without bounds checking.
func UintWidth(buf []byte, offset int, width int) uint32 {
	switch width {
	case 1:
		return uint32(Uint8(buf, offset))
	case 2:
		return uint32(Uint16(buf, offset))
	case 4:
		return Uint32(buf, offset)
	default:
		panic("wire: invalid offset width")
	}
}

// UintWidthChecked reads an unsigned little-endian integer of the
// given width at buf[offset:offset+width], reporting false if the
// read would run past the end of buf.
func UintWidthChecked(buf []byte, offset int, width int) (uint32, bool) {
	if offset < 0 || offset+width > len(buf) {
		return 0, false
	}

	return UintWidth(buf, offset, width), true
}
