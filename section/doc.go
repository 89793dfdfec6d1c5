// Package section defines the fixed-size binary structures at the
// start of a FlatMsg record: the 8-byte header and its packed flags
// byte.
//
// # Header
//
//	Bytes | Field       | Type   | Description
//	------|-------------|--------|-----------------------------------
//	0-3   | Magic       | [4]byte| 'G','T','H',0x01
//	4-5   | FieldsCount | uint16 | number of fields, max 65535
//	6     | Version     | uint8  | declared schema version, 0 = unset
//	7     | Flags       | uint8  | packed bitfield, see Flag
//
// # Flags
//
//	Bits 0-1  offset width: 0 => 1 byte, 1 => 2 bytes, 2 => 4 bytes, 3 reserved
//	Bit  2    checksum present (trailing u32)
//	Bit  3    name hash present (trailing u32)
//	Bit  4    timestamp present (trailing u64)
//	Bit  5    unique_id present (trailing u64)
//	Bits 6-7  reserved, must be zero
//
// The offset-width bits select how wide each reference-table entry is;
// OffsetWidthCodeFor picks the narrowest width that can represent the
// record's largest field offset. The remaining bits gate which
// trailing metadata fields follow the reference table, in the fixed
// order timestamp, unique_id, name hash, checksum.
//
// Callers normally interact with this package through record.Builder
// and record.CheckedDecoder/UncheckedDecoder/View rather than parsing
// headers directly.
package section
