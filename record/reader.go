package record

import (
	"github.com/flatmsg-dev/flatmsg/errs"
	"github.com/flatmsg-dev/flatmsg/section"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// CheckedDecoder validates every structural invariant and field-type
// tag while decoding (C4, checked mode). Construct one per buffer
// with NewCheckedDecoder, then call Field once per target field in
// ascending key order — the same order the encoder emits the hash
// table in — so the forward scan stays monotonic and amortized O(n)
// over all fields of a record.
type CheckedDecoder struct {
	buf    []byte
	cfg    *Config
	layout layout
	cursor int
}

// NewCheckedDecoder parses buf's header, size class, metadata, and
// (if enabled) checksum and name hash against cfg, failing fast on
// any structural invariant violation.
func NewCheckedDecoder(buf []byte, cfg *Config) (*CheckedDecoder, error) {
	l, err := parseLayout(buf, cfg, true)
	if err != nil {
		return nil, err
	}

	return &CheckedDecoder{buf: buf, cfg: cfg, layout: l}, nil
}

// Metadata returns the record's decoded metadata.
func (d *CheckedDecoder) Metadata() Metadata { return d.layout.meta }

// Version returns the record's declared version byte.
func (d *CheckedDecoder) Version() uint8 { return d.layout.header.Version }

// FieldsCount returns the number of fields stored in the buffer.
func (d *CheckedDecoder) FieldsCount() int { return int(d.layout.header.FieldsCount) }

// Field locates the payload offset for key by scanning forward
// through the sorted hash table from the decoder's current cursor.
// Callers must request keys in ascending order; requesting a smaller
// key than a prior call produces incorrect results (the scan never
// rewinds). Returns ErrUnknownHash if key is not present, or
// ErrInvalidFieldOffset if the matching reference-table entry lies
// outside the valid payload region.
func (d *CheckedDecoder) Field(key uint32) (int, error) {
	l := &d.layout

	for d.cursor < int(l.header.FieldsCount) {
		entryKey := wire.Uint32(d.buf, l.hashTableOffset+d.cursor*4)

		switch {
		case entryKey < key:
			d.cursor++
		case entryKey == key:
			refOffset := l.refTableOffset + d.cursor*l.refTableWidth
			d.cursor++

			rawOffset, ok := wire.UintWidthChecked(d.buf, refOffset, l.refTableWidth)
			if !ok {
				return 0, errs.InvalidSizeToStoreFieldsTable(len(d.buf), refOffset+l.refTableWidth)
			}

			off := int(rawOffset)
			if off < section.HeaderSize || off >= l.hashTableOffset {
				return 0, errs.InvalidFieldOffset(off, l.hashTableOffset)
			}

			return off, nil
		default:
			return 0, errs.UnknownHash(key)
		}
	}

	return 0, errs.UnknownHash(key)
}

// Buf exposes the underlying buffer so generated bindings can invoke
// field-catalogue checked-decode functions at the offset Field returns.
func (d *CheckedDecoder) Buf() []byte { return d.buf }
