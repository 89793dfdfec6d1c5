package record

import (
	"github.com/flatmsg-dev/flatmsg/errs"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// UncheckedDecoder trusts the buffer for maximum throughput (C4,
// unchecked mode): it omits the minimum-size floor, checksum
// verification, reference-table offset-range validation, and every
// field-type's internal payload validation. It must only be used on
// buffers already known valid (e.g. just produced by Builder.Finish,
// or already passed through a CheckedDecoder); calling it on an
// untrusted or corrupt buffer is undefined behavior.
type UncheckedDecoder struct {
	buf    []byte
	layout layout
	cursor int
}

// NewUncheckedDecoder parses buf's header and size class, still
// applying version-compatibility and record-name checks from cfg (the
// only omissions are the structural floor and the checksum).
func NewUncheckedDecoder(buf []byte, cfg *Config) (*UncheckedDecoder, error) {
	l, err := parseLayout(buf, cfg, false)
	if err != nil {
		return nil, err
	}

	return &UncheckedDecoder{buf: buf, layout: l}, nil
}

// Metadata returns the record's decoded metadata.
func (d *UncheckedDecoder) Metadata() Metadata { return d.layout.meta }

// Version returns the record's declared version byte.
func (d *UncheckedDecoder) Version() uint8 { return d.layout.header.Version }

// FieldsCount returns the number of fields stored in the buffer.
func (d *UncheckedDecoder) FieldsCount() int { return int(d.layout.header.FieldsCount) }

// Field locates the payload offset for key by scanning forward
// through the sorted hash table, identically to CheckedDecoder.Field
// but without validating the resulting offset lies within the
// payload region. Callers must request keys in ascending order.
func (d *UncheckedDecoder) Field(key uint32) (int, error) {
	l := &d.layout

	for d.cursor < int(l.header.FieldsCount) {
		entryKey := wire.Uint32(d.buf, l.hashTableOffset+d.cursor*4)

		switch {
		case entryKey < key:
			d.cursor++
		case entryKey == key:
			refOffset := l.refTableOffset + d.cursor*l.refTableWidth
			d.cursor++

			return int(wire.UintWidth(d.buf, refOffset, l.refTableWidth)), nil
		default:
			return 0, errs.UnknownHash(key)
		}
	}

	return 0, errs.UnknownHash(key)
}

// Buf exposes the underlying buffer so generated bindings can invoke
// field-catalogue unchecked-decode functions at the offset Field returns.
func (d *UncheckedDecoder) Buf() []byte { return d.buf }
