package record

import (
	"github.com/flatmsg-dev/flatmsg/field"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// View is a lightweight handle over a decoded buffer (C5): it
// performs the same header, size-class, metadata, and checksum
// validation as CheckedDecoder at construction, but never decodes a
// field until asked. Field access is by name-hash lookup — binary
// search when the record holds 3 or more fields, linear compare for 1
// or 2 — followed by the field type's unchecked decode, since
// construction already validated the buffer's structure.
//
// A View reads buf in place and keeps no copy of it. Returned string
// and list values are copies and do not alias buf.
type View struct {
	buf    []byte
	layout layout
}

// NewView validates buf's header, size class, metadata, and checksum
// against cfg and returns a View over it without decoding any field.
func NewView(buf []byte, cfg *Config) (*View, error) {
	l, err := parseLayout(buf, cfg, true)
	if err != nil {
		return nil, err
	}

	return &View{buf: buf, layout: l}, nil
}

// Metadata returns the record's decoded metadata.
func (v *View) Metadata() Metadata { return v.layout.meta }

// Version returns the record's declared version byte.
func (v *View) Version() uint8 { return v.layout.header.Version }

// NameHash returns the record's stored name hash and whether one was
// present. The hash is one-way; callers compare it against a known
// candidate name's hash rather than recovering a string from it.
func (v *View) NameHash() (uint32, bool) {
	return v.layout.meta.NameHash, v.layout.meta.HasNameHash
}

// find locates key's payload offset, returning false if key is not
// present in the hash table.
func (v *View) find(key uint32) (int, bool) {
	l := &v.layout
	n := int(l.header.FieldsCount)

	if n >= 3 {
		lo, hi := 0, n-1
		for lo <= hi {
			mid := (lo + hi) / 2

			entryKey := wire.Uint32(v.buf, l.hashTableOffset+mid*4)
			switch {
			case entryKey == key:
				return v.refAt(mid), true
			case entryKey < key:
				lo = mid + 1
			default:
				hi = mid - 1
			}
		}

		return 0, false
	}

	for i := 0; i < n; i++ {
		if wire.Uint32(v.buf, l.hashTableOffset+i*4) == key {
			return v.refAt(i), true
		}
	}

	return 0, false
}

func (v *View) refAt(hashTableIndex int) int {
	l := &v.layout
	refOffset := l.refTableOffset + hashTableIndex*l.refTableWidth

	return int(wire.UintWidth(v.buf, refOffset, l.refTableWidth))
}

// Get looks up a scalar field named name via acc, returning its
// decoded value and true on a hit, or the zero value and false if the
// field is absent.
func Get[T any](v *View, name string, acc field.Accessor[T]) (T, bool) {
	off, ok := v.find(field.Key(name, acc.Tag))
	if !ok {
		var zero T

		return zero, false
	}

	val, _ := acc.DecodeUnchecked(v.buf, off)

	return val, true
}

// GetList looks up a list field named name via acc, returning its
// decoded slice and true on a hit, or nil and false if the field is
// absent.
func GetList[T any](v *View, name string, acc field.ListAccessor[T]) ([]T, bool) {
	off, ok := v.find(field.Key(name, acc.Tag))
	if !ok {
		return nil, false
	}

	val, _ := acc.DecodeUnchecked(v.buf, off)

	return val, true
}

// GetEnum looks up an enum field named name described by desc,
// returning its discriminant and true on a hit, or 0 and false if the
// field is absent.
func GetEnum(v *View, name string, desc *field.EnumDescriptor) (int64, bool) {
	off, ok := v.find(field.Key(name, desc.Repr.Tag()))
	if !ok {
		return 0, false
	}

	disc, _ := field.DecodeEnumUnchecked(v.buf, off, desc)

	return disc, true
}

// GetEnumList looks up a list-of-enum field named name described by
// desc, returning its discriminants and true on a hit, or nil and
// false if the field is absent.
func GetEnumList(v *View, name string, desc *field.EnumDescriptor) ([]int64, bool) {
	off, ok := v.find(field.Key(name, desc.Repr.Tag().AsList()))
	if !ok {
		return nil, false
	}

	vals, _ := field.DecodeEnumListUnchecked(v.buf, off, desc)

	return vals, true
}
