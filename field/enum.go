package field

import (
	"github.com/flatmsg-dev/flatmsg/internal/hash"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// EnumRepr identifies the underlying integer representation an enum
// field's discriminant is stored as on the wire. The discriminant is
// always carried as an int64 in memory regardless of repr width.
type EnumRepr uint8

const (
	ReprU8 EnumRepr = iota
	ReprU16
	ReprU32
	ReprU64
	ReprI8
	ReprI16
	ReprI32
	ReprI64
)

// Tag returns the field-key tag byte for this representation.
func (r EnumRepr) Tag() Tag {
	switch r {
	case ReprU8:
		return TagEnumU8
	case ReprU16:
		return TagEnumU16
	case ReprU32:
		return TagEnumU32
	case ReprU64:
		return TagEnumU64
	case ReprI8:
		return TagEnumI8
	case ReprI16:
		return TagEnumI16
	case ReprI32:
		return TagEnumI32
	case ReprI64:
		return TagEnumI64
	default:
		panic("field: unknown enum representation")
	}
}

// Alignment returns the serialization alignment of this representation.
func (r EnumRepr) Alignment() int {
	return r.Width()
}

// Width returns the byte width of the encoded discriminant, excluding
// the 4-byte name-hash sentinel that precedes it.
func (r EnumRepr) Width() int {
	switch r {
	case ReprU8, ReprI8:
		return 1
	case ReprU16, ReprI16:
		return 2
	case ReprU32, ReprI32:
		return 4
	case ReprU64, ReprI64:
		return 8
	default:
		panic("field: unknown enum representation")
	}
}

func (r EnumRepr) encodeDiscriminant(buf []byte, offset int, v int64) int {
	switch r {
	case ReprU8:
		return wire.PutUint8(buf, offset, uint8(v))
	case ReprU16:
		return wire.PutUint16(buf, offset, uint16(v))
	case ReprU32:
		return wire.PutUint32(buf, offset, uint32(v))
	case ReprU64:
		return wire.PutUint64(buf, offset, uint64(v))
	case ReprI8:
		return wire.PutInt8(buf, offset, int8(v))
	case ReprI16:
		return wire.PutInt16(buf, offset, int16(v))
	case ReprI32:
		return wire.PutInt32(buf, offset, int32(v))
	case ReprI64:
		return wire.PutInt64(buf, offset, v)
	default:
		panic("field: unknown enum representation")
	}
}

func (r EnumRepr) decodeDiscriminantChecked(buf []byte, offset int) (int64, int, bool) {
	if !fits(buf, offset, r.Width()) {
		return 0, 0, false
	}

	return r.decodeDiscriminantUnchecked(buf, offset), r.Width(), true
}

func (r EnumRepr) decodeDiscriminantUnchecked(buf []byte, offset int) int64 {
	switch r {
	case ReprU8:
		return int64(wire.Uint8(buf, offset))
	case ReprU16:
		return int64(wire.Uint16(buf, offset))
	case ReprU32:
		return int64(wire.Uint32(buf, offset))
	case ReprU64:
		return int64(wire.Uint64(buf, offset))
	case ReprI8:
		return int64(wire.Int8(buf, offset))
	case ReprI16:
		return int64(wire.Int16(buf, offset))
	case ReprI32:
		return int64(wire.Int32(buf, offset))
	case ReprI64:
		return wire.Int64(buf, offset)
	default:
		panic("field: unknown enum representation")
	}
}

// EnumDescriptor declares an enum type: its name (hashed into a
// sentinel stored on the wire ahead of every enum scalar payload and
// once ahead of every enum list payload), its wire
// representation, and its closed set of valid discriminants.
type EnumDescriptor struct {
	NameHash uint32
	Repr     EnumRepr
	Variants map[int64]bool
}

// NewEnumDescriptor builds an EnumDescriptor for an enum named name
// with the given representation and set of valid discriminant values.
func NewEnumDescriptor(name string, repr EnumRepr, variants ...int64) *EnumDescriptor {
	vs := make(map[int64]bool, len(variants))
	for _, v := range variants {
		vs[v] = true
	}

	return &EnumDescriptor{NameHash: hash.Name(name), Repr: repr, Variants: vs}
}

type enumField struct {
	name         string
	desc         *EnumDescriptor
	discriminant int64
}

func (f enumField) Name() string   { return f.name }
func (f enumField) Key() uint32    { return Key(f.name, f.desc.Repr.Tag()) }
func (f enumField) Tag() Tag       { return f.desc.Repr.Tag() }
func (f enumField) Alignment() int { return f.desc.Repr.Alignment() }
func (f enumField) Size() int      { return 4 + f.desc.Repr.Width() }

func (f enumField) Encode(buf []byte, offset int) int {
	n := wire.PutUint32(buf, offset, f.desc.NameHash)
	n += f.desc.Repr.encodeDiscriminant(buf, offset+n, f.discriminant)

	return n
}

// Enum constructs an enum scalar field holding discriminant, which
// must be one of desc's declared variants.
func Enum(name string, desc *EnumDescriptor, discriminant int64) Encodable {
	return enumField{name: name, desc: desc, discriminant: discriminant}
}

// DecodeEnumChecked decodes an enum payload at buf[offset:], rejecting
// a sentinel that does not match desc's name hash or a discriminant
// outside desc's declared variants.
func DecodeEnumChecked(buf []byte, offset int, desc *EnumDescriptor) (int64, int, bool) {
	if !fits(buf, offset, 4) {
		return 0, 0, false
	}

	if wire.Uint32(buf, offset) != desc.NameHash {
		return 0, 0, false
	}

	disc, n, ok := desc.Repr.decodeDiscriminantChecked(buf, offset+4)
	if !ok || !desc.Variants[disc] {
		return 0, 0, false
	}

	return disc, 4 + n, true
}

// DecodeEnumUnchecked decodes an enum payload at buf[offset:] without
// validating the sentinel or the discriminant against desc.
func DecodeEnumUnchecked(buf []byte, offset int, desc *EnumDescriptor) (int64, int) {
	disc := desc.Repr.decodeDiscriminantUnchecked(buf, offset+4)

	return disc, 4 + desc.Repr.Width()
}

type enumListField struct {
	name          string
	desc          *EnumDescriptor
	discriminants []int64
}

func (f enumListField) Name() string   { return f.name }
func (f enumListField) Key() uint32    { return Key(f.name, f.desc.Repr.Tag().AsList()) }
func (f enumListField) Tag() Tag       { return f.desc.Repr.Tag().AsList() }
func (f enumListField) Alignment() int { return f.desc.Repr.Alignment() }

func (f enumListField) Size() int {
	prefixLen := wire.SizeLen(uint32(len(f.discriminants)), prefixKindForAlignment(f.desc.Repr.Alignment()))

	return 4 + prefixLen + len(f.discriminants)*f.desc.Repr.Width()
}

func (f enumListField) Encode(buf []byte, offset int) int {
	start := offset
	offset += wire.PutUint32(buf, offset, f.desc.NameHash)
	offset += wire.WriteSize(buf, offset, uint32(len(f.discriminants)), prefixKindForAlignment(f.desc.Repr.Alignment()))

	for _, d := range f.discriminants {
		offset += f.desc.Repr.encodeDiscriminant(buf, offset, d)
	}

	return offset - start
}

// EnumList constructs a list-of-enum field. The name-hash sentinel is
// emitted once for the whole list rather than once per element.
func EnumList(name string, desc *EnumDescriptor, discriminants []int64) Encodable {
	return enumListField{name: name, desc: desc, discriminants: discriminants}
}

// DecodeEnumListChecked decodes a list-of-enum payload at buf[offset:].
func DecodeEnumListChecked(buf []byte, offset int, desc *EnumDescriptor) ([]int64, int, bool) {
	if !fits(buf, offset, 4) {
		return nil, 0, false
	}

	if wire.Uint32(buf, offset) != desc.NameHash {
		return nil, 0, false
	}

	pos := offset + 4

	count, prefixLen, ok := wire.ReadSizeChecked(buf, pos, prefixKindForAlignment(desc.Repr.Alignment()))
	if !ok {
		return nil, 0, false
	}

	pos += prefixLen
	vals := make([]int64, 0, count)

	for i := uint32(0); i < count; i++ {
		disc, n, ok := desc.Repr.decodeDiscriminantChecked(buf, pos)
		if !ok || !desc.Variants[disc] {
			return nil, 0, false
		}

		vals = append(vals, disc)
		pos += n
	}

	return vals, pos - offset, true
}

// DecodeEnumListUnchecked decodes a list-of-enum payload at
// buf[offset:] without validating the sentinel or any discriminant.
func DecodeEnumListUnchecked(buf []byte, offset int, desc *EnumDescriptor) ([]int64, int) {
	pos := offset + 4

	count, prefixLen := wire.ReadSizeUnchecked(buf, pos, prefixKindForAlignment(desc.Repr.Alignment()))
	pos += prefixLen
	vals := make([]int64, 0, count)

	for i := uint32(0); i < count; i++ {
		disc := desc.Repr.decodeDiscriminantUnchecked(buf, pos)
		vals = append(vals, disc)
		pos += desc.Repr.Width()
	}

	return vals, pos - offset
}
