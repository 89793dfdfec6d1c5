package section

import (
	"github.com/flatmsg-dev/flatmsg/errs"
)

// HeaderSize is the fixed size, in bytes, of a FlatMsg record header.
const HeaderSize = 8

// Magic identifies a FlatMsg record buffer: 'G', 'T', 'H', 0x01.
var Magic = [4]byte{'G', 'T', 'H', 0x01}

// Header represents the fixed-size header section at the start of a
// FlatMsg record.
type Header struct {
	// FieldsCount is the number of fields stored in the record, max 65535.
	FieldsCount uint16
	// Version is the record's declared version, 0 meaning "unset".
	Version uint8
	// Flags is the packed bitfield described by Flag.
	Flags Flag
}

// NewHeader creates a new Header with the given field count, version,
// and flags. FieldsCount and layout-dependent flag bits are normally
// finalized by the record encoder's Finish step.
func NewHeader(fieldsCount uint16, version uint8, flags Flag) Header {
	return Header{
		FieldsCount: fieldsCount,
		Version:     version,
		Flags:       flags,
	}
}

// Parse parses a Header from the first HeaderSize bytes of data.
func Parse(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.InvalidHeaderLength(len(data))
	}

	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return Header{}, errs.ErrInvalidMagic
	}

	h := Header{
		FieldsCount: uint16(data[4]) | uint16(data[5])<<8,
		Version:     data[6],
		Flags:       Flag(data[7]),
	}

	if err := h.Flags.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Bytes serializes the Header into a new HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.PutBytes(b)

	return b
}

// PutBytes writes the Header into the first HeaderSize bytes of buf.
// buf must be at least HeaderSize bytes long.
func (h Header) PutBytes(buf []byte) {
	buf[0], buf[1], buf[2], buf[3] = Magic[0], Magic[1], Magic[2], Magic[3]
	buf[4] = uint8(h.FieldsCount)
	buf[5] = uint8(h.FieldsCount >> 8)
	buf[6] = h.Version
	buf[7] = uint8(h.Flags)
}
