// Package batch groups multiple already-encoded FlatMsg record buffers
// into a single container, with whole-container compression and an
// xxHash64 digest for corruption detection. It is independent of the
// FlatMsg wire format proper: a batch's payload is an opaque
// concatenation of record buffers from the encoder's point of view.
package batch

import (
	"github.com/flatmsg-dev/flatmsg/format"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// HeaderSize is the fixed size, in bytes, of a batch container header.
const HeaderSize = 20

// Magic identifies a batch container buffer: 'F', 'B', 'A', 'T'.
var Magic = [4]byte{'F', 'B', 'A', 'T'}

// Version is the only container format version this package emits and understands.
const Version uint8 = 1

// containerHeader is the fixed-size header preceding a batch's
// (possibly compressed) record payload.
//
//	offset 0   magic [4]byte
//	offset 4   version uint8
//	offset 5   compression uint8 (format.CompressionType)
//	offset 6   reserved uint16, must be zero
//	offset 8   recordCount uint32
//	offset 12  digest uint64 (xxHash64 of the compressed payload)
type containerHeader struct {
	version     uint8
	compression format.CompressionType
	recordCount uint32
	digest      uint64
}

func (h containerHeader) putBytes(buf []byte) {
	buf[0], buf[1], buf[2], buf[3] = Magic[0], Magic[1], Magic[2], Magic[3]
	buf[4] = h.version
	buf[5] = uint8(h.compression)
	buf[6], buf[7] = 0, 0
	wire.PutUint32(buf, 8, h.recordCount)
	wire.PutUint64(buf, 12, h.digest)
}

func parseContainerHeader(data []byte) (containerHeader, error) {
	if len(data) < HeaderSize {
		return containerHeader{}, InvalidHeaderLength(len(data))
	}

	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return containerHeader{}, ErrInvalidMagic
	}

	return containerHeader{
		version:     data[4],
		compression: format.CompressionType(data[5]),
		recordCount: wire.Uint32(data, 8),
		digest:      wire.Uint64(data, 12),
	}, nil
}
