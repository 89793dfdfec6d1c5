package batch

import (
	"github.com/cespare/xxhash/v2"

	"github.com/flatmsg-dev/flatmsg/compress"
	"github.com/flatmsg-dev/flatmsg/format"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// Reader parses a batch container and exposes its decompressed,
// digest-verified record buffers.
type Reader struct {
	compression format.CompressionType
	records     [][]byte
}

// Parse validates data's container header and digest, decompresses
// the payload, and splits it back into individual record buffers.
func Parse(data []byte) (*Reader, error) {
	header, err := parseContainerHeader(data)
	if err != nil {
		return nil, err
	}

	compressed := data[HeaderSize:]
	if computed := xxhash.Sum64(compressed); computed != header.digest {
		return nil, DigestMismatch(header.digest, computed)
	}

	codec, err := compress.GetCodec(header.compression)
	if err != nil {
		return nil, UnsupportedCompression(uint8(header.compression))
	}

	raw, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	records := make([][]byte, 0, header.recordCount)

	pos := 0
	for i := uint32(0); i < header.recordCount; i++ {
		if pos+4 > len(raw) {
			return nil, ErrTruncatedRecord
		}

		n := int(wire.Uint32(raw, pos))
		pos += 4

		if pos+n > len(raw) {
			return nil, ErrTruncatedRecord
		}

		records = append(records, raw[pos:pos+n])
		pos += n
	}

	return &Reader{compression: header.compression, records: records}, nil
}

// Len returns the number of records in the container.
func (r *Reader) Len() int { return len(r.records) }

// Record returns the i-th record buffer, borrowed from the
// decompressed payload.
func (r *Reader) Record(i int) []byte { return r.records[i] }

// Records returns all record buffers in order.
func (r *Reader) Records() [][]byte { return r.records }

// Compression returns the algorithm the container was compressed with.
func (r *Reader) Compression() format.CompressionType { return r.compression }
