package batch

import (
	"github.com/cespare/xxhash/v2"

	"github.com/flatmsg-dev/flatmsg/compress"
	"github.com/flatmsg-dev/flatmsg/internal/options"
	"github.com/flatmsg-dev/flatmsg/internal/pool"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// Writer accumulates already-encoded FlatMsg record buffers and emits
// them as a single compressed, digest-protected container. A Writer
// is not reusable: build one, add records, call Finish once.
type Writer struct {
	cfg     *WriterConfig
	records [][]byte
}

// NewWriter creates a Writer with the given container options.
func NewWriter(opts ...WriterOption) *Writer {
	cfg := newWriterConfig()
	// WriterOption construction never fails (format.CompressionType is
	// a closed enum validated at Finish time via compress.CreateCodec),
	// so the error return is unreachable here.
	_ = options.Apply[*WriterConfig](cfg, opts...)

	return &Writer{cfg: cfg}
}

// Add appends an already-encoded FlatMsg record buffer to the batch.
// The buffer is not copied; callers must not mutate it afterward.
func (w *Writer) Add(record []byte) {
	w.records = append(w.records, record)
}

// Len returns the number of records added so far.
func (w *Writer) Len() int { return len(w.records) }

// Finish concatenates the accumulated records (each prefixed by its
// own u32 length), compresses the result per the writer's configured
// algorithm, and writes the container header plus compressed payload
// into buf, which is cleared first.
func (w *Writer) Finish(buf *pool.ByteBuffer) error {
	buf.Reset()

	raw := pool.GetBatchBuffer()
	defer pool.PutBatchBuffer(raw)

	rawSize := 0
	for _, r := range w.records {
		rawSize += 4 + len(r)
	}

	raw.ExtendOrGrow(rawSize)
	rawBytes := raw.Bytes()

	pos := 0
	for _, r := range w.records {
		pos += wire.PutUint32(rawBytes, pos, uint32(len(r)))
		pos += copy(rawBytes[pos:], r)
	}

	codec, err := compress.CreateCodec(w.cfg.compression, "batch")
	if err != nil {
		return err
	}

	compressed, err := codec.Compress(rawBytes)
	if err != nil {
		return err
	}

	header := containerHeader{
		version:     Version,
		compression: w.cfg.compression,
		recordCount: uint32(len(w.records)),
		digest:      xxhash.Sum64(compressed),
	}

	buf.ExtendOrGrow(HeaderSize + len(compressed))
	out := buf.Bytes()
	header.putBytes(out)
	copy(out[HeaderSize:], compressed)

	return nil
}
