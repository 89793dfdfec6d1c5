// Package compress provides compression and decompression codecs for
// FlatMsg batch containers.
//
// A batch container holds the concatenation of one or more independently
// encoded FlatMsg records. Compression is applied once, over that whole
// concatenation, never over an individual record's fields, which must stay
// directly addressable by offset.
//
// # Overview
//
// The package supports four algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - Records are already dense and well-packed
//   - CPU is more critical than container size
//   - Data is incompressible (random, encrypted)
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, err := codec.Compress(data)  // Best compression ratio
//	original, err := codec.Decompress(compressed)
//
// Best for cold storage, archival, and network transmission where
// bandwidth is limited and decompression happens infrequently.
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, err := codec.Compress(data)  // Fast with good compression
//	original, err := codec.Decompress(compressed)
//
// Best for a balance between compression ratio and speed, when latency
// matters more than squeezing out the last few bytes.
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, err := codec.Compress(data)  // Very fast decompression
//	original, err := codec.Decompress(compressed)
//
// Best for read-heavy workloads where decompression speed dominates.
//
// # Memory Management
//
// The Zstd and LZ4 codecs pool their encoder/decoder state to minimize
// allocations. Input slices are never modified. The Zstd, S2 and LZ4
// codecs return newly allocated slices owned by the caller; the NoOp
// codec returns its input slice as-is, sharing its memory.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
//
// # Error Handling
//
// Compression errors are rare but can occur on allocation failure.
// Decompression errors are more common and can result from corrupted
// input, a mismatched algorithm, or a decompressed size that exceeds the
// configured limit. All errors are wrapped with context for debugging.
//
// # Integration with the batch package
//
// The batch package uses this package internally. A Writer is configured
// with a compression type; the Reader detects it from the batch header
// and selects the matching codec automatically.
//
//	w := batch.NewWriter(batch.WithCompression(format.CompressionZstd))
//	w.Add(recordBuf1)
//	w.Add(recordBuf2)
//	err := w.Finish(buf) // buf is a *pool.ByteBuffer, cleared first
package compress
