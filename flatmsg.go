// Package flatmsg provides a compact, self-describing binary
// serialization format for fixed-schema records (process events,
// telemetry, RPC payloads), optimized for zero-copy field access and
// O(log n) field lookup via a sorted hash table.
//
// # Core features
//
//   - Self-describing records: every field carries a 32-bit key
//     derived from its name and type, so readers can validate a
//     buffer's shape without an external schema registry.
//   - Zero-copy field lookup: CheckedDecoder and View index directly
//     into the source byte slice; decoded string and list values are
//     copied out of it.
//   - Two decode modes: a checked decoder that validates every
//     structural invariant, and an unchecked decoder that trusts the
//     buffer for maximum throughput.
//   - Schema evolution: name-hash validation, compatible-version
//     matching, and cross-shape decode (readers may use a narrower
//     field set than the writer declared).
//   - Optional container batching (package batch) with whole-container
//     compression and an xxHash64 digest.
//
// # Basic usage
//
// Encoding a record:
//
//	import (
//	    "github.com/flatmsg-dev/flatmsg/field"
//	    "github.com/flatmsg-dev/flatmsg/record"
//	)
//
//	cfg, _ := flatmsg.NewConfig("ProcessCreated", record.WithChecksum(true))
//	b := flatmsg.NewBuilder(cfg)
//	_ = b.AddField(field.U32("pid", 4242))
//	_ = b.AddField(field.String("command_line", "/usr/bin/env bash"))
//	b.WithTimestamp(uint64(time.Now().UnixNano()))
//
//	buf := flatmsg.NewBuffer()
//	if err := b.Finish(buf); err != nil {
//	    log.Fatal(err)
//	}
//	data := buf.Bytes()
//
// Decoding it back:
//
//	dec, err := flatmsg.NewCheckedDecoder(data, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	off, err := dec.Field(field.Key("pid", field.TagU32))
//	pid, _, ok := field.U32Accessor.DecodeChecked(dec.Buf(), off)
//
// Or, for ad-hoc random access without a generated binding:
//
//	view, err := flatmsg.NewView(data, cfg)
//	pid, ok := flatmsg.Get(view, "pid", field.U32Accessor)
//
// # Package structure
//
// This package provides convenient top-level wrappers around the
// record package for the most common construction calls. The record,
// field, wire, and section packages expose the full C1-C5 surface for
// generated schema bindings; the batch package groups multiple
// encoded records into a compressed, digest-protected container.
package flatmsg

import (
	"github.com/flatmsg-dev/flatmsg/batch"
	"github.com/flatmsg-dev/flatmsg/field"
	"github.com/flatmsg-dev/flatmsg/internal/pool"
	"github.com/flatmsg-dev/flatmsg/record"
)

// Config is the record-level and encoder-level configuration for a
// declared record shape. See record.NewConfig and record.WithXxx options.
type Config = record.Config

// Option configures a Config passed to NewConfig.
type Option = record.Option

// Metadata holds the record-level metadata (timestamp, unique_id,
// name_hash) extracted from a decoded buffer.
type Metadata = record.Metadata

// Builder assembles a typed field set into a FlatMsg record buffer.
type Builder = record.Builder

// CheckedDecoder validates every structural invariant while decoding.
type CheckedDecoder = record.CheckedDecoder

// UncheckedDecoder trusts the buffer for maximum decode throughput.
type UncheckedDecoder = record.UncheckedDecoder

// View is a lightweight, non-materializing handle over a decoded buffer.
type View = record.View

// NewConfig builds a record Config named name, applying defaults from
// §6.3 before opts.
func NewConfig(name string, opts ...Option) (*Config, error) {
	return record.NewConfig(name, opts...)
}

// NewBuilder creates a Builder for the given record configuration.
func NewBuilder(cfg *Config) *Builder {
	return record.NewBuilder(cfg)
}

// NewCheckedDecoder parses and structurally validates data against cfg.
func NewCheckedDecoder(data []byte, cfg *Config) (*CheckedDecoder, error) {
	return record.NewCheckedDecoder(data, cfg)
}

// NewUncheckedDecoder parses data against cfg, trusting it for
// maximum throughput. Only call this on buffers already known valid.
func NewUncheckedDecoder(data []byte, cfg *Config) (*UncheckedDecoder, error) {
	return record.NewUncheckedDecoder(data, cfg)
}

// NewView validates data's structure against cfg and returns a View
// over it without decoding any field.
func NewView(data []byte, cfg *Config) (*View, error) {
	return record.NewView(data, cfg)
}

// NewBuffer returns a pooled, growable output buffer suitable for
// Builder.Finish or batch.Writer.Finish.
func NewBuffer() *pool.ByteBuffer {
	return pool.GetBuffer()
}

// ReleaseBuffer returns buf, obtained from NewBuffer, to its pool.
func ReleaseBuffer(buf *pool.ByteBuffer) {
	pool.PutBuffer(buf)
}

// Get looks up a scalar field named name in view via acc.
func Get[T any](v *View, name string, acc field.Accessor[T]) (T, bool) {
	return record.Get(v, name, acc)
}

// GetList looks up a list field named name in view via acc.
func GetList[T any](v *View, name string, acc field.ListAccessor[T]) ([]T, bool) {
	return record.GetList(v, name, acc)
}

// GetEnum looks up an enum-valued field named name in view.
func GetEnum(v *View, name string, desc *field.EnumDescriptor) (int64, bool) {
	return record.GetEnum(v, name, desc)
}

// GetEnumList looks up an enum-list field named name in view.
func GetEnumList(v *View, name string, desc *field.EnumDescriptor) ([]int64, bool) {
	return record.GetEnumList(v, name, desc)
}

// BatchWriter groups multiple already-encoded record buffers into a
// single compressed, digest-protected container. See package batch.
type BatchWriter = batch.Writer

// BatchReader exposes the decompressed, digest-verified record
// buffers of a parsed batch container.
type BatchReader = batch.Reader

// BatchOption configures a BatchWriter passed to NewBatchWriter.
type BatchOption = batch.WriterOption

// NewBatchWriter creates a BatchWriter with the given container options.
func NewBatchWriter(opts ...BatchOption) *BatchWriter {
	return batch.NewWriter(opts...)
}

// ParseBatch validates and decompresses a batch container, returning
// its individual record buffers.
func ParseBatch(data []byte) (*BatchReader, error) {
	return batch.Parse(data)
}
