package record

import (
	"hash/crc32"
	"sort"

	"github.com/flatmsg-dev/flatmsg/errs"
	"github.com/flatmsg-dev/flatmsg/field"
	"github.com/flatmsg-dev/flatmsg/internal/pool"
	"github.com/flatmsg-dev/flatmsg/section"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// MaxFields is the largest field count a single record can carry
// (fields_count is a u16 on the wire).
const MaxFields = 65535

// Builder assembles a typed field set into a FlatMsg record buffer
// (C3). A Builder is not reusable: build one, add fields, call
// Finish once.
type Builder struct {
	cfg    *Config
	fields []field.Encodable
	keys   map[uint32]struct{}

	timestamp uint64
	hasTS     bool
	uniqueID  uint64
	hasUID    bool
}

// NewBuilder creates a Builder for the given record configuration.
func NewBuilder(cfg *Config) *Builder {
	return &Builder{cfg: cfg, keys: make(map[uint32]struct{})}
}

// AddField appends f to the record's field set. It fails with
// ErrDuplicateFieldKey if f's key collides with a previously added
// field, or ErrTooManyFields if the record already holds MaxFields.
func (b *Builder) AddField(f field.Encodable) error {
	key := f.Key()
	if _, exists := b.keys[key]; exists {
		return errs.DuplicateFieldKey(f.Name(), key)
	}

	if len(b.fields) >= MaxFields {
		return errs.TooManyFields(len(b.fields) + 1)
	}

	b.keys[key] = struct{}{}
	b.fields = append(b.fields, f)

	return nil
}

// WithTimestamp sets the record's metadata timestamp. It is only
// emitted if the record's configuration has metadata enabled.
func (b *Builder) WithTimestamp(ts uint64) *Builder {
	b.timestamp = ts
	b.hasTS = true

	return b
}

// WithUniqueID sets the record's metadata unique ID. It is only
// emitted if the record's configuration has metadata enabled.
func (b *Builder) WithUniqueID(id uint64) *Builder {
	b.uniqueID = id
	b.hasUID = true

	return b
}

// WithAutoUniqueID sets the record's metadata unique ID to the next
// value of the process-wide AutoUniqueID counter, for callers with no
// natural unique identifier of their own.
func (b *Builder) WithAutoUniqueID() *Builder {
	return b.WithUniqueID(AutoUniqueID())
}

type keyedField struct {
	f   field.Encodable
	key uint32
}

// alignUp rounds n up to the nearest multiple of align (align must be
// a power of two, or 1 for no alignment).
func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}

	return (n + align - 1) &^ (align - 1)
}

// Finish lays out the accumulated fields per the layout algorithm
// (§4.3) and writes the resulting FlatMsg record into buf, which is
// cleared first. On success buf's length equals the exact encoded
// size. Finish fails with ExceedMaxSize if the computed size exceeds
// the configured max_size.
func (b *Builder) Finish(buf *pool.ByteBuffer) error {
	buf.Reset()

	n := len(b.fields)

	keyed := make([]keyedField, n)
	for i, f := range b.fields {
		keyed[i] = keyedField{f: f, key: f.Key()}
	}

	// Step 1: order by decreasing alignment, stable on declaration order.
	ordered := make([]keyedField, n)
	copy(ordered, keyed)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].f.Alignment() > ordered[j].f.Alignment()
	})

	// Step 2: estimate size of the data region.
	offset := section.HeaderSize
	for _, e := range ordered {
		offset = alignUp(offset, e.f.Alignment())
		offset += e.f.Size()
	}

	// Step 3: hash table + reference table sizing.
	hashTableOffset := alignUp(offset, 4)
	hashTableBytes := 4 * n

	// Step 4: select offset width from the hash-table offset.
	flags := section.Flag(0).WithOffsetWidthCode(section.OffsetWidthCodeFor(uint32(hashTableOffset)))
	refTableWidth := flags.OffsetWidth()
	refTableBytes := refTableWidth * n
	refTableOffset := hashTableOffset + hashTableBytes

	// Step 5: trailing metadata sizing.
	flags = flags.WithChecksum(b.cfg.ChecksumEnabled())
	flags = flags.WithNameHash(b.cfg.StoreName())
	flags = flags.WithTimestamp(b.cfg.MetadataEnabled() && b.hasTS)
	flags = flags.WithUniqueID(b.cfg.MetadataEnabled() && b.hasUID)
	trailingBytes := flags.TrailingMetadataSize()

	totalSize := refTableOffset + refTableBytes + trailingBytes
	if uint32(totalSize) > b.cfg.MaxSize() {
		return errs.ExceedMaxSize(uint32(totalSize), b.cfg.MaxSize())
	}

	// Step 6: resize and write the header.
	buf.ExtendOrGrow(totalSize)
	out := buf.Bytes()

	header := section.NewHeader(uint16(n), b.cfg.Version(), flags)
	header.PutBytes(out)

	// Hash-table order: rank of each field's key after ascending sort.
	sortedByKey := make([]keyedField, n)
	copy(sortedByKey, keyed)
	sort.Slice(sortedByKey, func(i, j int) bool { return sortedByKey[i].key < sortedByKey[j].key })

	rank := make(map[uint32]int, n)
	for i, e := range sortedByKey {
		rank[e.key] = i
	}

	// Step 7: walk fields in alignment order, writing payloads and
	// the corresponding reference-table slot.
	pos := section.HeaderSize
	for _, e := range ordered {
		pos = alignUp(pos, e.f.Alignment())
		wire.PutUintWidth(out, refTableOffset+rank[e.key]*refTableWidth, uint32(pos), refTableWidth)
		pos += e.f.Encode(out, pos)
	}

	// Step 8: emit the hash table, sorted ascending by key.
	for i, e := range sortedByKey {
		wire.PutUint32(out, hashTableOffset+i*4, e.key)
	}

	// Step 9: trailing metadata, then checksum.
	tpos := refTableOffset + refTableBytes
	if flags.HasTimestamp() {
		tpos += wire.PutUint64(out, tpos, b.timestamp)
	}

	if flags.HasUniqueID() {
		tpos += wire.PutUint64(out, tpos, b.uniqueID)
	}

	if flags.HasNameHash() {
		tpos += wire.PutUint32(out, tpos, b.cfg.NameHash())
	}

	if flags.HasChecksum() {
		sum := crc32.ChecksumIEEE(out[:tpos])
		wire.PutUint32(out, tpos, sum)
	}

	return nil
}
