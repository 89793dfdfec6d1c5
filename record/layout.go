package record

import (
	"hash/crc32"

	"github.com/flatmsg-dev/flatmsg/errs"
	"github.com/flatmsg-dev/flatmsg/section"
	"github.com/flatmsg-dev/flatmsg/wire"
)

// Metadata holds the record-level metadata extracted from a decoded
// buffer's trailing region (§3.1). timestamp and unique_id are each
// independently present or absent; name_hash mirrors the record name
// hash when store_name was enabled at encode time.
type Metadata struct {
	Timestamp    uint64
	HasTimestamp bool
	UniqueID     uint64
	HasUniqueID  bool
	NameHash     uint32
	HasNameHash  bool
}

// layout is the parsed structural description of a FlatMsg buffer
// shared by both decode modes and the buffer view: header fields,
// table offsets/widths, and extracted metadata.
type layout struct {
	header          section.Header
	hashTableOffset int
	refTableOffset  int
	refTableWidth   int
	meta            Metadata
}

// parseLayout performs steps 1-8 of checked decode (§4.4): header
// parse, flag derivation, size-class computation, checksum
// verification, metadata extraction, version-compatibility check, and
// record-name validation. When checked is false, the minimum-size and
// checksum checks (steps 3's length floor and step 4) are skipped,
// matching the unchecked decoder's contract; version and name
// validation still run in both modes.
func parseLayout(buf []byte, cfg *Config, checked bool) (layout, error) {
	header, err := section.Parse(buf)
	if err != nil {
		return layout{}, err
	}

	refTableWidth := header.Flags.OffsetWidth()
	trailingBytes := header.Flags.TrailingMetadataSize()
	hashTableBytes := 4 * int(header.FieldsCount)
	refTableBytes := refTableWidth * int(header.FieldsCount)

	if checked {
		minSize := section.HeaderSize + trailingBytes + hashTableBytes + refTableBytes + int(header.FieldsCount)
		if len(buf) < minSize {
			return layout{}, errs.InvalidSizeToStoreFieldsTable(len(buf), minSize)
		}

		if header.Flags.HasChecksum() {
			found := wire.Uint32(buf, len(buf)-4)
			computed := crc32.ChecksumIEEE(buf[:len(buf)-4])
			if found != computed {
				return layout{}, errs.InvalidChecksum(found, computed)
			}
		}
	}

	hashTableOffset := len(buf) - trailingBytes - refTableBytes - hashTableBytes
	refTableOffset := hashTableOffset + hashTableBytes

	meta := Metadata{}
	tpos := refTableOffset + refTableBytes

	if header.Flags.HasTimestamp() {
		meta.Timestamp = wire.Uint64(buf, tpos)
		meta.HasTimestamp = true
		tpos += 8
	}

	if header.Flags.HasUniqueID() {
		meta.UniqueID = wire.Uint64(buf, tpos)
		meta.HasUniqueID = true
		tpos += 8
	}

	if header.Flags.HasNameHash() {
		meta.NameHash = wire.Uint32(buf, tpos)
		meta.HasNameHash = true
	}

	if set := cfg.CompatibleVersions(); set != nil && !set.Allows(header.Version) {
		return layout{}, errs.IncompatibleVersion(header.Version)
	}

	if cfg.ValidateName() {
		if !meta.HasNameHash {
			return layout{}, errs.ErrNameNotStored
		}

		if meta.NameHash != cfg.NameHash() {
			return layout{}, errs.ErrUnmatchedName
		}
	}

	return layout{
		header:          header,
		hashTableOffset: hashTableOffset,
		refTableOffset:  refTableOffset,
		refTableWidth:   refTableWidth,
		meta:            meta,
	}, nil
}
