// Package errs defines the sentinel errors surfaced by the flatmsg
// encoder, decoder, and buffer view.
//
// Every exported sentinel can be matched with errors.Is; the
// constructor functions wrap a sentinel with contextual detail via
// fmt.Errorf("%w: ...", ...) so callers get both a stable identity
// and a human-readable message.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeaderLength is returned when the input is shorter than the 8-byte header.
	ErrInvalidHeaderLength = errors.New("flatmsg: invalid header length")
	// ErrInvalidMagic is returned when the magic prefix does not match 'G','T','H',0x01.
	ErrInvalidMagic = errors.New("flatmsg: invalid magic number")
	// ErrInvalidOffsetSize is returned when flag bits 0-1 encode the reserved value 3.
	ErrInvalidOffsetSize = errors.New("flatmsg: invalid offset size")
	// ErrInvalidSizeToStoreMetaData identifies a buffer too short for its declared trailing metadata.
	// The decoders in this module do not return it: their single size floor covers metadata and
	// tables together and reports ErrInvalidSizeToStoreFieldsTable.
	ErrInvalidSizeToStoreMetaData = errors.New("flatmsg: invalid size to store metadata")
	// ErrInvalidSizeToStoreFieldsTable is returned when the buffer is too short for its declared hash/reference tables.
	ErrInvalidSizeToStoreFieldsTable = errors.New("flatmsg: invalid size to store fields table")
	// ErrInvalidChecksum is returned when the checksum flag is set but the computed checksum does not match.
	ErrInvalidChecksum = errors.New("flatmsg: invalid checksum")
	// ErrInvalidFieldOffset is returned when a reference-table offset lies outside [8, hash_table_offset).
	ErrInvalidFieldOffset = errors.New("flatmsg: invalid field offset")
	// ErrUnknownHash is returned when an expected field key is not present in the hash table.
	ErrUnknownHash = errors.New("flatmsg: unknown field hash")
	// ErrFailToDeserialize is returned when a field payload fails its per-type validation.
	ErrFailToDeserialize = errors.New("flatmsg: failed to deserialize field")
	// ErrIncompatibleVersion is returned when the buffer's version is outside the target's compatible set.
	ErrIncompatibleVersion = errors.New("flatmsg: incompatible version")
	// ErrNameNotStored is returned when validate_name is set but the buffer lacks a stored name hash.
	ErrNameNotStored = errors.New("flatmsg: record name hash not stored in buffer")
	// ErrUnmatchedName is returned when the stored name hash does not match the target's declared name.
	ErrUnmatchedName = errors.New("flatmsg: record name hash does not match")
	// ErrExceedMaxSize is returned when the encoder would exceed the configured max_size.
	ErrExceedMaxSize = errors.New("flatmsg: encoded size exceeds configured maximum")

	// ErrDuplicateFieldKey is a definition-time error: two fields resolved to the same key.
	ErrDuplicateFieldKey = errors.New("flatmsg: duplicate field key")
	// ErrTooManyFields is a definition-time error: more than 65535 fields were added.
	ErrTooManyFields = errors.New("flatmsg: too many fields")
	// ErrInvalidVersionSet is returned by ParseVersionSet on a malformed compatible_versions string.
	ErrInvalidVersionSet = errors.New("flatmsg: invalid compatible version set")
	// ErrInvalidHeaderFlags is returned when reserved flag bits are non-zero.
	ErrInvalidHeaderFlags = errors.New("flatmsg: invalid header flags")
	// ErrEmptyRecordName is returned when store_name or validate_name is enabled without a record name.
	ErrEmptyRecordName = errors.New("flatmsg: record name must not be empty when name hash is enabled")
)

// InvalidHeaderLength reports an input shorter than the 8-byte header.
func InvalidHeaderLength(n int) error {
	return fmt.Errorf("%w: got %d bytes, need at least 8", ErrInvalidHeaderLength, n)
}

// InvalidSizeToStoreMetaData reports a buffer too short for its declared trailing metadata.
func InvalidSizeToStoreMetaData(actual, needed int) error {
	return fmt.Errorf("%w: have %d bytes, need %d", ErrInvalidSizeToStoreMetaData, actual, needed)
}

// InvalidSizeToStoreFieldsTable reports a buffer too short for its declared hash/reference tables.
func InvalidSizeToStoreFieldsTable(actual, needed int) error {
	return fmt.Errorf("%w: have %d bytes, need %d", ErrInvalidSizeToStoreFieldsTable, actual, needed)
}

// InvalidChecksum reports a checksum mismatch.
func InvalidChecksum(found, computed uint32) error {
	return fmt.Errorf("%w: found 0x%08x, computed 0x%08x", ErrInvalidChecksum, found, computed)
}

// InvalidFieldOffset reports a reference-table offset outside [8, limit).
func InvalidFieldOffset(off, limit int) error {
	return fmt.Errorf("%w: offset %d, must be in [8,%d)", ErrInvalidFieldOffset, off, limit)
}

// UnknownHash reports a missing field key.
func UnknownHash(key uint32) error {
	return fmt.Errorf("%w: 0x%08x", ErrUnknownHash, key)
}

// FailToDeserialize reports a per-type payload validation failure for the given field key.
func FailToDeserialize(key uint32) error {
	return fmt.Errorf("%w: field key 0x%08x", ErrFailToDeserialize, key)
}

// IncompatibleVersion reports a buffer version outside the compatible set.
func IncompatibleVersion(v uint8) error {
	return fmt.Errorf("%w: %d", ErrIncompatibleVersion, v)
}

// ExceedMaxSize reports an encoded size exceeding the configured maximum.
func ExceedMaxSize(actual, max uint32) error {
	return fmt.Errorf("%w: %d exceeds %d", ErrExceedMaxSize, actual, max)
}

// DuplicateFieldKey reports a definition-time duplicate field key for the given name and key.
func DuplicateFieldKey(name string, key uint32) error {
	return fmt.Errorf("%w: field %q resolves to key 0x%08x already in use", ErrDuplicateFieldKey, name, key)
}

// TooManyFields reports an attempt to exceed the 65535-field limit.
func TooManyFields(count int) error {
	return fmt.Errorf("%w: %d exceeds the 65535 field limit", ErrTooManyFields, count)
}

// InvalidVersionSet reports a malformed compatible_versions specification.
func InvalidVersionSet(spec string, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidVersionSet, spec, reason)
}
