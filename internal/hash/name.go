// Package hash computes the name and field-key hashes that identify
// records and fields on the wire.
package hash

import "hash/fnv"

// KeyMask clears the low byte of a name hash, leaving room for the
// 8-bit type tag that distinguishes same-named fields of different types.
const KeyMask = 0xFFFFFF00

// Name computes the FNV-1a 32-bit hash of name, used both as a
// standalone record name hash (§6.5) and as the basis of a field key.
func Name(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))

	return h.Sum32()
}

// FieldKey derives the 32-bit field key for a field named name with
// the given type tag: the top 24 bits of the FNV-1a hash of name,
// combined with the low 8 bits holding tag.
func FieldKey(name string, tag byte) uint32 {
	return (Name(name) & KeyMask) | uint32(tag)
}
