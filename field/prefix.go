package field

import "github.com/flatmsg-dev/flatmsg/wire"

// prefixKindForAlignment returns the size-prefix encoding used for a
// list cardinality (or a string's byte length) whose element type has
// the given serialization alignment.
func prefixKindForAlignment(align int) wire.PrefixKind {
	switch align {
	case 16:
		return wire.PrefixU32on128bits
	case 8:
		return wire.PrefixU32on64bits
	case 4:
		return wire.PrefixU32
	case 2:
		return wire.PrefixU16withExtension
	case 1:
		return wire.PrefixU8withExtension
	default:
		panic("field: unsupported alignment")
	}
}
