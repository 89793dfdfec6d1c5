package record

import (
	"strconv"
	"strings"

	"github.com/flatmsg-dev/flatmsg/errs"
)

// VersionSet is the parsed form of a compatible_versions declaration:
// the set of u8 versions a decoder accepts.
type VersionSet map[uint8]bool

// Allows reports whether v is a member of the set.
func (s VersionSet) Allows(v uint8) bool {
	return s[v]
}

// ParseVersionSet parses a compatible_versions string (§6.3): a
// comma-separated list of items, each either a single version ("5"),
// a closed interval ("1-10", "1:10", "1..10"), or "<n" meaning the
// closed interval "1..n". Version 0 is disallowed anywhere.
func ParseVersionSet(spec string) (VersionSet, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, errs.InvalidVersionSet(spec, "empty version set")
	}

	set := make(VersionSet)

	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, errs.InvalidVersionSet(spec, "empty item")
		}

		lo, hi, err := parseVersionItem(item)
		if err != nil {
			return nil, errs.InvalidVersionSet(spec, err.Error())
		}

		for v := lo; v <= hi; v++ {
			set[v] = true
			if v == 255 {
				break
			}
		}
	}

	return set, nil
}

func parseVersionItem(item string) (lo, hi uint8, err error) {
	if strings.HasPrefix(item, "<") {
		n, err := parseVersionNumber(item[1:])
		if err != nil {
			return 0, 0, err
		}

		return 1, n, nil
	}

	for _, sep := range []string{"..", "-", ":"} {
		if idx := strings.Index(item, sep); idx >= 0 {
			loStr, hiStr := item[:idx], item[idx+len(sep):]

			lo, err := parseVersionNumber(loStr)
			if err != nil {
				return 0, 0, err
			}

			hi, err := parseVersionNumber(hiStr)
			if err != nil {
				return 0, 0, err
			}

			if lo > hi {
				return 0, 0, errLowGreaterThanHigh
			}

			return lo, hi, nil
		}
	}

	n, err := parseVersionNumber(item)
	if err != nil {
		return 0, 0, err
	}

	return n, n, nil
}

func parseVersionNumber(s string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, errNotANumber
	}

	if n == 0 {
		return 0, errZeroVersion
	}

	return uint8(n), nil
}

var (
	errLowGreaterThanHigh = versionSyntaxError("interval lower bound greater than upper bound")
	errNotANumber         = versionSyntaxError("not a valid u8 number")
	errZeroVersion        = versionSyntaxError("version 0 is disallowed")
)

type versionSyntaxError string

func (e versionSyntaxError) Error() string { return string(e) }
