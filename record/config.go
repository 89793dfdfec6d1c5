package record

import (
	"github.com/flatmsg-dev/flatmsg/errs"
	"github.com/flatmsg-dev/flatmsg/internal/hash"
	"github.com/flatmsg-dev/flatmsg/internal/options"
)

// DefaultMaxSize is the encoder's default hard upper bound on
// serialized size (§6.3), 16 MiB.
const DefaultMaxSize = 16 * 1024 * 1024

// Config holds the record-level and encoder-level settings compiled
// into a generated binding (§6.3). Build one with NewConfig.
type Config struct {
	recordName         string
	nameHash           uint32
	maxSize            uint32
	storeName          bool
	metadata           bool
	checksum           bool
	validateName       bool
	version            uint8
	compatibleVersions VersionSet
}

// RecordName returns the configured record name.
func (c *Config) RecordName() string { return c.recordName }

// NameHash returns the FNV-1a hash of RecordName (§6.5).
func (c *Config) NameHash() uint32 { return c.nameHash }

// MaxSize returns the encoder's hard upper bound on serialized size.
func (c *Config) MaxSize() uint32 { return c.maxSize }

// StoreName reports whether the encoder emits the trailing name hash.
func (c *Config) StoreName() bool { return c.storeName }

// MetadataEnabled reports whether timestamp/unique_id emission is allowed.
func (c *Config) MetadataEnabled() bool { return c.metadata }

// ChecksumEnabled reports whether the encoder emits a trailing checksum.
func (c *Config) ChecksumEnabled() bool { return c.checksum }

// ValidateName reports whether decode requires and compares the name hash.
func (c *Config) ValidateName() bool { return c.validateName }

// Version returns the version this config's encoder stamps into buffers.
func (c *Config) Version() uint8 { return c.version }

// CompatibleVersions returns the set of versions this config's decoder
// accepts, or nil if no restriction was configured.
func (c *Config) CompatibleVersions() VersionSet { return c.compatibleVersions }

func (c *Config) setMaxSize(v uint32)    { c.maxSize = v }
func (c *Config) setStoreName(v bool)    { c.storeName = v }
func (c *Config) setMetadata(v bool)     { c.metadata = v }
func (c *Config) setChecksum(v bool)     { c.checksum = v }
func (c *Config) setValidateName(v bool) { c.validateName = v }
func (c *Config) setVersion(v uint8)     { c.version = v }

func (c *Config) setCompatibleVersions(spec string) error {
	set, err := ParseVersionSet(spec)
	if err != nil {
		return err
	}

	c.compatibleVersions = set

	return nil
}

// Option configures a Config passed to NewConfig.
type Option = options.Option[*Config]

// WithMaxSize overrides the default 16 MiB serialized-size bound.
func WithMaxSize(n uint32) Option {
	return options.NoError(func(c *Config) { c.setMaxSize(n) })
}

// WithStoreName controls whether the encoder emits the trailing name hash.
func WithStoreName(enabled bool) Option {
	return options.NoError(func(c *Config) { c.setStoreName(enabled) })
}

// WithMetadata controls whether timestamp/unique_id emission is allowed.
func WithMetadata(enabled bool) Option {
	return options.NoError(func(c *Config) { c.setMetadata(enabled) })
}

// WithChecksum controls whether the encoder emits a trailing checksum.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *Config) { c.setChecksum(enabled) })
}

// WithValidateName requires decode to find and compare the stored name hash.
func WithValidateName(enabled bool) Option {
	return options.NoError(func(c *Config) { c.setValidateName(enabled) })
}

// WithVersion sets the version this config's encoder stamps into buffers.
func WithVersion(v uint8) Option {
	return options.NoError(func(c *Config) { c.setVersion(v) })
}

// WithCompatibleVersions parses spec (§6.3 syntax) and restricts decode
// to the resulting version set.
func WithCompatibleVersions(spec string) Option {
	return options.New(func(c *Config) error { return c.setCompatibleVersions(spec) })
}

// NewConfig builds a Config for a record named recordName, applying
// defaults (§6.3) before opts. recordName must be non-empty whenever
// store_name or validate_name end up enabled, which is the default.
func NewConfig(recordName string, opts ...Option) (*Config, error) {
	c := &Config{
		recordName:   recordName,
		nameHash:     hash.Name(recordName),
		maxSize:      DefaultMaxSize,
		storeName:    true,
		metadata:     true,
		checksum:     false,
		validateName: false,
		version:      0,
	}

	if err := options.Apply[*Config](c, opts...); err != nil {
		return nil, err
	}

	if recordName == "" && (c.storeName || c.validateName) {
		return nil, errs.ErrEmptyRecordName
	}

	return c, nil
}
