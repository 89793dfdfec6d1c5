package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig("ProcessCreated")
	require.NoError(t, err)
	require.Equal(t, uint32(DefaultMaxSize), cfg.MaxSize())
	require.True(t, cfg.StoreName())
	require.True(t, cfg.MetadataEnabled())
	require.False(t, cfg.ChecksumEnabled())
	require.False(t, cfg.ValidateName())
	require.Equal(t, uint8(0), cfg.Version())
	require.Nil(t, cfg.CompatibleVersions())
}

func TestNewConfig_Options(t *testing.T) {
	cfg, err := NewConfig("ProcessCreated",
		WithMaxSize(1024),
		WithChecksum(true),
		WithValidateName(true),
		WithVersion(2),
		WithCompatibleVersions("1-3"),
	)
	require.NoError(t, err)
	require.Equal(t, uint32(1024), cfg.MaxSize())
	require.True(t, cfg.ChecksumEnabled())
	require.True(t, cfg.ValidateName())
	require.Equal(t, uint8(2), cfg.Version())
	require.True(t, cfg.CompatibleVersions().Allows(2))
}

func TestNewConfig_EmptyNameWithStoreNameFails(t *testing.T) {
	_, err := NewConfig("")
	require.Error(t, err)
}

func TestNewConfig_EmptyNameAllowedWhenNameDisabled(t *testing.T) {
	cfg, err := NewConfig("", WithStoreName(false), WithValidateName(false))
	require.NoError(t, err)
	require.Equal(t, "", cfg.RecordName())
}

func TestNewConfig_InvalidCompatibleVersions(t *testing.T) {
	_, err := NewConfig("X", WithCompatibleVersions("0"))
	require.Error(t, err)
}
