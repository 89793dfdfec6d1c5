package section

import (
	"testing"

	"github.com/flatmsg-dev/flatmsg/errs"
	"github.com/stretchr/testify/require"
)

func TestHeader_RoundTrip(t *testing.T) {
	flags := Flag(0).WithOffsetWidthCode(OffsetWidth2).WithChecksum(true).WithNameHash(true)
	h := NewHeader(6, 3, flags)

	buf := h.Bytes()
	require.Len(t, buf, HeaderSize)
	require.Equal(t, []byte{'G', 'T', 'H', 0x01}, buf[:4])

	got, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestParse_TooShort(t *testing.T) {
	_, err := Parse([]byte{'G', 'T', 'H'})
	require.Error(t, err)
}

func TestParse_BadMagic(t *testing.T) {
	buf := NewHeader(1, 0, 0).Bytes()
	buf[0] = 'X'

	_, err := Parse(buf)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestParse_InvalidOffsetWidth(t *testing.T) {
	buf := NewHeader(1, 0, Flag(OffsetWidth1)).Bytes()
	buf[7] |= 0x03 // force reserved offset-width code

	_, err := Parse(buf)
	require.Error(t, err)
}

func TestParse_ReservedFlagBits(t *testing.T) {
	buf := NewHeader(1, 0, 0).Bytes()
	buf[7] |= 0x40 // set a reserved bit

	_, err := Parse(buf)
	require.Error(t, err)
}
