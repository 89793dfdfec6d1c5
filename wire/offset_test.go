package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintWidth_RoundTrip(t *testing.T) {
	for _, width := range []int{1, 2, 4} {
		buf := make([]byte, 8)
		n := PutUintWidth(buf, 2, 0x11, width)
		require.Equal(t, width, n)

		got := UintWidth(buf, 2, width)
		require.Equal(t, uint32(0x11), got)
	}
}

func TestUintWidth_PanicsOnInvalidWidth(t *testing.T) {
	require.Panics(t, func() { PutUintWidth(make([]byte, 8), 0, 1, 3) })
	require.Panics(t, func() { UintWidth(make([]byte, 8), 0, 3) })
}

func TestUintWidthChecked(t *testing.T) {
	buf := make([]byte, 4)
	_ = PutUintWidth(buf, 0, 0xABCD, 4)

	v, ok := UintWidthChecked(buf, 0, 4)
	require.True(t, ok)
	require.Equal(t, uint32(0xABCD), v)

	_, ok = UintWidthChecked(buf, 2, 4)
	require.False(t, ok)

	_, ok = UintWidthChecked(buf, -1, 1)
	require.False(t, ok)
}
