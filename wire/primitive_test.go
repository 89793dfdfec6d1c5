package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint16_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	n := PutUint16(buf, 2, 0xBEEF)
	require.Equal(t, 2, n)
	require.Equal(t, uint16(0xBEEF), Uint16(buf, 2))
}

func TestUint32_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	n := PutUint32(buf, 1, 0xDEADBEEF)
	require.Equal(t, 4, n)
	require.Equal(t, uint32(0xDEADBEEF), Uint32(buf, 1))
}

func TestUint64_RoundTrip(t *testing.T) {
	buf := make([]byte, 9)
	n := PutUint64(buf, 1, 0x0123456789ABCDEF)
	require.Equal(t, 8, n)
	require.Equal(t, uint64(0x0123456789ABCDEF), Uint64(buf, 1))
}

func TestUint128_RoundTrip(t *testing.T) {
	buf := make([]byte, 17)
	v := Uint128{Lo: 0x1111111111111111, Hi: 0x2222222222222222}
	n := PutUint128(buf, 1, v)
	require.Equal(t, 16, n)
	require.Equal(t, v, Uint128At(buf, 1))
}

func TestInt128_RoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	v := Int128{Lo: 0xFFFFFFFFFFFFFFFF, Hi: -1}
	PutInt128(buf, 0, v)
	require.Equal(t, v, Int128At(buf, 0))
}

func TestInt_NegativeRoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	PutInt8(buf, 0, -100)
	require.Equal(t, int8(-100), Int8(buf, 0))

	PutInt16(buf, 0, -12345)
	require.Equal(t, int16(-12345), Int16(buf, 0))

	PutInt32(buf, 0, -12345)
	require.Equal(t, int32(-12345), Int32(buf, 0))

	PutInt64(buf, 0, -123456789)
	require.Equal(t, int64(-123456789), Int64(buf, 0))
}

func TestFloat_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	PutFloat32(buf, 0, 3.14)
	require.InDelta(t, float32(3.14), Float32(buf, 0), 0.0001)

	PutFloat64(buf, 0, 2.71828182845)
	require.InDelta(t, 2.71828182845, Float64(buf, 0), 1e-12)
}

func TestBool_RoundTrip(t *testing.T) {
	buf := make([]byte, 2)

	PutBool(buf, 0, true)
	PutBool(buf, 1, false)

	require.True(t, Bool(buf, 0))
	require.False(t, Bool(buf, 1))
}

func TestBoolChecked(t *testing.T) {
	buf := []byte{0, 1, 7}

	v, ok := BoolChecked(buf, 0)
	require.True(t, ok)
	require.False(t, v)

	v, ok = BoolChecked(buf, 1)
	require.True(t, ok)
	require.True(t, v)

	_, ok = BoolChecked(buf, 2)
	require.False(t, ok)
}
