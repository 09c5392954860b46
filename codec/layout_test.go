package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStride(t *testing.T) {
	assert.Equal(t, int64(28), Stride(16))
	assert.Equal(t, int64(14), Stride(2))
}

func TestKeyOffset(t *testing.T) {
	assert.Equal(t, int64(12), KeyOffset(12, 0, 2))
	assert.Equal(t, int64(12+3*14), KeyOffset(12, 3, 2))
}

func TestMeta(t *testing.T) {
	meta := Meta{ValueLen: 42, ValueOff: 1 << 33}
	got := UnmarshalMeta(MarshalMeta(meta))
	assert.Equal(t, meta, got)
	assert.False(t, got.Tombstone())

	tomb := UnmarshalMeta(MarshalMeta(Meta{ValueLen: TombstoneLen}))
	assert.True(t, tomb.Tombstone())
	assert.Equal(t, int32(-1), tomb.ValueLen)
}

func TestKeyCount(t *testing.T) {
	assert.Equal(t, int32(3), UnmarshalKeyCount(MarshalKeyCount(3)))
	assert.Equal(t, int32(0), UnmarshalKeyCount(MarshalKeyCount(0)))
}

func TestByteCompare(t *testing.T) {
	assert.Equal(t, 0, ByteCompare([]byte("aa"), []byte("aa")))
	assert.Equal(t, -1, ByteCompare([]byte("aa"), []byte("ab")))
	assert.Equal(t, 1, ByteCompare([]byte{0xff}, []byte{0x00}))
}
