package codec

import (
	"bytes"
	"encoding/binary"
)

/*
on-disk layout:
	- header: format id (implementation-defined) | keyCount(4, big endian)
	- key index: n fixed-width records sorted ascending by key bytes
	  key(keySize) | valueLen(4, big endian, signed) | valueOff(8, big endian)
	- value region: raw value bytes addressed by valueOff/valueLen
	a valueLen of -1 is a tombstone, no value bytes are stored for it
*/

const (
	// ValueLenSize and ValueOffSize are the fixed meta fields trailing the
	// key bytes in every index record.
	ValueLenSize = 4
	ValueOffSize = 8
	MetaSize     = ValueLenSize + ValueOffSize

	// KeyCountSize is the width of the record count field in the header.
	KeyCountSize = 4

	// TombstoneLen marks a deleted key.
	TombstoneLen = -1

	// DefaultKeyCountOffset and DefaultBaseKeyOffset match the standard
	// writer header: an 8-byte format id followed by the record count.
	DefaultKeyCountOffset = 8
	DefaultBaseKeyOffset  = DefaultKeyCountOffset + KeyCountSize
)

// Stride is the on-disk width of one index record.
func Stride(keySize int64) int64 {
	return keySize + MetaSize
}

// KeyOffset is the absolute file offset of index record i.
func KeyOffset(base, i, keySize int64) int64 {
	return base + i*Stride(keySize)
}

// Geometry locates the key index inside a log file. The writer fixes these
// values; readers receive them as configuration, the file does not store
// the key size per record.
type Geometry struct {
	KeySize        int64
	BaseKeyOffset  int64
	KeyCountOffset int64
}

// Meta is the fixed-width tail of an index record.
type Meta struct {
	ValueLen int32
	ValueOff int64
}

// Tombstone reports whether the meta marks a deleted key.
func (m Meta) Tombstone() bool {
	return m.ValueLen == TombstoneLen
}

func MarshalMeta(m Meta) []byte {
	data := make([]byte, MetaSize)
	binary.BigEndian.PutUint32(data[:ValueLenSize], uint32(m.ValueLen))
	binary.BigEndian.PutUint64(data[ValueLenSize:], uint64(m.ValueOff))
	return data
}

// UnmarshalMeta decodes the value length/offset pair that follows the key
// bytes. data must hold at least MetaSize bytes.
func UnmarshalMeta(data []byte) Meta {
	return Meta{
		ValueLen: int32(binary.BigEndian.Uint32(data[:ValueLenSize])),
		ValueOff: int64(binary.BigEndian.Uint64(data[ValueLenSize:MetaSize])),
	}
}

func MarshalKeyCount(n int32) []byte {
	data := make([]byte, KeyCountSize)
	binary.BigEndian.PutUint32(data, uint32(n))
	return data
}

func UnmarshalKeyCount(data []byte) int32 {
	return int32(binary.BigEndian.Uint32(data[:KeyCountSize]))
}

// Compare orders two keys. The index is sorted under one comparator and the
// search must receive the same one; it is an explicit argument everywhere,
// never package state.
type Compare func(a, b []byte) int

// ByteCompare is the unsigned lexicographic comparator the standard writer
// sorts with.
func ByteCompare(a, b []byte) int {
	return bytes.Compare(a, b)
}
