package fio

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/sortlog/sortlog/codec"
	"github.com/sortlog/sortlog/model"
)

// DirectIO serves lookups straight off the raw mapping with pointer
// arithmetic, skipping the bounds-checked slice path MmapIO takes. It is a
// pure performance variant: for identical files it returns exactly what the
// other strategies return.
//
// Every raw access is preceded by an explicit offset+length check against
// the mapping size. Dereferencing outside the mapping is undefined
// behavior, so the checks are the contract, not an optimization to skip.
type DirectIO struct {
	*MmapIO
}

func NewDirectIO(path string) (*DirectIO, error) {
	mio, err := NewMmapIO(path)
	if err != nil {
		return nil, err
	}
	return &DirectIO{MmapIO: mio}, nil
}

// GetValue binary-searches the key index against the raw mapping.
func (dio *DirectIO) GetValue(key []byte, geo codec.Geometry) (model.Result, error) {
	if err := dio.check(geo.KeyCountOffset, codec.KeyCountSize); err != nil {
		return model.Result{}, err
	}
	n := int64(int32(dio.u32(geo.KeyCountOffset)))
	if n < 0 {
		return model.Result{}, fmt.Errorf("%w: negative record count %d", codec.ErrCorrupted, n)
	}
	// one bound check covers every record the search can touch
	if err := dio.check(geo.BaseKeyOffset, n*codec.Stride(geo.KeySize)); err != nil {
		return model.Result{}, err
	}

	lo, hi := int64(0), n-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		off := codec.KeyOffset(geo.BaseKeyOffset, mid, geo.KeySize)
		switch c := dio.compareAt(key, off); {
		case c == 0:
			metaOff := off + geo.KeySize
			vlen := int32(dio.u32(metaOff))
			voff := int64(dio.u64(metaOff + codec.ValueLenSize))
			switch {
			case vlen == codec.TombstoneLen:
				return model.Tombstone, nil
			case vlen < 0:
				return model.Result{}, fmt.Errorf("%w: negative value length %d", codec.ErrCorrupted, vlen)
			}
			if err := dio.check(voff, int64(vlen)); err != nil {
				return model.Result{}, err
			}
			val := make([]byte, vlen)
			copy(val, unsafe.Slice((*byte)(unsafe.Add(dio.base(), voff)), vlen))
			return model.Found(val), nil
		case c < 0:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return model.Absent, nil
}

// base returns the mapping start. Only valid while the mapping is live and
// non-empty; callers reach it through check first.
func (dio *DirectIO) base() unsafe.Pointer {
	return unsafe.Pointer(&dio.data[0])
}

// check validates that [off, off+length) lies inside the mapping. It must
// pass before any raw access to that range. The comparison avoids computing
// off+length, which wraps negative for hostile offsets near MaxInt64 and
// would let a wild dereference through.
func (dio *DirectIO) check(off, length int64) error {
	if off < 0 || length < 0 || off > dio.size || length > dio.size-off {
		return fmt.Errorf("%w: access of %d bytes at %d outside mapped file of %d bytes",
			codec.ErrCorrupted, length, off, dio.size)
	}
	return nil
}

// u32 loads a big-endian uint32 at off. Precondition: check(off, 4) passed.
func (dio *DirectIO) u32(off int64) uint32 {
	p := (*[4]byte)(unsafe.Add(dio.base(), off))
	return binary.BigEndian.Uint32(p[:])
}

// u64 loads a big-endian uint64 at off. Precondition: check(off, 8) passed.
func (dio *DirectIO) u64(off int64) uint64 {
	p := (*[8]byte)(unsafe.Add(dio.base(), off))
	return binary.BigEndian.Uint64(p[:])
}

// compareAt orders key against the len(key) bytes stored at off, a word at
// a time. Big-endian word compares agree with byte-lexicographic order.
// Precondition: check(off, len(key)) passed.
func (dio *DirectIO) compareAt(key []byte, off int64) int {
	stored := unsafe.Slice((*byte)(unsafe.Add(dio.base(), off)), len(key))
	i := 0
	for ; i+8 <= len(key); i += 8 {
		a := binary.BigEndian.Uint64(key[i:])
		b := binary.BigEndian.Uint64(stored[i:])
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	for ; i < len(key); i++ {
		if key[i] != stored[i] {
			if key[i] < stored[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
