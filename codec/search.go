package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/sortlog/sortlog/model"
)

// ErrCorrupted reports a decoded offset or length that does not fit the
// file, or a file that ends before a full record.
var ErrCorrupted = errors.New("sortlog err: data file may be corrupted")

// Reader is the minimal positional read primitive the search and the record
// decoder need. Reads are offset-addressed so concurrent lookups never share
// cursor state. Implementations fill buf completely unless the file ends
// first, in which case they return the short count with io.EOF.
type Reader interface {
	Read(buf []byte, off int64) (int, error)
}

// Search binary-searches the sorted fixed-width key index of r for key and
// commits to exactly one of found, tombstone or absent. cmp must be the
// comparator the index was sorted with.
func Search(r Reader, key []byte, geo Geometry, cmp Compare) (model.Result, error) {
	n, err := KeyCount(r, geo)
	if err != nil {
		return model.Result{}, err
	}

	keyBuf := make([]byte, geo.KeySize)
	metaBuf := make([]byte, MetaSize)

	lo, hi := int64(0), int64(n)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		off := KeyOffset(geo.BaseKeyOffset, mid, geo.KeySize)
		if err := readFull(r, keyBuf, off); err != nil {
			return model.Result{}, err
		}
		switch c := cmp(key, keyBuf); {
		case c == 0:
			if err := readFull(r, metaBuf, off+geo.KeySize); err != nil {
				return model.Result{}, err
			}
			return readValue(r, UnmarshalMeta(metaBuf))
		case c < 0:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return model.Absent, nil
}

// KeyCount reads the record count from the header.
func KeyCount(r Reader, geo Geometry) (int32, error) {
	buf := make([]byte, KeyCountSize)
	if err := readFull(r, buf, geo.KeyCountOffset); err != nil {
		return 0, err
	}
	n := UnmarshalKeyCount(buf)
	if n < 0 {
		return 0, fmt.Errorf("%w: negative record count %d", ErrCorrupted, n)
	}
	return n, nil
}

// ReadRecord decodes index record i into a key-value pair, fetching the
// value bytes unless the record is a tombstone.
func ReadRecord(r Reader, geo Geometry, i int64) (model.Record, error) {
	buf := make([]byte, Stride(geo.KeySize))
	if err := readFull(r, buf, KeyOffset(geo.BaseKeyOffset, i, geo.KeySize)); err != nil {
		return model.Record{}, err
	}

	key := make([]byte, geo.KeySize)
	copy(key, buf[:geo.KeySize])

	res, err := readValue(r, UnmarshalMeta(buf[geo.KeySize:]))
	if err != nil {
		return model.Record{}, err
	}
	return model.Record{
		Key:       key,
		Value:     res.Value,
		Tombstone: res.Kind == model.KindTombstone,
	}, nil
}

// readValue resolves a decoded meta to its result variant. Any negative
// length other than the tombstone marker, and any negative offset, is
// corruption, not a guess.
func readValue(r Reader, meta Meta) (model.Result, error) {
	switch {
	case meta.Tombstone():
		return model.Tombstone, nil
	case meta.ValueLen < 0:
		return model.Result{}, fmt.Errorf("%w: negative value length %d", ErrCorrupted, meta.ValueLen)
	case meta.ValueOff < 0:
		return model.Result{}, fmt.Errorf("%w: negative value offset %d", ErrCorrupted, meta.ValueOff)
	}

	val := make([]byte, meta.ValueLen)
	if err := readFull(r, val, meta.ValueOff); err != nil {
		return model.Result{}, err
	}
	return model.Found(val), nil
}

// readFull reads exactly len(buf) bytes at off. The file ending first is
// corruption at this layer: every read here is for a record the index
// promised to exist, so it is never silently truncated.
func readFull(r Reader, buf []byte, off int64) error {
	n, err := r.Read(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: read [%d,%d) past end of file", ErrCorrupted, off, off+int64(len(buf)))
	}
	return err
}
