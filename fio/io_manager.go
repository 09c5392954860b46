package fio

import (
	"errors"
	"io"

	"github.com/sortlog/sortlog/codec"
	"github.com/sortlog/sortlog/model"
)

var ErrUnknownStrategy = errors.New("fio: unknown io strategy")

// IOManager is the low-level access strategy over one open log file. The
// file is frozen, so the interface is read-only. Every read is addressed by
// absolute offset, never by a shared cursor, so one handle can serve
// concurrent readers without locking where the strategy permits sharing.
type IOManager interface {
	// Read fills buf starting at absolute offset off. It returns fewer than
	// len(buf) bytes only when the file ends first, together with io.EOF.
	Read(buf []byte, off int64) (int, error)

	// Size returns the file length in bytes.
	Size() (int64, error)

	// Close releases the handle. The caller must ensure no Read is in
	// flight and issue none afterwards; that quiescence is not checked.
	Close() error
}

// ValueGetter is implemented by strategies that carry their own lookup path
// instead of the generic search. Results must be identical to what
// codec.Search returns for the same file and geometry.
type ValueGetter interface {
	GetValue(key []byte, geo codec.Geometry) (model.Result, error)
}

// HandleOpener is implemented by strategies that hold no persistent handle
// and instead hand out a short-lived one per bulk operation.
type HandleOpener interface {
	OpenHandle() (IOManager, error)
}

// Strategy selects one of the four interchangeable IOManager
// implementations. All four return identical results for identical files.
type Strategy uint8

const (
	// Channel keeps one positional file handle open for the handle lifetime.
	Channel Strategy = iota
	// Stateless opens and closes a fresh handle around every call.
	Stateless
	// Mapped maps the whole file read-only into memory.
	Mapped
	// Direct reads the same mapping through raw pointer arithmetic.
	Direct
)

// NewIOManager opens path with the given strategy.
func NewIOManager(strategy Strategy, path string) (IOManager, error) {
	switch strategy {
	case Channel:
		return NewFileIO(path)
	case Stateless:
		return NewStatelessIO(path)
	case Mapped:
		return NewMmapIO(path)
	case Direct:
		return NewDirectIO(path)
	default:
		return nil, ErrUnknownStrategy
	}
}

// readFull reads len(buf) bytes at off, looping on short reads: a single
// positional read may legally return fewer bytes than asked, so stopping
// early would corrupt record decoding. Returns io.EOF with the short count
// when the file ends first.
func readFull(r io.ReaderAt, buf []byte, off int64) (int, error) {
	var n int
	for n < len(buf) {
		m, err := r.ReadAt(buf[n:], off+int64(n))
		n += m
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, io.ErrNoProgress
		}
	}
	return n, nil
}
