package sortlog

import (
	"errors"
	"fmt"
	"io"

	"github.com/sortlog/sortlog/codec"
	"github.com/sortlog/sortlog/fio"
	"github.com/sortlog/sortlog/model"
)

// Table is a read handle over one immutable sorted log file. The underlying
// IOManager is owned exclusively by the table; it is never shared with
// another table.
//
// Mapped and Direct tables are safe for concurrent readers without locking.
// Channel tables are too, because every read is offset-addressed. Close must
// not run while a read is still in flight; that quiescence is the caller's
// obligation.
type Table struct {
	io   fio.IOManager
	geo  codec.Geometry
	lock fio.FileLocker
}

// Open opens the log file at path for reading. keySize is the fixed key
// width the writer used; the file does not store it.
func Open(path string, keySize int64, opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if keySize <= 0 {
		return nil, ErrBadKeySize
	}
	if o.baseKeyOffset < 0 || o.keyCountOffset < 0 {
		return nil, ErrBadGeometry
	}
	if o.ioManagerCreator == nil {
		o.ioManagerCreator = func(p string) (fio.IOManager, error) {
			return fio.NewIOManager(o.strategy, p)
		}
	}

	var lock fio.FileLocker
	if o.useFileLock {
		lock = fio.NewFlock(path)
		ok, err := lock.TryRLock()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrFileLocked
		}
	}

	im, err := o.ioManagerCreator(path)
	if err != nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, err
	}
	if im == nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, ErrNoIOManager
	}

	return &Table{
		io: im,
		geo: codec.Geometry{
			KeySize:        keySize,
			BaseKeyOffset:  o.baseKeyOffset,
			KeyCountOffset: o.keyCountOffset,
		},
		lock: lock,
	}, nil
}

// Close releases the handle and the file lock, if any. Calling it twice is
// safe; issuing reads after it is not.
func (t *Table) Close() error {
	if t.io == nil {
		return nil
	}
	err := t.io.Close()
	t.io = nil
	if t.lock != nil {
		if uerr := t.lock.Unlock(); err == nil {
			err = uerr
		}
		t.lock = nil
	}
	return err
}

// Size returns the file length in bytes.
func (t *Table) Size() (int64, error) {
	return t.io.Size()
}

// ReadRaw reads length bytes at absolute offset off, for header and other
// regions outside the key index. A file that ends early is corruption, not
// a shorter result.
func (t *Table) ReadRaw(off, length int64) ([]byte, error) {
	if off < 0 || length < 0 {
		return nil, ErrBadGeometry
	}
	buf := make([]byte, length)
	n, err := t.io.Read(buf, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if int64(n) < length {
		return nil, fmt.Errorf("%w: raw read [%d,%d) past end of file", ErrDataCorrupted, off, off+length)
	}
	return buf, nil
}

// Get looks key up in the index and commits to exactly one of found,
// tombstone or absent. Tombstone means the key was deleted, absent that it
// was never written; callers layering delete semantics over several files
// depend on the difference.
func (t *Table) Get(key []byte) (model.Result, error) {
	if int64(len(key)) != t.geo.KeySize {
		return model.Result{}, ErrBadKeySize
	}
	if vg, ok := t.io.(fio.ValueGetter); ok {
		return vg.GetValue(key, t.geo)
	}
	return codec.Search(t.io, key, t.geo, codec.ByteCompare)
}
