package fio

import (
	"os"

	"github.com/sortlog/sortlog/codec"
	"github.com/sortlog/sortlog/model"
)

// StatelessIO holds no file handle between calls: every operation opens a
// fresh handle, delegates to the persistent-handle logic, and closes it
// before returning, on the error path included. Lowest resource footprint,
// highest per-call latency.
type StatelessIO struct {
	path string
}

// NewStatelessIO probes path once so open errors surface at open time, the
// same as the other strategies.
func NewStatelessIO(path string) (*StatelessIO, error) {
	fd, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	if err := fd.Close(); err != nil {
		return nil, err
	}
	return &StatelessIO{path: path}, nil
}

// OpenHandle hands out a short-lived handle for a bulk operation like a
// full iteration. The caller owns it and must close it.
func (sio *StatelessIO) OpenHandle() (IOManager, error) {
	return NewFileIO(sio.path)
}

func (sio *StatelessIO) Read(buf []byte, off int64) (n int, err error) {
	fio, err := NewFileIO(sio.path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := fio.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fio.Read(buf, off)
}

func (sio *StatelessIO) Size() (n int64, err error) {
	fio, err := NewFileIO(sio.path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := fio.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fio.Size()
}

// GetValue runs the whole lookup against one short-lived handle instead of
// re-opening the file for every key comparison.
func (sio *StatelessIO) GetValue(key []byte, geo codec.Geometry) (res model.Result, err error) {
	fio, err := NewFileIO(sio.path)
	if err != nil {
		return model.Result{}, err
	}
	defer func() {
		if cerr := fio.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return codec.Search(fio, key, geo, codec.ByteCompare)
}

// Close is a no-op: there is no handle to release.
func (sio *StatelessIO) Close() error {
	return nil
}
