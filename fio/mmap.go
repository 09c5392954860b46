package fio

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// MaxMmapSize is the largest file the mapped strategies accept. Larger
// files are a configuration error for these strategies, use Channel or
// Stateless instead.
const MaxMmapSize = 1<<31 - 1

var ErrFileTooLarge = errors.New("fio: file too large to map")

// MmapIO maps the whole file read-only into memory. The mapping is
// immutable and safe to share: every Read derives its own offsets from the
// shared base, there is no cursor to race on. After the initial mapping,
// reads never issue syscalls.
type MmapIO struct {
	data []byte
	size int64
}

func NewMmapIO(path string) (*MmapIO, error) {
	fd, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size > MaxMmapSize {
		return nil, ErrFileTooLarge
	}
	if size == 0 {
		// mmap rejects zero-length mappings
		return &MmapIO{}, nil
	}

	data, err := unix.Mmap(int(fd.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &MmapIO{data: data, size: size}, nil
}

func (mio *MmapIO) Read(buf []byte, off int64) (int, error) {
	if off < 0 {
		return 0, os.ErrInvalid
	}
	if off >= mio.size {
		return 0, io.EOF
	}
	n := copy(buf, mio.data[off:])
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

func (mio *MmapIO) Size() (int64, error) {
	return mio.size, nil
}

// Close releases the mapping. The caller must ensure no read on this handle
// is still in flight; dereferencing an unmapped region is undefined
// behavior, not a recoverable error.
func (mio *MmapIO) Close() error {
	if mio.data == nil {
		return nil
	}
	data := mio.data
	mio.data = nil
	mio.size = 0
	return unix.Munmap(data)
}
