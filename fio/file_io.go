package fio

import "os"

// FileIO is the persistent-handle strategy: one *os.File kept open for the
// life of the handle, every read pread-style so concurrent callers never
// race on an implicit cursor.
type FileIO struct {
	fd *os.File
}

func NewFileIO(path string) (*FileIO, error) {
	fd, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileIO{fd: fd}, nil
}

func (fio *FileIO) Read(buf []byte, off int64) (int, error) {
	return readFull(fio.fd, buf, off)
}

func (fio *FileIO) Size() (int64, error) {
	info, err := fio.fd.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (fio *FileIO) Close() error {
	return fio.fd.Close()
}
