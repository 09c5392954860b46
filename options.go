package sortlog

import (
	"github.com/sortlog/sortlog/codec"
	"github.com/sortlog/sortlog/fio"
)

type options struct {
	strategy       fio.Strategy
	keyCountOffset int64
	baseKeyOffset  int64
	useFileLock    bool

	ioManagerCreator func(path string) (fio.IOManager, error)
}

type Option func(*options)

// WithStrategy selects how the file is accessed. Default is Channel.
func WithStrategy(s fio.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithKeyCountOffset overrides where the record count sits in the header.
// The writer fixes this; the default matches the standard header layout.
func WithKeyCountOffset(off int64) Option {
	return func(o *options) {
		o.keyCountOffset = off
	}
}

// WithBaseKeyOffset overrides where the key index starts.
func WithBaseKeyOffset(off int64) Option {
	return func(o *options) {
		o.baseKeyOffset = off
	}
}

// WithFileLock takes a shared lock on open so a compactor holding the
// exclusive side cannot replace the file under a live reader.
func WithFileLock() Option {
	return func(o *options) {
		o.useFileLock = true
	}
}

// WithIOManagerCreator plugs in a custom IOManager, replacing the strategy
// dispatch.
func WithIOManagerCreator(fn func(path string) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

func defaultOptions() options {
	return options{
		strategy:       fio.Channel,
		keyCountOffset: codec.DefaultKeyCountOffset,
		baseKeyOffset:  codec.DefaultBaseKeyOffset,
	}
}
