package sortlog

import (
	"github.com/sortlog/sortlog/codec"
	"github.com/sortlog/sortlog/fio"
	"github.com/sortlog/sortlog/model"
)

// Iterator walks every index record in ascending key order: a lazy,
// single-pass cursor. Errors surface on the Next call that hits them, not
// eagerly. The file being immutable, every iterator from the same table
// yields the same sequence.
type Iterator struct {
	r   codec.Reader
	geo codec.Geometry
	n   int64
	i   int64
	rec model.Record
	err error

	owned fio.IOManager // per-call handle for stateless tables
}

// All returns an iterator over all records in file order, tombstones
// included as valueless records.
func (t *Table) All() (*Iterator, error) {
	r := codec.Reader(t.io)
	var owned fio.IOManager
	if op, ok := t.io.(fio.HandleOpener); ok {
		h, err := op.OpenHandle()
		if err != nil {
			return nil, err
		}
		owned, r = h, h
	}

	n, err := codec.KeyCount(r, t.geo)
	if err != nil {
		if owned != nil {
			_ = owned.Close()
		}
		return nil, err
	}
	return &Iterator{r: r, geo: t.geo, n: int64(n), owned: owned}, nil
}

// Next advances to the next record. It returns false at the end of the
// index or on error; check Err afterwards.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.i >= it.n {
		if cerr := it.release(); cerr != nil {
			it.err = cerr
		}
		return false
	}

	rec, err := codec.ReadRecord(it.r, it.geo, it.i)
	if err != nil {
		it.err = err
		// the read error stays primary
		_ = it.release()
		return false
	}
	it.rec = rec
	it.i++
	return true
}

// Record returns the record Next moved to. Valid until the next call to
// Next.
func (it *Iterator) Record() model.Record {
	return it.rec
}

// Err exposes the error that stopped iteration, or the failure of releasing
// a per-call handle at exhaustion, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Close releases the per-call handle iterators over stateless tables own.
// For the other strategies it is a no-op. Safe to call more than once.
func (it *Iterator) Close() error {
	return it.release()
}

func (it *Iterator) release() error {
	if it.owned == nil {
		return nil
	}
	h := it.owned
	it.owned = nil
	return h.Close()
}
