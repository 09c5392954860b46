// Package sortlog is the read path over immutable, sorted, append-only
// key-value log files. A writer elsewhere produces the files; once written
// they are frozen, and this package serves point lookups, raw region reads
// and full in-order iteration against them.
//
// The on-disk layout is a header carrying a 4-byte record count, a key
// index of fixed-width records sorted ascending by key bytes, and a value
// region of raw bytes the index points into. Each index record is the key
// followed by a signed 4-byte value length and an 8-byte value offset; a
// length of -1 is a tombstone marking the key as deleted sans value bytes.
// Lookups therefore resolve to one of three outcomes: found, tombstone or
// absent. Tombstone and absent are deliberately distinct results.
//
// Four interchangeable access strategies back a table, selected at open
// time:
//
//   - Channel: one positional file handle held open, pread-style reads.
//   - Stateless: a fresh handle opened and closed around every call.
//   - Mapped: the whole file memory-mapped read-only.
//   - Direct: the same mapping read through raw pointer arithmetic.
//
// All four return identical results for identical files; they trade
// descriptor usage, syscall overhead and mapping limits against each other.
//
// Basic usage:
//
//	table, err := sortlog.Open("data.slg", 16,
//		sortlog.WithStrategy(fio.Mapped))
//	if err != nil {
//		// handle
//	}
//	defer table.Close()
//
//	res, err := table.Get(key)
//	if err == nil && res.Kind == model.KindFound {
//		use(res.Value)
//	}
//
//	it, err := table.All()
//	if err != nil {
//		// handle
//	}
//	defer it.Close()
//	for it.Next() {
//		rec := it.Record()
//		// rec.Key ascends; rec.Tombstone marks deletions
//	}
//	if err := it.Err(); err != nil {
//		// handle
//	}
package sortlog
