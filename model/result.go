package model

// Kind tags the outcome of a key lookup.
type Kind uint8

const (
	// KindAbsent means the key is not listed in the file index.
	KindAbsent Kind = iota
	// KindTombstone means the key is listed but was explicitly deleted.
	KindTombstone
	// KindFound means the key is listed and carries value bytes.
	KindFound
)

// Result is the three-way outcome of a lookup. A tombstone is not the same
// as absent: the key existed and was deleted, and callers implementing
// delete semantics on top of multiple files depend on the difference.
type Result struct {
	Kind  Kind
	Value []byte
}

// Absent and Tombstone are the two valueless results.
var (
	Absent    = Result{Kind: KindAbsent}
	Tombstone = Result{Kind: KindTombstone}
)

// Found wraps value bytes in a found result. A zero-length value is still
// found, not a tombstone.
func Found(value []byte) Result {
	return Result{Kind: KindFound, Value: value}
}
