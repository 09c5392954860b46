package model

// Record is one index entry in file order. A tombstone record keeps its key
// in the index but carries no value bytes; Tombstone is set explicitly so a
// nil Value is never overloaded to mean "deleted".
type Record struct {
	Key       []byte
	Value     []byte
	Tombstone bool
}
