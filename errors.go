package sortlog

import (
	"fmt"

	"github.com/sortlog/sortlog/codec"
)

var (
	ErrBadKeySize  = addPrefix("key size mismatch")
	ErrBadGeometry = addPrefix("invalid file geometry")
	ErrNoIOManager = addPrefix("no io manager")
	ErrFileLocked  = addPrefix("log file is locked")
)

// ErrDataCorrupted reports decoded offsets or lengths that do not fit the
// file, or a file that ends before a full record. Never conflated with a
// missing key: absence is a result variant, not an error.
var ErrDataCorrupted = codec.ErrCorrupted

func addPrefix(errStr string) error {
	return fmt.Errorf("sortlog err: %s", errStr)
}
