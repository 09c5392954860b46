package sortlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sortlog/sortlog/codec"
)

type testRec struct {
	key   string
	value string
	del   bool
}

var testMagic = []byte("SLOG0001")

// encodeLogFile lays out a log file per the standard writer header: 8-byte
// format id, record count, sorted key index, then the value region.
func encodeLogFile(t testing.TB, keySize int, recs []testRec) []byte {
	t.Helper()

	base := int64(codec.DefaultBaseKeyOffset)
	valueOff := codec.KeyOffset(base, int64(len(recs)), int64(keySize))

	var buf, values bytes.Buffer
	buf.Write(testMagic)
	buf.Write(codec.MarshalKeyCount(int32(len(recs))))
	for i, r := range recs {
		require.Len(t, r.key, keySize)
		if i > 0 {
			require.Less(t, recs[i-1].key, r.key, "fixture keys must ascend")
		}
		buf.WriteString(r.key)
		meta := codec.Meta{ValueLen: codec.TombstoneLen}
		if !r.del {
			meta = codec.Meta{ValueLen: int32(len(r.value)), ValueOff: valueOff + int64(values.Len())}
			values.WriteString(r.value)
		}
		buf.Write(codec.MarshalMeta(meta))
	}
	buf.Write(values.Bytes())
	return buf.Bytes()
}

func writeLogFile(t testing.TB, keySize int, recs []testRec) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.slg")
	require.NoError(t, os.WriteFile(path, encodeLogFile(t, keySize, recs), 0644))
	return path
}
