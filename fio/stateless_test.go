package fio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortlog/sortlog/model"
)

func TestStatelessIO_Read(t *testing.T) {
	path := writeTempFile(t, []byte("hello world"))
	sio, err := NewStatelessIO(path)
	require.NoError(t, err)

	// no persistent handle: every read stands alone
	for i := 0; i < 3; i++ {
		buf := make([]byte, 5)
		n, err := sio.Read(buf, 0)
		assert.Nil(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, []byte("hello"), buf)
	}

	size, err := sio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(11), size)

	assert.Nil(t, sio.Close())
	// reads still work after Close, nothing was held open
	buf := make([]byte, 5)
	_, err = sio.Read(buf, 6)
	assert.Nil(t, err)
	assert.Equal(t, []byte("world"), buf)
}

func TestNewStatelessIO_MissingFile(t *testing.T) {
	_, err := NewStatelessIO(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestStatelessIO_GetValue(t *testing.T) {
	path, geo := writeIndexedFile(t, 2, []indexedRec{
		{key: "aa", value: "v1"},
		{key: "bb", del: true},
	})
	sio, err := NewStatelessIO(path)
	require.NoError(t, err)

	res, err := sio.GetValue([]byte("aa"), geo)
	assert.Nil(t, err)
	assert.Equal(t, model.Found([]byte("v1")), res)

	res, err = sio.GetValue([]byte("bb"), geo)
	assert.Nil(t, err)
	assert.Equal(t, model.Tombstone, res)

	res, err = sio.GetValue([]byte("zz"), geo)
	assert.Nil(t, err)
	assert.Equal(t, model.Absent, res)
}

func TestStatelessIO_OpenHandle(t *testing.T) {
	path := writeTempFile(t, []byte("abc"))
	sio, err := NewStatelessIO(path)
	require.NoError(t, err)

	h, err := sio.OpenHandle()
	require.NoError(t, err)
	size, err := h.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(3), size)
	assert.Nil(t, h.Close())
}
