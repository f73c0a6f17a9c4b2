package cache

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/roemer/gominutes/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathForDisabled(t *testing.T) {
	assert := assert.New(t)

	cache := NewResponseCache("", slog.Default())
	assert.False(cache.Enabled())
	path, err := cache.PathFor(common.METHOD_LIST_SITE_DEPLOYS, common.CallOptions{"key": "value"})
	assert.NoError(err)
	assert.Empty(path)

	exists, err := cache.Has(path)
	assert.NoError(err)
	assert.False(exists)
}

func TestPathForLayout(t *testing.T) {
	assert := assert.New(t)

	cacheDir := t.TempDir()
	cache := NewResponseCache(cacheDir, slog.Default())
	assert.True(cache.Enabled())

	options := common.CallOptions{"key": "value"}
	fingerprint, err := Fingerprint(options)
	require.NoError(t, err)

	path, err := cache.PathFor("methodName", options)
	assert.NoError(err)
	assert.Equal(filepath.Join(cacheDir, "methodName", fingerprint+".json"), path)

	// Nil options and empty options share the same entry
	nilPath, err := cache.PathFor("methodName", nil)
	assert.NoError(err)
	emptyPath, err := cache.PathFor("methodName", common.CallOptions{})
	assert.NoError(err)
	assert.Equal(nilPath, emptyPath)
}

func TestWriteAndRead(t *testing.T) {
	assert := assert.New(t)

	cache := NewResponseCache(t.TempDir(), slog.Default())
	path, err := cache.PathFor(common.METHOD_LIST_SITES, nil)
	require.NoError(t, err)

	exists, err := cache.Has(path)
	assert.NoError(err)
	assert.False(exists)

	// Intermediate directories are created
	assert.NoError(cache.Write(path, json.RawMessage(`{"result":"ok"}`)))
	exists, err = cache.Has(path)
	assert.NoError(err)
	assert.True(exists)

	value, err := cache.Read(path)
	assert.NoError(err)
	assert.JSONEq(`{"result":"ok"}`, string(value))

	// Last write wins
	assert.NoError(cache.Write(path, json.RawMessage(`[1,2,3]`)))
	value, err = cache.Read(path)
	assert.NoError(err)
	assert.JSONEq(`[1,2,3]`, string(value))
}

func TestReadCorrupted(t *testing.T) {
	assert := assert.New(t)

	cache := NewResponseCache(t.TempDir(), slog.Default())
	path, err := cache.PathFor(common.METHOD_LIST_SITES, nil)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte(`{"result": "o`), 0o644))

	_, err = cache.Read(path)
	var corruptionErr *CacheCorruptionError
	assert.ErrorAs(err, &corruptionErr)
	assert.Equal(path, corruptionErr.Path)
}

func TestHasIgnoresDirectories(t *testing.T) {
	assert := assert.New(t)

	cacheDir := t.TempDir()
	cache := NewResponseCache(cacheDir, slog.Default())
	exists, err := cache.Has(cacheDir)
	assert.NoError(err)
	assert.False(exists)
}
