package store

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerStore_ExistsBeforeAndAfterSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")
	s := NewContainerStore(path)

	assert.False(t, s.Exists())

	require.NoError(t, s.Save([]byte{0x01, 0x02, 0x03}))
	assert.True(t, s.Exists())
}

func TestContainerStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")
	s := NewContainerStore(path)

	payload := []byte("nonce-and-ciphertext")
	require.NoError(t, s.Save(payload))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestContainerStore_SaveReplacesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.json")
	s := NewContainerStore(path)

	require.NoError(t, s.Save([]byte("first version, longer than the second")))
	require.NoError(t, s.Save([]byte("second")))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestContainerStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "clients.json")
	s := NewContainerStore(path)

	require.NoError(t, s.Save([]byte("x")))
	assert.True(t, s.Exists())
}

func TestContainerStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clients.json")
	s := NewContainerStore(path)

	require.NoError(t, s.Save([]byte("a")))
	require.NoError(t, s.Save([]byte("b")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "clients.json", entries[0].Name())
}

func TestContainerStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "clients.json")
	s := NewContainerStore(path)
	require.NoError(t, s.Save([]byte("x")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, filePermissions, info.Mode().Perm())
}

func TestContainerStore_LoadMissingFile(t *testing.T) {
	s := NewContainerStore(filepath.Join(t.TempDir(), "absent"))

	_, err := s.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestContainerStore_LoadFrom(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "legacy.json")
	require.NoError(t, os.WriteFile(other, []byte("legacy container"), 0o600))

	s := NewContainerStore(filepath.Join(dir, "clients.json"))
	got, err := s.LoadFrom(other)
	require.NoError(t, err)
	assert.Equal(t, []byte("legacy container"), got)
}
