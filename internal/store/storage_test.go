package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStorage(t *testing.T) {
	t.Parallel()

	t.Run("read of a missing slot reports absent", func(t *testing.T) {
		t.Parallel()
		fs := NewFileStorage(filepath.Join(t.TempDir(), "state.json"))

		_, ok, err := fs.Read()
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("write then read round-trips", func(t *testing.T) {
		t.Parallel()
		fs := NewFileStorage(filepath.Join(t.TempDir(), "state.json"))

		require.NoError(t, fs.Write([]byte(`{"onboarded":true}`)))

		data, ok, err := fs.Read()
		require.NoError(t, err)
		require.True(t, ok)
		require.JSONEq(t, `{"onboarded":true}`, string(data))
	})

	t.Run("write replaces previous contents", func(t *testing.T) {
		t.Parallel()
		fs := NewFileStorage(filepath.Join(t.TempDir(), "state.json"))

		require.NoError(t, fs.Write([]byte("first")))
		require.NoError(t, fs.Write([]byte("second")))

		data, _, err := fs.Read()
		require.NoError(t, err)
		require.Equal(t, "second", string(data))
	})

	t.Run("write leaves no temp files behind", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		fs := NewFileStorage(filepath.Join(dir, "state.json"))

		require.NoError(t, fs.Write([]byte("data")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})
}

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	ms := NewMemoryStorage()

	_, ok, err := ms.Read()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, ms.Write([]byte("abc")))
	data, ok, err := ms.Read()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", string(data))

	ms.FailWrites = true
	require.Error(t, ms.Write([]byte("xyz")))
}
