package boltstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmrforge/mmr"
)

func TestStoreGetPut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmr.db")

	s, err := Open(path, "")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(0)
	assert.ErrorIs(t, err, mmr.ErrNodeNotFound)

	require.NoError(t, s.Put(0, []byte{1, 2, 3, 4}))
	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestStoreSizePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmr.db")

	s, err := Open(path, "")
	require.NoError(t, err)
	require.NoError(t, s.SetSize(7))
	require.NoError(t, s.Close())

	s2, err := Open(path, "")
	require.NoError(t, err)
	defer s2.Close()

	size, err := s2.Size()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), size)
}

// TestStoreAsNodeStore drives a real MMR through a bolt-backed store, the
// narrower NodeStore contract this package exists to satisfy.
func TestStoreAsNodeStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmr.db")
	s, err := Open(path, "log-a")
	require.NoError(t, err)
	defer s.Close()

	m := mmr.New(mmr.WithStore(s))
	var positions []uint64
	for i := 0; i < 11; i++ {
		pos, err := m.Add([]byte{byte(i)})
		require.NoError(t, err)
		positions = append(positions, pos)
	}
	require.NoError(t, s.SetSize(m.Size()))

	root, ok := m.Root()
	require.True(t, ok)

	proof, err := m.Prove(positions[5])
	require.NoError(t, err)
	assert.True(t, proof.Verify(root, positions[5], []byte{5}))
}
