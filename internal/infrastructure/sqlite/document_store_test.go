package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID    string `json:"id"`
	Stock int    `json:"stock"`
}

func TestDocumentStore_MemoryDB(t *testing.T) {
	ctx := context.Background()
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	var out []doc
	found, err := s.Get(ctx, "products", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "products", []doc{{ID: "p1", Stock: 5}}))
	require.NoError(t, s.Set(ctx, "products", []doc{{ID: "p1", Stock: 2}}))

	found, err = s.Get(ctx, "products", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []doc{{ID: "p1", Stock: 2}}, out)
}

func TestDocumentStore_Archivo(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "tienda.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "clients", []doc{{ID: "c1"}}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	var out []doc
	found, err := s.Get(ctx, "clients", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, out, 1)
}
