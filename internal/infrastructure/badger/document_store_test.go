package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

func TestOpen_SinPath(t *testing.T) {
	_, err := Open(Config{})
	require.Error(t, err)
}

func TestDocumentStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(Config{InMemory: true})
	require.NoError(t, err)
	defer s.Close()

	var out []doc
	found, err := s.Get(ctx, "sales", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "sales", []doc{{ID: "s1", Qty: 2}}))
	found, err = s.Get(ctx, "sales", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []doc{{ID: "s1", Qty: 2}}, out)
}

// Los documentos sobreviven a reabrir la base en disco.
func TestDocumentStore_Persistente(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(Config{Path: dir, SyncWrites: true})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "products", []doc{{ID: "p1", Qty: 5}}))
	require.NoError(t, s.Close())

	s, err = Open(Config{Path: dir})
	require.NoError(t, err)
	defer s.Close()

	var out []doc
	found, err := s.Get(ctx, "products", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "p1", out[0].ID)
}
