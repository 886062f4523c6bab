package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier simula la tabla documents en memoria.
type fakeQuerier struct {
	rows    map[string][]byte
	execErr error
	execs   []string
}

type fakeRow struct {
	raw []byte
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.raw
	return nil
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	if len(args) == 2 {
		f.rows[args[0].(string)] = args[1].([]byte)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	raw, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{raw: raw}
}

type doc struct {
	ID string `json:"id"`
}

func TestDocumentStore_GetSet(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{rows: map[string][]byte{}}
	s := NewDocumentStore(q)
	require.NoError(t, s.Migrate(ctx))

	var out []doc
	found, err := s.Get(ctx, "sales", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "sales", []doc{{ID: "s1"}}))
	found, err = s.Get(ctx, "sales", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []doc{{ID: "s1"}}, out)
	assert.Len(t, q.execs, 2)
	require.NoError(t, s.Close())
}

func TestDocumentStore_ErrorExec(t *testing.T) {
	q := &fakeQuerier{rows: map[string][]byte{}, execErr: errors.New("conexión perdida")}
	s := NewDocumentStore(q)

	err := s.Set(context.Background(), "products", []doc{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexión perdida")
}
