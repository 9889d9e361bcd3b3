package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingQuerier guarda la última consulta; QueryRow devuelve row.
type recordingQuerier struct {
	sql  string
	args []any
	row  pgx.Row
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	return nil, pgx.ErrNoRows
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return q.row
}

type numberRow struct {
	number string
	err    error
}

func (r numberRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.number
	return nil
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"KH":       "KH",
		"K_H":      `K\_H`,
		"50%":      `50\%`,
		`dir\sub`:  `dir\\sub`,
		`_%\`:      `\_\%\\`,
		"KH-2025-": "KH-2025-",
	}
	for in, want := range cases {
		assert.Equalf(t, want, escapeLike(in), "escapeLike(%q)", in)
	}
}

func TestInvoiceRepo_LastNumber_PrefijoConComodines(t *testing.T) {
	q := &recordingQuerier{row: numberRow{number: "K_1-2025-0007"}}
	repo := NewInvoiceRepository(q)

	got, err := repo.LastNumber(context.Background(), "K_1", 2025)
	require.NoError(t, err)
	assert.Equal(t, "K_1-2025-0007", got)

	require.Len(t, q.args, 1)
	assert.Equal(t, `K\_1-2025-%`, q.args[0])
	assert.Contains(t, q.sql, `ESCAPE '\'`)
}

func TestInvoiceRepo_LastNumber_SinFacturas(t *testing.T) {
	q := &recordingQuerier{row: numberRow{err: pgx.ErrNoRows}}
	repo := NewInvoiceRepository(q)

	got, err := repo.LastNumber(context.Background(), "KH", 2025)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "KH-2025-%", q.args[0])
}
