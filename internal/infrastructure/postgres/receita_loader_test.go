package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consulta-cnpj/internal/domain"
	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/postgres"
	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/receita"
)

// fakeCopier consume el origen como lo haría pgx y guarda las filas.
type fakeCopier struct {
	table   pgx.Identifier
	columns []string
	rows    [][]any
	err     error
}

func (c *fakeCopier) CopyFrom(_ context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	c.table, c.columns = table, columns
	for src.Next() {
		v, err := src.Values()
		if err != nil {
			return 0, err
		}
		c.rows = append(c.rows, v)
	}
	if c.err != nil {
		return 0, c.err
	}
	return int64(len(c.rows)), nil
}

func simplesReader(t *testing.T, csv string) *receita.Reader {
	t.Helper()
	layout, err := receita.LayoutFor(receita.KindSimples)
	require.NoError(t, err)
	return receita.NewReader(strings.NewReader(csv), layout)
}

func TestReceitaLoader_Load(t *testing.T) {
	copier := &fakeCopier{}
	loader := postgres.NewReceitaLoader(copier)

	r := simplesReader(t, "\"11222333\";\"S\";\"20070701\";\"\";\"N\";\"\";\"\"\n\"44555666\";\"N\";\"\";\"\";\"N\";\"\";\"\"\n")
	n, err := loader.Load(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, pgx.Identifier{"simples"}, copier.table)
	assert.Equal(t, "cnpj_basico", copier.columns[0])
	require.Len(t, copier.rows, 2)
	assert.Equal(t, "44555666", copier.rows[1][0])
}

func TestReceitaLoader_ErrorDeLectura(t *testing.T) {
	loader := postgres.NewReceitaLoader(&fakeCopier{})

	n, err := loader.Load(context.Background(), simplesReader(t, "\"11222333\";\"S\"\n"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, n)
}

func TestReceitaLoader_Duplicado(t *testing.T) {
	loader := postgres.NewReceitaLoader(&fakeCopier{err: &pgconn.PgError{Code: "23505"}})

	_, err := loader.Load(context.Background(), simplesReader(t, "\"11222333\";\"S\";\"\";\"\";\"N\";\"\";\"\"\n"))
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestReceitaLoader_ErrorDeCopia(t *testing.T) {
	copyErr := errors.New("relation \"simples\" does not exist")
	loader := postgres.NewReceitaLoader(&fakeCopier{err: copyErr})

	_, err := loader.Load(context.Background(), simplesReader(t, "\"11222333\";\"S\";\"\";\"\";\"N\";\"\";\"\"\n"))
	require.ErrorIs(t, err, copyErr)
	assert.Contains(t, err.Error(), "copy simples")
}
