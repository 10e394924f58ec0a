package receita_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/consulta-cnpj/internal/domain"
	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/receita"
)

// latin1 codifica el texto como lo publica la Receita.
func latin1(t *testing.T, s string) *bytes.Reader {
	t.Helper()
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func readAll(t *testing.T, r *receita.Reader) [][]any {
	t.Helper()
	var out [][]any
	for r.Next() {
		v, err := r.Values()
		require.NoError(t, err)
		out = append(out, append([]any(nil), v...))
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas: acentos en ISO-8859-1 y capital social con coma decimal.
// ──────────────────────────────────────────────────────────────────────────────

func TestReader_Empresas(t *testing.T) {
	layout, err := receita.LayoutFor(receita.KindEmpresas)
	require.NoError(t, err)

	csv := "\"11222333\";\"PADARIA SÃO JOÃO LTDA\";\"2062\";\"49\";\"1000,00\";\"01\";\"\"\n" +
		"\"44555666\";\"CONSTRUÇÕES AÇU S.A.\";\"2054\";\"10\";\"1500000,50\";\"05\";\"\"\n"

	r := receita.NewReader(latin1(t, csv), layout)
	rows := readAll(t, r)
	require.NoError(t, r.Err())
	require.Len(t, rows, 2)

	assert.Equal(t, "11222333", rows[0][0])
	assert.Equal(t, "PADARIA SÃO JOÃO LTDA", rows[0][1])
	assert.True(t, decimal.RequireFromString("1000").Equal(rows[0][4].(decimal.Decimal)))
	assert.Nil(t, rows[0][6], "vacío debe ser NULL")
	assert.Equal(t, "CONSTRUÇÕES AÇU S.A.", rows[1][1])
	assert.True(t, decimal.RequireFromString("1500000.50").Equal(rows[1][4].(decimal.Decimal)))
	assert.Equal(t, 2, r.Line())
	assert.Equal(t, []string{
		"cnpj_basico", "razao_social", "natureza_juridica", "qualificacao_responsavel",
		"capital_social", "porte_empresa", "ente_federativo_responsavel",
	}, layout.Columns())
}

func TestReader_Simples_Fechas(t *testing.T) {
	layout, err := receita.LayoutFor(receita.KindSimples)
	require.NoError(t, err)

	r := receita.NewReader(latin1(t, "\"11222333\";\"S\";\"20070701\";\"00000000\";\"N\";\"0\";\"\"\n"), layout)
	rows := readAll(t, r)
	require.NoError(t, r.Err())
	require.Len(t, rows, 1)

	assert.Equal(t, time.Date(2007, 7, 1, 0, 0, 0, 0, time.UTC), rows[0][2])
	assert.Nil(t, rows[0][3], "00000000 es fecha ausente")
	assert.Nil(t, rows[0][5], "0 es fecha ausente")
	assert.Nil(t, rows[0][6])
}

func TestReader_Socios_Smallint(t *testing.T) {
	layout, err := receita.LayoutFor(receita.KindSocios)
	require.NoError(t, err)

	line := "\"11222333\";\"2\";\"FULANO DE TAL\";\"***123456**\";\"49\";\"20190701\";\"\";\"***000000**\";\"\";\"00\";\"5\"\n"
	r := receita.NewReader(latin1(t, line), layout)
	rows := readAll(t, r)
	require.NoError(t, r.Err())
	require.Len(t, rows, 1)
	assert.Equal(t, int16(2), rows[0][1])
	assert.Equal(t, "5", rows[0][10])
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestReader_NumeroDeCamposIncorrecto(t *testing.T) {
	layout, err := receita.LayoutFor(receita.KindSimples)
	require.NoError(t, err)

	r := receita.NewReader(latin1(t, "\"11222333\";\"S\"\n"), layout)
	assert.False(t, r.Next())
	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), domain.ErrInvalidInput))
	assert.Contains(t, r.Err().Error(), "línea 1")
}

func TestReader_FechaInvalida(t *testing.T) {
	layout, err := receita.LayoutFor(receita.KindSimples)
	require.NoError(t, err)

	r := receita.NewReader(latin1(t, "\"11222333\";\"S\";\"20071345\";\"\";\"N\";\"\";\"\"\n"), layout)
	assert.False(t, r.Next())
	require.ErrorIs(t, r.Err(), domain.ErrInvalidInput)
	assert.Contains(t, r.Err().Error(), "data_opcao_simples")
}

func TestLayoutFor_Desconocido(t *testing.T) {
	_, err := receita.LayoutFor("cnae")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKinds_TodosTienenLayout(t *testing.T) {
	for _, k := range receita.Kinds() {
		l, err := receita.LayoutFor(k)
		require.NoError(t, err, k)
		assert.NotEmpty(t, l.Table)
		assert.NotEmpty(t, l.Columns())
	}
}
