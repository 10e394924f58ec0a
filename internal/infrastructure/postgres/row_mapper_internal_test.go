package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consulta-cnpj/internal/domain/entity"
	"github.com/jhoicas/consulta-cnpj/internal/infrastructure/postgres/migrations"
)

// ──────────────────────────────────────────────────────────────────────────────
// nullableString: única regla de coerción de valores de fila.
// ──────────────────────────────────────────────────────────────────────────────

func TestNullableString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *string
	}{
		{"nil", nil, nil},
		{"vacío", "", nil},
		{"None", "None", nil},
		{"texto", "ACME", ptr("ACME")},
		{"texto con espacios", "  ", ptr("  ")},
		{"bytes", []byte("SP"), ptr("SP")},
		{"bytes None", []byte("None"), nil},
		{"int32", int32(2), ptr("2")},
		{"int64", int64(4751201), ptr("4751201")},
		{"float", 1.5, ptr("1.5")},
		{"float entero", 1.0, ptr("1.0")},
		{"float32", float32(0.25), ptr("0.25")},
		{"float pequeño", 0.00001, ptr("1e-05")},
		{"bool verdadero", true, ptr("True")},
		{"bool falso", false, ptr("False")},
		{"decimal con escala", decimal.RequireFromString("1000.00"), ptr("1000.00")},
		{"decimal entero", decimal.NewFromInt(250), ptr("250")},
		{"fecha", time.Date(2005, 3, 10, 0, 0, 0, 0, time.UTC), ptr("2005-03-10")},
		{"fecha y hora", time.Date(2020, 1, 2, 13, 4, 5, 0, time.UTC), ptr("2020-01-02 13:04:05")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nullableString(tc.in)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func TestNewColumnIndex_PrimeraOcurrenciaGana(t *testing.T) {
	idx := newColumnIndex([]pgconn.FieldDescription{{Name: "a"}, {Name: "b"}, {Name: "a"}})
	assert.Equal(t, 0, idx.byName["a"])
	assert.Equal(t, 1, idx.byName["b"])

	assert.Nil(t, newColumnIndex(nil).byName)
}

func TestMapRow_IgnoraColumnasExtra(t *testing.T) {
	names := append(columnNames(partnerColumns), "columna_nueva")
	fields := make([]pgconn.FieldDescription, len(names))
	values := make([]any, len(names))
	for i, n := range names {
		fields[i] = pgconn.FieldDescription{Name: n}
	}
	values[2] = "SOCIO"
	values[len(values)-1] = "ignorada"

	var p entity.Partner
	require.NoError(t, mapRow(partnerColumns, newColumnIndex(fields), values, &p))
	require.NotNil(t, p.RazaoSocial)
	assert.Equal(t, "SOCIO", *p.RazaoSocial)
}

// ──────────────────────────────────────────────────────────────────────────────
// Las vistas de las migraciones exponen exactamente el contrato de columnas.
// ──────────────────────────────────────────────────────────────────────────────

func TestVistas_CoincidenConContrato(t *testing.T) {
	raw, err := migrations.FS.ReadFile("00002_resposta_views.sql")
	require.NoError(t, err)
	sql := string(raw)

	assert.Equal(t, columnNames(companyColumns), viewColumns(t, sql, "resposta_cnpj"))
	assert.Equal(t, columnNames(partnerColumns), viewColumns(t, sql, "resposta_socios"))
	assert.Len(t, companyColumns, 39)
	assert.Len(t, partnerColumns, 11)
}

func columnNames[T any](cols []column[T]) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

// viewColumns extrae los nombres de salida del SELECT de la vista, en orden.
func viewColumns(t *testing.T, sql, view string) []string {
	t.Helper()
	start := strings.Index(sql, "CREATE OR REPLACE VIEW "+view+" AS")
	require.GreaterOrEqual(t, start, 0, "vista %s no encontrada", view)
	body := sql[start:]
	body = body[strings.Index(body, "SELECT")+len("SELECT") : strings.Index(body, "\nFROM ")]

	var names []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), ",")
		if line == "" {
			continue
		}
		if i := strings.LastIndex(line, " AS "); i >= 0 {
			names = append(names, strings.TrimSpace(line[i+len(" AS "):]))
			continue
		}
		names = append(names, line[strings.LastIndex(line, ".")+1:])
	}
	return names
}

func ptr(s string) *string { return &s }
