package cnpj_test

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consulta-cnpj/pkg/cnpj"
)

var canonicalPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

func TestOnlyDigits(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"vacío", "", ""},
		{"sin dígitos", "abc./-", ""},
		{"con máscara", "11.222.333/0001-81", "11222333000181"},
		{"relleno a la izquierda", "191", "00000000000191"},
		{"catorce dígitos", "11444777000161", "11444777000161"},
		{"no trunca", "123456789012345", "123456789012345"},
		{"dígitos de ancho completo", "１１.２２２.３３３/０００１-８１", "11222333000181"},
		{"dígitos arábigo-índicos", "١١٢٢٢٣٣٣٠٠٠١٨١", "11222333000181"},
		{"dígitos matemáticos", "𝟙𝟡𝟙", "00000000000191"},
		{"letras no ASCII", "ñáé", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cnpj.OnlyDigits(tc.in)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"11222333000181", true},
		{"11.222.333/0001-81", true},
		{"１１２２２３３３０００１８１", true},
		{"11444777000161", true},
		{"191", true}, // relleno permisivo: 00000000000191
		{"00000000000000", true},
		{"", false},
		{"sem numero", false},
		{"12345678901234", false},
		{"11222333000182", false},
		{"123456789012345", false},
		{"011222333000181", false}, // 15 dígitos aunque el valor numérico sea válido
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cnpj.IsValid(tc.in), "IsValid(%q)", tc.in)
	}
}

func TestCheckDigits(t *testing.T) {
	assert.Equal(t, "81", cnpj.CheckDigits("112223330001"))
	assert.Equal(t, "61", cnpj.CheckDigits("114447770001"))
	assert.Equal(t, "30", cnpj.CheckDigits("123456789012"))
	// residuo < 2 en ambos dígitos
	assert.Equal(t, "00", cnpj.CheckDigits("000000000000"))
}

func TestCheckDigits_Determinista(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, "81", cnpj.CheckDigits("112223330001"))
	}
}

// Para cualquier cadena de 1 a 14 dígitos, IsValid coincide con recomputar el DV
// sobre la forma rellenada.
func TestIsValid_PropiedadDV(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		s := randomDigits(rng, rng.Intn(15))
		padded := cnpj.OnlyDigits(s)

		want := padded != "" && padded[12:] == cnpj.CheckDigits(padded[:12])
		assert.Equal(t, want, cnpj.IsValid(s), "IsValid(%q)", s)
	}
}

func TestIsValid_MasDeCatorceDigitosSiempreInvalido(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		base := randomDigits(rng, 12)
		valid := base + cnpj.CheckDigits(base)
		// anteponer dígitos extra y ruido no numérico
		s := randomDigits(rng, 1+rng.Intn(3)) + "." + valid
		assert.False(t, cnpj.IsValid(s), "IsValid(%q)", s)
	}
}

func TestSplitJoin_IdaYVuelta(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		s := randomDigits(rng, 1+rng.Intn(14))
		base, order, check := cnpj.Split(s)
		assert.Equal(t, cnpj.OnlyDigits(s), cnpj.Join(base, order, check), "Join(Split(%q))", s)
	}
}

func TestSplit(t *testing.T) {
	base, order, check := cnpj.Split("11.222.333/0001-81")
	assert.Equal(t, "11222333", base)
	assert.Equal(t, "0001", order)
	assert.Equal(t, "81", check)

	base, order, check = cnpj.Split("")
	assert.Empty(t, base)
	assert.Empty(t, order)
	assert.Empty(t, check)
}

func TestJoin_RellenaComponentes(t *testing.T) {
	assert.Equal(t, "00000191000100", cnpj.Join("191", "1", "0"))
	assert.Equal(t, "11222333000181", cnpj.Join("11222333", "0001", "81"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", cnpj.Format("11222333000181"))
	assert.Equal(t, "00.000.000/0001-91", cnpj.Format("191"))
	assert.Equal(t, "", cnpj.Format("---"))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		s := randomDigits(rng, 1+rng.Intn(14))
		got := cnpj.Format(s)
		require.Regexp(t, canonicalPattern, got, "Format(%q)", s)
	}
}

func randomDigits(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}
