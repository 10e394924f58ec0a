package pdf

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// emptyField es como la Receita imprime un campo sin valor.
const emptyField = "********"

var situacoes = map[string]string{
	"1": "NULA",
	"2": "ATIVA",
	"3": "SUSPENSA",
	"4": "INAPTA",
	"8": "BAIXADA",
}

var portes = map[string]string{
	"0": "NÃO INFORMADO",
	"1": "MICRO EMPRESA",
	"3": "EMPRESA DE PEQUENO PORTE",
	"5": "DEMAIS",
}

func orStars(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return emptyField
	}
	return *s
}

// formatDate convierte "2006-01-02" a "02/01/2006".
func formatDate(s *string) string {
	if s == nil {
		return emptyField
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return *s
	}
	return t.Format("02/01/2006")
}

// formatCapital: "1500000.50" → "R$ 1.500.000,50".
func formatCapital(s *string) string {
	if s == nil {
		return emptyField
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return *s
	}
	return "R$ " + formatBRL(d)
}

// formatBRL escribe d con dos decimales en formato pt-BR ("1.500.000,50") sin pasar por float.
func formatBRL(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// formatCEP: "01310100" → "01.310-100".
func formatCEP(s *string) string {
	if s == nil || len(*s) != 8 {
		return orStars(s)
	}
	c := *s
	return c[:2] + "." + c[2:5] + "-" + c[5:]
}

// codeLabel normaliza códigos con ceros a la izquierda ("02" → "2") y devuelve su descripción.
func codeLabel(s *string, labels map[string]string) string {
	if s == nil {
		return emptyField
	}
	code := strings.TrimLeft(*s, "0")
	if code == "" {
		code = "0"
	}
	if l, ok := labels[code]; ok {
		return l
	}
	return *s
}

func situacaoLabel(s *string) string { return codeLabel(s, situacoes) }

func porteLabel(s *string) string { return codeLabel(s, portes) }

// optionLabel: "S" → "SIM", "N" → "NÃO".
func optionLabel(s *string) string {
	if s == nil {
		return emptyField
	}
	switch strings.ToUpper(*s) {
	case "S":
		return "SIM"
	case "N":
		return "NÃO"
	default:
		return *s
	}
}

func joinNonNil(sep string, parts ...*string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != nil && *p != "" {
			out = append(out, *p)
		}
	}
	if len(out) == 0 {
		return emptyField
	}
	return strings.Join(out, sep)
}

func firstNonNil(parts ...*string) *string {
	for _, p := range parts {
		if p != nil && *p != "" {
			return p
		}
	}
	return nil
}
