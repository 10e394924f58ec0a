// Package cnpj implementa el álgebra del identificador CNPJ de la Receita Federal
// de Brasil: normalización, descomposición base/orden/DV, dígitos de verificación
// módulo 11 y formato canónico XX.XXX.XXX/XXXX-XX.
//
// Todas las funciones son puras y seguras para uso concurrente.
package cnpj

import (
	"strings"
	"unicode"
)

// Anchos fijos de cada componente del CNPJ.
const (
	Length      = 14
	BaseLength  = 8
	OrderLength = 4
	CheckLength = 2
)

// pesos para el primer y segundo dígito verificador (de izquierda a derecha).
// El primero se aplica a los 12 dígitos sin DV; el segundo a esos 12 más el primer DV.
var (
	firstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// OnlyDigits elimina todo lo que no sea dígito y rellena con ceros a la izquierda
// hasta 14 caracteres. Si no queda ningún dígito devuelve "" (sin relleno).
// Nunca trunca: una entrada con más de 14 dígitos se devuelve tal cual.
func OnlyDigits(s string) string {
	digits := extractDigits(s)
	if digits == "" {
		return ""
	}
	return leftPad(digits, Length)
}

// IsValid informa si s es un CNPJ válido. Se rechaza la entrada vacía, la que tenga
// más de 14 dígitos y la que no cumpla los dígitos de verificación.
// Entradas con menos de 14 dígitos se rellenan con ceros antes de validar.
func IsValid(s string) bool {
	digits := OnlyDigits(s)
	if digits == "" || len(digits) > Length {
		return false
	}
	return digits[Length-CheckLength:] == CheckDigits(digits[:Length-CheckLength])
}

// CheckDigits calcula los dos dígitos verificadores para la base de 12 dígitos.
// base12 debe contener solo dígitos; si es más corta, se ponderan solo sus posiciones.
func CheckDigits(base12 string) string {
	first := checkDigit(base12, firstWeights[:])
	second := checkDigit(base12+first, secondWeights[:])
	return first + second
}

// Split devuelve (base, orden, dv) a partir de la forma normalizada del CNPJ.
func Split(s string) (base, order, check string) {
	digits := OnlyDigits(s)
	return slice(digits, 0, BaseLength),
		slice(digits, BaseLength, BaseLength+OrderLength),
		slice(digits, BaseLength+OrderLength, Length)
}

// Join rellena cada componente a su ancho fijo y los concatena. Es la inversa de Split.
func Join(base, order, check string) string {
	return leftPad(base, BaseLength) + leftPad(order, OrderLength) + leftPad(check, CheckLength)
}

// Format devuelve el CNPJ con máscara XX.XXX.XXX/XXXX-XX.
func Format(s string) string {
	digits := OnlyDigits(s)
	if digits == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(Length + 4)
	b.WriteString(slice(digits, 0, 2))
	b.WriteByte('.')
	b.WriteString(slice(digits, 2, 5))
	b.WriteByte('.')
	b.WriteString(slice(digits, 5, 8))
	b.WriteByte('/')
	b.WriteString(slice(digits, 8, 12))
	b.WriteByte('-')
	b.WriteString(digits[min(12, len(digits)):])
	return b.String()
}

// checkDigit aplica la regla módulo 11: residuo < 2 ⇒ "0", si no 11 - residuo.
func checkDigit(digits string, weights []int) string {
	var sum int
	for i := 0; i < len(digits) && i < len(weights); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return "0"
	}
	return string(rune('0' + 11 - remainder))
}

// extractDigits conserva los dígitos decimales de cualquier escritura (categoría Nd),
// convertidos a ASCII: "１１" y "١١" dan "11".
func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r > unicode.MaxASCII && unicode.IsDigit(r):
			b.WriteByte(byte('0' + digitValue(r)))
		}
	}
	return b.String()
}

// digitValue: Unicode agrupa los Nd en bloques contiguos de diez que empiezan en cero.
func digitValue(r rune) int {
	n := 0
	for unicode.IsDigit(r - rune(n+1)) {
		n++
	}
	return n % 10
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func slice(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	return s[from:min(to, len(s))]
}
