package receita

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/consulta-cnpj/internal/domain"
)

// Reader recorre un archivo de la Receita y entrega cada registro ya convertido
// a los tipos de la tabla destino. Implementa pgx.CopyFromSource.
type Reader struct {
	layout Layout
	csv    *csv.Reader
	values []any
	err    error
	line   int
}

// NewReader decodifica ISO-8859-1 a UTF-8 y separa por ';'.
func NewReader(r io.Reader, layout Layout) *Reader {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = len(layout.fields)
	cr.ReuseRecord = true
	return &Reader{layout: layout, csv: cr}
}

// Next avanza al siguiente registro. Devuelve false al terminar o ante un error (ver Err).
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return false
	}
	r.line++
	if err != nil {
		r.err = fmt.Errorf("%w: %s línea %d: %v", domain.ErrInvalidInput, r.layout.Kind, r.line, err)
		return false
	}
	values, err := r.layout.convert(record)
	if err != nil {
		r.err = fmt.Errorf("%w: %s línea %d: %v", domain.ErrInvalidInput, r.layout.Kind, r.line, err)
		return false
	}
	r.values = values
	return true
}

// Values devuelve el registro actual.
func (r *Reader) Values() ([]any, error) {
	return r.values, nil
}

// Err devuelve el primer error de lectura o conversión.
func (r *Reader) Err() error {
	return r.err
}

// Line es el número de registros leídos hasta ahora.
func (r *Reader) Line() int {
	return r.line
}

// Layout devuelve el layout del archivo.
func (r *Reader) Layout() Layout {
	return r.layout
}
