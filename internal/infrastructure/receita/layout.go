// Package receita lee los archivos de datos abiertos del CNPJ publicados por la
// Receita Federal (CSV separado por ';', codificado en ISO-8859-1, sin cabecera).
package receita

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consulta-cnpj/internal/domain"
)

// Kind identifica el tipo de archivo de la Receita.
type Kind string

const (
	KindEmpresas         Kind = "empresas"
	KindEstabelecimentos Kind = "estabelecimentos"
	KindSocios           Kind = "socios"
	KindSimples          Kind = "simples"
)

// Kinds devuelve los tipos soportados, en el orden en que conviene importarlos.
func Kinds() []Kind {
	return []Kind{KindEmpresas, KindEstabelecimentos, KindSimples, KindSocios}
}

type fieldType int

const (
	textField fieldType = iota
	dateField
	moneyField
	smallintField
)

type field struct {
	name string
	typ  fieldType
}

// Layout describe un archivo: tabla destino y columnas en el orden del CSV.
type Layout struct {
	Kind   Kind
	Table  string
	fields []field
}

// Columns devuelve los nombres de columna de la tabla destino.
func (l Layout) Columns() []string {
	cols := make([]string, len(l.fields))
	for i, f := range l.fields {
		cols[i] = f.name
	}
	return cols
}

var layouts = map[Kind]Layout{
	KindEmpresas: {
		Kind:  KindEmpresas,
		Table: "empresa",
		fields: []field{
			{"cnpj_basico", textField},
			{"razao_social", textField},
			{"natureza_juridica", textField},
			{"qualificacao_responsavel", textField},
			{"capital_social", moneyField},
			{"porte_empresa", textField},
			{"ente_federativo_responsavel", textField},
		},
	},
	KindEstabelecimentos: {
		Kind:  KindEstabelecimentos,
		Table: "estabelecimento",
		fields: []field{
			{"cnpj_basico", textField},
			{"cnpj_ordem", textField},
			{"cnpj_dv", textField},
			{"identificador_matriz_filial", smallintField},
			{"nome_fantasia", textField},
			{"situacao_cadastral", smallintField},
			{"data_situacao_cadastral", dateField},
			{"motivo_situacao_cadastral", textField},
			{"nome_cidade_exterior", textField},
			{"pais", textField},
			{"data_inicio_atividade", dateField},
			{"cnae_fiscal_principal", textField},
			{"cnae_fiscal_secundaria", textField},
			{"tipo_logradouro", textField},
			{"logradouro", textField},
			{"numero", textField},
			{"complemento", textField},
			{"bairro", textField},
			{"cep", textField},
			{"uf", textField},
			{"municipio", textField},
			{"ddd_1", textField},
			{"telefone_1", textField},
			{"ddd_2", textField},
			{"telefone_2", textField},
			{"ddd_fax", textField},
			{"fax", textField},
			{"correio_eletronico", textField},
			{"situacao_especial", textField},
			{"data_situacao_especial", dateField},
		},
	},
	KindSocios: {
		Kind:  KindSocios,
		Table: "socios",
		fields: []field{
			{"cnpj_basico", textField},
			{"identificador_socio", smallintField},
			{"nome_socio_razao_social", textField},
			{"cpf_cnpj_socio", textField},
			{"qualificacao_socio", textField},
			{"data_entrada_sociedade", dateField},
			{"pais", textField},
			{"representante_legal", textField},
			{"nome_do_representante", textField},
			{"qualificacao_representante_legal", textField},
			{"faixa_etaria", textField},
		},
	},
	KindSimples: {
		Kind:  KindSimples,
		Table: "simples",
		fields: []field{
			{"cnpj_basico", textField},
			{"opcao_pelo_simples", textField},
			{"data_opcao_simples", dateField},
			{"data_exclusao_simples", dateField},
			{"opcao_mei", textField},
			{"data_opcao_mei", dateField},
			{"data_exclusao_mei", dateField},
		},
	},
}

// LayoutFor devuelve el layout de un tipo de archivo.
func LayoutFor(kind Kind) (Layout, error) {
	l, ok := layouts[kind]
	if !ok {
		return Layout{}, fmt.Errorf("%w: tipo de archivo %q desconocido", domain.ErrInvalidInput, kind)
	}
	return l, nil
}

// convert pasa un registro CSV a los valores de la tabla. Los vacíos son NULL.
func (l Layout) convert(record []string) ([]any, error) {
	values := make([]any, len(l.fields))
	for i, f := range l.fields {
		raw := strings.TrimSpace(record[i])
		if raw == "" {
			continue
		}
		v, err := f.parse(raw)
		if err != nil {
			return nil, fmt.Errorf("columna %s: %w", f.name, err)
		}
		values[i] = v
	}
	return values, nil
}

func (f field) parse(raw string) (any, error) {
	switch f.typ {
	case dateField:
		return parseDate(raw)
	case moneyField:
		// La Receita usa coma decimal: "1000,00".
		return decimal.NewFromString(strings.ReplaceAll(strings.ReplaceAll(raw, ".", ""), ",", "."))
	case smallintField:
		n, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return nil, err
		}
		return int16(n), nil
	default:
		return raw, nil
	}
}

// parseDate interpreta AAAAMMDD; "0" y "00000000" son fechas ausentes.
func parseDate(raw string) (any, error) {
	if strings.Trim(raw, "0") == "" {
		return nil, nil
	}
	t, err := time.Parse("20060102", raw)
	if err != nil {
		return nil, fmt.Errorf("fecha %q: %w", raw, err)
	}
	return t, nil
}
