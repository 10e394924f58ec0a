package postgres

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/consulta-cnpj/internal/domain"
	"github.com/jhoicas/consulta-cnpj/internal/domain/entity"
)

// column une el nombre de una columna de la vista con el campo de la entidad.
// set == nil marca columnas que se leen pero no se usan (identificadores del CNPJ,
// que siempre se derivan del argumento de entrada).
type column[T any] struct {
	name string
	set  func(*T, *string)
}

// companyColumns es el contrato de columnas de la vista resposta_cnpj, en orden.
// El orden solo se usa si la fila no trae nombres de columna.
var companyColumns = []column[entity.Company]{
	{"estabelecimento_cnpj_basico", nil},
	{"estabelecimento_cnpj_ordem", nil},
	{"estabelecimento_cnpj_dv", nil},
	{"identificador_matriz_filial", func(c *entity.Company, v *string) { c.IdentificadorMatrizFilial = v }},
	{"nome_fantasia", func(c *entity.Company, v *string) { c.NomeFantasia = v }},
	{"situacao_cadastral", func(c *entity.Company, v *string) { c.SituacaoCadastral = v }},
	{"data_situacao_cadastral", func(c *entity.Company, v *string) { c.DataSituacaoCadastral = v }},
	{"motivo_situacao_cadastral", func(c *entity.Company, v *string) { c.MotivoSituacaoCadastral = v }},
	{"nome_cidade_exterior", func(c *entity.Company, v *string) { c.NomeCidadeExterior = v }},
	{"data_inicio_atividade", func(c *entity.Company, v *string) { c.DataInicioAtividade = v }},
	{"cnae_fiscal_secundario", func(c *entity.Company, v *string) { c.CNAEFiscalSecundario = v }},
	{"tipo_logradouro", func(c *entity.Company, v *string) { c.TipoLogradouro = v }},
	{"logradouro", func(c *entity.Company, v *string) { c.Logradouro = v }},
	{"numero", func(c *entity.Company, v *string) { c.Numero = v }},
	{"complemento", func(c *entity.Company, v *string) { c.Complemento = v }},
	{"bairro", func(c *entity.Company, v *string) { c.Bairro = v }},
	{"cep", func(c *entity.Company, v *string) { c.CEP = v }},
	{"uf", func(c *entity.Company, v *string) { c.UF = v }},
	{"ddd_telefone_1", func(c *entity.Company, v *string) { c.DDDTelefone1 = v }},
	{"ddd_telefone_2", func(c *entity.Company, v *string) { c.DDDTelefone2 = v }},
	{"ddd_telefone_fax", func(c *entity.Company, v *string) { c.DDDTelefoneFax = v }},
	{"correio_eletronico", func(c *entity.Company, v *string) { c.CorreioEletronico = v }},
	{"situacao_especial", func(c *entity.Company, v *string) { c.SituacaoEspecial = v }},
	{"data_situacao_especial", func(c *entity.Company, v *string) { c.DataSituacaoEspecial = v }},
	{"pais", func(c *entity.Company, v *string) { c.Pais = v }},
	{"municipio", func(c *entity.Company, v *string) { c.Municipio = v }},
	{"razao_social", func(c *entity.Company, v *string) { c.RazaoSocial = v }},
	{"natureza_juridica", func(c *entity.Company, v *string) { c.NaturezaJuridica = v }},
	{"qualificacao_do_responsavel", func(c *entity.Company, v *string) { c.QualificacaoDoResponsavel = v }},
	{"capital_social", func(c *entity.Company, v *string) { c.CapitalSocial = v }},
	{"porte", func(c *entity.Company, v *string) { c.Porte = v }},
	{"ente_federativo_responsavel", func(c *entity.Company, v *string) { c.EnteFederativoResponsavel = v }},
	{"opcao_pelo_simples", func(c *entity.Company, v *string) { c.OpcaoPeloSimples = v }},
	{"data_opcao_pelo_simples", func(c *entity.Company, v *string) { c.DataOpcaoPeloSimples = v }},
	{"data_exclusao_pelo_simples", func(c *entity.Company, v *string) { c.DataExclusaoPeloSimples = v }},
	{"opcao_pelo_mei", func(c *entity.Company, v *string) { c.OpcaoPeloMEI = v }},
	{"data_opcao_pelo_mei", func(c *entity.Company, v *string) { c.DataOpcaoPeloMEI = v }},
	{"data_exclusao_pelo_mei", func(c *entity.Company, v *string) { c.DataExclusaoPeloMEI = v }},
	{"cnae", func(c *entity.Company, v *string) { c.CNAE = v }},
}

// partnerColumns es el contrato de columnas de la vista resposta_socios, en orden.
var partnerColumns = []column[entity.Partner]{
	{"cnpj_basico", nil},
	{"identificador_socio", func(p *entity.Partner, v *string) { p.IdentificadorSocio = v }},
	{"razao_social", func(p *entity.Partner, v *string) { p.RazaoSocial = v }},
	{"cnpj_cpf_socio", func(p *entity.Partner, v *string) { p.CNPJCPFSocio = v }},
	{"qualificacao_socio", func(p *entity.Partner, v *string) { p.QualificacaoSocio = v }},
	{"data_entrada_sociedade", func(p *entity.Partner, v *string) { p.DataEntradaSociedade = v }},
	{"pais_socio_estrangeiro", func(p *entity.Partner, v *string) { p.PaisSocioEstrangeiro = v }},
	{"numero_cpf_representante_legal", func(p *entity.Partner, v *string) { p.NumeroCPFRepresentanteLegal = v }},
	{"nome_representante_legal", func(p *entity.Partner, v *string) { p.NomeRepresentanteLegal = v }},
	{"qualificacao_representante_legal", func(p *entity.Partner, v *string) { p.QualificacaoRepresentanteLegal = v }},
	{"faixa_etaria", func(p *entity.Partner, v *string) { p.FaixaEtaria = v }},
}

// columnIndex resuelve la posición de cada columna en la fila.
// Sin descripciones de campo (byName == nil) el acceso es posicional.
type columnIndex struct {
	byName map[string]int
}

func newColumnIndex(fields []pgconn.FieldDescription) columnIndex {
	if len(fields) == 0 {
		return columnIndex{}
	}
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := byName[f.Name]; !dup {
			byName[f.Name] = i
		}
	}
	return columnIndex{byName: byName}
}

// mapRow aplica el contrato de columnas a una fila cruda. Falla con domain.ErrSchemaDrift
// si falta una columna (por nombre) o si la fila tiene menos columnas que el contrato.
func mapRow[T any](cols []column[T], idx columnIndex, values []any, dst *T) error {
	if idx.byName == nil && len(values) < len(cols) {
		return fmt.Errorf("%w: se esperaban %d columnas, la fila trae %d", domain.ErrSchemaDrift, len(cols), len(values))
	}
	for pos, col := range cols {
		if idx.byName != nil {
			i, ok := idx.byName[col.name]
			if !ok {
				return fmt.Errorf("%w: falta la columna %q", domain.ErrSchemaDrift, col.name)
			}
			pos = i
		}
		if pos >= len(values) {
			return fmt.Errorf("%w: columna %q fuera de rango", domain.ErrSchemaDrift, col.name)
		}
		if col.set != nil {
			col.set(dst, nullableString(values[pos]))
		}
	}
	return nil
}

// nullableString es la única regla de coerción de la fila: nil, "" y "None" son
// "sin valor"; las cadenas pasan intactas; el resto se convierte a texto.
func nullableString(v any) *string {
	var s string
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		if x == "" || x == "None" {
			return nil
		}
		s = x
	case []byte:
		if len(x) == 0 || string(x) == "None" {
			return nil
		}
		s = string(x)
	case time.Time:
		s = formatTime(x)
	case decimal.Decimal:
		s = formatDecimal(x)
	case bool:
		s = formatBool(x)
	case float64:
		s = formatFloat(x, 64)
	case float32:
		s = formatFloat(float64(x), 32)
	default:
		var err error
		if s, err = cast.ToStringE(x); err != nil {
			s = fmt.Sprint(x)
		}
	}
	return &s
}

// formatTime: las columnas DATE llegan como medianoche UTC.
func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.DateTime)
}

// formatDecimal conserva la escala de la columna NUMERIC (1000.00 sigue siendo "1000.00").
func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// formatBool devuelve "True" o "False".
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// formatFloat conserva el punto decimal en valores enteros ("1.0", no "1") y pasa a
// notación exponencial fuera de [1e-4, 1e16).
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
