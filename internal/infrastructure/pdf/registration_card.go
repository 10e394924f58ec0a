// Package pdf genera el Comprovante de Inscrição e de Situação Cadastral de un CNPJ.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + CNPJ (MATRIZ/FILIAL) + data de abertura    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IDENTIFICAÇÃO: razão social / nome fantasia / porte         │
//	│  ATIVIDADE: CNAE principal + secundários / natureza jurídica │
//	│  ENDEREÇO + CONTATO                                          │
//	│  SITUAÇÃO CADASTRAL / SIMPLES / MEI / capital social         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QSA: un renglón por sócio                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el CNPJ + fecha de emisión                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/consulta-cnpj/internal/application/ports"
	"github.com/jhoicas/consulta-cnpj/internal/domain/entity"
)

// Asegura que MarotoRegistrationCard implementa ports.RegistrationCardGenerator.
var _ ports.RegistrationCardGenerator = (*MarotoRegistrationCard)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 94, Blue: 61}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRegistrationCard implementa ports.RegistrationCardGenerator usando Maroto v2.
type MarotoRegistrationCard struct{}

// NewMarotoRegistrationCard construye el generador.
func NewMarotoRegistrationCard() *MarotoRegistrationCard { return &MarotoRegistrationCard{} }

// GenerateRegistrationCard genera el PDF y devuelve sus bytes.
func (g *MarotoRegistrationCard) GenerateRegistrationCard(
	_ context.Context,
	company *entity.Company,
	partners []*entity.Partner,
	issuedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Inscrição e de Situação Cadastral", true).
		WithAuthor(orStars(company.RazaoSocial), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(
		fieldRow(field{"NOME EMPRESARIAL", orStars(company.RazaoSocial), 12}),
		fieldRow(
			field{"TÍTULO DO ESTABELECIMENTO (NOME DE FANTASIA)", orStars(company.NomeFantasia), 8},
			field{"PORTE", porteLabel(company.Porte), 4},
		),
		fieldRow(field{"CÓDIGO E DESCRIÇÃO DA ATIVIDADE ECONÔMICA PRINCIPAL", orStars(company.CNAE), 12}),
		fieldRow(field{"CÓDIGO E DESCRIÇÃO DAS ATIVIDADES ECONÔMICAS SECUNDÁRIAS", orStars(company.CNAEFiscalSecundario), 12}),
		fieldRow(
			field{"CÓDIGO E DESCRIÇÃO DA NATUREZA JURÍDICA", orStars(company.NaturezaJuridica), 8},
			field{"CAPITAL SOCIAL", formatCapital(company.CapitalSocial), 4},
		),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(
		fieldRow(
			field{"LOGRADOURO", joinNonNil(" ", company.TipoLogradouro, company.Logradouro), 7},
			field{"NÚMERO", orStars(company.Numero), 2},
			field{"COMPLEMENTO", orStars(company.Complemento), 3},
		),
		fieldRow(
			field{"CEP", formatCEP(company.CEP), 3},
			field{"BAIRRO/DISTRITO", orStars(company.Bairro), 4},
			field{"MUNICÍPIO", orStars(company.Municipio), 3},
			field{"UF", orStars(company.UF), 2},
		),
		fieldRow(
			field{"ENDEREÇO ELETRÔNICO", orStars(company.CorreioEletronico), 7},
			field{"TELEFONE", orStars(firstNonNil(company.DDDTelefone1, company.DDDTelefone2)), 5},
		),
		fieldRow(field{"ENTE FEDERATIVO RESPONSÁVEL (EFR)", orStars(company.EnteFederativoResponsavel), 12}),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(
		fieldRow(
			field{"SITUAÇÃO CADASTRAL", situacaoLabel(company.SituacaoCadastral), 8},
			field{"DATA DA SITUAÇÃO CADASTRAL", formatDate(company.DataSituacaoCadastral), 4},
		),
		fieldRow(field{"MOTIVO DE SITUAÇÃO CADASTRAL", orStars(company.MotivoSituacaoCadastral), 12}),
		fieldRow(
			field{"SITUAÇÃO ESPECIAL", orStars(company.SituacaoEspecial), 8},
			field{"DATA DA SITUAÇÃO ESPECIAL", formatDate(company.DataSituacaoEspecial), 4},
		),
		fieldRow(
			field{"OPÇÃO PELO SIMPLES", optionLabel(company.OpcaoPeloSimples), 4},
			field{"DATA DE OPÇÃO", formatDate(company.DataOpcaoPeloSimples), 4},
			field{"DATA DE EXCLUSÃO", formatDate(company.DataExclusaoPeloSimples), 4},
		),
		fieldRow(
			field{"OPÇÃO PELO MEI", optionLabel(company.OpcaoPeloMEI), 4},
			field{"DATA DE OPÇÃO", formatDate(company.DataOpcaoPeloMEI), 4},
			field{"DATA DE EXCLUSÃO", formatDate(company.DataExclusaoPeloMEI), 4},
		),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range partnerRows(partners) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(company, issuedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprovante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y CNPJ + tipo + fecha de apertura (der).
func headerRow(company *entity.Company) core.Row {
	tipo := "FILIAL"
	if company.IsMatriz() {
		tipo = "MATRIZ"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROVANTE DE INSCRIÇÃO E DE", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New("SITUAÇÃO CADASTRAL", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("NÚMERO DE INSCRIÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(company.CNPJCompleto+"  "+tipo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 5,
			}),
			text.New("Data de abertura: "+formatDate(company.DataInicioAtividade), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

type field struct {
	label string
	value string
	size  int
}

// fieldRow: etiqueta pequeña sobre el valor, una columna por campo.
func fieldRow(fields ...field) core.Row {
	cols := make([]core.Col, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, col.New(f.size).Add(
			text.New(f.label, props.Text{Size: 6.5, Color: colorGray, Top: 1}),
			text.New(f.value, props.Text{Style: fontstyle.Bold, Size: 8.5, Top: 4.5}),
		))
	}
	return row.New(10).Add(cols...)
}

// partnerRows: cuadro de sócios y administradores (QSA).
func partnerRows(partners []*entity.Partner) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("QUADRO DE SÓCIOS E ADMINISTRADORES (QSA)", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if len(partners) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("A natureza jurídica não permite o preenchimento do QSA ou não há sócios cadastrados.",
				props.Text{Size: 7.5, Color: colorGray, Top: 1}),
		)))
	}
	for _, p := range partners {
		rows = append(rows, row.New(6).Add(
			col.New(7).Add(text.New(orStars(p.RazaoSocial), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New("Qualif.: "+orStars(p.QualificacaoSocio), props.Text{Size: 7.5, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(formatDate(p.DataEntradaSociedade), props.Text{Size: 7.5, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

// footerRow: QR con el CNPJ y fecha de emisión.
func footerRow(company *entity.Company, issuedAt time.Time) core.Row {
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(company.CNPJCompletoApenasNumeros, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Emitido em "+issuedAt.Format("02/01/2006")+" às "+issuedAt.Format("15:04:05"), props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New("Dados obtidos da base pública do CNPJ (Receita Federal).", props.Text{
				Size: 7, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}
