package entity

// Company es el registro de un establecimiento en la base del CNPJ (Receita Federal).
// Los campos de identificación siempre se derivan del CNPJ consultado; el resto es
// opcional y nil significa "sin valor".
type Company struct {
	CNPJBasico                string `json:"cnpj_basico"`
	CNPJOrdem                 string `json:"cnpj_ordem"`
	CNPJDV                    string `json:"cnpj_dv"`
	CNPJCompleto              string `json:"cnpj_completo"`
	CNPJCompletoApenasNumeros string `json:"cnpj_completo_apenas_numeros"`

	IdentificadorMatrizFilial *string `json:"identificador_matriz_filial"`
	NomeFantasia              *string `json:"nome_fantasia"`
	SituacaoCadastral         *string `json:"situacao_cadastral"`
	DataSituacaoCadastral     *string `json:"data_situacao_cadastral"`
	MotivoSituacaoCadastral   *string `json:"motivo_situacao_cadastral"`
	NomeCidadeExterior        *string `json:"nome_cidade_exterior"`
	DataInicioAtividade       *string `json:"data_inicio_atividade"`
	CNAEFiscalSecundario      *string `json:"cnae_fiscal_secundario"`

	TipoLogradouro *string `json:"tipo_logradouro"`
	Logradouro     *string `json:"logradouro"`
	Numero         *string `json:"numero"`
	Complemento    *string `json:"complemento"`
	Bairro         *string `json:"bairro"`
	CEP            *string `json:"cep"`
	UF             *string `json:"uf"`

	DDDTelefone1      *string `json:"ddd_telefone_1"`
	DDDTelefone2      *string `json:"ddd_telefone_2"`
	DDDTelefoneFax    *string `json:"ddd_telefone_fax"`
	CorreioEletronico *string `json:"correio_eletronico"`

	SituacaoEspecial     *string `json:"situacao_especial"`
	DataSituacaoEspecial *string `json:"data_situacao_especial"`
	Pais                 *string `json:"pais"`
	Municipio            *string `json:"municipio"`

	RazaoSocial               *string `json:"razao_social"`
	NaturezaJuridica          *string `json:"natureza_juridica"`
	QualificacaoDoResponsavel *string `json:"qualificacao_do_responsavel"`
	CapitalSocial             *string `json:"capital_social"`
	Porte                     *string `json:"porte"`
	EnteFederativoResponsavel *string `json:"ente_federativo_responsavel"`

	// Simples Nacional y MEI
	OpcaoPeloSimples        *string `json:"opcao_pelo_simples"`
	DataOpcaoPeloSimples    *string `json:"data_opcao_pelo_simples"`
	DataExclusaoPeloSimples *string `json:"data_exclusao_pelo_simples"`
	OpcaoPeloMEI            *string `json:"opcao_pelo_mei"`
	DataOpcaoPeloMEI        *string `json:"data_opcao_pelo_mei"`
	DataExclusaoPeloMEI     *string `json:"data_exclusao_pelo_mei"`

	CNAE *string `json:"cnae"`
}

// Identificador de matriz/filial según el layout de la Receita.
const (
	MatrizCode = "1"
	FilialCode = "2"
)

// IsMatriz informa si el establecimiento es la matriz (sede) de la empresa.
func (c *Company) IsMatriz() bool {
	return c.IdentificadorMatrizFilial != nil && *c.IdentificadorMatrizFilial == MatrizCode
}
