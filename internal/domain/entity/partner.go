package entity

// Partner es un socio (QSA) asociado a la base del CNPJ. Los socios pertenecen a la
// empresa (8 primeros dígitos), no a un establecimiento concreto.
type Partner struct {
	CNPJBasico                string `json:"cnpj_basico"`
	CNPJOrdem                 string `json:"cnpj_ordem"`
	CNPJDV                    string `json:"cnpj_dv"`
	CNPJCompleto              string `json:"cnpj_completo"`
	CNPJCompletoApenasNumeros string `json:"cnpj_completo_apenas_numeros"`

	IdentificadorSocio             *string `json:"identificador_socio"`
	RazaoSocial                    *string `json:"razao_social"`
	CNPJCPFSocio                   *string `json:"cnpj_cpf_socio"`
	QualificacaoSocio              *string `json:"qualificacao_socio"`
	DataEntradaSociedade           *string `json:"data_entrada_sociedade"`
	PaisSocioEstrangeiro           *string `json:"pais_socio_estrangeiro"`
	NumeroCPFRepresentanteLegal    *string `json:"numero_cpf_representante_legal"`
	NomeRepresentanteLegal         *string `json:"nome_representante_legal"`
	QualificacaoRepresentanteLegal *string `json:"qualificacao_representante_legal"`
	FaixaEtaria                    *string `json:"faixa_etaria"`
}
