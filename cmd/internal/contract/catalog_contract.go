package contract

type ClassificacaoRequest struct {
	Nome string `json:"nome" validate:"notblank,max=255"`
}

type ClassificacaoResponse struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenant_id"`
	Nome     string `json:"nome"`
}

// DocumentoRequest leaves the flags as pointers so an omitted flag can take
// its default (false for the "exige_*" signature and technical flags, true
// for validity and active).
type DocumentoRequest struct {
	ClassificacaoID         int64   `json:"classificacao_id" validate:"required,gt=0"`
	Nome                    string  `json:"nome" validate:"notblank,max=255"`
	Sigla                   *string `json:"sigla" validate:"omitnil,max=50"`
	Descricao               string  `json:"descricao" validate:"notblank"`
	BaseLegal               *string `json:"base_legal" validate:"omitnil,max=255"`
	OrgaoEmissor            *string `json:"orgao_emissor" validate:"omitnil,max=255"`
	Obrigatoriedade         string  `json:"obrigatoriedade" validate:"required,oneof=OBRIGATORIO CONDICIONAL"`
	Periodicidade           string  `json:"periodicidade" validate:"required,oneof=UNICO ANUAL BIENAL TRIENAL QUINQUENAL EVENTUAL"`
	ExigeResponsavelTecnico *bool   `json:"exige_responsavel_tecnico"`
	ExigeAssinatura         *bool   `json:"exige_assinatura"`
	ExigeValidade           *bool   `json:"exige_validade"`
	Ativo                   *bool   `json:"ativo"`
}

type DocumentoResponse struct {
	ID                      int64   `json:"id"`
	TenantID                int64   `json:"tenant_id"`
	ClassificacaoID         int64   `json:"classificacao_id"`
	ClassificacaoNome       string  `json:"classificacao_nome"`
	Nome                    string  `json:"nome"`
	Sigla                   *string `json:"sigla"`
	Descricao               string  `json:"descricao"`
	BaseLegal               *string `json:"base_legal"`
	OrgaoEmissor            *string `json:"orgao_emissor"`
	Obrigatoriedade         string  `json:"obrigatoriedade"`
	Periodicidade           string  `json:"periodicidade"`
	ExigeResponsavelTecnico bool    `json:"exige_responsavel_tecnico"`
	ExigeAssinatura         bool    `json:"exige_assinatura"`
	ExigeValidade           bool    `json:"exige_validade"`
	Ativo                   bool    `json:"ativo"`
	CreatedAt               string  `json:"created_at"`
}
