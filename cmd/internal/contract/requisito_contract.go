package contract

type RequisitoRequest struct {
	Titulo               string   `json:"titulo" validate:"notblank,max=255"`
	Descricao            string   `json:"descricao" validate:"notblank"`
	Tipo                 string   `json:"tipo" validate:"required,oneof=LEGAL INTERNO EXTERNO"`
	Status               string   `json:"status" validate:"required,oneof=CONFORME NAO_CONFORME EM_ANALISE SEM_ANALISE EM_REANALISE"`
	Origem               string   `json:"origem" validate:"required,oneof=MUNICIPAL ESTADUAL FEDERAL"`
	RequisitoBaseID      int64    `json:"requisito_base_id" validate:"required,gt=0"`
	Modo                 string   `json:"modo" validate:"omitempty,oneof=ATIVO RASCUNHO"`
	Criticidade          *int     `json:"criticidade" validate:"omitnil,min=0,max=4"`
	Prioridade           *int     `json:"prioridade" validate:"omitnil,min=1,max=5"`
	ClassificacaoID      int64    `json:"classificacao_id" validate:"required,gt=0"`
	AreaResponsavelID    int64    `json:"area_responsavel_id" validate:"required,gt=0"`
	UsuarioResponsavelID *int64   `json:"usuario_responsavel_id" validate:"omitnil,gt=0"`
	OutrasAreasIDs       []int64  `json:"outras_areas_ids" validate:"omitempty,max=50,nodupes,dive,gt=0"`
	Tags                 []string `json:"tags" validate:"omitempty,max=50,nodupes,dive,notblank,max=100"`
}

type RequisitoResponse struct {
	ID                     int64    `json:"id"`
	TenantID               int64    `json:"tenant_id"`
	RequisitoBaseID        int64    `json:"requisito_base_id"`
	Titulo                 string   `json:"titulo"`
	Descricao              string   `json:"descricao"`
	Tipo                   string   `json:"tipo"`
	Status                 string   `json:"status"`
	Origem                 string   `json:"origem"`
	Modo                   string   `json:"modo"`
	Criticidade            int      `json:"criticidade"`
	Prioridade             int      `json:"prioridade"`
	ClassificacaoID        int64    `json:"classificacao_id"`
	ClassificacaoNome      *string  `json:"classificacao_nome"`
	AreaResponsavelID      int64    `json:"area_responsavel_id"`
	AreaResponsavelNome    string   `json:"area_responsavel_nome"`
	UsuarioResponsavelID   *int64   `json:"usuario_responsavel_id"`
	UsuarioResponsavelNome *string  `json:"usuario_responsavel_nome"`
	OutrasAreasIDs         []int64  `json:"outras_areas_ids"`
	OutrasAreasNomes       []string `json:"outras_areas_nomes"`
	Tags                   []string `json:"tags"`
	CreatedAt              string   `json:"created_at"`
	UpdatedAt              string   `json:"updated_at"`

	// Only filled by the single-requirement read.
	Checkins []*CheckinResponse `json:"checkins,omitempty"`
}

type CheckinRequest struct {
	Descricao   string  `json:"descricao" validate:"notblank"`
	Data        string  `json:"data" validate:"required"`
	Responsavel string  `json:"responsavel" validate:"notblank,max=255"`
	Status      string  `json:"status" validate:"required,oneof=CONFORME NAO_CONFORME EM_ANALISE SEM_ANALISE EM_REANALISE"`
	Anexo       *string `json:"anexo" validate:"omitnil,max=255"`
}

type CheckinResponse struct {
	ID          int64   `json:"id"`
	RequisitoID int64   `json:"requisito_id"`
	Descricao   string  `json:"descricao"`
	Data        string  `json:"data"`
	Responsavel string  `json:"responsavel"`
	Anexo       *string `json:"anexo"`
	Status      string  `json:"status"`
}

type TarefaRequest struct {
	Titulo        string `json:"titulo" validate:"notblank,max=255"`
	ResponsavelID *int64 `json:"responsavel_id" validate:"omitnil,gt=0"`
	Status        string `json:"status" validate:"omitempty,oneof=ABERTO FECHADO"`
}

type TarefaStatusRequest struct {
	Status string `json:"status"`
}

type TarefaResponse struct {
	ID              int64   `json:"id"`
	RequisitoID     int64   `json:"requisito_id"`
	Titulo          string  `json:"titulo"`
	ResponsavelID   *int64  `json:"responsavel_id"`
	ResponsavelNome *string `json:"responsavel_nome"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

type DashboardResponse struct {
	Total            int64                         `json:"total"`
	PorStatus        []*StatusCountResponse        `json:"por_status"`
	PorArea          []*AreaCountResponse          `json:"por_area"`
	PorClassificacao []*ClassificacaoCountResponse `json:"por_classificacao"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

type AreaCountResponse struct {
	AreaID   int64  `json:"area_id"`
	AreaNome string `json:"area_nome"`
	Total    int64  `json:"total"`
}

type ClassificacaoCountResponse struct {
	ClassificacaoID   int64   `json:"classificacao_id"`
	ClassificacaoNome *string `json:"classificacao_nome"`
	Total             int64   `json:"total"`
}
