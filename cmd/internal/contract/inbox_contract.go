package contract

// InboxQuery is bound from the query string. Every field is optional.
type InboxQuery struct {
	UsuarioID   string `query:"usuario_id"`
	Status      string `query:"status" validate:"omitempty,oneof=NAO_LIDA LIDA ARQUIVADA"`
	Tipo        string `query:"tipo" validate:"omitempty,oneof=ALERTA AVISO INFO"`
	Prioridade  string `query:"prioridade" validate:"omitempty,oneof=ALTA MEDIA BAIXA"`
	Remetente   string `query:"remetente" validate:"max=255"`
	Q           string `query:"q" validate:"max=255"`
	CreatedFrom string `query:"created_from"`
	CreatedTo   string `query:"created_to"`
}

type InboxStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NAO_LIDA LIDA ARQUIVADA"`
}

type InboxResponse struct {
	ID                  int64   `json:"id"`
	TenantID            int64   `json:"tenant_id"`
	UsuarioID           int64   `json:"usuario_id"`
	UsuarioNome         string  `json:"usuario_nome"`
	Titulo              string  `json:"titulo"`
	Corpo               string  `json:"corpo"`
	Tipo                string  `json:"tipo"`
	Prioridade          string  `json:"prioridade"`
	Status              string  `json:"status"`
	Remetente           *string `json:"remetente"`
	ReferenciaTipo      *string `json:"referencia_tipo"`
	ReferenciaID        *int64  `json:"referencia_id"`
	DataEntregaEmail    *string `json:"data_entrega_email"`
	DataEntregaSms      *string `json:"data_entrega_sms"`
	DataEntregaWhatsapp *string `json:"data_entrega_whatsapp"`
	LidoEm              *string `json:"lido_em"`
	ArquivadoEm         *string `json:"arquivado_em"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}
