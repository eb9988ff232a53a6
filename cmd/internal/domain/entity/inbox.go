package entity

import "time"

type InboxStatus string

const (
	InboxNaoLida   InboxStatus = "NAO_LIDA"
	InboxLida      InboxStatus = "LIDA"
	InboxArquivada InboxStatus = "ARQUIVADA"
)

type InboxNotificacao struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	UsuarioID           int64       `gorm:"not null;index"`
	Titulo              string      `gorm:"size:255;not null"`
	Corpo               string      `gorm:"type:text;not null"`
	Tipo                string      `gorm:"size:10;not null"`
	Prioridade          string      `gorm:"size:10;not null"`
	Status              InboxStatus `gorm:"size:10;not null;index"`
	Remetente           *string     `gorm:"size:255"`
	ReferenciaTipo      *string     `gorm:"size:50"`
	ReferenciaID        *int64
	DataEntregaEmail    *time.Time
	DataEntregaSms      *time.Time
	DataEntregaWhatsapp *time.Time
	LidoEm              *time.Time
	ArquivadoEm         *time.Time
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
}

func (InboxNotificacao) TableName() string { return "inbox_notificacoes" }

type InboxNotificacaoView struct {
	InboxNotificacao
	UsuarioNome string
}

// InboxFilter holds the optional predicates of an inbox listing.
// A nil or empty field adds no condition.
type InboxFilter struct {
	UsuarioID   *int64
	Status      string
	Tipo        string
	Prioridade  string
	Remetente   string
	Q           string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
