package entity

import "time"

type StatusRequisito string

const (
	StatusConforme    StatusRequisito = "CONFORME"
	StatusNaoConforme StatusRequisito = "NAO_CONFORME"
	StatusEmAnalise   StatusRequisito = "EM_ANALISE"
	StatusSemAnalise  StatusRequisito = "SEM_ANALISE"
	StatusEmReanalise StatusRequisito = "EM_REANALISE"
)

// StatusesRequisito lists every status in display order.
var StatusesRequisito = []StatusRequisito{
	StatusConforme,
	StatusNaoConforme,
	StatusEmAnalise,
	StatusSemAnalise,
	StatusEmReanalise,
}

type ModoRequisito string

const (
	ModoAtivo    ModoRequisito = "ATIVO"
	ModoRascunho ModoRequisito = "RASCUNHO"
)

const (
	DefaultCriticidade = 3
	DefaultPrioridade  = 3
)

// RequisitoBase is a shared requirement template. It is the only table
// without a tenant column.
type RequisitoBase struct {
	ID        int64   `gorm:"primaryKey"`
	Titulo    string  `gorm:"size:255;not null"`
	Descricao *string `gorm:"type:text"`
}

func (RequisitoBase) TableName() string { return "requisito_base" }

type Requisito struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	RequisitoBaseID      int64           `gorm:"not null"`
	Titulo               string          `gorm:"size:255;not null"`
	Descricao            string          `gorm:"type:text;not null"`
	Tipo                 string          `gorm:"size:20;not null"`
	Status               StatusRequisito `gorm:"size:20;not null;index"`
	Origem               string          `gorm:"size:20;not null"`
	Modo                 ModoRequisito   `gorm:"size:20;not null"`
	Criticidade          int             `gorm:"not null"`
	Prioridade           int             `gorm:"not null"`
	ClassificacaoID      int64           `gorm:"not null;index"`
	AreaResponsavelID    int64           `gorm:"not null;index"`
	UsuarioResponsavelID *int64          `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Requisito) TableName() string { return "requisitos" }

type RequisitoTag struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	RequisitoID int64  `gorm:"not null;index"`
	Tag         string `gorm:"size:100;not null"`
}

func (RequisitoTag) TableName() string { return "requisito_tags" }

type RequisitoOutraArea struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	RequisitoID int64 `gorm:"not null;index"`
	AreaID      int64 `gorm:"not null;index"`
}

func (RequisitoOutraArea) TableName() string { return "requisito_outras_areas" }

// RequisitoCheckin is an append-only event. Creating one also overwrites the
// status of its requirement.
type RequisitoCheckin struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	RequisitoID int64           `gorm:"not null;index"`
	Descricao   string          `gorm:"type:text;not null"`
	Data        time.Time       `gorm:"not null"`
	Responsavel string          `gorm:"size:255;not null"`
	Anexo       *string         `gorm:"size:255"`
	Status      StatusRequisito `gorm:"size:20;not null"`
}

func (RequisitoCheckin) TableName() string { return "requisito_checkins" }

type RequisitoView struct {
	Requisito
	AreaResponsavelNome    string
	UsuarioResponsavelNome *string
	ClassificacaoNome      *string
}

type RequisitoTagRow struct {
	RequisitoID int64
	Tag         string
}

type RequisitoOutraAreaRow struct {
	RequisitoID int64
	AreaID      int64
	AreaNome    string
}

// CountRow is one bucket of a grouped count.
type CountRow struct {
	Chave string
	Total int64
}

type AreaCountRow struct {
	AreaID   int64
	AreaNome string
	Total    int64
}

type ClassificacaoCountRow struct {
	ClassificacaoID   int64
	ClassificacaoNome *string
	Total             int64
}
