package entity

import "time"

type StatusTarefa string

const (
	TarefaAberta  StatusTarefa = "ABERTO"
	TarefaFechada StatusTarefa = "FECHADO"
)

type RequisitoTarefa struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	RequisitoID   int64        `gorm:"not null;index"`
	Titulo        string       `gorm:"size:255;not null"`
	ResponsavelID *int64       `gorm:"index"`
	Status        StatusTarefa `gorm:"size:10;not null"`
	CreatedAt     time.Time
}

func (RequisitoTarefa) TableName() string { return "requisito_tarefas" }

type RequisitoTarefaView struct {
	RequisitoTarefa
	ResponsavelNome *string
}
