package entity

import "time"

type Classificacao struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	Nome string `gorm:"size:255;not null"`
}

func (Classificacao) TableName() string { return "classificacoes" }

type Obrigatoriedade string

const (
	Obrigatorio Obrigatoriedade = "OBRIGATORIO"
	Condicional Obrigatoriedade = "CONDICIONAL"
)

type Periodicidade string

const (
	PeriodicidadeUnico      Periodicidade = "UNICO"
	PeriodicidadeAnual      Periodicidade = "ANUAL"
	PeriodicidadeBienal     Periodicidade = "BIENAL"
	PeriodicidadeTrienal    Periodicidade = "TRIENAL"
	PeriodicidadeQuinquenal Periodicidade = "QUINQUENAL"
	PeriodicidadeEventual   Periodicidade = "EVENTUAL"
)

// DocumentoRegulatorio is a regulatory document type (licenses, permits, reports)
// catalogued under a classification.
//
// The flags have no gorm default tag, otherwise gorm skips explicit false
// values on insert.
type DocumentoRegulatorio struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	ClassificacaoID         int64           `gorm:"not null;index"`
	Nome                    string          `gorm:"size:255;not null"`
	Sigla                   *string         `gorm:"size:50"`
	Descricao               string          `gorm:"type:text;not null"`
	BaseLegal               *string         `gorm:"size:255"`
	OrgaoEmissor            *string         `gorm:"size:255"`
	Obrigatoriedade         Obrigatoriedade `gorm:"size:20;not null"`
	Periodicidade           Periodicidade   `gorm:"size:20;not null"`
	ExigeResponsavelTecnico bool            `gorm:"not null"`
	ExigeAssinatura         bool            `gorm:"not null"`
	ExigeValidade           bool            `gorm:"not null"`
	Ativo                   bool            `gorm:"not null"`
	CreatedAt               time.Time
}

func (DocumentoRegulatorio) TableName() string { return "documentos_regulatorios" }

type DocumentoRegulatorioView struct {
	DocumentoRegulatorio
	ClassificacaoNome string
}
