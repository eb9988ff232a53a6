package entity

type Unidade struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	EmpresaID int64   `gorm:"not null;index"`
	Nome      string  `gorm:"size:255;not null"`
	Descricao *string `gorm:"size:500"`
}

func (Unidade) TableName() string { return "unidades" }

// Area stores the company of its unit at write time. Reads derive the
// company through the unit instead, so EmpresaID here may lag behind.
type Area struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	EmpresaID int64    `gorm:"not null;index"`
	UnidadeID int64    `gorm:"not null;index"`
	Nome      string   `gorm:"size:255;not null"`
	Descricao *string  `gorm:"size:500"`
	Latitude  *float64 `gorm:"type:decimal(10,7)"`
	Longitude *float64 `gorm:"type:decimal(10,7)"`
}

func (Area) TableName() string { return "areas" }

type SubArea struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	AreaID    int64   `gorm:"not null;index"`
	Nome      string  `gorm:"size:255;not null"`
	Descricao *string `gorm:"size:500"`
}

func (SubArea) TableName() string { return "subareas" }

type SubArea2 struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	SubAreaID int64   `gorm:"column:subarea_id;not null;index"`
	Nome      string  `gorm:"size:255;not null"`
	Descricao *string `gorm:"size:500"`
}

func (SubArea2) TableName() string { return "subarea2" }

/*
 * Joined read models
 */

type UnidadeView struct {
	Unidade
	EmpresaNome string
}

type AreaView struct {
	Area
	UnidadeNome string
	EmpresaNome string
}

type SubAreaView struct {
	SubArea
	AreaNome    string
	UnidadeID   int64
	UnidadeNome string
	EmpresaID   int64
	EmpresaNome string
}

type SubArea2View struct {
	SubArea2
	SubAreaNome string `gorm:"column:subarea_nome"`
	AreaID      int64
	AreaNome    string
	UnidadeID   int64
	UnidadeNome string
	EmpresaID   int64
	EmpresaNome string
}

// UnidadeRef is what callers need from a validated unit.
type UnidadeRef struct {
	ID        int64
	EmpresaID int64
}

// AreaRef carries the company the area belongs to through its unit.
type AreaRef struct {
	ID        int64
	UnidadeID int64
	EmpresaID int64
}
