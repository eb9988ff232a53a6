package entity

type MatrizOuFilial string

const (
	Matriz MatrizOuFilial = "MATRIZ"
	Filial MatrizOuFilial = "FILIAL"
)

// Empresa is the root of the organizational hierarchy.
type Empresa struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	Nome           string         `gorm:"size:255;not null"`
	CNPJ           string         `gorm:"column:cnpj;size:18;not null"`
	MatrizOuFilial MatrizOuFilial `gorm:"size:10;not null"`
	RazaoSocial    string         `gorm:"size:255;not null"`
}

func (Empresa) TableName() string { return "empresas" }
