package entity

type Usuario struct {
	ID int64 `gorm:"primaryKey"`
	TenantScoped
	Nome      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	SenhaHash string `gorm:"size:255;not null"`
	EmpresaID *int64 `gorm:"index"`
	AreaID    *int64 `gorm:"index"`
}

func (Usuario) TableName() string { return "usuarios" }
