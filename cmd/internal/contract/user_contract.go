package contract

type UsuarioRequest struct {
	Nome      string `json:"nome" validate:"notblank,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Senha     string `json:"senha" validate:"required,min=6,max=72"`
	EmpresaID *int64 `json:"empresa_id" validate:"omitnil,gt=0"`
	AreaID    *int64 `json:"area_id" validate:"omitnil,gt=0"`
}

type UsuarioResponse struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	TenantID  int64  `json:"tenant_id"`
	EmpresaID *int64 `json:"empresa_id"`
	AreaID    *int64 `json:"area_id"`
}

type RegisterRequest struct {
	Nome     string `json:"nome" validate:"notblank,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Senha    string `json:"senha" validate:"required,min=6,max=72"`
	TenantID int64  `json:"tenant_id" validate:"required,gt=0"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
