package contract

type EmpresaRequest struct {
	Nome           string `json:"nome" validate:"notblank,max=255"`
	CNPJ           string `json:"cnpj" validate:"required,min=14,max=18,cnpj"`
	MatrizOuFilial string `json:"matriz_ou_filial" validate:"required,oneof=MATRIZ FILIAL"`
	RazaoSocial    string `json:"razao_social" validate:"notblank,max=255"`
}

type EmpresaResponse struct {
	ID             int64  `json:"id"`
	TenantID       int64  `json:"tenant_id"`
	Nome           string `json:"nome"`
	CNPJ           string `json:"cnpj"`
	MatrizOuFilial string `json:"matriz_ou_filial"`
	RazaoSocial    string `json:"razao_social"`
}

type UnidadeRequest struct {
	EmpresaID int64   `json:"empresa_id" validate:"required,gt=0"`
	Nome      string  `json:"nome" validate:"notblank,max=255"`
	Descricao *string `json:"descricao" validate:"omitnil,max=500"`
}

type UnidadeResponse struct {
	ID          int64   `json:"id"`
	TenantID    int64   `json:"tenant_id"`
	EmpresaID   int64   `json:"empresa_id"`
	EmpresaNome string  `json:"empresa_nome"`
	Nome        string  `json:"nome"`
	Descricao   *string `json:"descricao"`
}

// AreaRequest also carries the struct-level "latlonpair" rule: latitude and
// longitude are either both present or both absent.
type AreaRequest struct {
	UnidadeID int64    `json:"unidade_id" validate:"required,gt=0"`
	Nome      string   `json:"nome" validate:"notblank,max=255"`
	Descricao *string  `json:"descricao" validate:"omitnil,max=500"`
	Latitude  *float64 `json:"latitude" validate:"omitnil,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitnil,min=-180,max=180"`
}

type AreaResponse struct {
	ID          int64    `json:"id"`
	TenantID    int64    `json:"tenant_id"`
	EmpresaID   int64    `json:"empresa_id"`
	EmpresaNome string   `json:"empresa_nome"`
	UnidadeID   int64    `json:"unidade_id"`
	UnidadeNome string   `json:"unidade_nome"`
	Nome        string   `json:"nome"`
	Descricao   *string  `json:"descricao"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type SubAreaRequest struct {
	AreaID    int64   `json:"area_id" validate:"required,gt=0"`
	Nome      string  `json:"nome" validate:"notblank,max=255"`
	Descricao *string `json:"descricao" validate:"omitnil,max=500"`
}

type SubAreaResponse struct {
	ID          int64   `json:"id"`
	TenantID    int64   `json:"tenant_id"`
	AreaID      int64   `json:"area_id"`
	AreaNome    string  `json:"area_nome"`
	UnidadeID   int64   `json:"unidade_id"`
	UnidadeNome string  `json:"unidade_nome"`
	EmpresaID   int64   `json:"empresa_id"`
	EmpresaNome string  `json:"empresa_nome"`
	Nome        string  `json:"nome"`
	Descricao   *string `json:"descricao"`
}

type SubArea2Request struct {
	SubAreaID int64   `json:"subarea_id" validate:"required,gt=0"`
	Nome      string  `json:"nome" validate:"notblank,max=255"`
	Descricao *string `json:"descricao" validate:"omitnil,max=500"`
}

type SubArea2Response struct {
	ID          int64   `json:"id"`
	TenantID    int64   `json:"tenant_id"`
	SubAreaID   int64   `json:"subarea_id"`
	SubAreaNome string  `json:"subarea_nome"`
	AreaID      int64   `json:"area_id"`
	AreaNome    string  `json:"area_nome"`
	UnidadeID   int64   `json:"unidade_id"`
	UnidadeNome string  `json:"unidade_nome"`
	EmpresaID   int64   `json:"empresa_id"`
	EmpresaNome string  `json:"empresa_nome"`
	Nome        string  `json:"nome"`
	Descricao   *string `json:"descricao"`
}
