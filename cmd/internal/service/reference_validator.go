package service

import (
	"context"
	"github.com/labstack/gommon/log"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/utils/apierror"
)

type ReferenceRepository interface {
	FindEmpresaRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error)
	FindUnidadeRef(ctx context.Context, tenantID, id int64) (*entity.UnidadeRef, error)
	FindAreaRef(ctx context.Context, tenantID, id int64) (*entity.AreaRef, error)
	FindSubAreaRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error)
	FindClassificacaoRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error)
	FindUsuarioRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error)
	FindRequisitoRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error)
	ExistsRequisitoBase(ctx context.Context, id int64) (bool, error)
}

// ReferenceValidator confirms that a client supplied foreign key exists in
// the caller's tenant before anything points at it.
type ReferenceValidator struct {
	Repo ReferenceRepository
}

func NewReferenceValidator(repo ReferenceRepository) *ReferenceValidator {
	return &ReferenceValidator{Repo: repo}
}

func (v *ReferenceValidator) Empresa(ctx context.Context, tenantID, id int64) (*entity.Ref, apierror.ErrorResponse) {
	ref, err := v.Repo.FindEmpresaRef(ctx, tenantID, id)
	return checkRef(ref, err, apierror.InvalidEmpresaError, "empresa")
}

func (v *ReferenceValidator) Unidade(ctx context.Context, tenantID, id int64) (*entity.UnidadeRef, apierror.ErrorResponse) {
	ref, err := v.Repo.FindUnidadeRef(ctx, tenantID, id)
	return checkRef(ref, err, apierror.InvalidUnidadeError, "unidade")
}

func (v *ReferenceValidator) Area(ctx context.Context, tenantID, id int64) (*entity.AreaRef, apierror.ErrorResponse) {
	ref, err := v.Repo.FindAreaRef(ctx, tenantID, id)
	return checkRef(ref, err, apierror.InvalidAreaError, "area")
}

func (v *ReferenceValidator) AreaResponsavel(ctx context.Context, tenantID, id int64) (*entity.AreaRef, apierror.ErrorResponse) {
	ref, err := v.Repo.FindAreaRef(ctx, tenantID, id)
	return checkRef(ref, err, apierror.InvalidAreaResponsavelError, "area")
}

func (v *ReferenceValidator) SubArea(ctx context.Context, tenantID, id int64) (*entity.Ref, apierror.ErrorResponse) {
	ref, err := v.Repo.FindSubAreaRef(ctx, tenantID, id)
	return checkRef(ref, err, apierror.InvalidSubAreaError, "subarea")
}

func (v *ReferenceValidator) Classificacao(ctx context.Context, tenantID, id int64) (*entity.Ref, apierror.ErrorResponse) {
	ref, err := v.Repo.FindClassificacaoRef(ctx, tenantID, id)
	return checkRef(ref, err, apierror.InvalidClassificacaoError, "classificacao")
}

// Usuario reports invalid with the given error, since the message differs
// between tasks and requirements.
func (v *ReferenceValidator) Usuario(ctx context.Context, tenantID, id int64, invalid apierror.ErrorResponse) (*entity.Ref, apierror.ErrorResponse) {
	ref, err := v.Repo.FindUsuarioRef(ctx, tenantID, id)
	return checkRef(ref, err, invalid, "usuario")
}

// Requisito is a primary entity lookup, so a miss is a 404.
func (v *ReferenceValidator) Requisito(ctx context.Context, tenantID, id int64) (*entity.Ref, apierror.ErrorResponse) {
	ref, err := v.Repo.FindRequisitoRef(ctx, tenantID, id)
	return checkRef(ref, err, apierror.RequisitoNotFoundError, "requisito")
}

// RequisitoBase is the only tenant-agnostic check.
func (v *ReferenceValidator) RequisitoBase(ctx context.Context, id int64) apierror.ErrorResponse {
	ok, err := v.Repo.ExistsRequisitoBase(ctx, id)
	if err != nil {
		log.Errorf("failed to validate requisito base: %v", err)
		return apierror.InternalServerError
	}

	if !ok {
		return apierror.InvalidRequisitoBaseError
	}
	return nil
}

// AreaDaEmpresa checks that the area exists in the tenant and that the company
// of its unit is empresaID.
func (v *ReferenceValidator) AreaDaEmpresa(ctx context.Context, tenantID, empresaID, areaID int64) apierror.ErrorResponse {
	area, apierr := v.Area(ctx, tenantID, areaID)
	if apierr != nil {
		return apierr
	}

	if area.EmpresaID != empresaID {
		return apierror.AreaEmpresaMismatchError
	}
	return nil
}

// checkRef folds a repository lookup into the validator result: a lookup
// error is a 500, a missing row is invalid.
func checkRef[T any](ref *T, err error, invalid apierror.ErrorResponse, name string) (*T, apierror.ErrorResponse) {
	if err != nil {
		log.Errorf("failed to validate %s reference: %v", name, err)
		return nil, apierror.InternalServerError
	}

	if ref == nil {
		return nil, invalid
	}
	return ref, nil
}
