package service

import (
	"context"
	"github.com/labstack/gommon/log"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

const entityUnidade = "unidade"

type UnidadeRepository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.UnidadeView, error)
	FindByID(ctx context.Context, tenantID, id int64) (*entity.UnidadeView, error)
	Save(ctx context.Context, tenantID int64, unidade *entity.Unidade) error
	Update(ctx context.Context, tenantID int64, unidade *entity.Unidade) (bool, error)
	Delete(ctx context.Context, tenantID, id int64) (bool, error)
}

// DefaultUnidadeService does not touch the areas of a unit when its company
// changes. Area reads resolve the company through the unit.
type DefaultUnidadeService struct {
	Deps
	Repo UnidadeRepository
}

func NewUnidadeService(repo UnidadeRepository, deps Deps) *DefaultUnidadeService {
	return &DefaultUnidadeService{Deps: deps, Repo: repo}
}

func (s *DefaultUnidadeService) List(ctx context.Context, tenantID int64) ([]*contract.UnidadeResponse, apierror.ErrorResponse) {
	unidades, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch unidades: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UnidadeResponse, len(unidades))
	for i, u := range unidades {
		resp[i] = toUnidadeResponse(u)
	}
	return resp, nil
}

func (s *DefaultUnidadeService) GetByID(ctx context.Context, tenantID, id int64) (*contract.UnidadeResponse, apierror.ErrorResponse) {
	unidade, err := s.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch unidade: %v", err)
		return nil, apierror.InternalServerError
	}

	if unidade == nil {
		return nil, apierror.UnidadeNotFoundError
	}
	return toUnidadeResponse(unidade), nil
}

func (s *DefaultUnidadeService) Create(ctx context.Context, tenantID int64, req *contract.UnidadeRequest) (*contract.UnidadeResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.Empresa(ctx, tenantID, req.EmpresaID); apierr != nil {
		return nil, apierr
	}

	unidade := &entity.Unidade{
		EmpresaID: req.EmpresaID,
		Nome:      req.Nome,
		Descricao: utils.EmptyToNil(req.Descricao),
	}
	if err := s.Repo.Save(ctx, tenantID, unidade); err != nil {
		log.Errorf("failed to create unidade: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.GetByID(ctx, tenantID, unidade.ID)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityUnidade, audit.ActionCreate, resp)
	return resp, nil
}

func (s *DefaultUnidadeService) Update(ctx context.Context, tenantID, id int64, req *contract.UnidadeRequest) (*contract.UnidadeResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.Empresa(ctx, tenantID, req.EmpresaID); apierr != nil {
		return nil, apierr
	}

	unidade := &entity.Unidade{
		ID:        id,
		EmpresaID: req.EmpresaID,
		Nome:      req.Nome,
		Descricao: utils.EmptyToNil(req.Descricao),
	}
	ok, err := s.Repo.Update(ctx, tenantID, unidade)
	if err != nil {
		log.Errorf("failed to update unidade: %v", err)
		return nil, apierror.InternalServerError
	}

	if !ok {
		return nil, apierror.UnidadeNotFoundError
	}

	resp, apierr := s.GetByID(ctx, tenantID, id)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityUnidade, audit.ActionUpdate, resp)
	return resp, nil
}

func (s *DefaultUnidadeService) Delete(ctx context.Context, tenantID, id int64) apierror.ErrorResponse {
	ok, err := s.Repo.Delete(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to delete unidade: %v", err)
		return apierror.InternalServerError
	}

	if !ok {
		return apierror.UnidadeNotFoundError
	}
	s.Audit.Log(tenantID, entityUnidade, audit.ActionDelete, map[string]int64{"id": id})
	return nil
}

func toUnidadeResponse(u *entity.UnidadeView) *contract.UnidadeResponse {
	return &contract.UnidadeResponse{
		ID:          u.ID,
		TenantID:    u.TenantID,
		EmpresaID:   u.EmpresaID,
		EmpresaNome: u.EmpresaNome,
		Nome:        u.Nome,
		Descricao:   u.Descricao,
	}
}
