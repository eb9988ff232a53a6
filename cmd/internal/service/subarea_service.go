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

const entitySubArea = "subarea"

type SubAreaRepository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.SubAreaView, error)
	FindByID(ctx context.Context, tenantID, id int64) (*entity.SubAreaView, error)
	Save(ctx context.Context, tenantID int64, subarea *entity.SubArea) error
	Update(ctx context.Context, tenantID int64, subarea *entity.SubArea) (bool, error)
	Delete(ctx context.Context, tenantID, id int64) (bool, error)
}

type DefaultSubAreaService struct {
	Deps
	Repo SubAreaRepository
}

func NewSubAreaService(repo SubAreaRepository, deps Deps) *DefaultSubAreaService {
	return &DefaultSubAreaService{Deps: deps, Repo: repo}
}

func (s *DefaultSubAreaService) List(ctx context.Context, tenantID int64) ([]*contract.SubAreaResponse, apierror.ErrorResponse) {
	rows, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch subareas: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.SubAreaResponse, len(rows))
	for i, row := range rows {
		resp[i] = toSubAreaResponse(row)
	}
	return resp, nil
}

func (s *DefaultSubAreaService) GetByID(ctx context.Context, tenantID, id int64) (*contract.SubAreaResponse, apierror.ErrorResponse) {
	row, err := s.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch subarea: %v", err)
		return nil, apierror.InternalServerError
	}

	if row == nil {
		return nil, apierror.SubAreaNotFoundError
	}
	return toSubAreaResponse(row), nil
}

func (s *DefaultSubAreaService) Create(ctx context.Context, tenantID int64, req *contract.SubAreaRequest) (*contract.SubAreaResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.Area(ctx, tenantID, req.AreaID); apierr != nil {
		return nil, apierr
	}

	subarea := &entity.SubArea{
		AreaID:    req.AreaID,
		Nome:      req.Nome,
		Descricao: utils.EmptyToNil(req.Descricao),
	}
	if err := s.Repo.Save(ctx, tenantID, subarea); err != nil {
		log.Errorf("failed to create subarea: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.GetByID(ctx, tenantID, subarea.ID)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entitySubArea, audit.ActionCreate, resp)
	return resp, nil
}

func (s *DefaultSubAreaService) Update(ctx context.Context, tenantID, id int64, req *contract.SubAreaRequest) (*contract.SubAreaResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.Area(ctx, tenantID, req.AreaID); apierr != nil {
		return nil, apierr
	}

	ok, err := s.Repo.Update(ctx, tenantID, &entity.SubArea{
		ID:        id,
		AreaID:    req.AreaID,
		Nome:      req.Nome,
		Descricao: utils.EmptyToNil(req.Descricao),
	})
	if err != nil {
		log.Errorf("failed to update subarea: %v", err)
		return nil, apierror.InternalServerError
	}

	if !ok {
		return nil, apierror.SubAreaNotFoundError
	}

	resp, apierr := s.GetByID(ctx, tenantID, id)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entitySubArea, audit.ActionUpdate, resp)
	return resp, nil
}

func (s *DefaultSubAreaService) Delete(ctx context.Context, tenantID, id int64) apierror.ErrorResponse {
	ok, err := s.Repo.Delete(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to delete subarea: %v", err)
		return apierror.InternalServerError
	}

	if !ok {
		return apierror.SubAreaNotFoundError
	}
	s.Audit.Log(tenantID, entitySubArea, audit.ActionDelete, map[string]int64{"id": id})
	return nil
}

func toSubAreaResponse(s *entity.SubAreaView) *contract.SubAreaResponse {
	return &contract.SubAreaResponse{
		ID:          s.ID,
		TenantID:    s.TenantID,
		AreaID:      s.AreaID,
		AreaNome:    s.AreaNome,
		UnidadeID:   s.UnidadeID,
		UnidadeNome: s.UnidadeNome,
		EmpresaID:   s.EmpresaID,
		EmpresaNome: s.EmpresaNome,
		Nome:        s.Nome,
		Descricao:   s.Descricao,
	}
}
