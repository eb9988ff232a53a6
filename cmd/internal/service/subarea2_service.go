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

const entitySubArea2 = "subarea2"

type SubArea2Repository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.SubArea2View, error)
	FindByID(ctx context.Context, tenantID, id int64) (*entity.SubArea2View, error)
	Save(ctx context.Context, tenantID int64, subarea *entity.SubArea2) error
	Update(ctx context.Context, tenantID int64, subarea *entity.SubArea2) (bool, error)
	Delete(ctx context.Context, tenantID, id int64) (bool, error)
}

type DefaultSubArea2Service struct {
	Deps
	Repo SubArea2Repository
}

func NewSubArea2Service(repo SubArea2Repository, deps Deps) *DefaultSubArea2Service {
	return &DefaultSubArea2Service{Deps: deps, Repo: repo}
}

func (s *DefaultSubArea2Service) List(ctx context.Context, tenantID int64) ([]*contract.SubArea2Response, apierror.ErrorResponse) {
	rows, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch subareas2: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.SubArea2Response, len(rows))
	for i, row := range rows {
		resp[i] = toSubArea2Response(row)
	}
	return resp, nil
}

func (s *DefaultSubArea2Service) GetByID(ctx context.Context, tenantID, id int64) (*contract.SubArea2Response, apierror.ErrorResponse) {
	row, err := s.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch subarea2: %v", err)
		return nil, apierror.InternalServerError
	}

	if row == nil {
		return nil, apierror.SubArea2NotFoundError
	}
	return toSubArea2Response(row), nil
}

func (s *DefaultSubArea2Service) Create(ctx context.Context, tenantID int64, req *contract.SubArea2Request) (*contract.SubArea2Response, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.SubArea(ctx, tenantID, req.SubAreaID); apierr != nil {
		return nil, apierr
	}

	subarea := &entity.SubArea2{
		SubAreaID: req.SubAreaID,
		Nome:      req.Nome,
		Descricao: utils.EmptyToNil(req.Descricao),
	}
	if err := s.Repo.Save(ctx, tenantID, subarea); err != nil {
		log.Errorf("failed to create subarea2: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.GetByID(ctx, tenantID, subarea.ID)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entitySubArea2, audit.ActionCreate, resp)
	return resp, nil
}

func (s *DefaultSubArea2Service) Update(ctx context.Context, tenantID, id int64, req *contract.SubArea2Request) (*contract.SubArea2Response, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.SubArea(ctx, tenantID, req.SubAreaID); apierr != nil {
		return nil, apierr
	}

	ok, err := s.Repo.Update(ctx, tenantID, &entity.SubArea2{
		ID:        id,
		SubAreaID: req.SubAreaID,
		Nome:      req.Nome,
		Descricao: utils.EmptyToNil(req.Descricao),
	})
	if err != nil {
		log.Errorf("failed to update subarea2: %v", err)
		return nil, apierror.InternalServerError
	}

	if !ok {
		return nil, apierror.SubArea2NotFoundError
	}

	resp, apierr := s.GetByID(ctx, tenantID, id)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entitySubArea2, audit.ActionUpdate, resp)
	return resp, nil
}

func (s *DefaultSubArea2Service) Delete(ctx context.Context, tenantID, id int64) apierror.ErrorResponse {
	ok, err := s.Repo.Delete(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to delete subarea2: %v", err)
		return apierror.InternalServerError
	}

	if !ok {
		return apierror.SubArea2NotFoundError
	}
	s.Audit.Log(tenantID, entitySubArea2, audit.ActionDelete, map[string]int64{"id": id})
	return nil
}

func toSubArea2Response(s *entity.SubArea2View) *contract.SubArea2Response {
	return &contract.SubArea2Response{
		ID:          s.ID,
		TenantID:    s.TenantID,
		SubAreaID:   s.SubAreaID,
		SubAreaNome: s.SubAreaNome,
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
