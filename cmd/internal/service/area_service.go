package service

import (
	"context"
	"errors"
	"github.com/labstack/gommon/log"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

const entityArea = "area"

type AreaRepository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.AreaView, error)
	FindByID(ctx context.Context, tenantID, id int64) (*entity.AreaView, error)
	Save(ctx context.Context, tenantID int64, area *entity.Area) error
	Update(ctx context.Context, tenantID int64, area *entity.Area) (bool, error)
	Delete(ctx context.Context, tenantID, id int64) (bool, error)
}

type DefaultAreaService struct {
	Deps
	Repo AreaRepository
}

func NewAreaService(repo AreaRepository, deps Deps) *DefaultAreaService {
	return &DefaultAreaService{Deps: deps, Repo: repo}
}

func (s *DefaultAreaService) List(ctx context.Context, tenantID int64) ([]*contract.AreaResponse, apierror.ErrorResponse) {
	areas, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch areas: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AreaResponse, len(areas))
	for i, a := range areas {
		resp[i] = toAreaResponse(a)
	}
	return resp, nil
}

func (s *DefaultAreaService) GetByID(ctx context.Context, tenantID, id int64) (*contract.AreaResponse, apierror.ErrorResponse) {
	area, err := s.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch area: %v", err)
		return nil, apierror.InternalServerError
	}

	if area == nil {
		return nil, apierror.AreaNotFoundError
	}
	return toAreaResponse(area), nil
}

func (s *DefaultAreaService) Create(ctx context.Context, tenantID int64, req *contract.AreaRequest) (*contract.AreaResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	unidade, apierr := s.Refs.Unidade(ctx, tenantID, req.UnidadeID)
	if apierr != nil {
		return nil, apierr
	}

	area := newArea(req, unidade)
	if err := s.Repo.Save(ctx, tenantID, area); err != nil {
		log.Errorf("failed to create area: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.GetByID(ctx, tenantID, area.ID)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityArea, audit.ActionCreate, resp)
	return resp, nil
}

// Update copies the company of the (possibly new) unit onto the area. The
// unit lookup and the write share one transaction.
func (s *DefaultAreaService) Update(ctx context.Context, tenantID, id int64, req *contract.AreaRequest) (*contract.AreaResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	var rejected apierror.ErrorResponse
	err := s.Tx.InTx(ctx, func(ctx context.Context) error {
		unidade, apierr := s.Refs.Unidade(ctx, tenantID, req.UnidadeID)
		if apierr != nil {
			rejected = apierr
			return errRejected
		}

		area := newArea(req, unidade)
		area.ID = id
		ok, err := s.Repo.Update(ctx, tenantID, area)
		if err != nil {
			return err
		}

		if !ok {
			return errRowNotFound
		}
		return nil
	})

	switch {
	case errors.Is(err, errRejected):
		return nil, rejected
	case errors.Is(err, errRowNotFound):
		return nil, apierror.AreaNotFoundError
	case err != nil:
		log.Errorf("failed to update area: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.GetByID(ctx, tenantID, id)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityArea, audit.ActionUpdate, resp)
	return resp, nil
}

func (s *DefaultAreaService) Delete(ctx context.Context, tenantID, id int64) apierror.ErrorResponse {
	ok, err := s.Repo.Delete(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to delete area: %v", err)
		return apierror.InternalServerError
	}

	if !ok {
		return apierror.AreaNotFoundError
	}
	s.Audit.Log(tenantID, entityArea, audit.ActionDelete, map[string]int64{"id": id})
	return nil
}

func newArea(req *contract.AreaRequest, unidade *entity.UnidadeRef) *entity.Area {
	return &entity.Area{
		EmpresaID: unidade.EmpresaID,
		UnidadeID: unidade.ID,
		Nome:      req.Nome,
		Descricao: utils.EmptyToNil(req.Descricao),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
}

func toAreaResponse(a *entity.AreaView) *contract.AreaResponse {
	return &contract.AreaResponse{
		ID:          a.ID,
		TenantID:    a.TenantID,
		EmpresaID:   a.EmpresaID,
		EmpresaNome: a.EmpresaNome,
		UnidadeID:   a.UnidadeID,
		UnidadeNome: a.UnidadeNome,
		Nome:        a.Nome,
		Descricao:   a.Descricao,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
	}
}
