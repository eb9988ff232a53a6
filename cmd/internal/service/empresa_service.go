package service

import (
	"context"
	"github.com/labstack/gommon/log"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils/apierror"
)

const entityEmpresa = "empresa"

type EmpresaRepository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.Empresa, error)
	FindByID(ctx context.Context, tenantID, id int64) (*entity.Empresa, error)
	Save(ctx context.Context, tenantID int64, empresa *entity.Empresa) error
	Update(ctx context.Context, tenantID int64, empresa *entity.Empresa) (bool, error)
	Delete(ctx context.Context, tenantID, id int64) (bool, error)
}

type DefaultEmpresaService struct {
	Deps
	Repo EmpresaRepository
}

func NewEmpresaService(repo EmpresaRepository, deps Deps) *DefaultEmpresaService {
	return &DefaultEmpresaService{Deps: deps, Repo: repo}
}

func (s *DefaultEmpresaService) List(ctx context.Context, tenantID int64) ([]*contract.EmpresaResponse, apierror.ErrorResponse) {
	empresas, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch empresas: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.EmpresaResponse, len(empresas))
	for i, e := range empresas {
		resp[i] = toEmpresaResponse(e)
	}
	return resp, nil
}

func (s *DefaultEmpresaService) GetByID(ctx context.Context, tenantID, id int64) (*contract.EmpresaResponse, apierror.ErrorResponse) {
	empresa, err := s.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch empresa: %v", err)
		return nil, apierror.InternalServerError
	}

	if empresa == nil {
		return nil, apierror.EmpresaNotFoundError
	}
	return toEmpresaResponse(empresa), nil
}

func (s *DefaultEmpresaService) Create(ctx context.Context, tenantID int64, req *contract.EmpresaRequest) (*contract.EmpresaResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	empresa := &entity.Empresa{
		Nome:           req.Nome,
		CNPJ:           req.CNPJ,
		MatrizOuFilial: entity.MatrizOuFilial(req.MatrizOuFilial),
		RazaoSocial:    req.RazaoSocial,
	}
	if err := s.Repo.Save(ctx, tenantID, empresa); err != nil {
		log.Errorf("failed to create empresa: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toEmpresaResponse(empresa)
	s.Audit.Log(tenantID, entityEmpresa, audit.ActionCreate, resp)
	return resp, nil
}

func (s *DefaultEmpresaService) Update(ctx context.Context, tenantID, id int64, req *contract.EmpresaRequest) (*contract.EmpresaResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	empresa := &entity.Empresa{
		ID:             id,
		Nome:           req.Nome,
		CNPJ:           req.CNPJ,
		MatrizOuFilial: entity.MatrizOuFilial(req.MatrizOuFilial),
		RazaoSocial:    req.RazaoSocial,
	}
	ok, err := s.Repo.Update(ctx, tenantID, empresa)
	if err != nil {
		log.Errorf("failed to update empresa: %v", err)
		return nil, apierror.InternalServerError
	}

	if !ok {
		return nil, apierror.EmpresaNotFoundError
	}

	resp, apierr := s.GetByID(ctx, tenantID, id)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityEmpresa, audit.ActionUpdate, resp)
	return resp, nil
}

func (s *DefaultEmpresaService) Delete(ctx context.Context, tenantID, id int64) apierror.ErrorResponse {
	ok, err := s.Repo.Delete(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to delete empresa: %v", err)
		return apierror.InternalServerError
	}

	if !ok {
		return apierror.EmpresaNotFoundError
	}
	s.Audit.Log(tenantID, entityEmpresa, audit.ActionDelete, map[string]int64{"id": id})
	return nil
}

func toEmpresaResponse(e *entity.Empresa) *contract.EmpresaResponse {
	return &contract.EmpresaResponse{
		ID:             e.ID,
		TenantID:       e.TenantID,
		Nome:           e.Nome,
		CNPJ:           e.CNPJ,
		MatrizOuFilial: string(e.MatrizOuFilial),
		RazaoSocial:    e.RazaoSocial,
	}
}
