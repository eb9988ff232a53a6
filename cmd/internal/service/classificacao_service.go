package service

import (
	"context"
	"github.com/labstack/gommon/log"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils/apierror"
)

type ClassificacaoRepository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.Classificacao, error)
	Save(ctx context.Context, tenantID int64, classificacao *entity.Classificacao) error
}

type DefaultClassificacaoService struct {
	Deps
	Repo ClassificacaoRepository
}

func NewClassificacaoService(repo ClassificacaoRepository, deps Deps) *DefaultClassificacaoService {
	return &DefaultClassificacaoService{Deps: deps, Repo: repo}
}

func (s *DefaultClassificacaoService) List(ctx context.Context, tenantID int64) ([]*contract.ClassificacaoResponse, apierror.ErrorResponse) {
	rows, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch classificacoes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ClassificacaoResponse, len(rows))
	for i, c := range rows {
		resp[i] = toClassificacaoResponse(c)
	}
	return resp, nil
}

func (s *DefaultClassificacaoService) Create(ctx context.Context, tenantID int64, req *contract.ClassificacaoRequest) (*contract.ClassificacaoResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	classificacao := &entity.Classificacao{Nome: req.Nome}
	if err := s.Repo.Save(ctx, tenantID, classificacao); err != nil {
		log.Errorf("failed to create classificacao: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toClassificacaoResponse(classificacao)
	s.Audit.Log(tenantID, "classificacao", audit.ActionCreate, resp)
	return resp, nil
}

func toClassificacaoResponse(c *entity.Classificacao) *contract.ClassificacaoResponse {
	return &contract.ClassificacaoResponse{ID: c.ID, TenantID: c.TenantID, Nome: c.Nome}
}
