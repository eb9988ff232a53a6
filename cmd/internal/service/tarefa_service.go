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

const entityTarefa = "requisito_tarefa"

type TarefaRepository interface {
	FindAll(ctx context.Context, tenantID, requisitoID int64) ([]*entity.RequisitoTarefaView, error)
	FindByID(ctx context.Context, tenantID, requisitoID, id int64) (*entity.RequisitoTarefaView, error)
	Save(ctx context.Context, tenantID int64, tarefa *entity.RequisitoTarefa) error
	UpdateStatus(ctx context.Context, tenantID, id int64, status entity.StatusTarefa) (bool, error)
}

type DefaultTarefaService struct {
	Deps
	Repo TarefaRepository
}

func NewTarefaService(repo TarefaRepository, deps Deps) *DefaultTarefaService {
	return &DefaultTarefaService{Deps: deps, Repo: repo}
}

func (s *DefaultTarefaService) List(ctx context.Context, tenantID, requisitoID int64) ([]*contract.TarefaResponse, apierror.ErrorResponse) {
	if _, apierr := s.Refs.Requisito(ctx, tenantID, requisitoID); apierr != nil {
		return nil, apierr
	}

	tarefas, err := s.Repo.FindAll(ctx, tenantID, requisitoID)
	if err != nil {
		log.Errorf("failed to fetch tarefas: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TarefaResponse, len(tarefas))
	for i, t := range tarefas {
		resp[i] = toTarefaResponse(t)
	}
	return resp, nil
}

func (s *DefaultTarefaService) Create(ctx context.Context, tenantID, requisitoID int64, req *contract.TarefaRequest) (*contract.TarefaResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.Requisito(ctx, tenantID, requisitoID); apierr != nil {
		return nil, apierr
	}

	if req.ResponsavelID != nil {
		_, apierr := s.Refs.Usuario(ctx, tenantID, *req.ResponsavelID, apierror.InvalidUsuarioError)
		if apierr != nil {
			return nil, apierr
		}
	}

	tarefa := &entity.RequisitoTarefa{
		RequisitoID:   requisitoID,
		Titulo:        req.Titulo,
		ResponsavelID: req.ResponsavelID,
		Status:        entity.TarefaAberta,
		CreatedAt:     utils.NowUTC(),
	}
	if req.Status != "" {
		tarefa.Status = entity.StatusTarefa(req.Status)
	}

	if err := s.Repo.Save(ctx, tenantID, tarefa); err != nil {
		log.Errorf("failed to create tarefa: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.find(ctx, tenantID, requisitoID, tarefa.ID)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityTarefa, audit.ActionCreate, resp)
	return resp, nil
}

// UpdateStatus sets the task status. ABERTO and FECHADO may follow each other
// freely.
func (s *DefaultTarefaService) UpdateStatus(ctx context.Context, tenantID, requisitoID, id int64, req *contract.TarefaStatusRequest) (*contract.TarefaResponse, apierror.ErrorResponse) {
	if _, apierr := s.Refs.Requisito(ctx, tenantID, requisitoID); apierr != nil {
		return nil, apierr
	}

	status := entity.StatusTarefa(req.Status)
	if status != entity.TarefaAberta && status != entity.TarefaFechada {
		return nil, apierror.InvalidTarefaStatusError
	}

	if _, apierr := s.find(ctx, tenantID, requisitoID, id); apierr != nil {
		return nil, apierr
	}

	ok, err := s.Repo.UpdateStatus(ctx, tenantID, id, status)
	if err != nil {
		log.Errorf("failed to update tarefa: %v", err)
		return nil, apierror.InternalServerError
	}

	if !ok {
		return nil, apierror.TarefaNotFoundError
	}

	resp, apierr := s.find(ctx, tenantID, requisitoID, id)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityTarefa, audit.ActionUpdate, resp)
	return resp, nil
}

func (s *DefaultTarefaService) find(ctx context.Context, tenantID, requisitoID, id int64) (*contract.TarefaResponse, apierror.ErrorResponse) {
	tarefa, err := s.Repo.FindByID(ctx, tenantID, requisitoID, id)
	if err != nil {
		log.Errorf("failed to fetch tarefa: %v", err)
		return nil, apierror.InternalServerError
	}

	if tarefa == nil {
		return nil, apierror.TarefaNotFoundError
	}
	return toTarefaResponse(tarefa), nil
}

func toTarefaResponse(t *entity.RequisitoTarefaView) *contract.TarefaResponse {
	return &contract.TarefaResponse{
		ID:              t.ID,
		RequisitoID:     t.RequisitoID,
		Titulo:          t.Titulo,
		ResponsavelID:   t.ResponsavelID,
		ResponsavelNome: t.ResponsavelNome,
		Status:          string(t.Status),
		CreatedAt:       utils.FormatTime(t.CreatedAt),
	}
}
