package service

import (
	"context"
	"github.com/labstack/gommon/log"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
	"strconv"
	"strings"
	"time"
)

const entityNotificacao = "inbox_notificacao"

type InboxRepository interface {
	FindAll(ctx context.Context, tenantID int64, filter *entity.InboxFilter) ([]*entity.InboxNotificacaoView, error)
	FindByID(ctx context.Context, tenantID, id int64) (*entity.InboxNotificacaoView, error)
	UpdateStatus(ctx context.Context, tenantID, id int64, values map[string]any) (bool, error)
}

type DefaultInboxService struct {
	Deps
	Repo InboxRepository
}

func NewInboxService(repo InboxRepository, deps Deps) *DefaultInboxService {
	return &DefaultInboxService{Deps: deps, Repo: repo}
}

func (s *DefaultInboxService) List(ctx context.Context, tenantID int64, query *contract.InboxQuery) ([]*contract.InboxResponse, apierror.ErrorResponse) {
	filter, apierr := s.parseQuery(query)
	if apierr != nil {
		return nil, apierr
	}

	rows, err := s.Repo.FindAll(ctx, tenantID, filter)
	if err != nil {
		log.Errorf("failed to fetch notificacoes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.InboxResponse, len(rows))
	for i, n := range rows {
		resp[i] = toInboxResponse(n)
	}
	return resp, nil
}

// UpdateStatus stamps lido_em when a notification is read and arquivado_em
// when it is archived. Marking it unread clears lido_em.
func (s *DefaultInboxService) UpdateStatus(ctx context.Context, tenantID, id int64, req *contract.InboxStatusRequest) (*contract.InboxResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	status := entity.InboxStatus(req.Status)
	values := map[string]any{"status": status}
	switch status {
	case entity.InboxLida:
		values["lido_em"] = utils.NowUTC()
	case entity.InboxArquivada:
		values["arquivado_em"] = utils.NowUTC()
	case entity.InboxNaoLida:
		values["lido_em"] = nil
	}

	ok, err := s.Repo.UpdateStatus(ctx, tenantID, id, values)
	if err != nil {
		log.Errorf("failed to update notificacao: %v", err)
		return nil, apierror.InternalServerError
	}

	if !ok {
		return nil, apierror.NotificacaoNotFoundError
	}

	n, err := s.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch notificacao: %v", err)
		return nil, apierror.InternalServerError
	}

	if n == nil {
		return nil, apierror.NotificacaoNotFoundError
	}

	resp := toInboxResponse(n)
	s.Audit.Log(tenantID, entityNotificacao, audit.ActionUpdate, resp)
	return resp, nil
}

// parseQuery turns the raw query string into repository predicates. A plain
// date in created_to covers that whole day.
func (s *DefaultInboxService) parseQuery(query *contract.InboxQuery) (*entity.InboxFilter, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, query); apierr != nil {
		return nil, apierr
	}

	filter := &entity.InboxFilter{
		Status:     query.Status,
		Tipo:       query.Tipo,
		Prioridade: query.Prioridade,
		Remetente:  query.Remetente,
		Q:          query.Q,
	}

	if query.UsuarioID != "" {
		id, err := strconv.ParseInt(query.UsuarioID, 10, 64)
		if err != nil {
			return nil, apierror.NewInvalidParamTypeError("usuario_id", "integer")
		}
		filter.UsuarioID = &id
	}

	if query.CreatedFrom != "" {
		from, err := utils.ParseDate(query.CreatedFrom)
		if err != nil {
			return nil, apierror.NewInvalidFieldError("created_from", "Data inválida")
		}
		filter.CreatedFrom = &from
	}

	if query.CreatedTo != "" {
		to, err := utils.ParseDate(query.CreatedTo)
		if err != nil {
			return nil, apierror.NewInvalidFieldError("created_to", "Data inválida")
		}

		if !strings.Contains(query.CreatedTo, "T") {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.CreatedTo = &to
	}
	return filter, nil
}

func toInboxResponse(n *entity.InboxNotificacaoView) *contract.InboxResponse {
	return &contract.InboxResponse{
		ID:                  n.ID,
		TenantID:            n.TenantID,
		UsuarioID:           n.UsuarioID,
		UsuarioNome:         n.UsuarioNome,
		Titulo:              n.Titulo,
		Corpo:               n.Corpo,
		Tipo:                n.Tipo,
		Prioridade:          n.Prioridade,
		Status:              string(n.Status),
		Remetente:           n.Remetente,
		ReferenciaTipo:      n.ReferenciaTipo,
		ReferenciaID:        n.ReferenciaID,
		DataEntregaEmail:    utils.FormatTimePtr(n.DataEntregaEmail),
		DataEntregaSms:      utils.FormatTimePtr(n.DataEntregaSms),
		DataEntregaWhatsapp: utils.FormatTimePtr(n.DataEntregaWhatsapp),
		LidoEm:              utils.FormatTimePtr(n.LidoEm),
		ArquivadoEm:         utils.FormatTimePtr(n.ArquivadoEm),
		CreatedAt:           utils.FormatTime(n.CreatedAt),
		UpdatedAt:           utils.FormatTime(n.UpdatedAt),
	}
}
