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

const (
	entityRequisito = "requisito"
	entityCheckin   = "requisito_checkin"
)

type RequisitoRepository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.RequisitoView, error)
	FindByID(ctx context.Context, tenantID, id int64) (*entity.RequisitoView, error)
	Save(ctx context.Context, tenantID int64, requisito *entity.Requisito) error
	Update(ctx context.Context, tenantID int64, requisito *entity.Requisito) (bool, error)
	UpdateStatus(ctx context.Context, tenantID, id int64, status entity.StatusRequisito) (bool, error)
	Delete(ctx context.Context, tenantID, id int64) (bool, error)

	ReplaceTags(ctx context.Context, tenantID, requisitoID int64, tags []string) error
	ReplaceOutrasAreas(ctx context.Context, tenantID, requisitoID int64, areaIDs []int64) error
	FindTags(ctx context.Context, tenantID int64, requisitoIDs []int64) ([]*entity.RequisitoTagRow, error)
	FindOutrasAreas(ctx context.Context, tenantID int64, requisitoIDs []int64) ([]*entity.RequisitoOutraAreaRow, error)

	SaveCheckin(ctx context.Context, tenantID int64, checkin *entity.RequisitoCheckin) error
	FindCheckins(ctx context.Context, tenantID, requisitoID int64) ([]*entity.RequisitoCheckin, error)

	CountByStatus(ctx context.Context, tenantID int64) ([]*entity.CountRow, error)
	CountByArea(ctx context.Context, tenantID int64) ([]*entity.AreaCountRow, error)
	CountByClassificacao(ctx context.Context, tenantID int64) ([]*entity.ClassificacaoCountRow, error)
}

// DefaultRequisitoService owns the requirement lifecycle. A check-in is the
// event that moves a requirement's status, and any status may follow any
// other.
type DefaultRequisitoService struct {
	Deps
	Repo RequisitoRepository
}

func NewRequisitoService(repo RequisitoRepository, deps Deps) *DefaultRequisitoService {
	return &DefaultRequisitoService{Deps: deps, Repo: repo}
}

func (s *DefaultRequisitoService) List(ctx context.Context, tenantID int64) ([]*contract.RequisitoResponse, apierror.ErrorResponse) {
	rows, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch requisitos: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, err := s.enrich(ctx, tenantID, rows)
	if err != nil {
		log.Errorf("failed to fetch requisito associations: %v", err)
		return nil, apierror.InternalServerError
	}
	return resp, nil
}

// GetByID returns the requirement with its check-in history embedded.
func (s *DefaultRequisitoService) GetByID(ctx context.Context, tenantID, id int64) (*contract.RequisitoResponse, apierror.ErrorResponse) {
	resp, apierr := s.find(ctx, tenantID, id)
	if apierr != nil {
		return nil, apierr
	}

	checkins, err := s.Repo.FindCheckins(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch checkins: %v", err)
		return nil, apierror.InternalServerError
	}

	resp.Checkins = toCheckinResponses(checkins)
	return resp, nil
}

func (s *DefaultRequisitoService) Create(ctx context.Context, tenantID int64, req *contract.RequisitoRequest) (*contract.RequisitoResponse, apierror.ErrorResponse) {
	if apierr := s.validate(ctx, tenantID, req); apierr != nil {
		return nil, apierr
	}

	requisito := newRequisito(req)
	err := s.Tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.Repo.Save(ctx, tenantID, requisito); err != nil {
			return err
		}
		return s.replaceAssociations(ctx, tenantID, requisito.ID, req)
	})
	if err != nil {
		log.Errorf("failed to create requisito: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.find(ctx, tenantID, requisito.ID)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityRequisito, audit.ActionCreate, resp)
	return resp, nil
}

// Update replaces every mutable column and swaps the tag and secondary area
// sets wholesale. Omitted lists clear them.
func (s *DefaultRequisitoService) Update(ctx context.Context, tenantID, id int64, req *contract.RequisitoRequest) (*contract.RequisitoResponse, apierror.ErrorResponse) {
	if apierr := s.validate(ctx, tenantID, req); apierr != nil {
		return nil, apierr
	}

	requisito := newRequisito(req)
	requisito.ID = id
	err := s.Tx.InTx(ctx, func(ctx context.Context) error {
		ok, err := s.Repo.Update(ctx, tenantID, requisito)
		if err != nil {
			return err
		}

		if !ok {
			return errRowNotFound
		}
		return s.replaceAssociations(ctx, tenantID, id, req)
	})

	if errors.Is(err, errRowNotFound) {
		return nil, apierror.RequisitoNotFoundError
	}

	if err != nil {
		log.Errorf("failed to update requisito: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.find(ctx, tenantID, id)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityRequisito, audit.ActionUpdate, resp)
	return resp, nil
}

// Delete removes check-ins, tags, secondary areas and tasks before the row.
func (s *DefaultRequisitoService) Delete(ctx context.Context, tenantID, id int64) apierror.ErrorResponse {
	err := s.Tx.InTx(ctx, func(ctx context.Context) error {
		ok, err := s.Repo.Delete(ctx, tenantID, id)
		if err != nil {
			return err
		}

		if !ok {
			return errRowNotFound
		}
		return nil
	})

	if errors.Is(err, errRowNotFound) {
		return apierror.RequisitoNotFoundError
	}

	if err != nil {
		log.Errorf("failed to delete requisito: %v", err)
		return apierror.InternalServerError
	}

	s.Audit.Log(tenantID, entityRequisito, audit.ActionDelete, map[string]int64{"id": id})
	return nil
}

// CreateCheckin records the event and overwrites the requirement status with
// the status of the check-in, both in one transaction.
func (s *DefaultRequisitoService) CreateCheckin(ctx context.Context, tenantID, requisitoID int64, req *contract.CheckinRequest) (*contract.CheckinResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	data, err := utils.ParseDate(req.Data)
	if err != nil {
		return nil, apierror.NewInvalidFieldError("data", "Data inválida")
	}

	if _, apierr := s.Refs.Requisito(ctx, tenantID, requisitoID); apierr != nil {
		return nil, apierr
	}

	checkin := &entity.RequisitoCheckin{
		RequisitoID: requisitoID,
		Descricao:   req.Descricao,
		Data:        data,
		Responsavel: req.Responsavel,
		Anexo:       utils.EmptyToNil(req.Anexo),
		Status:      entity.StatusRequisito(req.Status),
	}
	err = s.Tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.Repo.SaveCheckin(ctx, tenantID, checkin); err != nil {
			return err
		}

		ok, err := s.Repo.UpdateStatus(ctx, tenantID, requisitoID, checkin.Status)
		if err != nil {
			return err
		}

		if !ok {
			return errRowNotFound
		}
		return nil
	})

	if errors.Is(err, errRowNotFound) {
		return nil, apierror.RequisitoNotFoundError
	}

	if err != nil {
		log.Errorf("failed to create checkin: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toCheckinResponse(checkin)
	s.Audit.Log(tenantID, entityCheckin, audit.ActionCreate, resp)
	return resp, nil
}

func (s *DefaultRequisitoService) ListCheckins(ctx context.Context, tenantID, requisitoID int64) ([]*contract.CheckinResponse, apierror.ErrorResponse) {
	if _, apierr := s.Refs.Requisito(ctx, tenantID, requisitoID); apierr != nil {
		return nil, apierr
	}

	checkins, err := s.Repo.FindCheckins(ctx, tenantID, requisitoID)
	if err != nil {
		log.Errorf("failed to fetch checkins: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCheckinResponses(checkins), nil
}

// Dashboard counts the tenant's requirements by status, responsible area and
// classification. Every status is present in the result, even at zero.
func (s *DefaultRequisitoService) Dashboard(ctx context.Context, tenantID int64) (*contract.DashboardResponse, apierror.ErrorResponse) {
	byStatus, err := s.Repo.CountByStatus(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to count requisitos by status: %v", err)
		return nil, apierror.InternalServerError
	}

	byArea, err := s.Repo.CountByArea(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to count requisitos by area: %v", err)
		return nil, apierror.InternalServerError
	}

	byClassificacao, err := s.Repo.CountByClassificacao(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to count requisitos by classificacao: %v", err)
		return nil, apierror.InternalServerError
	}

	counts := make(map[string]int64, len(byStatus))
	resp := &contract.DashboardResponse{
		PorStatus:        make([]*contract.StatusCountResponse, 0, len(entity.StatusesRequisito)),
		PorArea:          make([]*contract.AreaCountResponse, len(byArea)),
		PorClassificacao: make([]*contract.ClassificacaoCountResponse, len(byClassificacao)),
	}
	for _, row := range byStatus {
		counts[row.Chave] = row.Total
		resp.Total += row.Total
	}

	for _, status := range entity.StatusesRequisito {
		resp.PorStatus = append(resp.PorStatus, &contract.StatusCountResponse{
			Status: string(status),
			Total:  counts[string(status)],
		})
	}

	for i, row := range byArea {
		resp.PorArea[i] = &contract.AreaCountResponse{
			AreaID:   row.AreaID,
			AreaNome: row.AreaNome,
			Total:    row.Total,
		}
	}

	for i, row := range byClassificacao {
		resp.PorClassificacao[i] = &contract.ClassificacaoCountResponse{
			ClassificacaoID:   row.ClassificacaoID,
			ClassificacaoNome: row.ClassificacaoNome,
			Total:             row.Total,
		}
	}
	return resp, nil
}

// validate checks the request shape, then every reference in a fixed order:
// responsible area, classification, responsible user, base template and the
// secondary areas. The first failure wins.
func (s *DefaultRequisitoService) validate(ctx context.Context, tenantID int64, req *contract.RequisitoRequest) apierror.ErrorResponse {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return apierr
	}

	if _, apierr := s.Refs.AreaResponsavel(ctx, tenantID, req.AreaResponsavelID); apierr != nil {
		return apierr
	}

	if _, apierr := s.Refs.Classificacao(ctx, tenantID, req.ClassificacaoID); apierr != nil {
		return apierr
	}

	if req.UsuarioResponsavelID != nil {
		_, apierr := s.Refs.Usuario(ctx, tenantID, *req.UsuarioResponsavelID, apierror.InvalidUsuarioResponsavelErr)
		if apierr != nil {
			return apierr
		}
	}

	if apierr := s.Refs.RequisitoBase(ctx, req.RequisitoBaseID); apierr != nil {
		return apierr
	}

	for _, areaID := range req.OutrasAreasIDs {
		if _, apierr := s.Refs.Area(ctx, tenantID, areaID); apierr != nil {
			return apierr
		}
	}
	return nil
}

func (s *DefaultRequisitoService) replaceAssociations(ctx context.Context, tenantID, requisitoID int64, req *contract.RequisitoRequest) error {
	if err := s.Repo.ReplaceTags(ctx, tenantID, requisitoID, req.Tags); err != nil {
		return err
	}
	return s.Repo.ReplaceOutrasAreas(ctx, tenantID, requisitoID, req.OutrasAreasIDs)
}

func (s *DefaultRequisitoService) find(ctx context.Context, tenantID, id int64) (*contract.RequisitoResponse, apierror.ErrorResponse) {
	row, err := s.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch requisito: %v", err)
		return nil, apierror.InternalServerError
	}

	if row == nil {
		return nil, apierror.RequisitoNotFoundError
	}

	resp, err := s.enrich(ctx, tenantID, []*entity.RequisitoView{row})
	if err != nil {
		log.Errorf("failed to fetch requisito associations: %v", err)
		return nil, apierror.InternalServerError
	}
	return resp[0], nil
}

// enrich attaches tags and secondary areas with one batched query each,
// keyed by the ids of rows.
func (s *DefaultRequisitoService) enrich(ctx context.Context, tenantID int64, rows []*entity.RequisitoView) ([]*contract.RequisitoResponse, error) {
	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	tags, err := s.Repo.FindTags(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	outras, err := s.Repo.FindOutrasAreas(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}

	resp := make([]*contract.RequisitoResponse, len(rows))
	byID := make(map[int64]*contract.RequisitoResponse, len(rows))
	for i, row := range rows {
		resp[i] = toRequisitoResponse(row)
		byID[row.ID] = resp[i]
	}

	for _, t := range tags {
		if r, ok := byID[t.RequisitoID]; ok {
			r.Tags = append(r.Tags, t.Tag)
		}
	}

	for _, o := range outras {
		if r, ok := byID[o.RequisitoID]; ok {
			r.OutrasAreasIDs = append(r.OutrasAreasIDs, o.AreaID)
			r.OutrasAreasNomes = append(r.OutrasAreasNomes, o.AreaNome)
		}
	}
	return resp, nil
}

func newRequisito(req *contract.RequisitoRequest) *entity.Requisito {
	requisito := &entity.Requisito{
		RequisitoBaseID:      req.RequisitoBaseID,
		Titulo:               req.Titulo,
		Descricao:            req.Descricao,
		Tipo:                 req.Tipo,
		Status:               entity.StatusRequisito(req.Status),
		Origem:               req.Origem,
		Modo:                 entity.ModoRascunho,
		Criticidade:          entity.DefaultCriticidade,
		Prioridade:           entity.DefaultPrioridade,
		ClassificacaoID:      req.ClassificacaoID,
		AreaResponsavelID:    req.AreaResponsavelID,
		UsuarioResponsavelID: req.UsuarioResponsavelID,
	}

	if req.Modo != "" {
		requisito.Modo = entity.ModoRequisito(req.Modo)
	}
	if req.Criticidade != nil {
		requisito.Criticidade = *req.Criticidade
	}
	if req.Prioridade != nil {
		requisito.Prioridade = *req.Prioridade
	}
	return requisito
}

func toRequisitoResponse(r *entity.RequisitoView) *contract.RequisitoResponse {
	return &contract.RequisitoResponse{
		ID:                     r.ID,
		TenantID:               r.TenantID,
		RequisitoBaseID:        r.RequisitoBaseID,
		Titulo:                 r.Titulo,
		Descricao:              r.Descricao,
		Tipo:                   r.Tipo,
		Status:                 string(r.Status),
		Origem:                 r.Origem,
		Modo:                   string(r.Modo),
		Criticidade:            r.Criticidade,
		Prioridade:             r.Prioridade,
		ClassificacaoID:        r.ClassificacaoID,
		ClassificacaoNome:      r.ClassificacaoNome,
		AreaResponsavelID:      r.AreaResponsavelID,
		AreaResponsavelNome:    r.AreaResponsavelNome,
		UsuarioResponsavelID:   r.UsuarioResponsavelID,
		UsuarioResponsavelNome: r.UsuarioResponsavelNome,
		OutrasAreasIDs:         []int64{},
		OutrasAreasNomes:       []string{},
		Tags:                   []string{},
		CreatedAt:              utils.FormatTime(r.CreatedAt),
		UpdatedAt:              utils.FormatTime(r.UpdatedAt),
	}
}

func toCheckinResponse(c *entity.RequisitoCheckin) *contract.CheckinResponse {
	return &contract.CheckinResponse{
		ID:          c.ID,
		RequisitoID: c.RequisitoID,
		Descricao:   c.Descricao,
		Data:        utils.FormatTime(c.Data),
		Responsavel: c.Responsavel,
		Anexo:       c.Anexo,
		Status:      string(c.Status),
	}
}

func toCheckinResponses(checkins []*entity.RequisitoCheckin) []*contract.CheckinResponse {
	resp := make([]*contract.CheckinResponse, len(checkins))
	for i, c := range checkins {
		resp[i] = toCheckinResponse(c)
	}
	return resp
}
