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

const entityDocumento = "documento_regulatorio"

type DocumentoRepository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.DocumentoRegulatorioView, error)
	FindByID(ctx context.Context, tenantID, id int64) (*entity.DocumentoRegulatorioView, error)
	Save(ctx context.Context, tenantID int64, doc *entity.DocumentoRegulatorio) error
	Update(ctx context.Context, tenantID int64, doc *entity.DocumentoRegulatorio) (bool, error)
	Delete(ctx context.Context, tenantID, id int64) (bool, error)
}

type DefaultDocumentoService struct {
	Deps
	Repo DocumentoRepository
}

func NewDocumentoService(repo DocumentoRepository, deps Deps) *DefaultDocumentoService {
	return &DefaultDocumentoService{Deps: deps, Repo: repo}
}

func (s *DefaultDocumentoService) List(ctx context.Context, tenantID int64) ([]*contract.DocumentoResponse, apierror.ErrorResponse) {
	rows, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch documentos: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.DocumentoResponse, len(rows))
	for i, d := range rows {
		resp[i] = toDocumentoResponse(d)
	}
	return resp, nil
}

func (s *DefaultDocumentoService) GetByID(ctx context.Context, tenantID, id int64) (*contract.DocumentoResponse, apierror.ErrorResponse) {
	doc, err := s.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to fetch documento: %v", err)
		return nil, apierror.InternalServerError
	}

	if doc == nil {
		return nil, apierror.DocumentoNotFoundError
	}
	return toDocumentoResponse(doc), nil
}

func (s *DefaultDocumentoService) Create(ctx context.Context, tenantID int64, req *contract.DocumentoRequest) (*contract.DocumentoResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.Classificacao(ctx, tenantID, req.ClassificacaoID); apierr != nil {
		return nil, apierr
	}

	doc := newDocumento(req)
	doc.CreatedAt = utils.NowUTC()
	if err := s.Repo.Save(ctx, tenantID, doc); err != nil {
		log.Errorf("failed to create documento: %v", err)
		return nil, apierror.InternalServerError
	}

	resp, apierr := s.GetByID(ctx, tenantID, doc.ID)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityDocumento, audit.ActionCreate, resp)
	return resp, nil
}

func (s *DefaultDocumentoService) Update(ctx context.Context, tenantID, id int64, req *contract.DocumentoRequest) (*contract.DocumentoResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if _, apierr := s.Refs.Classificacao(ctx, tenantID, req.ClassificacaoID); apierr != nil {
		return nil, apierr
	}

	doc := newDocumento(req)
	doc.ID = id
	ok, err := s.Repo.Update(ctx, tenantID, doc)
	if err != nil {
		log.Errorf("failed to update documento: %v", err)
		return nil, apierror.InternalServerError
	}

	if !ok {
		return nil, apierror.DocumentoNotFoundError
	}

	resp, apierr := s.GetByID(ctx, tenantID, id)
	if apierr != nil {
		return nil, apierr
	}
	s.Audit.Log(tenantID, entityDocumento, audit.ActionUpdate, resp)
	return resp, nil
}

func (s *DefaultDocumentoService) Delete(ctx context.Context, tenantID, id int64) apierror.ErrorResponse {
	ok, err := s.Repo.Delete(ctx, tenantID, id)
	if err != nil {
		log.Errorf("failed to delete documento: %v", err)
		return apierror.InternalServerError
	}

	if !ok {
		return apierror.DocumentoNotFoundError
	}
	s.Audit.Log(tenantID, entityDocumento, audit.ActionDelete, map[string]int64{"id": id})
	return nil
}

func newDocumento(req *contract.DocumentoRequest) *entity.DocumentoRegulatorio {
	return &entity.DocumentoRegulatorio{
		ClassificacaoID:         req.ClassificacaoID,
		Nome:                    req.Nome,
		Sigla:                   utils.EmptyToNil(req.Sigla),
		Descricao:               req.Descricao,
		BaseLegal:               utils.EmptyToNil(req.BaseLegal),
		OrgaoEmissor:            utils.EmptyToNil(req.OrgaoEmissor),
		Obrigatoriedade:         entity.Obrigatoriedade(req.Obrigatoriedade),
		Periodicidade:           entity.Periodicidade(req.Periodicidade),
		ExigeResponsavelTecnico: boolOr(req.ExigeResponsavelTecnico, false),
		ExigeAssinatura:         boolOr(req.ExigeAssinatura, false),
		ExigeValidade:           boolOr(req.ExigeValidade, true),
		Ativo:                   boolOr(req.Ativo, true),
	}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func toDocumentoResponse(d *entity.DocumentoRegulatorioView) *contract.DocumentoResponse {
	return &contract.DocumentoResponse{
		ID:                      d.ID,
		TenantID:                d.TenantID,
		ClassificacaoID:         d.ClassificacaoID,
		ClassificacaoNome:       d.ClassificacaoNome,
		Nome:                    d.Nome,
		Sigla:                   d.Sigla,
		Descricao:               d.Descricao,
		BaseLegal:               d.BaseLegal,
		OrgaoEmissor:            d.OrgaoEmissor,
		Obrigatoriedade:         string(d.Obrigatoriedade),
		Periodicidade:           string(d.Periodicidade),
		ExigeResponsavelTecnico: d.ExigeResponsavelTecnico,
		ExigeAssinatura:         d.ExigeAssinatura,
		ExigeValidade:           d.ExigeValidade,
		Ativo:                   d.Ativo,
		CreatedAt:               utils.FormatTime(d.CreatedAt),
	}
}
