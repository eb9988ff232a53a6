package service

import (
	"context"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/database"
	"rlk/cmd/internal/domain/database/repository"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils/apierror"
	"rlk/cmd/internal/utils/validators"
)

const (
	tenantA int64 = 7
	tenantB int64 = 9

	validCNPJ = "11.222.333/0001-81"
)

// serviceSuite wires every service over a fresh in-memory database per test.
type serviceSuite struct {
	suite.Suite
	ctx  context.Context
	db   *gorm.DB
	deps Deps

	areaRepo *repository.DefaultAreaRepository

	empresas       *DefaultEmpresaService
	unidades       *DefaultUnidadeService
	areas          *DefaultAreaService
	subareas       *DefaultSubAreaService
	subareas2      *DefaultSubArea2Service
	classificacoes *DefaultClassificacaoService
	documentos     *DefaultDocumentoService
	usuarios       *DefaultUsuarioService
	requisitos     *DefaultRequisitoService
	tarefas        *DefaultTarefaService
	inbox          *DefaultInboxService
	inboxRepo      *repository.DefaultInboxRepository
}

func (s *serviceSuite) SetupTest() {
	db, err := database.OpenInMemory()
	s.Require().NoError(err)

	validate := validator.New()
	validators.Register(validate)

	exec := tenantdb.New(db)
	s.ctx = context.Background()
	s.db = db
	s.deps = Deps{
		Tx:       exec,
		Refs:     NewReferenceValidator(repository.NewReferenceRepository(exec, db)),
		Audit:    audit.Nop{},
		Validate: validate,
	}

	s.areaRepo = repository.NewAreaRepository(exec)
	s.inboxRepo = repository.NewInboxRepository(exec)

	s.empresas = NewEmpresaService(repository.NewEmpresaRepository(exec), s.deps)
	s.unidades = NewUnidadeService(repository.NewUnidadeRepository(exec), s.deps)
	s.areas = NewAreaService(s.areaRepo, s.deps)
	s.subareas = NewSubAreaService(repository.NewSubAreaRepository(exec), s.deps)
	s.subareas2 = NewSubArea2Service(repository.NewSubArea2Repository(exec), s.deps)
	s.classificacoes = NewClassificacaoService(repository.NewClassificacaoRepository(exec), s.deps)
	s.documentos = NewDocumentoService(repository.NewDocumentoRepository(exec), s.deps)
	s.usuarios = NewUsuarioService(repository.NewUsuarioRepository(exec, db), s.deps)
	s.requisitos = NewRequisitoService(repository.NewRequisitoRepository(exec), s.deps)
	s.tarefas = NewTarefaService(repository.NewTarefaRepository(exec), s.deps)
	s.inbox = NewInboxService(s.inboxRepo, s.deps)
}

func (s *serviceSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// tree is one branch of a tenant's hierarchy plus a classification.
type tree struct {
	empresa       *contract.EmpresaResponse
	unidade       *contract.UnidadeResponse
	area          *contract.AreaResponse
	classificacao *contract.ClassificacaoResponse
}

func (s *serviceSuite) seedEmpresa(tenantID int64, nome string) *contract.EmpresaResponse {
	resp, apierr := s.empresas.Create(s.ctx, tenantID, &contract.EmpresaRequest{
		Nome:           nome,
		CNPJ:           validCNPJ,
		MatrizOuFilial: "MATRIZ",
		RazaoSocial:    nome + " LTDA",
	})
	s.Require().Nil(apierr)
	return resp
}

func (s *serviceSuite) seedUnidade(tenantID, empresaID int64, nome string) *contract.UnidadeResponse {
	resp, apierr := s.unidades.Create(s.ctx, tenantID, &contract.UnidadeRequest{
		EmpresaID: empresaID,
		Nome:      nome,
	})
	s.Require().Nil(apierr)
	return resp
}

func (s *serviceSuite) seedArea(tenantID, unidadeID int64, nome string) *contract.AreaResponse {
	resp, apierr := s.areas.Create(s.ctx, tenantID, &contract.AreaRequest{
		UnidadeID: unidadeID,
		Nome:      nome,
	})
	s.Require().Nil(apierr)
	return resp
}

func (s *serviceSuite) seedClassificacao(tenantID int64, nome string) *contract.ClassificacaoResponse {
	resp, apierr := s.classificacoes.Create(s.ctx, tenantID, &contract.ClassificacaoRequest{Nome: nome})
	s.Require().Nil(apierr)
	return resp
}

func (s *serviceSuite) seedUsuario(tenantID int64, email string) *contract.UsuarioResponse {
	resp, apierr := s.usuarios.Create(s.ctx, tenantID, &contract.UsuarioRequest{
		Nome:  "Usuário " + email,
		Email: email,
		Senha: "segredo123",
	})
	s.Require().Nil(apierr)
	return resp
}

// seedBase inserts a shared requirement template.
func (s *serviceSuite) seedBase(titulo string) int64 {
	base := &entity.RequisitoBase{Titulo: titulo}
	s.Require().NoError(s.db.Create(base).Error)
	return base.ID
}

func (s *serviceSuite) seedTree(tenantID int64) *tree {
	empresa := s.seedEmpresa(tenantID, "Empresa")
	unidade := s.seedUnidade(tenantID, empresa.ID, "Unidade")
	return &tree{
		empresa:       empresa,
		unidade:       unidade,
		area:          s.seedArea(tenantID, unidade.ID, "Área"),
		classificacao: s.seedClassificacao(tenantID, "Ambiental"),
	}
}

func (s *serviceSuite) requisitoRequest(t *tree, baseID int64) *contract.RequisitoRequest {
	return &contract.RequisitoRequest{
		Titulo:            "Licença de operação",
		Descricao:         "Renovar a licença junto ao órgão ambiental",
		Tipo:              "LEGAL",
		Status:            "SEM_ANALISE",
		Origem:            "ESTADUAL",
		RequisitoBaseID:   baseID,
		ClassificacaoID:   t.classificacao.ID,
		AreaResponsavelID: t.area.ID,
	}
}

func (s *serviceSuite) count(model any) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}

// requireFieldError asserts a 400 listing a problem for field.
func (s *serviceSuite) requireFieldError(apierr apierror.ErrorResponse, field string) {
	s.Require().NotNil(apierr)
	structured, ok := apierr.(*apierror.StructuredError)
	s.Require().True(ok, "expected a structured error, got %T", apierr)
	s.Equal(400, structured.Code())
	s.Contains(structured.Details, field)
}

func ptr[T any](v T) *T {
	return &v
}
