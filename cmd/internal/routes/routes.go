// Package routes composes repositories, services and handlers into the HTTP
// surface of the API.
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
	"net/http"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/database/repository"
	"rlk/cmd/internal/domain/tenantdb"
	"rlk/cmd/internal/http/handler"
	authmw "rlk/cmd/internal/http/middleware"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/infrastructure/aws/storage"
	"rlk/cmd/internal/service"
)

const defaultBodyLimit = "12M"

type Config struct {
	Auth        service.AuthConfig
	CORSOrigins []string
	// BodyLimit uses the echo size notation. Empty means 12M, enough for a
	// 10MB attachment and its multipart envelope.
	BodyLimit string
}

// Dependencies are the infrastructure clients everything is built on.
type Dependencies struct {
	DB       *gorm.DB
	S3       storage.S3Client
	Audit    audit.Logger
	Validate *validator.Validate
}

// Register installs the middleware stack, the error handler and every route
// on e.
func Register(e *echo.Echo, cfg *Config, deps *Dependencies) {
	exec := tenantdb.New(deps.DB)
	svcDeps := service.Deps{
		Tx:       exec,
		Refs:     service.NewReferenceValidator(repository.NewReferenceRepository(exec, deps.DB)),
		Audit:    deps.Audit,
		Validate: deps.Validate,
	}
	usuarioRepo := repository.NewUsuarioRepository(exec, deps.DB)

	// Services
	authService := service.NewAuthService(usuarioRepo, cfg.Auth, deps.Audit, deps.Validate)
	empresaService := service.NewEmpresaService(repository.NewEmpresaRepository(exec), svcDeps)
	unidadeService := service.NewUnidadeService(repository.NewUnidadeRepository(exec), svcDeps)
	areaService := service.NewAreaService(repository.NewAreaRepository(exec), svcDeps)
	subAreaService := service.NewSubAreaService(repository.NewSubAreaRepository(exec), svcDeps)
	subArea2Service := service.NewSubArea2Service(repository.NewSubArea2Repository(exec), svcDeps)
	classificacaoService := service.NewClassificacaoService(repository.NewClassificacaoRepository(exec), svcDeps)
	documentoService := service.NewDocumentoService(repository.NewDocumentoRepository(exec), svcDeps)
	usuarioService := service.NewUsuarioService(usuarioRepo, svcDeps)
	requisitoService := service.NewRequisitoService(repository.NewRequisitoRepository(exec), svcDeps)
	tarefaService := service.NewTarefaService(repository.NewTarefaRepository(exec), svcDeps)
	inboxService := service.NewInboxService(repository.NewInboxRepository(exec), svcDeps)
	uploadService := service.NewUploadService(deps.S3, deps.Audit)

	bodyLimit := cfg.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: origins}))
	e.Use(middleware.BodyLimit(bodyLimit))

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	api := e.Group("/api/v1")
	handler.NewAuthDefault(authService).Mount(api.Group("/auth"))

	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{Secret: cfg.Auth.Secret})
	secured := func(prefix string) *echo.Group {
		return api.Group(prefix, auth)
	}

	handler.NewCrudDefault[contract.EmpresaRequest, contract.EmpresaResponse](empresaService).Mount(secured("/empresas"))
	handler.NewCrudDefault[contract.UnidadeRequest, contract.UnidadeResponse](unidadeService).Mount(secured("/unidades"))
	handler.NewCrudDefault[contract.AreaRequest, contract.AreaResponse](areaService).Mount(secured("/areas"))
	handler.NewCrudDefault[contract.SubAreaRequest, contract.SubAreaResponse](subAreaService).Mount(secured("/subareas"))
	handler.NewCrudDefault[contract.SubArea2Request, contract.SubArea2Response](subArea2Service).Mount(secured("/subareas2"))
	handler.NewCrudDefault[contract.DocumentoRequest, contract.DocumentoResponse](documentoService).Mount(secured("/documentos-regulatorios"))
	handler.NewClassificacaoDefault(classificacaoService).Mount(secured("/classificacoes"))
	handler.NewUsuarioDefault(usuarioService).Mount(secured("/usuarios"))

	requisitos := secured("/requisitos")
	handler.NewRequisitoDefault(requisitoService).Mount(requisitos)
	handler.NewTarefaDefault(tarefaService).Mount(requisitos)

	handler.NewInboxDefault(inboxService).Mount(secured("/inbox-notificacoes"))
	handler.NewUploadDefault(uploadService).Mount(secured("/uploads"))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
