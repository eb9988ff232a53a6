package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/database"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/service"
	"rlk/cmd/internal/utils/validators"
	"strconv"
	"strings"
	"testing"
	"time"
)

type fakeS3 struct {
	keys []string
}

func (f *fakeS3) UploadFile(_ context.Context, _ []byte, key string) (string, error) {
	f.keys = append(f.keys, key)
	return "https://files.test/" + key, nil
}

type RoutesSuite struct {
	suite.Suite
	db *gorm.DB
	e  *echo.Echo
	s3 *fakeS3
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesSuite))
}

func (s *RoutesSuite) SetupTest() {
	db, err := database.OpenInMemory()
	s.Require().NoError(err)

	validate := validator.New()
	validators.Register(validate)

	s.db = db
	s.s3 = &fakeS3{}
	s.e = echo.New()
	Register(s.e, &Config{
		Auth: service.AuthConfig{Secret: []byte("routes-secret"), TTL: time.Hour},
	}, &Dependencies{
		DB:       db,
		S3:       s.s3,
		Audit:    audit.Nop{},
		Validate: validate,
	})
}

func (s *RoutesSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *RoutesSuite) send(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *RoutesSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		s.Require().NoError(err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if payload != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return s.send(req, token)
}

func (s *RoutesSuite) decode(rec *httptest.ResponseRecorder, dest any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dest), rec.Body.String())
}

func (s *RoutesSuite) requireError(rec *httptest.ResponseRecorder, code int, message string) {
	s.Require().Equal(code, rec.Code, rec.Body.String())
	var body map[string]any
	s.decode(rec, &body)
	s.Equal(message, body["erro"])
}

// login registers a user in tenantID and returns a bearer token for it.
func (s *RoutesSuite) login(tenantID int64, email string) string {
	rec := s.do(http.MethodPost, "/api/v1/auth/register", contract.RegisterRequest{
		Nome:     "Usuário",
		Email:    email,
		Senha:    "segredo123",
		TenantID: tenantID,
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/auth/login", contract.LoginRequest{Email: email, Senha: "segredo123"}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp contract.LoginResponse
	s.decode(rec, &resp)
	s.Require().NotEmpty(resp.Token)
	return resp.Token
}

func empresaBody(nome string) contract.EmpresaRequest {
	return contract.EmpresaRequest{
		Nome:           nome,
		CNPJ:           "11.222.333/0001-81",
		MatrizOuFilial: "MATRIZ",
		RazaoSocial:    nome + " LTDA",
	}
}

func (s *RoutesSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("OK", rec.Body.String())
}

func (s *RoutesSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/nada", nil, "")
	s.requireError(rec, http.StatusNotFound, "Recurso não encontrado")
}

func (s *RoutesSuite) TestSecuredRoutesRequireToken() {
	s.Run("missing header", func() {
		rec := s.do(http.MethodGet, "/api/v1/empresas", nil, "")
		s.requireError(rec, http.StatusUnauthorized, "Token não fornecido")
	})

	s.Run("wrong scheme", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/requisitos", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rec := s.send(req, "")
		s.requireError(rec, http.StatusUnauthorized, "Token mal formatado")
	})

	s.Run("forged token", func() {
		rec := s.do(http.MethodGet, "/api/v1/inbox-notificacoes", nil, "abc.def.ghi")
		s.requireError(rec, http.StatusUnauthorized, "Token inválido ou expirado")
	})

	s.Run("bad credentials", func() {
		rec := s.do(http.MethodPost, "/api/v1/auth/login", contract.LoginRequest{Email: "x@rlk.com", Senha: "nada"}, "")
		s.requireError(rec, http.StatusUnauthorized, "Credenciais inválidas")
	})
}

func (s *RoutesSuite) TestEmpresaCrud() {
	token := s.login(7, "ana@rlk.com")

	rec := s.do(http.MethodPost, "/api/v1/empresas", empresaBody("Alfa"), token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created contract.EmpresaResponse
	s.decode(rec, &created)
	s.Equal(int64(7), created.TenantID)
	path := "/api/v1/empresas/" + strconv.FormatInt(created.ID, 10)

	rec = s.do(http.MethodGet, path, nil, token)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPut, path, empresaBody("Alfa Nova"), token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated contract.EmpresaResponse
	s.decode(rec, &updated)
	s.Equal("Alfa Nova", updated.Nome)

	rec = s.do(http.MethodGet, "/api/v1/empresas", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list []contract.EmpresaResponse
	s.decode(rec, &list)
	s.Len(list, 1)

	rec = s.do(http.MethodDelete, path, nil, token)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, path, nil, token)
	s.requireError(rec, http.StatusNotFound, "Empresa não encontrada")
}

func (s *RoutesSuite) TestBadRequests() {
	token := s.login(7, "ana@rlk.com")

	s.Run("non numeric id", func() {
		rec := s.do(http.MethodGet, "/api/v1/areas/abc", nil, token)
		s.requireError(rec, http.StatusBadRequest, "ID inválido")
	})

	s.Run("non positive id", func() {
		rec := s.do(http.MethodDelete, "/api/v1/unidades/0", nil, token)
		s.requireError(rec, http.StatusBadRequest, "ID inválido")
	})

	s.Run("malformed json", func() {
		rec := s.do(http.MethodPost, "/api/v1/empresas", "{", token)
		s.requireError(rec, http.StatusBadRequest, "Corpo da requisição inválido")
	})

	s.Run("field problems are listed", func() {
		rec := s.do(http.MethodPost, "/api/v1/empresas", map[string]any{"cnpj": "123"}, token)
		s.Require().Equal(http.StatusBadRequest, rec.Code)

		var body struct {
			Erro     string              `json:"erro"`
			Detalhes map[string][]string `json:"detalhes"`
		}
		s.decode(rec, &body)
		s.Equal("Dados inválidos", body.Erro)
		s.Contains(body.Detalhes, "nome")
		s.Contains(body.Detalhes, "cnpj")
		s.Contains(body.Detalhes, "matriz_ou_filial")
	})
}

func (s *RoutesSuite) TestTenantComesFromToken() {
	ana := s.login(7, "ana@rlk.com")
	bia := s.login(9, "bia@rlk.com")

	rec := s.do(http.MethodPost, "/api/v1/empresas", empresaBody("Alfa"), ana)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var created contract.EmpresaResponse
	s.decode(rec, &created)

	rec = s.do(http.MethodGet, "/api/v1/empresas/"+strconv.FormatInt(created.ID, 10), nil, bia)
	s.requireError(rec, http.StatusNotFound, "Empresa não encontrada")

	rec = s.do(http.MethodGet, "/api/v1/empresas", nil, bia)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq("[]", rec.Body.String())
}

func (s *RoutesSuite) TestRequisitoRoutes() {
	token := s.login(7, "ana@rlk.com")

	rec := s.do(http.MethodGet, "/api/v1/requisitos/dashboard", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var dash contract.DashboardResponse
	s.decode(rec, &dash)
	s.Len(dash.PorStatus, 5)
	s.Zero(dash.Total)

	rec = s.do(http.MethodGet, "/api/v1/requisitos/99/checkins", nil, token)
	s.requireError(rec, http.StatusNotFound, "Requisito não encontrado")

	rec = s.do(http.MethodPost, "/api/v1/requisitos/99/tarefas", contract.TarefaRequest{Titulo: "Protocolar"}, token)
	s.requireError(rec, http.StatusNotFound, "Requisito não encontrado")
}

func (s *RoutesSuite) upload(filename string, content []byte, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/checkins", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return s.send(req, token)
}

func (s *RoutesSuite) TestUpload() {
	token := s.login(7, "ana@rlk.com")

	s.Run("stores the file under the tenant", func() {
		rec := s.upload("Laudo.PDF", []byte("%PDF-1.4"), token)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		var resp contract.UploadResponse
		s.decode(rec, &resp)
		s.True(strings.HasPrefix(resp.Path, "checkins/7/"), resp.Path)
		s.True(strings.HasSuffix(resp.Path, ".pdf"), resp.Path)
		s.Equal("https://files.test/"+resp.Path, resp.URL)
		s.Equal("Laudo.PDF", resp.Filename)
		s.Equal(int64(8), resp.Size)
		s.Equal([]string{resp.Path}, s.s3.keys)
	})

	s.Run("rejects a denied type", func() {
		rec := s.upload("script.sh", []byte("echo"), token)
		s.requireError(rec, http.StatusBadRequest, "Tipo de arquivo não permitido")
	})

	s.Run("rejects a request without a file", func() {
		rec := s.upload("", nil, token)
		s.requireError(rec, http.StatusBadRequest, "Arquivo não enviado")
	})

	s.Len(s.s3.keys, 1)
}
