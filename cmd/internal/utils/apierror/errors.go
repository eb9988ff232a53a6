package apierror

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"erro"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError carries per-field problems of a malformed request.
type StructuredError struct {
	Message string              `json:"erro"`
	Details map[string][]string `json:"detalhes"`
	Status  int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Details[field] = append(s.Details[field], problem)
}

func (s *StructuredError) Empty() bool {
	return len(s.Details) == 0
}

var (
	MalformedBodyError  = NewSimple(400, "Corpo da requisição inválido")
	InternalServerError = NewSimple(500, "Erro interno do servidor")

	NotFoundError         = NewSimple(404, "Recurso não encontrado")
	MethodNotAllowedError = NewSimple(405, "Método não permitido")
	InvalidIDError        = NewSimple(400, "ID inválido")

	/*
	 * Authentication
	 */
	MissingTokenError      = NewSimple(401, "Token não fornecido")
	MalformedTokenError    = NewSimple(401, "Token mal formatado")
	InvalidTokenError      = NewSimple(401, "Token inválido ou expirado")
	UnauthorizedError      = NewSimple(401, "Não autenticado")
	InvalidCredentialsErr  = NewSimple(401, "Credenciais inválidas")
	EmailAlreadyTakenError = NewSimple(400, "Email já cadastrado")

	/*
	 * References that do not exist in the caller's tenant
	 */
	InvalidEmpresaError          = NewSimple(400, "Empresa inválida para este tenant")
	InvalidUnidadeError          = NewSimple(400, "Unidade inválida para este tenant")
	InvalidAreaError             = NewSimple(400, "Área inválida para este tenant")
	InvalidAreaResponsavelError  = NewSimple(400, "Área responsável inválida para este tenant")
	InvalidSubAreaError          = NewSimple(400, "Subárea inválida para este tenant")
	InvalidClassificacaoError    = NewSimple(400, "Classificação inválida para este tenant")
	InvalidUsuarioError          = NewSimple(400, "Usuário inválido para este tenant")
	InvalidUsuarioResponsavelErr = NewSimple(400, "Usuário responsável inválido para este tenant")
	InvalidRequisitoBaseError    = NewSimple(400, "Requisito base inválido")
	AreaEmpresaMismatchError     = NewSimple(400, "Área não pertence à empresa informada")

	/*
	 * Primary entities
	 */
	EmpresaNotFoundError      = NewSimple(404, "Empresa não encontrada")
	UnidadeNotFoundError      = NewSimple(404, "Unidade não encontrada")
	AreaNotFoundError         = NewSimple(404, "Área não encontrada")
	SubAreaNotFoundError      = NewSimple(404, "Subárea não encontrada")
	SubArea2NotFoundError     = NewSimple(404, "Subárea 2 não encontrada")
	DocumentoNotFoundError    = NewSimple(404, "Documento regulatório não encontrado")
	RequisitoNotFoundError    = NewSimple(404, "Requisito não encontrado")
	TarefaNotFoundError       = NewSimple(404, "Tarefa não encontrada")
	NotificacaoNotFoundError  = NewSimple(404, "Notificação não encontrada")
	InvalidTarefaStatusError  = NewSimple(400, "Status inválido")
	MissingUploadFileError    = NewSimple(400, "Arquivo não enviado")
	MissingFileNameError      = NewSimple(400, "Arquivo sem nome")
	UploadTooLargeError       = NewSimple(400, "Arquivo excede 10MB")
	UploadFileTypeDeniedError = NewSimple(400, "Tipo de arquivo não permitido")
)

// FromValidationError converts validator errors into a 400 response listing
// the problems of each field. Any other error is treated as a malformed body.
func FromValidationError(err error) ErrorResponse {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return MalformedBodyError
	}

	problems := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required", "notblank":
			problems.Add(field, "Campo obrigatório")
		case "min", "gte":
			problems.Add(field, "Valor abaixo do mínimo permitido: "+fe.Param())
		case "max", "lte":
			problems.Add(field, "Valor acima do máximo permitido: "+fe.Param())
		case "gt":
			problems.Add(field, "Valor deve ser maior que "+fe.Param())
		case "oneof":
			problems.Add(field, "Valor deve ser um de: "+fe.Param())
		case "email":
			problems.Add(field, "Email inválido")
		case "cnpj":
			problems.Add(field, "CNPJ inválido")
		case "nodupes":
			problems.Add(field, "Valores duplicados não são permitidos")
		case "latlonpair":
			problems.Add(field, "Latitude e longitude devem ser informadas juntas")

		default:
			problems.Add(field, "Valor inválido")
		}
	}
	return problems
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Message: "Dados inválidos",
		Details: make(map[string][]string),
		Status:  code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parâmetro '%s' com tipo inválido, esperado: %s", name, dataType)
}

// NewInvalidFieldError is a single-field validation failure.
func NewInvalidFieldError(field, problem string) *StructuredError {
	s := NewStructured(http.StatusBadRequest)
	s.Add(field, problem)
	return s
}
