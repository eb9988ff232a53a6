package service

import (
	"context"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
	"strings"
	"time"
)

type AuthConfig struct {
	Secret []byte
	TTL    time.Duration
}

type DefaultAuthService struct {
	Repo     UsuarioRepository
	Config   AuthConfig
	Audit    audit.Logger
	Validate *validator.Validate
}

func NewAuthService(repo UsuarioRepository, cfg AuthConfig, auditLog audit.Logger, validate *validator.Validate) *DefaultAuthService {
	return &DefaultAuthService{
		Repo:     repo,
		Config:   cfg,
		Audit:    auditLog,
		Validate: validate,
	}
}

func (s *DefaultAuthService) Register(ctx context.Context, req *contract.RegisterRequest) (*contract.UsuarioResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	usuario, apierr := createUsuario(ctx, s.Repo, req.TenantID, &entity.Usuario{
		Nome:  req.Nome,
		Email: req.Email,
	}, req.Senha)
	if apierr != nil {
		return nil, apierr
	}

	resp := toUsuarioResponse(usuario)
	s.Audit.Log(req.TenantID, "usuario", audit.ActionCreate, resp)
	return resp, nil
}

// Login answers every unknown email or wrong password with the same 401.
func (s *DefaultAuthService) Login(ctx context.Context, req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	usuario, err := s.Repo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		log.Errorf("failed to fetch usuario by email: %v", err)
		return nil, apierror.InternalServerError
	}

	if usuario == nil {
		return nil, apierror.InvalidCredentialsErr
	}

	err = bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, apierror.InvalidCredentialsErr
	}

	if err != nil {
		log.Errorf("failed to compare password hash: %v", err)
		return nil, apierror.InternalServerError
	}

	token, err := utils.SignToken(s.Config.Secret, s.Config.TTL, usuario)
	if err != nil {
		log.Errorf("failed to sign token: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Audit.Log(usuario.TenantID, "usuario", audit.ActionInfo, map[string]any{"login": usuario.ID})
	return &contract.LoginResponse{Token: token}, nil
}
