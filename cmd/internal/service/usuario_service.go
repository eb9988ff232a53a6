package service

import (
	"context"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils/apierror"
	"strings"
)

type UsuarioRepository interface {
	FindAll(ctx context.Context, tenantID int64) ([]*entity.Usuario, error)
	Save(ctx context.Context, tenantID int64, usuario *entity.Usuario) error
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type DefaultUsuarioService struct {
	Deps
	Repo UsuarioRepository
}

func NewUsuarioService(repo UsuarioRepository, deps Deps) *DefaultUsuarioService {
	return &DefaultUsuarioService{Deps: deps, Repo: repo}
}

func (s *DefaultUsuarioService) List(ctx context.Context, tenantID int64) ([]*contract.UsuarioResponse, apierror.ErrorResponse) {
	usuarios, err := s.Repo.FindAll(ctx, tenantID)
	if err != nil {
		log.Errorf("failed to fetch usuarios: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UsuarioResponse, len(usuarios))
	for i, u := range usuarios {
		resp[i] = toUsuarioResponse(u)
	}
	return resp, nil
}

// Create validates the optional company and area of the user. When both are
// given the area must belong to the company through its unit.
func (s *DefaultUsuarioService) Create(ctx context.Context, tenantID int64, req *contract.UsuarioRequest) (*contract.UsuarioResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if req.EmpresaID != nil {
		if _, apierr := s.Refs.Empresa(ctx, tenantID, *req.EmpresaID); apierr != nil {
			return nil, apierr
		}
	}

	if req.AreaID != nil {
		if _, apierr := s.Refs.Area(ctx, tenantID, *req.AreaID); apierr != nil {
			return nil, apierr
		}
	}

	if req.EmpresaID != nil && req.AreaID != nil {
		if apierr := s.Refs.AreaDaEmpresa(ctx, tenantID, *req.EmpresaID, *req.AreaID); apierr != nil {
			return nil, apierr
		}
	}

	usuario, apierr := createUsuario(ctx, s.Repo, tenantID, &entity.Usuario{
		Nome:      req.Nome,
		Email:     req.Email,
		EmpresaID: req.EmpresaID,
		AreaID:    req.AreaID,
	}, req.Senha)
	if apierr != nil {
		return nil, apierr
	}

	resp := toUsuarioResponse(usuario)
	s.Audit.Log(tenantID, "usuario", audit.ActionCreate, resp)
	return resp, nil
}

// createUsuario hashes the password and stores the user, refusing emails that
// are already registered in any tenant.
func createUsuario(ctx context.Context, repo UsuarioRepository, tenantID int64, usuario *entity.Usuario, senha string) (*entity.Usuario, apierror.ErrorResponse) {
	usuario.Email = strings.ToLower(usuario.Email)

	exists, err := repo.ExistsByEmail(ctx, usuario.Email)
	if err != nil {
		log.Errorf("failed to check email availability: %v", err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.EmailAlreadyTakenError
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	usuario.SenhaHash = string(hash)
	if err = repo.Save(ctx, tenantID, usuario); err != nil {
		log.Errorf("failed to create usuario: %v", err)
		return nil, apierror.InternalServerError
	}
	return usuario, nil
}

func toUsuarioResponse(u *entity.Usuario) *contract.UsuarioResponse {
	return &contract.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		TenantID:  u.TenantID,
		EmpresaID: u.EmpresaID,
		AreaID:    u.AreaID,
	}
}
