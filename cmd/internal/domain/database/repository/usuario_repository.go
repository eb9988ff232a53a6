package repository

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

type DefaultUsuarioRepository struct {
	exec *tenantdb.Executor
	db   *gorm.DB
}

func NewUsuarioRepository(exec *tenantdb.Executor, db *gorm.DB) *DefaultUsuarioRepository {
	return &DefaultUsuarioRepository{exec: exec, db: db}
}

func (r *DefaultUsuarioRepository) FindAll(ctx context.Context, tenantID int64) ([]*entity.Usuario, error) {
	var usuarios []*entity.Usuario
	err := r.exec.For(tenantID).Select(ctx, &usuarios, `
		SELECT id, nome, email, tenant_id, empresa_id, area_id
		  FROM usuarios
		 WHERE tenant_id = ?
		 ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *DefaultUsuarioRepository) Save(ctx context.Context, tenantID int64, usuario *entity.Usuario) error {
	return r.exec.For(tenantID).Insert(ctx, usuario)
}

// FindByEmail looks the account up across tenants. Emails are globally
// unique and login happens before a tenant is known.
func (r *DefaultUsuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := tenantdb.Conn(ctx, r.db).Where("email = ?", email).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *DefaultUsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := tenantdb.Conn(ctx, r.db).
		Model(&entity.Usuario{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
