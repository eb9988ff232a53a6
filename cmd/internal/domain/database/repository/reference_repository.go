package repository

import (
	"context"
	"gorm.io/gorm"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

// DefaultReferenceRepository answers "does this parent exist in this tenant"
// for the reference validators.
type DefaultReferenceRepository struct {
	exec *tenantdb.Executor
	db   *gorm.DB
}

func NewReferenceRepository(exec *tenantdb.Executor, db *gorm.DB) *DefaultReferenceRepository {
	return &DefaultReferenceRepository{exec: exec, db: db}
}

func (r *DefaultReferenceRepository) FindEmpresaRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error) {
	return r.findRef(ctx, tenantID, "empresas", id)
}

// FindSubAreaRef only sees subareas whose whole ancestor chain still exists,
// the same rows the subarea reads return.
func (r *DefaultReferenceRepository) FindSubAreaRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error) {
	var ref entity.Ref
	found, err := r.exec.For(tenantID).First(ctx, &ref, `
		SELECT s.id
		  FROM subareas s
		  JOIN areas a ON a.id = s.area_id AND a.tenant_id = s.tenant_id
		  JOIN unidades u ON u.id = a.unidade_id AND u.tenant_id = a.tenant_id
		  JOIN empresas e ON e.id = u.empresa_id AND e.tenant_id = u.tenant_id
		 WHERE s.tenant_id = ? AND s.id = ?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &ref, nil
}

func (r *DefaultReferenceRepository) FindClassificacaoRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error) {
	return r.findRef(ctx, tenantID, "classificacoes", id)
}

func (r *DefaultReferenceRepository) FindUsuarioRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error) {
	return r.findRef(ctx, tenantID, "usuarios", id)
}

// FindRequisitoRef joins the responsible area like the requirement reads do,
// so a requirement that GET reports as missing is missing here too.
func (r *DefaultReferenceRepository) FindRequisitoRef(ctx context.Context, tenantID, id int64) (*entity.Ref, error) {
	var ref entity.Ref
	found, err := r.exec.For(tenantID).First(ctx, &ref, `
		SELECT r.id
		  FROM requisitos r
		  JOIN areas a ON a.id = r.area_responsavel_id AND a.tenant_id = r.tenant_id
		 WHERE r.tenant_id = ? AND r.id = ?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &ref, nil
}

func (r *DefaultReferenceRepository) FindUnidadeRef(ctx context.Context, tenantID, id int64) (*entity.UnidadeRef, error) {
	var ref entity.UnidadeRef
	found, err := r.exec.For(tenantID).First(ctx, &ref, `
		SELECT u.id, u.empresa_id
		  FROM unidades u
		  JOIN empresas e ON e.id = u.empresa_id AND e.tenant_id = u.tenant_id
		 WHERE u.tenant_id = ? AND u.id = ?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &ref, nil
}

// FindAreaRef resolves the area's company through its unit. Areas whose unit
// or company is gone are not found.
func (r *DefaultReferenceRepository) FindAreaRef(ctx context.Context, tenantID, id int64) (*entity.AreaRef, error) {
	var ref entity.AreaRef
	found, err := r.exec.For(tenantID).First(ctx, &ref, `
		SELECT a.id, a.unidade_id, u.empresa_id
		  FROM areas a
		  JOIN unidades u ON u.id = a.unidade_id AND u.tenant_id = a.tenant_id
		  JOIN empresas e ON e.id = u.empresa_id AND e.tenant_id = u.tenant_id
		 WHERE a.tenant_id = ? AND a.id = ?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &ref, nil
}

// ExistsRequisitoBase checks the shared template table, which has no tenant.
func (r *DefaultReferenceRepository) ExistsRequisitoBase(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := tenantdb.Conn(ctx, r.db).
		Model(&entity.RequisitoBase{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// findRef only receives table names from this file.
func (r *DefaultReferenceRepository) findRef(ctx context.Context, tenantID int64, table string, id int64) (*entity.Ref, error) {
	var ref entity.Ref
	found, err := r.exec.For(tenantID).First(ctx, &ref,
		"SELECT id FROM "+table+" WHERE tenant_id = ? AND id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &ref, nil
}
