package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

const subAreaSelect = `
	SELECT s.*,
	       a.nome AS area_nome,
	       u.id AS unidade_id, u.nome AS unidade_nome,
	       e.id AS empresa_id, e.nome AS empresa_nome
	  FROM subareas s
	  JOIN areas a ON a.id = s.area_id AND a.tenant_id = s.tenant_id
	  JOIN unidades u ON u.id = a.unidade_id AND u.tenant_id = a.tenant_id
	  JOIN empresas e ON e.id = u.empresa_id AND e.tenant_id = u.tenant_id
	 WHERE s.tenant_id = ?`

type DefaultSubAreaRepository struct {
	exec *tenantdb.Executor
}

func NewSubAreaRepository(exec *tenantdb.Executor) *DefaultSubAreaRepository {
	return &DefaultSubAreaRepository{exec: exec}
}

func (r *DefaultSubAreaRepository) FindAll(ctx context.Context, tenantID int64) ([]*entity.SubAreaView, error) {
	var subareas []*entity.SubAreaView
	err := r.exec.For(tenantID).Select(ctx, &subareas, subAreaSelect+" ORDER BY s.id DESC")
	if err != nil {
		return nil, err
	}
	return subareas, nil
}

func (r *DefaultSubAreaRepository) FindByID(ctx context.Context, tenantID, id int64) (*entity.SubAreaView, error) {
	var subarea entity.SubAreaView
	found, err := r.exec.For(tenantID).First(ctx, &subarea, subAreaSelect+" AND s.id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &subarea, nil
}

func (r *DefaultSubAreaRepository) Save(ctx context.Context, tenantID int64, subarea *entity.SubArea) error {
	return r.exec.For(tenantID).Insert(ctx, subarea)
}

func (r *DefaultSubAreaRepository) Update(ctx context.Context, tenantID int64, subarea *entity.SubArea) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.SubArea{}, subarea.ID, map[string]any{
		"area_id":   subarea.AreaID,
		"nome":      subarea.Nome,
		"descricao": subarea.Descricao,
	})
	return n > 0, err
}

func (r *DefaultSubAreaRepository) Delete(ctx context.Context, tenantID, id int64) (bool, error) {
	n, err := r.exec.For(tenantID).Exec(ctx, "DELETE FROM subareas WHERE tenant_id = ? AND id = ?", id)
	return n > 0, err
}
