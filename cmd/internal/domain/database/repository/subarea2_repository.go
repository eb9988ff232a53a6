package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

const subArea2Select = `
	SELECT s2.*,
	       sa.nome AS subarea_nome,
	       a.id AS area_id, a.nome AS area_nome,
	       u.id AS unidade_id, u.nome AS unidade_nome,
	       e.id AS empresa_id, e.nome AS empresa_nome
	  FROM subarea2 s2
	  JOIN subareas sa ON sa.id = s2.subarea_id AND sa.tenant_id = s2.tenant_id
	  JOIN areas a ON a.id = sa.area_id AND a.tenant_id = sa.tenant_id
	  JOIN unidades u ON u.id = a.unidade_id AND u.tenant_id = a.tenant_id
	  JOIN empresas e ON e.id = u.empresa_id AND e.tenant_id = u.tenant_id
	 WHERE s2.tenant_id = ?`

type DefaultSubArea2Repository struct {
	exec *tenantdb.Executor
}

func NewSubArea2Repository(exec *tenantdb.Executor) *DefaultSubArea2Repository {
	return &DefaultSubArea2Repository{exec: exec}
}

func (r *DefaultSubArea2Repository) FindAll(ctx context.Context, tenantID int64) ([]*entity.SubArea2View, error) {
	var rows []*entity.SubArea2View
	err := r.exec.For(tenantID).Select(ctx, &rows, subArea2Select+" ORDER BY s2.id DESC")
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultSubArea2Repository) FindByID(ctx context.Context, tenantID, id int64) (*entity.SubArea2View, error) {
	var row entity.SubArea2View
	found, err := r.exec.For(tenantID).First(ctx, &row, subArea2Select+" AND s2.id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *DefaultSubArea2Repository) Save(ctx context.Context, tenantID int64, subarea *entity.SubArea2) error {
	return r.exec.For(tenantID).Insert(ctx, subarea)
}

func (r *DefaultSubArea2Repository) Update(ctx context.Context, tenantID int64, subarea *entity.SubArea2) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.SubArea2{}, subarea.ID, map[string]any{
		"subarea_id": subarea.SubAreaID,
		"nome":       subarea.Nome,
		"descricao":  subarea.Descricao,
	})
	return n > 0, err
}

func (r *DefaultSubArea2Repository) Delete(ctx context.Context, tenantID, id int64) (bool, error) {
	n, err := r.exec.For(tenantID).Exec(ctx, "DELETE FROM subarea2 WHERE tenant_id = ? AND id = ?", id)
	return n > 0, err
}
