package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

const unidadeSelect = `
	SELECT u.*, e.nome AS empresa_nome
	  FROM unidades u
	  JOIN empresas e ON e.id = u.empresa_id AND e.tenant_id = u.tenant_id
	 WHERE u.tenant_id = ?`

type DefaultUnidadeRepository struct {
	exec *tenantdb.Executor
}

func NewUnidadeRepository(exec *tenantdb.Executor) *DefaultUnidadeRepository {
	return &DefaultUnidadeRepository{exec: exec}
}

func (r *DefaultUnidadeRepository) FindAll(ctx context.Context, tenantID int64) ([]*entity.UnidadeView, error) {
	var unidades []*entity.UnidadeView
	err := r.exec.For(tenantID).Select(ctx, &unidades, unidadeSelect+" ORDER BY u.id DESC")
	if err != nil {
		return nil, err
	}
	return unidades, nil
}

func (r *DefaultUnidadeRepository) FindByID(ctx context.Context, tenantID, id int64) (*entity.UnidadeView, error) {
	var unidade entity.UnidadeView
	found, err := r.exec.For(tenantID).First(ctx, &unidade, unidadeSelect+" AND u.id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &unidade, nil
}

func (r *DefaultUnidadeRepository) Save(ctx context.Context, tenantID int64, unidade *entity.Unidade) error {
	return r.exec.For(tenantID).Insert(ctx, unidade)
}

func (r *DefaultUnidadeRepository) Update(ctx context.Context, tenantID int64, unidade *entity.Unidade) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.Unidade{}, unidade.ID, map[string]any{
		"empresa_id": unidade.EmpresaID,
		"nome":       unidade.Nome,
		"descricao":  unidade.Descricao,
	})
	return n > 0, err
}

func (r *DefaultUnidadeRepository) Delete(ctx context.Context, tenantID, id int64) (bool, error) {
	n, err := r.exec.For(tenantID).Exec(ctx, "DELETE FROM unidades WHERE tenant_id = ? AND id = ?", id)
	return n > 0, err
}
