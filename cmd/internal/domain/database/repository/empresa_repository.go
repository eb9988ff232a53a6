package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

type DefaultEmpresaRepository struct {
	exec *tenantdb.Executor
}

func NewEmpresaRepository(exec *tenantdb.Executor) *DefaultEmpresaRepository {
	return &DefaultEmpresaRepository{exec: exec}
}

func (r *DefaultEmpresaRepository) FindAll(ctx context.Context, tenantID int64) ([]*entity.Empresa, error) {
	var empresas []*entity.Empresa
	err := r.exec.For(tenantID).Select(ctx, &empresas,
		"SELECT * FROM empresas WHERE tenant_id = ? ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	return empresas, nil
}

func (r *DefaultEmpresaRepository) FindByID(ctx context.Context, tenantID, id int64) (*entity.Empresa, error) {
	var empresa entity.Empresa
	found, err := r.exec.For(tenantID).First(ctx, &empresa,
		"SELECT * FROM empresas WHERE tenant_id = ? AND id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &empresa, nil
}

func (r *DefaultEmpresaRepository) Save(ctx context.Context, tenantID int64, empresa *entity.Empresa) error {
	return r.exec.For(tenantID).Insert(ctx, empresa)
}

func (r *DefaultEmpresaRepository) Update(ctx context.Context, tenantID int64, empresa *entity.Empresa) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.Empresa{}, empresa.ID, map[string]any{
		"nome":             empresa.Nome,
		"cnpj":             empresa.CNPJ,
		"matriz_ou_filial": empresa.MatrizOuFilial,
		"razao_social":     empresa.RazaoSocial,
	})
	return n > 0, err
}

func (r *DefaultEmpresaRepository) Delete(ctx context.Context, tenantID, id int64) (bool, error) {
	n, err := r.exec.For(tenantID).Exec(ctx, "DELETE FROM empresas WHERE tenant_id = ? AND id = ?", id)
	return n > 0, err
}
