package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

// The company is read through the unit, never from the stored areas.empresa_id.
const areaSelect = `
	SELECT a.id, a.tenant_id, a.unidade_id, a.nome, a.descricao, a.latitude, a.longitude,
	       u.empresa_id AS empresa_id, u.nome AS unidade_nome, e.nome AS empresa_nome
	  FROM areas a
	  JOIN unidades u ON u.id = a.unidade_id AND u.tenant_id = a.tenant_id
	  JOIN empresas e ON e.id = u.empresa_id AND e.tenant_id = u.tenant_id
	 WHERE a.tenant_id = ?`

type DefaultAreaRepository struct {
	exec *tenantdb.Executor
}

func NewAreaRepository(exec *tenantdb.Executor) *DefaultAreaRepository {
	return &DefaultAreaRepository{exec: exec}
}

func (r *DefaultAreaRepository) FindAll(ctx context.Context, tenantID int64) ([]*entity.AreaView, error) {
	var areas []*entity.AreaView
	err := r.exec.For(tenantID).Select(ctx, &areas, areaSelect+" ORDER BY a.id DESC")
	if err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *DefaultAreaRepository) FindByID(ctx context.Context, tenantID, id int64) (*entity.AreaView, error) {
	var area entity.AreaView
	found, err := r.exec.For(tenantID).First(ctx, &area, areaSelect+" AND a.id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &area, nil
}

// FindStoredEmpresaID returns the company id persisted on the area row.
func (r *DefaultAreaRepository) FindStoredEmpresaID(ctx context.Context, tenantID, id int64) (int64, bool, error) {
	var empresaID int64
	found, err := r.exec.For(tenantID).First(ctx, &empresaID,
		"SELECT empresa_id FROM areas WHERE tenant_id = ? AND id = ?", id)
	return empresaID, found, err
}

func (r *DefaultAreaRepository) Save(ctx context.Context, tenantID int64, area *entity.Area) error {
	return r.exec.For(tenantID).Insert(ctx, area)
}

func (r *DefaultAreaRepository) Update(ctx context.Context, tenantID int64, area *entity.Area) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.Area{}, area.ID, map[string]any{
		"empresa_id": area.EmpresaID,
		"unidade_id": area.UnidadeID,
		"nome":       area.Nome,
		"descricao":  area.Descricao,
		"latitude":   area.Latitude,
		"longitude":  area.Longitude,
	})
	return n > 0, err
}

func (r *DefaultAreaRepository) Delete(ctx context.Context, tenantID, id int64) (bool, error) {
	n, err := r.exec.For(tenantID).Exec(ctx, "DELETE FROM areas WHERE tenant_id = ? AND id = ?", id)
	return n > 0, err
}
