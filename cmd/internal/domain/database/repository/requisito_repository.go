package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

const requisitoSelect = `
	SELECT r.*,
	       a.nome AS area_responsavel_nome,
	       u.nome AS usuario_responsavel_nome,
	       c.nome AS classificacao_nome
	  FROM requisitos r
	  JOIN areas a ON a.id = r.area_responsavel_id AND a.tenant_id = r.tenant_id
	  LEFT JOIN usuarios u ON u.id = r.usuario_responsavel_id AND u.tenant_id = r.tenant_id
	  LEFT JOIN classificacoes c ON c.id = r.classificacao_id AND c.tenant_id = r.tenant_id
	 WHERE r.tenant_id = ?`

type DefaultRequisitoRepository struct {
	exec *tenantdb.Executor
}

func NewRequisitoRepository(exec *tenantdb.Executor) *DefaultRequisitoRepository {
	return &DefaultRequisitoRepository{exec: exec}
}

func (r *DefaultRequisitoRepository) FindAll(ctx context.Context, tenantID int64) ([]*entity.RequisitoView, error) {
	var rows []*entity.RequisitoView
	err := r.exec.For(tenantID).Select(ctx, &rows, requisitoSelect+" ORDER BY r.id DESC")
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultRequisitoRepository) FindByID(ctx context.Context, tenantID, id int64) (*entity.RequisitoView, error) {
	var row entity.RequisitoView
	found, err := r.exec.For(tenantID).First(ctx, &row, requisitoSelect+" AND r.id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *DefaultRequisitoRepository) Save(ctx context.Context, tenantID int64, requisito *entity.Requisito) error {
	return r.exec.For(tenantID).Insert(ctx, requisito)
}

func (r *DefaultRequisitoRepository) Update(ctx context.Context, tenantID int64, requisito *entity.Requisito) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.Requisito{}, requisito.ID, map[string]any{
		"requisito_base_id":      requisito.RequisitoBaseID,
		"titulo":                 requisito.Titulo,
		"descricao":              requisito.Descricao,
		"tipo":                   requisito.Tipo,
		"status":                 requisito.Status,
		"origem":                 requisito.Origem,
		"modo":                   requisito.Modo,
		"criticidade":            requisito.Criticidade,
		"prioridade":             requisito.Prioridade,
		"classificacao_id":       requisito.ClassificacaoID,
		"area_responsavel_id":    requisito.AreaResponsavelID,
		"usuario_responsavel_id": requisito.UsuarioResponsavelID,
	})
	return n > 0, err
}

func (r *DefaultRequisitoRepository) UpdateStatus(ctx context.Context, tenantID, id int64, status entity.StatusRequisito) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.Requisito{}, id, map[string]any{
		"status": status,
	})
	return n > 0, err
}

// Delete removes the requirement and everything hanging off it. Callers run it
// inside a transaction.
func (r *DefaultRequisitoRepository) Delete(ctx context.Context, tenantID, id int64) (bool, error) {
	scope := r.exec.For(tenantID)
	children := []string{
		"DELETE FROM requisito_checkins WHERE tenant_id = ? AND requisito_id = ?",
		"DELETE FROM requisito_tags WHERE tenant_id = ? AND requisito_id = ?",
		"DELETE FROM requisito_outras_areas WHERE tenant_id = ? AND requisito_id = ?",
		"DELETE FROM requisito_tarefas WHERE tenant_id = ? AND requisito_id = ?",
	}
	for _, stmt := range children {
		if _, err := scope.Exec(ctx, stmt, id); err != nil {
			return false, err
		}
	}

	n, err := scope.Exec(ctx, "DELETE FROM requisitos WHERE tenant_id = ? AND id = ?", id)
	return n > 0, err
}

// ReplaceTags swaps the whole tag set of a requirement.
func (r *DefaultRequisitoRepository) ReplaceTags(ctx context.Context, tenantID, requisitoID int64, tags []string) error {
	scope := r.exec.For(tenantID)
	_, err := scope.Exec(ctx, "DELETE FROM requisito_tags WHERE tenant_id = ? AND requisito_id = ?", requisitoID)
	if err != nil {
		return err
	}

	for _, tag := range tags {
		row := &entity.RequisitoTag{RequisitoID: requisitoID, Tag: tag}
		if err = scope.Insert(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceOutrasAreas swaps the whole set of secondary areas, keeping the
// given order as insertion order.
func (r *DefaultRequisitoRepository) ReplaceOutrasAreas(ctx context.Context, tenantID, requisitoID int64, areaIDs []int64) error {
	scope := r.exec.For(tenantID)
	_, err := scope.Exec(ctx, "DELETE FROM requisito_outras_areas WHERE tenant_id = ? AND requisito_id = ?", requisitoID)
	if err != nil {
		return err
	}

	for _, areaID := range areaIDs {
		row := &entity.RequisitoOutraArea{RequisitoID: requisitoID, AreaID: areaID}
		if err = scope.Insert(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

// FindTags loads the tags of many requirements in one query.
func (r *DefaultRequisitoRepository) FindTags(ctx context.Context, tenantID int64, requisitoIDs []int64) ([]*entity.RequisitoTagRow, error) {
	if len(requisitoIDs) == 0 {
		return []*entity.RequisitoTagRow{}, nil
	}

	var rows []*entity.RequisitoTagRow
	err := r.exec.For(tenantID).Select(ctx, &rows, `
		SELECT requisito_id, tag
		  FROM requisito_tags
		 WHERE tenant_id = ? AND requisito_id IN ?
		 ORDER BY id`, requisitoIDs)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindOutrasAreas loads the secondary areas of many requirements in one query.
func (r *DefaultRequisitoRepository) FindOutrasAreas(ctx context.Context, tenantID int64, requisitoIDs []int64) ([]*entity.RequisitoOutraAreaRow, error) {
	if len(requisitoIDs) == 0 {
		return []*entity.RequisitoOutraAreaRow{}, nil
	}

	var rows []*entity.RequisitoOutraAreaRow
	err := r.exec.For(tenantID).Select(ctx, &rows, `
		SELECT ro.requisito_id, ro.area_id, a.nome AS area_nome
		  FROM requisito_outras_areas ro
		  JOIN areas a ON a.id = ro.area_id AND a.tenant_id = ro.tenant_id
		 WHERE ro.tenant_id = ? AND ro.requisito_id IN ?
		 ORDER BY ro.id`, requisitoIDs)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultRequisitoRepository) SaveCheckin(ctx context.Context, tenantID int64, checkin *entity.RequisitoCheckin) error {
	return r.exec.For(tenantID).Insert(ctx, checkin)
}

func (r *DefaultRequisitoRepository) FindCheckins(ctx context.Context, tenantID, requisitoID int64) ([]*entity.RequisitoCheckin, error) {
	var rows []*entity.RequisitoCheckin
	err := r.exec.For(tenantID).Select(ctx, &rows, `
		SELECT *
		  FROM requisito_checkins
		 WHERE tenant_id = ? AND requisito_id = ?
		 ORDER BY data DESC, id DESC`, requisitoID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultRequisitoRepository) CountByStatus(ctx context.Context, tenantID int64) ([]*entity.CountRow, error) {
	var rows []*entity.CountRow
	err := r.exec.For(tenantID).Select(ctx, &rows, `
		SELECT status AS chave, COUNT(*) AS total
		  FROM requisitos
		 WHERE tenant_id = ?
		 GROUP BY status`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultRequisitoRepository) CountByArea(ctx context.Context, tenantID int64) ([]*entity.AreaCountRow, error) {
	var rows []*entity.AreaCountRow
	err := r.exec.For(tenantID).Select(ctx, &rows, `
		SELECT a.id AS area_id, a.nome AS area_nome, COUNT(*) AS total
		  FROM requisitos r
		  JOIN areas a ON a.id = r.area_responsavel_id AND a.tenant_id = r.tenant_id
		 WHERE r.tenant_id = ?
		 GROUP BY a.id, a.nome
		 ORDER BY total DESC, a.id`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultRequisitoRepository) CountByClassificacao(ctx context.Context, tenantID int64) ([]*entity.ClassificacaoCountRow, error) {
	var rows []*entity.ClassificacaoCountRow
	err := r.exec.For(tenantID).Select(ctx, &rows, `
		SELECT r.classificacao_id, c.nome AS classificacao_nome, COUNT(*) AS total
		  FROM requisitos r
		  LEFT JOIN classificacoes c ON c.id = r.classificacao_id AND c.tenant_id = r.tenant_id
		 WHERE r.tenant_id = ?
		 GROUP BY r.classificacao_id, c.nome
		 ORDER BY total DESC, r.classificacao_id`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
