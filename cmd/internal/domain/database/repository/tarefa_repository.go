package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

const tarefaSelect = `
	SELECT t.*, u.nome AS responsavel_nome
	  FROM requisito_tarefas t
	  LEFT JOIN usuarios u ON u.id = t.responsavel_id AND u.tenant_id = t.tenant_id
	 WHERE t.tenant_id = ? AND t.requisito_id = ?`

type DefaultTarefaRepository struct {
	exec *tenantdb.Executor
}

func NewTarefaRepository(exec *tenantdb.Executor) *DefaultTarefaRepository {
	return &DefaultTarefaRepository{exec: exec}
}

func (r *DefaultTarefaRepository) FindAll(ctx context.Context, tenantID, requisitoID int64) ([]*entity.RequisitoTarefaView, error) {
	var rows []*entity.RequisitoTarefaView
	err := r.exec.For(tenantID).Select(ctx, &rows, tarefaSelect+" ORDER BY t.id DESC", requisitoID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultTarefaRepository) FindByID(ctx context.Context, tenantID, requisitoID, id int64) (*entity.RequisitoTarefaView, error) {
	var row entity.RequisitoTarefaView
	found, err := r.exec.For(tenantID).First(ctx, &row, tarefaSelect+" AND t.id = ?", requisitoID, id)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *DefaultTarefaRepository) Save(ctx context.Context, tenantID int64, tarefa *entity.RequisitoTarefa) error {
	return r.exec.For(tenantID).Insert(ctx, tarefa)
}

func (r *DefaultTarefaRepository) UpdateStatus(ctx context.Context, tenantID, id int64, status entity.StatusTarefa) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.RequisitoTarefa{}, id, map[string]any{
		"status": status,
	})
	return n > 0, err
}
