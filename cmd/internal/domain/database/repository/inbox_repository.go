package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
	"strings"
)

const inboxSelect = `
	SELECT n.*, u.nome AS usuario_nome
	  FROM inbox_notificacoes n
	  JOIN usuarios u ON u.id = n.usuario_id AND u.tenant_id = n.tenant_id`

type DefaultInboxRepository struct {
	exec *tenantdb.Executor
}

func NewInboxRepository(exec *tenantdb.Executor) *DefaultInboxRepository {
	return &DefaultInboxRepository{exec: exec}
}

// FindAll appends one AND-ed predicate per present filter. The tenant
// predicate always comes first.
func (r *DefaultInboxRepository) FindAll(ctx context.Context, tenantID int64, f *entity.InboxFilter) ([]*entity.InboxNotificacaoView, error) {
	conditions := []string{"n.tenant_id = ?"}
	var args []any

	if f.UsuarioID != nil {
		conditions = append(conditions, "n.usuario_id = ?")
		args = append(args, *f.UsuarioID)
	}
	if f.Status != "" {
		conditions = append(conditions, "n.status = ?")
		args = append(args, f.Status)
	}
	if f.Tipo != "" {
		conditions = append(conditions, "n.tipo = ?")
		args = append(args, f.Tipo)
	}
	if f.Prioridade != "" {
		conditions = append(conditions, "n.prioridade = ?")
		args = append(args, f.Prioridade)
	}
	if f.Remetente != "" {
		conditions = append(conditions, "n.remetente LIKE ?")
		args = append(args, "%"+f.Remetente+"%")
	}
	if f.Q != "" {
		conditions = append(conditions, "(n.titulo LIKE ? OR n.corpo LIKE ?)")
		args = append(args, "%"+f.Q+"%", "%"+f.Q+"%")
	}
	if f.CreatedFrom != nil {
		conditions = append(conditions, "n.created_at >= ?")
		args = append(args, *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		conditions = append(conditions, "n.created_at <= ?")
		args = append(args, *f.CreatedTo)
	}

	query := inboxSelect +
		" WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY n.created_at DESC, n.id DESC"

	var rows []*entity.InboxNotificacaoView
	if err := r.exec.For(tenantID).Select(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultInboxRepository) FindByID(ctx context.Context, tenantID, id int64) (*entity.InboxNotificacaoView, error) {
	var row entity.InboxNotificacaoView
	found, err := r.exec.For(tenantID).First(ctx, &row, inboxSelect+" WHERE n.tenant_id = ? AND n.id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

// Save is the entry point for seeding notifications. No API route creates them.
func (r *DefaultInboxRepository) Save(ctx context.Context, tenantID int64, notificacao *entity.InboxNotificacao) error {
	return r.exec.For(tenantID).Insert(ctx, notificacao)
}

func (r *DefaultInboxRepository) UpdateStatus(ctx context.Context, tenantID, id int64, values map[string]any) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.InboxNotificacao{}, id, values)
	return n > 0, err
}
