package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

type DefaultClassificacaoRepository struct {
	exec *tenantdb.Executor
}

func NewClassificacaoRepository(exec *tenantdb.Executor) *DefaultClassificacaoRepository {
	return &DefaultClassificacaoRepository{exec: exec}
}

func (r *DefaultClassificacaoRepository) FindAll(ctx context.Context, tenantID int64) ([]*entity.Classificacao, error) {
	var rows []*entity.Classificacao
	err := r.exec.For(tenantID).Select(ctx, &rows,
		"SELECT * FROM classificacoes WHERE tenant_id = ? ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultClassificacaoRepository) Save(ctx context.Context, tenantID int64, classificacao *entity.Classificacao) error {
	return r.exec.For(tenantID).Insert(ctx, classificacao)
}
