package repository

import (
	"context"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/domain/tenantdb"
)

const documentoSelect = `
	SELECT d.*, c.nome AS classificacao_nome
	  FROM documentos_regulatorios d
	  JOIN classificacoes c ON c.id = d.classificacao_id AND c.tenant_id = d.tenant_id
	 WHERE d.tenant_id = ?`

type DefaultDocumentoRepository struct {
	exec *tenantdb.Executor
}

func NewDocumentoRepository(exec *tenantdb.Executor) *DefaultDocumentoRepository {
	return &DefaultDocumentoRepository{exec: exec}
}

func (r *DefaultDocumentoRepository) FindAll(ctx context.Context, tenantID int64) ([]*entity.DocumentoRegulatorioView, error) {
	var rows []*entity.DocumentoRegulatorioView
	err := r.exec.For(tenantID).Select(ctx, &rows, documentoSelect+" ORDER BY d.id DESC")
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DefaultDocumentoRepository) FindByID(ctx context.Context, tenantID, id int64) (*entity.DocumentoRegulatorioView, error) {
	var row entity.DocumentoRegulatorioView
	found, err := r.exec.For(tenantID).First(ctx, &row, documentoSelect+" AND d.id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &row, nil
}

func (r *DefaultDocumentoRepository) Save(ctx context.Context, tenantID int64, doc *entity.DocumentoRegulatorio) error {
	return r.exec.For(tenantID).Insert(ctx, doc)
}

func (r *DefaultDocumentoRepository) Update(ctx context.Context, tenantID int64, doc *entity.DocumentoRegulatorio) (bool, error) {
	n, err := r.exec.For(tenantID).Update(ctx, &entity.DocumentoRegulatorio{}, doc.ID, map[string]any{
		"classificacao_id":          doc.ClassificacaoID,
		"nome":                      doc.Nome,
		"sigla":                     doc.Sigla,
		"descricao":                 doc.Descricao,
		"base_legal":                doc.BaseLegal,
		"orgao_emissor":             doc.OrgaoEmissor,
		"obrigatoriedade":           doc.Obrigatoriedade,
		"periodicidade":             doc.Periodicidade,
		"exige_responsavel_tecnico": doc.ExigeResponsavelTecnico,
		"exige_assinatura":          doc.ExigeAssinatura,
		"exige_validade":            doc.ExigeValidade,
		"ativo":                     doc.Ativo,
	})
	return n > 0, err
}

func (r *DefaultDocumentoRepository) Delete(ctx context.Context, tenantID, id int64) (bool, error) {
	n, err := r.exec.For(tenantID).Exec(ctx,
		"DELETE FROM documentos_regulatorios WHERE tenant_id = ? AND id = ?", id)
	return n > 0, err
}
