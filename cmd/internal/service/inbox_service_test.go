package service

import (
	"github.com/stretchr/testify/suite"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/utils/apierror"
	"strconv"
	"testing"
	"time"
)

type InboxSuite struct {
	serviceSuite
	ana   *contract.UsuarioResponse
	bruno *contract.UsuarioResponse
}

func TestInboxSuite(t *testing.T) {
	suite.Run(t, new(InboxSuite))
}

func (s *InboxSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.ana = s.seedUsuario(tenantA, "ana@rlk.com")
	s.bruno = s.seedUsuario(tenantA, "bruno@rlk.com")
}

type notificacao struct {
	usuarioID  int64
	titulo     string
	corpo      string
	tipo       string
	prioridade string
	remetente  string
	createdAt  time.Time
}

func (s *InboxSuite) seed(tenantID int64, n notificacao) *entity.InboxNotificacao {
	row := &entity.InboxNotificacao{
		UsuarioID:  n.usuarioID,
		Titulo:     n.titulo,
		Corpo:      n.corpo,
		Tipo:       n.tipo,
		Prioridade: n.prioridade,
		Status:     entity.InboxNaoLida,
		CreatedAt:  n.createdAt,
		UpdatedAt:  n.createdAt,
	}
	if n.remetente != "" {
		row.Remetente = ptr(n.remetente)
	}
	s.Require().NoError(s.inboxRepo.Save(s.ctx, tenantID, row))
	return row
}

func day(d, hour int) time.Time {
	return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
}

func (s *InboxSuite) seedInbox() (vencida, reuniao, relatorio *entity.InboxNotificacao) {
	vencida = s.seed(tenantA, notificacao{
		usuarioID:  s.ana.ID,
		titulo:     "Licença vencida",
		corpo:      "A licença de operação venceu",
		tipo:       "ALERTA",
		prioridade: "ALTA",
		remetente:  "Sistema de prazos",
		createdAt:  day(1, 9),
	})
	reuniao = s.seed(tenantA, notificacao{
		usuarioID:  s.bruno.ID,
		titulo:     "Reunião de comitê",
		corpo:      "Pauta: auditoria interna",
		tipo:       "AVISO",
		prioridade: "MEDIA",
		remetente:  "Comitê",
		createdAt:  day(2, 14),
	})
	relatorio = s.seed(tenantA, notificacao{
		usuarioID:  s.ana.ID,
		titulo:     "Relatório mensal",
		corpo:      "Resumo da auditoria de março",
		tipo:       "INFO",
		prioridade: "BAIXA",
		createdAt:  day(3, 8),
	})
	return vencida, reuniao, relatorio
}

func ids(list []*contract.InboxResponse) []int64 {
	out := make([]int64, len(list))
	for i, n := range list {
		out[i] = n.ID
	}
	return out
}

func (s *InboxSuite) TestListFilters() {
	vencida, reuniao, relatorio := s.seedInbox()

	cases := []struct {
		name  string
		query contract.InboxQuery
		want  []int64
	}{
		{"no filter lists newest first", contract.InboxQuery{}, []int64{relatorio.ID, reuniao.ID, vencida.ID}},
		{"by user", contract.InboxQuery{UsuarioID: strconv.FormatInt(s.ana.ID, 10)}, []int64{relatorio.ID, vencida.ID}},
		{"by type", contract.InboxQuery{Tipo: "AVISO"}, []int64{reuniao.ID}},
		{"by priority", contract.InboxQuery{Prioridade: "ALTA"}, []int64{vencida.ID}},
		{"by sender substring", contract.InboxQuery{Remetente: "prazo"}, []int64{vencida.ID}},
		{"free text over title and body", contract.InboxQuery{Q: "auditoria"}, []int64{relatorio.ID, reuniao.ID}},
		{"from a date", contract.InboxQuery{CreatedFrom: "2026-03-02"}, []int64{relatorio.ID, reuniao.ID}},
		{"plain end date covers the whole day", contract.InboxQuery{CreatedTo: "2026-03-02"}, []int64{reuniao.ID, vencida.ID}},
		{"timestamp end date is exact", contract.InboxQuery{CreatedTo: "2026-03-02T12:00:00Z"}, []int64{vencida.ID}},
		{"filters are combined", contract.InboxQuery{UsuarioID: strconv.FormatInt(s.ana.ID, 10), Q: "auditoria"}, []int64{relatorio.ID}},
		{"by status", contract.InboxQuery{Status: "LIDA"}, []int64{}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			list, apierr := s.inbox.List(s.ctx, tenantA, &tc.query)
			s.Require().Nil(apierr)
			s.Equal(tc.want, ids(list))
		})
	}
}

func (s *InboxSuite) TestListJoinsUserName() {
	vencida, _, _ := s.seedInbox()

	list, apierr := s.inbox.List(s.ctx, tenantA, &contract.InboxQuery{Prioridade: "ALTA"})
	s.Require().Nil(apierr)
	s.Require().Len(list, 1)
	s.Equal(vencida.ID, list[0].ID)
	s.Equal(s.ana.Nome, list[0].UsuarioNome)
	s.Equal("NAO_LIDA", list[0].Status)
	s.Equal("2026-03-01T09:00:00Z", list[0].CreatedAt)
	s.Nil(list[0].LidoEm)
}

func (s *InboxSuite) TestListRejectsBadQueries() {
	s.Run("non numeric user", func() {
		_, apierr := s.inbox.List(s.ctx, tenantA, &contract.InboxQuery{UsuarioID: "ana"})
		s.Equal(400, apierr.Code())
		s.Equal(apierror.NewInvalidParamTypeError("usuario_id", "integer"), apierr)
	})

	s.Run("unknown status", func() {
		_, apierr := s.inbox.List(s.ctx, tenantA, &contract.InboxQuery{Status: "APAGADA"})
		s.requireFieldError(apierr, "status")
	})

	s.Run("bad dates", func() {
		_, apierr := s.inbox.List(s.ctx, tenantA, &contract.InboxQuery{CreatedFrom: "ontem"})
		s.requireFieldError(apierr, "created_from")

		_, apierr = s.inbox.List(s.ctx, tenantA, &contract.InboxQuery{CreatedTo: "31/03/2026"})
		s.requireFieldError(apierr, "created_to")
	})
}

func (s *InboxSuite) TestUpdateStatus() {
	vencida, _, _ := s.seedInbox()

	read, apierr := s.inbox.UpdateStatus(s.ctx, tenantA, vencida.ID, &contract.InboxStatusRequest{Status: "LIDA"})
	s.Require().Nil(apierr)
	s.Equal("LIDA", read.Status)
	s.NotNil(read.LidoEm)
	s.Nil(read.ArquivadoEm)

	archived, apierr := s.inbox.UpdateStatus(s.ctx, tenantA, vencida.ID, &contract.InboxStatusRequest{Status: "ARQUIVADA"})
	s.Require().Nil(apierr)
	s.Equal("ARQUIVADA", archived.Status)
	s.NotNil(archived.ArquivadoEm)
	s.NotNil(archived.LidoEm)

	unread, apierr := s.inbox.UpdateStatus(s.ctx, tenantA, vencida.ID, &contract.InboxStatusRequest{Status: "NAO_LIDA"})
	s.Require().Nil(apierr)
	s.Equal("NAO_LIDA", unread.Status)
	s.Nil(unread.LidoEm)

	list, apierr := s.inbox.List(s.ctx, tenantA, &contract.InboxQuery{Status: "NAO_LIDA"})
	s.Require().Nil(apierr)
	s.Len(list, 3)

	_, apierr = s.inbox.UpdateStatus(s.ctx, tenantA, vencida.ID, &contract.InboxStatusRequest{Status: "EXCLUIDA"})
	s.requireFieldError(apierr, "status")
}

func (s *InboxSuite) TestTenantIsolation() {
	vencida, _, _ := s.seedInbox()
	outsider := s.seedUsuario(tenantB, "carla@rlk.com")
	theirs := s.seed(tenantB, notificacao{
		usuarioID:  outsider.ID,
		titulo:     "Aviso externo",
		corpo:      "Outro tenant",
		tipo:       "INFO",
		prioridade: "BAIXA",
		createdAt:  day(4, 10),
	})

	list, apierr := s.inbox.List(s.ctx, tenantB, &contract.InboxQuery{})
	s.Require().Nil(apierr)
	s.Equal([]int64{theirs.ID}, ids(list))

	// Another tenant's user id only narrows to nothing.
	list, apierr = s.inbox.List(s.ctx, tenantB, &contract.InboxQuery{UsuarioID: strconv.FormatInt(s.ana.ID, 10)})
	s.Require().Nil(apierr)
	s.Empty(list)

	_, apierr = s.inbox.UpdateStatus(s.ctx, tenantB, vencida.ID, &contract.InboxStatusRequest{Status: "LIDA"})
	s.Equal(apierror.NotificacaoNotFoundError, apierr)

	mine, apierr := s.inbox.List(s.ctx, tenantA, &contract.InboxQuery{Status: "NAO_LIDA"})
	s.Require().Nil(apierr)
	s.Len(mine, 3)
}
