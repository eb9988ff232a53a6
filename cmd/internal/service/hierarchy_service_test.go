package service

import (
	"github.com/stretchr/testify/suite"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/domain/entity"
	"rlk/cmd/internal/utils/apierror"
	"testing"
)

type HierarchySuite struct {
	serviceSuite
}

func TestHierarchySuite(t *testing.T) {
	suite.Run(t, new(HierarchySuite))
}

func (s *HierarchySuite) TestEmpresaLifecycle() {
	first := s.seedEmpresa(tenantA, "Alfa")
	second := s.seedEmpresa(tenantA, "Beta")

	s.Run("lists newest first", func() {
		list, apierr := s.empresas.List(s.ctx, tenantA)
		s.Require().Nil(apierr)
		s.Require().Len(list, 2)
		s.Equal(second.ID, list[0].ID)
		s.Equal(first.ID, list[1].ID)
		s.Equal(tenantA, list[0].TenantID)
	})

	s.Run("updates every column", func() {
		updated, apierr := s.empresas.Update(s.ctx, tenantA, first.ID, &contract.EmpresaRequest{
			Nome:           "Alfa Filial",
			CNPJ:           "11222333000181",
			MatrizOuFilial: "FILIAL",
			RazaoSocial:    "Alfa Filial SA",
		})
		s.Require().Nil(apierr)
		s.Equal("Alfa Filial", updated.Nome)
		s.Equal("FILIAL", updated.MatrizOuFilial)
		s.Equal("11222333000181", updated.CNPJ)
	})

	s.Run("deletes and then reports not found", func() {
		s.Require().Nil(s.empresas.Delete(s.ctx, tenantA, first.ID))
		s.Equal(apierror.EmpresaNotFoundError, s.empresas.Delete(s.ctx, tenantA, first.ID))

		_, apierr := s.empresas.GetByID(s.ctx, tenantA, first.ID)
		s.Equal(apierror.EmpresaNotFoundError, apierr)
	})
}

func (s *HierarchySuite) TestEmpresaValidation() {
	s.Run("rejects an invalid cnpj", func() {
		_, apierr := s.empresas.Create(s.ctx, tenantA, &contract.EmpresaRequest{
			Nome:           "Alfa",
			CNPJ:           "11.222.333/0001-82",
			MatrizOuFilial: "MATRIZ",
			RazaoSocial:    "Alfa LTDA",
		})
		s.requireFieldError(apierr, "cnpj")
	})

	s.Run("rejects blank names after trimming", func() {
		_, apierr := s.empresas.Create(s.ctx, tenantA, &contract.EmpresaRequest{
			Nome:           "   ",
			CNPJ:           validCNPJ,
			MatrizOuFilial: "MATRIZ",
			RazaoSocial:    "Alfa LTDA",
		})
		s.requireFieldError(apierr, "nome")
	})

	s.Zero(s.count(&entity.Empresa{}))
}

func (s *HierarchySuite) TestTenantIsolation() {
	t := s.seedTree(tenantA)
	subarea, apierr := s.subareas.Create(s.ctx, tenantA, &contract.SubAreaRequest{AreaID: t.area.ID, Nome: "Sub"})
	s.Require().Nil(apierr)
	subarea2, apierr := s.subareas2.Create(s.ctx, tenantA, &contract.SubArea2Request{SubAreaID: subarea.ID, Nome: "Sub 2"})
	s.Require().Nil(apierr)

	s.Run("lists are empty for another tenant", func() {
		empresas, apierr := s.empresas.List(s.ctx, tenantB)
		s.Require().Nil(apierr)
		s.Empty(empresas)

		unidades, apierr := s.unidades.List(s.ctx, tenantB)
		s.Require().Nil(apierr)
		s.Empty(unidades)

		areas, apierr := s.areas.List(s.ctx, tenantB)
		s.Require().Nil(apierr)
		s.Empty(areas)

		subareas, apierr := s.subareas.List(s.ctx, tenantB)
		s.Require().Nil(apierr)
		s.Empty(subareas)

		subareas2, apierr := s.subareas2.List(s.ctx, tenantB)
		s.Require().Nil(apierr)
		s.Empty(subareas2)
	})

	s.Run("reads miss rows of another tenant", func() {
		_, apierr := s.empresas.GetByID(s.ctx, tenantB, t.empresa.ID)
		s.Equal(apierror.EmpresaNotFoundError, apierr)

		_, apierr = s.unidades.GetByID(s.ctx, tenantB, t.unidade.ID)
		s.Equal(apierror.UnidadeNotFoundError, apierr)

		_, apierr = s.areas.GetByID(s.ctx, tenantB, t.area.ID)
		s.Equal(apierror.AreaNotFoundError, apierr)

		_, apierr = s.subareas.GetByID(s.ctx, tenantB, subarea.ID)
		s.Equal(apierror.SubAreaNotFoundError, apierr)

		_, apierr = s.subareas2.GetByID(s.ctx, tenantB, subarea2.ID)
		s.Equal(apierror.SubArea2NotFoundError, apierr)
	})

	s.Run("updates miss rows of another tenant", func() {
		_, apierr := s.empresas.Update(s.ctx, tenantB, t.empresa.ID, &contract.EmpresaRequest{
			Nome:           "Invasora",
			CNPJ:           validCNPJ,
			MatrizOuFilial: "MATRIZ",
			RazaoSocial:    "Invasora LTDA",
		})
		s.Equal(apierror.EmpresaNotFoundError, apierr)

		// The parent is checked first, and it belongs to tenant A.
		_, apierr = s.unidades.Update(s.ctx, tenantB, t.unidade.ID, &contract.UnidadeRequest{
			EmpresaID: t.empresa.ID,
			Nome:      "Invasora",
		})
		s.Equal(apierror.InvalidEmpresaError, apierr)

		own := s.seedEmpresa(tenantB, "Própria")
		_, apierr = s.unidades.Update(s.ctx, tenantB, t.unidade.ID, &contract.UnidadeRequest{
			EmpresaID: own.ID,
			Nome:      "Invasora",
		})
		s.Equal(apierror.UnidadeNotFoundError, apierr)

		got, apierr := s.empresas.GetByID(s.ctx, tenantA, t.empresa.ID)
		s.Require().Nil(apierr)
		s.Equal("Empresa", got.Nome)
	})

	s.Run("deletes miss rows of another tenant", func() {
		s.Equal(apierror.SubArea2NotFoundError, s.subareas2.Delete(s.ctx, tenantB, subarea2.ID))
		s.Equal(apierror.SubAreaNotFoundError, s.subareas.Delete(s.ctx, tenantB, subarea.ID))
		s.Equal(apierror.AreaNotFoundError, s.areas.Delete(s.ctx, tenantB, t.area.ID))
		s.Equal(apierror.UnidadeNotFoundError, s.unidades.Delete(s.ctx, tenantB, t.unidade.ID))
		s.Equal(apierror.EmpresaNotFoundError, s.empresas.Delete(s.ctx, tenantB, t.empresa.ID))

		s.Equal(int64(1), s.count(&entity.SubArea2{}))
		s.Equal(int64(1), s.count(&entity.Area{}))
	})
}

func (s *HierarchySuite) TestAreaUnderForeignUnitIsRejected() {
	foreign := s.seedTree(tenantB)

	_, apierr := s.areas.Create(s.ctx, tenantA, &contract.AreaRequest{
		UnidadeID: foreign.unidade.ID,
		Nome:      "Produção",
	})
	s.Equal(apierror.InvalidUnidadeError, apierr)

	areas, apierr := s.areas.List(s.ctx, tenantA)
	s.Require().Nil(apierr)
	s.Empty(areas)
	s.Equal(int64(1), s.count(&entity.Area{}))
}

// Parents that lost an ancestor are rejected before any write, since the
// child could never be read back.
func (s *HierarchySuite) TestOrphanedParentsAreRejected() {
	t := s.seedTree(tenantA)
	subarea, apierr := s.subareas.Create(s.ctx, tenantA, &contract.SubAreaRequest{AreaID: t.area.ID, Nome: "Caldeiraria"})
	s.Require().Nil(apierr)

	s.Require().Nil(s.empresas.Delete(s.ctx, tenantA, t.empresa.ID))

	_, apierr = s.areas.Create(s.ctx, tenantA, &contract.AreaRequest{UnidadeID: t.unidade.ID, Nome: "Nova"})
	s.Equal(apierror.InvalidUnidadeError, apierr)

	_, apierr = s.areas.Update(s.ctx, tenantA, t.area.ID, &contract.AreaRequest{UnidadeID: t.unidade.ID, Nome: "Renomeada"})
	s.Equal(apierror.InvalidUnidadeError, apierr)

	_, apierr = s.subareas.Create(s.ctx, tenantA, &contract.SubAreaRequest{AreaID: t.area.ID, Nome: "Forjaria"})
	s.Equal(apierror.InvalidAreaError, apierr)

	_, apierr = s.subareas2.Create(s.ctx, tenantA, &contract.SubArea2Request{SubAreaID: subarea.ID, Nome: "Forno 1"})
	s.Equal(apierror.InvalidSubAreaError, apierr)

	s.Equal(int64(1), s.count(&entity.Area{}))
	s.Equal(int64(1), s.count(&entity.SubArea{}))
	s.Zero(s.count(&entity.SubArea2{}))

	var stored entity.Area
	s.Require().NoError(s.db.First(&stored, t.area.ID).Error)
	s.Equal("Área", stored.Nome)
}

func (s *HierarchySuite) TestAreaCoordinates() {
	t := s.seedTree(tenantA)

	s.Run("rejects a lone latitude", func() {
		_, apierr := s.areas.Create(s.ctx, tenantA, &contract.AreaRequest{
			UnidadeID: t.unidade.ID,
			Nome:      "Pátio",
			Latitude:  ptr(-23.5),
		})
		s.requireFieldError(apierr, "latitude")
	})

	s.Run("rejects a lone longitude", func() {
		_, apierr := s.areas.Create(s.ctx, tenantA, &contract.AreaRequest{
			UnidadeID: t.unidade.ID,
			Nome:      "Pátio",
			Longitude: ptr(-46.6),
		})
		s.requireFieldError(apierr, "latitude")
	})

	s.Run("rejects out of range values", func() {
		_, apierr := s.areas.Create(s.ctx, tenantA, &contract.AreaRequest{
			UnidadeID: t.unidade.ID,
			Nome:      "Pátio",
			Latitude:  ptr(91.0),
			Longitude: ptr(-46.6),
		})
		s.requireFieldError(apierr, "latitude")

		_, apierr = s.areas.Create(s.ctx, tenantA, &contract.AreaRequest{
			UnidadeID: t.unidade.ID,
			Nome:      "Pátio",
			Latitude:  ptr(-23.5),
			Longitude: ptr(-180.5),
		})
		s.requireFieldError(apierr, "longitude")
	})

	s.Run("stores a full pair", func() {
		area, apierr := s.areas.Create(s.ctx, tenantA, &contract.AreaRequest{
			UnidadeID: t.unidade.ID,
			Nome:      "Pátio",
			Latitude:  ptr(-23.5),
			Longitude: ptr(-46.625),
		})
		s.Require().Nil(apierr)
		s.Require().NotNil(area.Latitude)
		s.Require().NotNil(area.Longitude)
		s.InDelta(-23.5, *area.Latitude, 1e-9)
		s.InDelta(-46.625, *area.Longitude, 1e-9)
	})
}

func (s *HierarchySuite) TestAreaJoinsItsParents() {
	t := s.seedTree(tenantA)

	s.Equal(t.empresa.ID, t.area.EmpresaID)
	s.Equal("Empresa", t.area.EmpresaNome)
	s.Equal("Unidade", t.area.UnidadeNome)

	subarea, apierr := s.subareas.Create(s.ctx, tenantA, &contract.SubAreaRequest{AreaID: t.area.ID, Nome: "Caldeiraria"})
	s.Require().Nil(apierr)
	s.Equal("Área", subarea.AreaNome)
	s.Equal(t.unidade.ID, subarea.UnidadeID)
	s.Equal(t.empresa.ID, subarea.EmpresaID)
	s.Equal("Empresa", subarea.EmpresaNome)

	subarea2, apierr := s.subareas2.Create(s.ctx, tenantA, &contract.SubArea2Request{SubAreaID: subarea.ID, Nome: "Forno 1"})
	s.Require().Nil(apierr)
	s.Equal("Caldeiraria", subarea2.SubAreaNome)
	s.Equal(t.area.ID, subarea2.AreaID)
	s.Equal("Área", subarea2.AreaNome)
	s.Equal("Unidade", subarea2.UnidadeNome)
	s.Equal(t.empresa.ID, subarea2.EmpresaID)
}

func (s *HierarchySuite) TestSubAreaRejectsForeignParents() {
	foreign := s.seedTree(tenantB)
	subarea, apierr := s.subareas.Create(s.ctx, tenantB, &contract.SubAreaRequest{AreaID: foreign.area.ID, Nome: "Sub"})
	s.Require().Nil(apierr)

	_, apierr = s.subareas.Create(s.ctx, tenantA, &contract.SubAreaRequest{AreaID: foreign.area.ID, Nome: "Sub"})
	s.Equal(apierror.InvalidAreaError, apierr)

	_, apierr = s.subareas2.Create(s.ctx, tenantA, &contract.SubArea2Request{SubAreaID: subarea.ID, Nome: "Sub 2"})
	s.Equal(apierror.InvalidSubAreaError, apierr)
}

func (s *HierarchySuite) TestAreaUpdateCopiesCompanyOfNewUnit() {
	t := s.seedTree(tenantA)
	other := s.seedEmpresa(tenantA, "Outra")
	otherUnidade := s.seedUnidade(tenantA, other.ID, "Outra unidade")

	updated, apierr := s.areas.Update(s.ctx, tenantA, t.area.ID, &contract.AreaRequest{
		UnidadeID: otherUnidade.ID,
		Nome:      "Área movida",
	})
	s.Require().Nil(apierr)
	s.Equal(other.ID, updated.EmpresaID)
	s.Equal("Outra", updated.EmpresaNome)

	stored, found, err := s.areaRepo.FindStoredEmpresaID(s.ctx, tenantA, t.area.ID)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(other.ID, stored)

	_, apierr = s.areas.Update(s.ctx, tenantA, t.area.ID+100, &contract.AreaRequest{
		UnidadeID: otherUnidade.ID,
		Nome:      "Fantasma",
	})
	s.Equal(apierror.AreaNotFoundError, apierr)
}

// Moving a unit to another company leaves the stored empresa_id of its areas
// behind. Reads still report the current company through the unit.
func (s *HierarchySuite) TestStoredAreaCompanyGoesStale() {
	t := s.seedTree(tenantA)
	other := s.seedEmpresa(tenantA, "Nova dona")

	_, apierr := s.unidades.Update(s.ctx, tenantA, t.unidade.ID, &contract.UnidadeRequest{
		EmpresaID: other.ID,
		Nome:      "Unidade",
	})
	s.Require().Nil(apierr)

	area, apierr := s.areas.GetByID(s.ctx, tenantA, t.area.ID)
	s.Require().Nil(apierr)
	s.Equal(other.ID, area.EmpresaID)
	s.Equal("Nova dona", area.EmpresaNome)

	stored, found, err := s.areaRepo.FindStoredEmpresaID(s.ctx, tenantA, t.area.ID)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(t.empresa.ID, stored)
}
