package handler

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

type ClassificacaoService interface {
	List(ctx context.Context, tenantID int64) ([]*contract.ClassificacaoResponse, apierror.ErrorResponse)
	Create(ctx context.Context, tenantID int64, req *contract.ClassificacaoRequest) (*contract.ClassificacaoResponse, apierror.ErrorResponse)
}

type DefaultClassificacaoRoute struct {
	ClassificacaoService ClassificacaoService
}

func NewClassificacaoDefault(svc ClassificacaoService) *DefaultClassificacaoRoute {
	return &DefaultClassificacaoRoute{ClassificacaoService: svc}
}

func (r *DefaultClassificacaoRoute) Mount(g *echo.Group) {
	g.GET("", r.List)
	g.POST("", r.Create)
}

func (r *DefaultClassificacaoRoute) List(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	rows, apierr := r.ClassificacaoService.List(c.Request().Context(), principal.TenantID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, rows)
}

func (r *DefaultClassificacaoRoute) Create(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ClassificacaoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	row, apierr := r.ClassificacaoService.Create(c.Request().Context(), principal.TenantID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, row)
}
