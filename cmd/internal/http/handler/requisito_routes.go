package handler

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

type RequisitoService interface {
	CrudService[contract.RequisitoRequest, contract.RequisitoResponse]
	CreateCheckin(ctx context.Context, tenantID, requisitoID int64, req *contract.CheckinRequest) (*contract.CheckinResponse, apierror.ErrorResponse)
	ListCheckins(ctx context.Context, tenantID, requisitoID int64) ([]*contract.CheckinResponse, apierror.ErrorResponse)
	Dashboard(ctx context.Context, tenantID int64) (*contract.DashboardResponse, apierror.ErrorResponse)
}

type DefaultRequisitoRoute struct {
	*DefaultCrudRoute[contract.RequisitoRequest, contract.RequisitoResponse]
	RequisitoService RequisitoService
}

func NewRequisitoDefault(svc RequisitoService) *DefaultRequisitoRoute {
	return &DefaultRequisitoRoute{
		DefaultCrudRoute: NewCrudDefault[contract.RequisitoRequest, contract.RequisitoResponse](svc),
		RequisitoService: svc,
	}
}

func (r *DefaultRequisitoRoute) Mount(g *echo.Group) {
	g.GET("/dashboard", r.Dashboard)
	r.DefaultCrudRoute.Mount(g)
	g.GET("/:id/checkins", r.ListCheckins)
	g.POST("/:id/checkins", r.CreateCheckin)
}

func (r *DefaultRequisitoRoute) Dashboard(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := r.RequisitoService.Dashboard(c.Request().Context(), principal.TenantID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *DefaultRequisitoRoute) ListCheckins(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	checkins, apierr := r.RequisitoService.ListCheckins(c.Request().Context(), principal.TenantID, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, checkins)
}

func (r *DefaultRequisitoRoute) CreateCheckin(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.CheckinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	checkin, apierr := r.RequisitoService.CreateCheckin(c.Request().Context(), principal.TenantID, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, checkin)
}
