package handler

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

// CrudService is the tenant-scoped resource shape shared by the hierarchy,
// regulatory documents and requirements.
type CrudService[Req, Resp any] interface {
	List(ctx context.Context, tenantID int64) ([]*Resp, apierror.ErrorResponse)
	GetByID(ctx context.Context, tenantID, id int64) (*Resp, apierror.ErrorResponse)
	Create(ctx context.Context, tenantID int64, req *Req) (*Resp, apierror.ErrorResponse)
	Update(ctx context.Context, tenantID, id int64, req *Req) (*Resp, apierror.ErrorResponse)
	Delete(ctx context.Context, tenantID, id int64) apierror.ErrorResponse
}

type DefaultCrudRoute[Req, Resp any] struct {
	Service CrudService[Req, Resp]
}

func NewCrudDefault[Req, Resp any](svc CrudService[Req, Resp]) *DefaultCrudRoute[Req, Resp] {
	return &DefaultCrudRoute[Req, Resp]{Service: svc}
}

// Mount registers the five routes of the resource on g.
func (r *DefaultCrudRoute[Req, Resp]) Mount(g *echo.Group) {
	g.GET("", r.List)
	g.POST("", r.Create)
	g.GET("/:id", r.Get)
	g.PUT("/:id", r.Update)
	g.DELETE("/:id", r.Delete)
}

func (r *DefaultCrudRoute[Req, Resp]) List(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	rows, apierr := r.Service.List(c.Request().Context(), principal.TenantID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, rows)
}

func (r *DefaultCrudRoute[Req, Resp]) Get(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	row, apierr := r.Service.GetByID(c.Request().Context(), principal.TenantID, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, row)
}

func (r *DefaultCrudRoute[Req, Resp]) Create(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	req := new(Req)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	row, apierr := r.Service.Create(c.Request().Context(), principal.TenantID, req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, row)
}

func (r *DefaultCrudRoute[Req, Resp]) Update(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	req := new(Req)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	row, apierr := r.Service.Update(c.Request().Context(), principal.TenantID, id, req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, row)
}

func (r *DefaultCrudRoute[Req, Resp]) Delete(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := r.Service.Delete(c.Request().Context(), principal.TenantID, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
