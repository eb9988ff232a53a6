package handler

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

type InboxService interface {
	List(ctx context.Context, tenantID int64, query *contract.InboxQuery) ([]*contract.InboxResponse, apierror.ErrorResponse)
	UpdateStatus(ctx context.Context, tenantID, id int64, req *contract.InboxStatusRequest) (*contract.InboxResponse, apierror.ErrorResponse)
}

type DefaultInboxRoute struct {
	InboxService InboxService
}

func NewInboxDefault(svc InboxService) *DefaultInboxRoute {
	return &DefaultInboxRoute{InboxService: svc}
}

func (i *DefaultInboxRoute) Mount(g *echo.Group) {
	g.GET("", i.List)
	g.PATCH("/:id/status", i.UpdateStatus)
}

func (i *DefaultInboxRoute) List(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var query contract.InboxQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	rows, apierr := i.InboxService.List(c.Request().Context(), principal.TenantID, &query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, rows)
}

func (i *DefaultInboxRoute) UpdateStatus(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.InboxStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	row, apierr := i.InboxService.UpdateStatus(c.Request().Context(), principal.TenantID, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, row)
}
