package handler

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

type UsuarioService interface {
	List(ctx context.Context, tenantID int64) ([]*contract.UsuarioResponse, apierror.ErrorResponse)
	Create(ctx context.Context, tenantID int64, req *contract.UsuarioRequest) (*contract.UsuarioResponse, apierror.ErrorResponse)
}

type DefaultUsuarioRoute struct {
	UsuarioService UsuarioService
}

func NewUsuarioDefault(svc UsuarioService) *DefaultUsuarioRoute {
	return &DefaultUsuarioRoute{UsuarioService: svc}
}

func (u *DefaultUsuarioRoute) Mount(g *echo.Group) {
	g.GET("", u.List)
	g.POST("", u.Create)
}

func (u *DefaultUsuarioRoute) List(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	users, apierr := u.UsuarioService.List(c.Request().Context(), principal.TenantID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, users)
}

func (u *DefaultUsuarioRoute) Create(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UsuarioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := u.UsuarioService.Create(c.Request().Context(), principal.TenantID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, user)
}
