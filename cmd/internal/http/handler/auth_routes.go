package handler

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/utils/apierror"
)

type AuthService interface {
	Register(ctx context.Context, req *contract.RegisterRequest) (*contract.UsuarioResponse, apierror.ErrorResponse)
	Login(ctx context.Context, req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse)
}

// DefaultAuthRoute serves the only routes reachable without a token.
type DefaultAuthRoute struct {
	AuthService AuthService
}

func NewAuthDefault(svc AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{AuthService: svc}
}

func (a *DefaultAuthRoute) Mount(g *echo.Group) {
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

func (a *DefaultAuthRoute) Register(c echo.Context) error {
	var req contract.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := a.AuthService.Register(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, user)
}

func (a *DefaultAuthRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AuthService.Login(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
