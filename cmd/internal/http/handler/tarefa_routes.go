package handler

import (
	"context"
	"github.com/labstack/echo/v4"
	"net/http"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

type TarefaService interface {
	List(ctx context.Context, tenantID, requisitoID int64) ([]*contract.TarefaResponse, apierror.ErrorResponse)
	Create(ctx context.Context, tenantID, requisitoID int64, req *contract.TarefaRequest) (*contract.TarefaResponse, apierror.ErrorResponse)
	UpdateStatus(ctx context.Context, tenantID, requisitoID, id int64, req *contract.TarefaStatusRequest) (*contract.TarefaResponse, apierror.ErrorResponse)
}

type DefaultTarefaRoute struct {
	TarefaService TarefaService
}

func NewTarefaDefault(svc TarefaService) *DefaultTarefaRoute {
	return &DefaultTarefaRoute{TarefaService: svc}
}

// Mount registers the task routes under the requirement group g.
func (t *DefaultTarefaRoute) Mount(g *echo.Group) {
	g.GET("/:id/tarefas", t.List)
	g.POST("/:id/tarefas", t.Create)
	g.PUT("/:id/tarefas/:tarefaId", t.UpdateStatus)
}

func (t *DefaultTarefaRoute) List(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	requisitoID, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	tarefas, apierr := t.TarefaService.List(c.Request().Context(), principal.TenantID, requisitoID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tarefas)
}

func (t *DefaultTarefaRoute) Create(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	requisitoID, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.TarefaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	tarefa, apierr := t.TarefaService.Create(c.Request().Context(), principal.TenantID, requisitoID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, tarefa)
}

func (t *DefaultTarefaRoute) UpdateStatus(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	requisitoID, apierr := utils.ParseID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	id, apierr := utils.ParseID(c, "tarefaId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.TarefaStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	tarefa, apierr := t.TarefaService.UpdateStatus(c.Request().Context(), principal.TenantID, requisitoID, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tarefa)
}
