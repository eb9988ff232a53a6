package handler

import (
	"context"
	"github.com/labstack/echo/v4"
	"mime/multipart"
	"net/http"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

type UploadService interface {
	UploadCheckinFile(ctx context.Context, tenantID int64, fileHeader *multipart.FileHeader) (*contract.UploadResponse, apierror.ErrorResponse)
}

type DefaultUploadRoute struct {
	UploadService UploadService
}

func NewUploadDefault(svc UploadService) *DefaultUploadRoute {
	return &DefaultUploadRoute{UploadService: svc}
}

func (u *DefaultUploadRoute) Mount(g *echo.Group) {
	g.POST("/checkins", u.UploadCheckin)
}

func (u *DefaultUploadRoute) UploadCheckin(c echo.Context) error {
	principal, cerr := utils.GetPrincipalFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MissingUploadFileError)
	}

	resp, apierr := u.UploadService.UploadCheckinFile(c.Request().Context(), principal.TenantID, fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}
