package handler

import (
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"net/http"
	"rlk/cmd/internal/utils/apierror"
)

// ErrorHandler renders errors that escape the handlers (unknown routes,
// oversized bodies, recovered panics) in the same {erro} shape the services
// use. Internal details are logged, never sent.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := toErrorResponse(err)
	if resp.Code() >= http.StatusInternalServerError {
		log.Errorf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(resp.Code())
	} else {
		werr = c.JSON(resp.Code(), resp)
	}

	if werr != nil {
		log.Errorf("failed to write error response: %v", werr)
	}
}

func toErrorResponse(err error) apierror.ErrorResponse {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return apierror.InternalServerError
	}

	switch he.Code {
	case http.StatusNotFound:
		return apierror.NotFoundError
	case http.StatusMethodNotAllowed:
		return apierror.MethodNotAllowedError
	case http.StatusRequestEntityTooLarge:
		return apierror.NewSimple(http.StatusRequestEntityTooLarge, "Corpo da requisição excede o limite")
	case http.StatusUnauthorized:
		return apierror.UnauthorizedError
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return apierror.MalformedBodyError
	}

	if he.Code >= http.StatusInternalServerError {
		return apierror.InternalServerError
	}
	return apierror.NewSimple(he.Code, http.StatusText(he.Code))
}
