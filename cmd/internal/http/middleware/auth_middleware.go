package middleware

import (
	"errors"
	"github.com/labstack/echo/v4"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

type AuthMiddlewareConfig struct {
	Secret []byte
}

// NewAuthMiddleware resolves the bearer token into a principal and stores it
// in the echo context under utils.PrincipalKey. Nothing is read from the
// database: the token alone decides the tenant.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				apierr := apierror.MalformedTokenError
				if errors.Is(err, utils.ErrMissingToken) {
					apierr = apierror.MissingTokenError
				}
				return c.JSON(apierr.Code(), apierr)
			}

			principal, err := utils.ValidateToken(cfg.Secret, token)
			if err != nil {
				return c.JSON(apierror.InvalidTokenError.Code(), apierror.InvalidTokenError)
			}

			c.Set(utils.PrincipalKey, principal)
			return next(c)
		}
	}
}
