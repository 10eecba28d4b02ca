package middleware

import (
	"net/http"

	"metrocontratos/cmd/internal/utils"
	"metrocontratos/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type AuthMiddlewareConfig struct {
	// Validate checks the raw Authorization header. Defaults to
	// utils.ValidateToken.
	Validate func(header string) (*utils.TokenData, error)
}

// NewAuthMiddleware creates the handler with dependencies injected
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	validate := utils.ValidateToken
	if cfg != nil && cfg.Validate != nil {
		validate = cfg.Validate
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := validate(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				log.Debugf("rejected token on %s: %v", c.Request().URL.Path, err)
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			c.Set(utils.TokenContextKey, tokenData)
			c.Set("sub", tokenData.Sub)
			return next(c)
		}
	}
}
