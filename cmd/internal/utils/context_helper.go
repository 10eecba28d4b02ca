package utils

import (
	"github.com/labstack/echo/v4"
)

const TokenContextKey = "token"

// RequesterFromContext returns the token subject set by the auth middleware,
// or "anonymous" when authentication is disabled.
func RequesterFromContext(c echo.Context) string {
	data, ok := c.Get(TokenContextKey).(*TokenData)
	if !ok || data == nil || data.Sub == "" {
		return "anonymous"
	}
	return data.Sub
}
