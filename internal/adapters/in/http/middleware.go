package http

import (
	"net/http"

	"hangar/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// shopIDHeader carries the caller's shop id. Upstream auth resolves the
// session to a shop and injects this header; the service trusts it.
const shopIDHeader = "X-Shop-ID"

// shopIDContextKey is the echo context key holding the resolved kernel.UUID.
const shopIDContextKey = "shopID"

// TenantMiddleware resolves the caller's shop from the X-Shop-ID header.
// Requests without a well-formed shop id are rejected with 401; the shop id
// is never taken from the request body or query string.
func TenantMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(shopIDHeader)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			}

			shopID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			}

			c.Set(shopIDContextKey, shopID)
			return next(c)
		}
	}
}

func shopIDFromContext(c echo.Context) (kernel.UUID, bool) {
	shopID, ok := c.Get(shopIDContextKey).(kernel.UUID)
	return shopID, ok
}
