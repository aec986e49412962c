package http

import (
	"net/http"

	"chefbook/internal/adapters/in/auth"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// JWTMiddleware resolves the caller's principal from the Authorization
// header and stores it on the request context. Requests without a valid
// token are rejected before any handler runs.
func JWTMiddleware(parser *auth.TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := parser.ParseBearer(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing token",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func principalFrom(ctx echo.Context) (auth.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(auth.Principal)
	return principal, ok
}
