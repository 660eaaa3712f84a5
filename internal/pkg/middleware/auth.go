package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/tukangku/server/internal/pkg/jwt"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
)

// AccessTokenCookie is the cookie carrying the bearer token for browser clients
const AccessTokenCookie = "accessToken"

// JWTAuthMiddleware creates a middleware for JWT authentication. The token is
// read from the Authorization header or, for browser clients, from the
// accessToken cookie.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c)
			if tokenString == "" {
				return utils.UnauthorizedResponse(c, "Access denied, no token provided")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set("user_id", userID)
			c.Set("user_role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequireRole restricts a route to one role; it must run after JWTAuthMiddleware
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if UserRole(c) != role {
				return utils.ForbiddenResponse(c, fmt.Sprintf("Requires %s role", role))
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by JWTAuthMiddleware
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}

// UserRole returns the authenticated user role set by JWTAuthMiddleware
func UserRole(c echo.Context) string {
	role, _ := c.Get("user_role").(string)
	return role
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
