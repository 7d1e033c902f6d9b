package middleware

import (
	"net/http"
	"strings"

	"careerboost-api/pkg/config"
	"careerboost-api/pkg/jwtutil"
	"careerboost-api/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates Supabase-issued bearer tokens. When no secret is
// configured the middleware passes every request through, matching the
// original open deployment; with a secret set, /api routes require a valid
// token and the Supabase user id and email are placed in the context.
func AuthMiddleware(cfg *config.AuthConfig) echo.MiddlewareFunc {
	jwtUtil := jwtutil.NewJWTUtil(cfg.SupabaseJWTSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.SupabaseJWTSecret == "" {
				return next(c)
			}

			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Token validation failed", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set("supabase_id", claims.Subject)
			c.Set("email", claims.Email)

			return next(c)
		}
	}
}
