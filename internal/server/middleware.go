package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hamstech/backend/internal/auth"
)

// JWTMiddleware verifies the bearer token and stores its claims in the
// request context.
func (s *Server) JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return fail(c, http.StatusUnauthorized, msgAccessDenied)
			}

			// Extract token from "Bearer <token>"
			tokenParts := strings.Fields(authHeader)
			if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
				return fail(c, http.StatusUnauthorized, msgAccessDenied)
			}

			claims, err := s.Tokens.Verify(tokenParts[1])
			if err != nil {
				return fail(c, http.StatusBadRequest, msgInvalidToken)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithClaims(req.Context(), claims)))
			return next(c)
		}
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.Log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}
