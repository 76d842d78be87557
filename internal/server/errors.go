package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hamstech/backend/internal/auth"
	"github.com/hamstech/backend/internal/importer"
	"github.com/hamstech/backend/internal/repository"
)

type simpleResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Operation successful"`
}

const (
	msgMissingData  = "Missing data"
	msgAccessDenied = "Access denied"
	msgInvalidToken = "Invalid token"
	msgServerError  = "Server error"
)

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, simpleResponse{Success: false, Message: message})
}

// respondError maps a domain error onto one response. Anything unmapped is
// logged and answered with a generic 500.
func (s *Server) respondError(c echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, auth.ErrMissingData):
		return fail(c, http.StatusBadRequest, msgMissingData)
	case errors.Is(err, auth.ErrInvalidRole):
		return fail(c, http.StatusBadRequest, "Invalid role")
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrAccessDenied):
		return fail(c, http.StatusUnauthorized, msgAccessDenied)
	case errors.Is(err, auth.ErrInvalidToken):
		return fail(c, http.StatusBadRequest, msgInvalidToken)
	case errors.Is(err, auth.ErrUserNotFound):
		return fail(c, http.StatusUnauthorized, "User not found")
	case errors.Is(err, auth.ErrIncorrectPassword):
		return fail(c, http.StatusUnauthorized, "Incorrect password")
	case errors.Is(err, auth.ErrTooManyAttempts):
		return fail(c, http.StatusForbidden, "Too many failed attempts, try again later")
	case errors.Is(err, repository.ErrDuplicate):
		return fail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, repository.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = "Not found"
		}
		return fail(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, importer.ErrEmptyInput):
		return fail(c, http.StatusBadRequest, "The file contains no rows")
	case errors.Is(err, importer.ErrMissingColumn), errors.Is(err, importer.ErrUnsupportedFormat):
		return fail(c, http.StatusBadRequest, err.Error())
	}
	return s.serverError(c, err)
}

func (s *Server) serverError(c echo.Context, err error) error {
	s.Log.Error("request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return fail(c, http.StatusInternalServerError, msgServerError)
}

// httpErrorHandler renders router errors (unknown route, rate limit,
// oversized body) in the same envelope as handler errors.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = s.serverError(c, err)
		return
	}
	msg := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok && m != "" {
		msg = m
	}
	if he.Code >= http.StatusInternalServerError {
		s.Log.Error("request failed", "path", c.Path(), "error", err)
		msg = msgServerError
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = fail(c, he.Code, msg)
}
