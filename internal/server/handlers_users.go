package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseID reads the :id path parameter. ok is false when the response has
// already been written.
func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		_ = fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 404 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /users [get]
func (s *Server) ListUsers(c echo.Context) error {
	users, err := s.Users.List(c.Request().Context())
	if err != nil {
		return s.serverError(c, err)
	}
	if len(users) == 0 {
		return fail(c, http.StatusNotFound, "No users found")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} simpleResponse
// @Router /users/{id} [get]
func (s *Server) GetUser(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	user, err := s.Users.Get(c.Request().Context(), id)
	if err != nil {
		return s.respondError(c, err, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} simpleResponse
// @Failure 404 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /users/{id} [delete]
func (s *Server) DeleteUser(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := s.Users.Delete(c.Request().Context(), id); err != nil {
		return s.respondError(c, err, "User not found")
	}
	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "User deleted"})
}
