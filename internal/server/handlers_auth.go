package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hamstech/backend/internal/auth"
	"github.com/hamstech/backend/internal/repository"
	"github.com/hamstech/backend/internal/utils"
)

type registerRequest struct {
	Name     string `json:"name" example:"Ana"`
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret"`
	Role     string `json:"role" example:"normal"`
}

type createdResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Registration successful"`
	ID      uint   `json:"id" example:"1"`
}

type loginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret"`
}

type loginResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Login successful"`
	Token     string    `json:"token"`
	Redirect  string    `json:"redirect" example:"/dashboard"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register godoc
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body registerRequest true "User registration data"
// @Success 201 {object} createdResponse
// @Failure 400 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /register [post]
func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Name = utils.SanitizeString(req.Name)
	req.Email = utils.SanitizeString(req.Email)

	if req.Email != "" && !utils.ValidateEmail(req.Email) {
		return fail(c, http.StatusBadRequest, "Invalid email address format")
	}

	user, err := s.Auth.Register(c.Request().Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return s.respondError(c, err, "")
	}

	s.Log.Info("user registered", "user_id", user.ID, "role", user.Role)
	return c.JSON(http.StatusCreated, createdResponse{
		Success: true,
		Message: "Registration successful",
		ID:      user.ID,
	})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer token valid for one hour. Three failed attempts lock the email for five minutes.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} simpleResponse
// @Failure 401 {object} simpleResponse
// @Failure 403 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /login [post]
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}

	res, err := s.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrIncorrectPassword) || errors.Is(err, auth.ErrTooManyAttempts) {
			s.Log.Warn("login rejected", "email", auth.NormalizeEmail(req.Email), "reason", err.Error(), "ip", c.RealIP())
		}
		return s.respondError(c, err, "")
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     res.Token,
		Redirect:  res.Redirect,
		ExpiresAt: res.ExpiresAt.UTC(),
	})
}

// Profile godoc
// @Summary Current user profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 400 {object} simpleResponse
// @Failure 401 {object} simpleResponse
// @Failure 404 {object} simpleResponse
// @Router /profile [get]
func (s *Server) Profile(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c.Request().Context())
	if !ok {
		return s.respondError(c, auth.ErrUnauthenticated, "")
	}

	user, err := s.Users.Get(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return s.serverError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
