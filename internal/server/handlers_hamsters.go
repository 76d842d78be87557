package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hamstech/backend/internal/models"
	"github.com/hamstech/backend/internal/utils"
)

// hamsterRequest is shared by create and update. Absent fields are left
// untouched on update.
type hamsterRequest struct {
	UserID      *uint    `json:"user_id" example:"1"`
	Name        *string  `json:"name" example:"Bolita"`
	Breed       *string  `json:"breed" example:"Syrian"`
	Age         *int     `json:"age" example:"2"`
	Weight      *float64 `json:"weight" example:"120.5"`
	HealthNotes *string  `json:"health_notes"`
	DeviceID    *uint    `json:"device_id"`
}

func (r *hamsterRequest) fields() map[string]any {
	f := map[string]any{}
	if r.UserID != nil {
		f["user_id"] = *r.UserID
	}
	if r.Name != nil {
		f["name"] = utils.SanitizeString(*r.Name)
	}
	if r.Breed != nil {
		f["breed"] = utils.SanitizeString(*r.Breed)
	}
	if r.Age != nil {
		f["age"] = *r.Age
	}
	if r.Weight != nil {
		f["weight"] = *r.Weight
	}
	if r.HealthNotes != nil {
		f["health_notes"] = *r.HealthNotes
	}
	if r.DeviceID != nil {
		f["device_id"] = *r.DeviceID
	}
	return f
}

// checkRefs rejects requests pointing at users or devices that do not
// exist. ok is false when the response has already been written.
func (s *Server) checkRefs(c echo.Context, req *hamsterRequest) (bool, error) {
	ctx := c.Request().Context()
	if req.UserID != nil {
		exists, err := s.Users.Exists(ctx, *req.UserID)
		if err != nil {
			return false, s.serverError(c, err)
		}
		if !exists {
			return false, fail(c, http.StatusBadRequest, "User ID not found")
		}
	}
	if req.DeviceID != nil {
		exists, err := s.Devices.Exists(ctx, *req.DeviceID)
		if err != nil {
			return false, s.serverError(c, err)
		}
		if !exists {
			return false, fail(c, http.StatusBadRequest, "Device ID not found")
		}
	}
	return true, nil
}

// ListHamsters godoc
// @Summary List hamsters
// @Tags Hamsters
// @Produce json
// @Success 200 {array} models.Hamster
// @Failure 500 {object} simpleResponse
// @Router /hamsters [get]
func (s *Server) ListHamsters(c echo.Context) error {
	hamsters, err := s.Hamsters.List(c.Request().Context())
	if err != nil {
		return s.serverError(c, err)
	}
	return c.JSON(http.StatusOK, hamsters)
}

// GetHamster godoc
// @Summary Get a hamster
// @Tags Hamsters
// @Produce json
// @Param id path int true "Hamster ID"
// @Success 200 {object} models.Hamster
// @Failure 404 {object} simpleResponse
// @Router /hamsters/{id} [get]
func (s *Server) GetHamster(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	h, err := s.Hamsters.Get(c.Request().Context(), id)
	if err != nil {
		return s.respondError(c, err, "Hamster not found")
	}
	return c.JSON(http.StatusOK, h)
}

// CreateHamster godoc
// @Summary Create a hamster
// @Tags Hamsters
// @Accept json
// @Produce json
// @Param request body hamsterRequest true "Hamster"
// @Success 201 {object} createdResponse
// @Failure 400 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /hamsters [post]
func (s *Server) CreateHamster(c echo.Context) error {
	var req hamsterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	if req.UserID == nil || req.Name == nil || strings.TrimSpace(*req.Name) == "" ||
		req.Breed == nil || req.Age == nil || req.Weight == nil {
		return fail(c, http.StatusBadRequest, msgMissingData)
	}

	ctx := c.Request().Context()
	if ok, err := s.checkRefs(c, &req); !ok {
		return err
	}

	h := &models.Hamster{
		UserID:      *req.UserID,
		Name:        utils.SanitizeString(*req.Name),
		Breed:       utils.SanitizeString(*req.Breed),
		Age:         *req.Age,
		Weight:      *req.Weight,
		HealthNotes: req.HealthNotes,
		DeviceID:    req.DeviceID,
	}
	if err := s.Hamsters.Create(ctx, h); err != nil {
		return s.serverError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{Success: true, Message: "Hamster created", ID: h.ID})
}

// UpdateHamster godoc
// @Summary Update a hamster
// @Description Partial update; user_id and device_id must reference existing rows.
// @Tags Hamsters
// @Accept json
// @Produce json
// @Param id path int true "Hamster ID"
// @Param request body hamsterRequest true "Fields to change"
// @Success 200 {object} simpleResponse
// @Failure 400 {object} simpleResponse
// @Failure 404 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /hamsters/{id} [put]
func (s *Server) UpdateHamster(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var req hamsterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	fields := req.fields()
	if len(fields) == 0 {
		return fail(c, http.StatusBadRequest, msgMissingData)
	}
	if name, set := fields["name"]; set && name == "" {
		return fail(c, http.StatusBadRequest, msgMissingData)
	}

	ctx := c.Request().Context()
	if ok, err := s.checkRefs(c, &req); !ok {
		return err
	}
	if err := s.Hamsters.Update(ctx, id, fields); err != nil {
		return s.respondError(c, err, "Hamster not found")
	}
	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Hamster updated"})
}

// DeleteHamster godoc
// @Summary Delete a hamster
// @Tags Hamsters
// @Produce json
// @Param id path int true "Hamster ID"
// @Success 200 {object} simpleResponse
// @Failure 404 {object} simpleResponse
// @Router /hamsters/{id} [delete]
func (s *Server) DeleteHamster(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := s.Hamsters.Delete(c.Request().Context(), id); err != nil {
		return s.respondError(c, err, "Hamster not found")
	}
	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Hamster deleted"})
}
