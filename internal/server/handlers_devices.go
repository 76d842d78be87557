package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hamstech/backend/internal/models"
	"github.com/hamstech/backend/internal/utils"
)

type deviceRequest struct {
	Name  *string `json:"name" example:"Cage sensor"`
	Type  *string `json:"type" example:"DHT22"`
	Model *string `json:"model" example:"v2"`
}

// ListDevices godoc
// @Summary List devices
// @Tags Devices
// @Produce json
// @Success 200 {array} models.Device
// @Failure 500 {object} simpleResponse
// @Router /devices [get]
func (s *Server) ListDevices(c echo.Context) error {
	devices, err := s.Devices.List(c.Request().Context())
	if err != nil {
		return s.serverError(c, err)
	}
	return c.JSON(http.StatusOK, devices)
}

// GetDevice godoc
// @Summary Get a device
// @Tags Devices
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} models.Device
// @Failure 404 {object} simpleResponse
// @Router /devices/{id} [get]
func (s *Server) GetDevice(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	d, err := s.Devices.Get(c.Request().Context(), id)
	if err != nil {
		return s.respondError(c, err, "Device not found")
	}
	return c.JSON(http.StatusOK, d)
}

// CreateDevice godoc
// @Summary Register a device
// @Tags Devices
// @Accept json
// @Produce json
// @Param request body deviceRequest true "Device"
// @Success 201 {object} createdResponse
// @Failure 400 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /devices [post]
func (s *Server) CreateDevice(c echo.Context) error {
	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	if req.Name == nil || utils.SanitizeString(*req.Name) == "" {
		return fail(c, http.StatusBadRequest, msgMissingData)
	}

	d := &models.Device{Name: utils.SanitizeString(*req.Name)}
	if req.Type != nil {
		d.Type = utils.SanitizeString(*req.Type)
	}
	if req.Model != nil {
		d.Model = utils.SanitizeString(*req.Model)
	}
	if err := s.Devices.Create(c.Request().Context(), d); err != nil {
		return s.serverError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{Success: true, Message: "Device created", ID: d.ID})
}

// UpdateDevice godoc
// @Summary Update a device
// @Tags Devices
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Param request body deviceRequest true "Fields to change"
// @Success 200 {object} simpleResponse
// @Failure 400 {object} simpleResponse
// @Failure 404 {object} simpleResponse
// @Router /devices/{id} [put]
func (s *Server) UpdateDevice(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}

	fields := map[string]any{}
	if req.Name != nil {
		name := utils.SanitizeString(*req.Name)
		if name == "" {
			return fail(c, http.StatusBadRequest, msgMissingData)
		}
		fields["name"] = name
	}
	if req.Type != nil {
		fields["type"] = utils.SanitizeString(*req.Type)
	}
	if req.Model != nil {
		fields["model"] = utils.SanitizeString(*req.Model)
	}
	if len(fields) == 0 {
		return fail(c, http.StatusBadRequest, msgMissingData)
	}

	if err := s.Devices.Update(c.Request().Context(), id, fields); err != nil {
		return s.respondError(c, err, "Device not found")
	}
	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Device updated"})
}

// DeleteDevice godoc
// @Summary Delete a device
// @Tags Devices
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} simpleResponse
// @Failure 404 {object} simpleResponse
// @Router /devices/{id} [delete]
func (s *Server) DeleteDevice(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := s.Devices.Delete(c.Request().Context(), id); err != nil {
		return s.respondError(c, err, "Device not found")
	}
	return c.JSON(http.StatusOK, simpleResponse{Success: true, Message: "Device deleted"})
}
