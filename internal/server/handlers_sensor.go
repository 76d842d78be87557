package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hamstech/backend/internal/models"
	"github.com/hamstech/backend/internal/repository"
)

type sensorReadingRequest struct {
	DeviceID    *uint    `json:"device_id" example:"1"`
	Temperature *float64 `json:"temperature" example:"22.5"`
	Humidity    *float64 `json:"humidity" example:"48"`
}

// CreateSensorReading godoc
// @Summary Ingest a sensor reading
// @Description The timestamp is assigned by the server. device_id is not checked against registered devices.
// @Tags Sensor data
// @Accept json
// @Produce json
// @Param request body sensorReadingRequest true "Reading"
// @Success 201 {object} createdResponse
// @Failure 400 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /sensor-data [post]
func (s *Server) CreateSensorReading(c echo.Context) error {
	var req sensorReadingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid payload")
	}
	if req.DeviceID == nil || req.Temperature == nil || req.Humidity == nil {
		return fail(c, http.StatusBadRequest, msgMissingData)
	}

	r := &models.SensorReading{
		DeviceID:    *req.DeviceID,
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
	}
	if err := s.Readings.Create(c.Request().Context(), r); err != nil {
		return s.serverError(c, err)
	}
	s.Mirror.RecordReading(*r)

	return c.JSON(http.StatusCreated, createdResponse{Success: true, Message: "Reading stored", ID: r.ID})
}

// ListSensorReadings godoc
// @Summary List sensor readings, newest first
// @Tags Sensor data
// @Produce json
// @Param device_id query int false "Only readings of this device"
// @Param limit query int false "Maximum rows (default 100)"
// @Success 200 {array} models.SensorReading
// @Failure 400 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /sensor-data [get]
func (s *Server) ListSensorReadings(c echo.Context) error {
	var filter repository.ReadingFilter
	if v := c.QueryParam("device_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return fail(c, http.StatusBadRequest, "Invalid device_id")
		}
		dev := uint(id)
		filter.DeviceID = &dev
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fail(c, http.StatusBadRequest, "Invalid limit")
		}
		filter.Limit = n
	}

	readings, err := s.Readings.List(c.Request().Context(), filter)
	if err != nil {
		return s.serverError(c, err)
	}
	return c.JSON(http.StatusOK, readings)
}

// GetSensorReading godoc
// @Summary Get a sensor reading
// @Tags Sensor data
// @Produce json
// @Param id path int true "Reading ID"
// @Success 200 {object} models.SensorReading
// @Failure 404 {object} simpleResponse
// @Router /sensor-data/{id} [get]
func (s *Server) GetSensorReading(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	r, err := s.Readings.Get(c.Request().Context(), id)
	if err != nil {
		return s.respondError(c, err, "Reading not found")
	}
	return c.JSON(http.StatusOK, r)
}
