package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hamstech/backend/internal/importer"
)

type importResponse struct {
	Success  bool   `json:"success" example:"true"`
	Message  string `json:"message" example:"Users imported"`
	Inserted int64  `json:"inserted" example:"12"`
	Skipped  int    `json:"skipped" example:"0"`
}

// ImportUsers godoc
// @Summary Bulk import users from a spreadsheet
// @Description Accepts .xlsx or .csv with name, email, password and optional role columns. All rows are written in one statement.
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet"
// @Success 200 {object} importResponse
// @Failure 400 {object} simpleResponse
// @Failure 500 {object} simpleResponse
// @Router /import-excel [post]
func (s *Server) ImportUsers(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "No file uploaded")
	}
	f, err := fh.Open()
	if err != nil {
		return s.serverError(c, err)
	}
	defer f.Close()

	rows, err := importer.Parse(f, fh.Filename)
	if err != nil {
		if errors.Is(err, importer.ErrMissingColumn) || errors.Is(err, importer.ErrUnsupportedFormat) {
			return s.respondError(c, err, "")
		}
		return s.serverError(c, err)
	}
	if len(rows) == 0 {
		return s.respondError(c, importer.ErrEmptyInput, "")
	}

	res, err := s.Importer.Import(c.Request().Context(), rows)
	if err != nil {
		return s.respondError(c, err, "")
	}

	s.Log.Info("users imported", "file", fh.Filename, "inserted", res.Inserted, "skipped", res.Skipped)
	return c.JSON(http.StatusOK, importResponse{
		Success:  true,
		Message:  "Users imported",
		Inserted: res.Inserted,
		Skipped:  res.Skipped,
	})
}
