package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyInput        = errors.New("no rows to import")
	ErrMissingColumn     = errors.New("missing required column")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Row is one user-shaped spreadsheet row. Cells are trimmed.
type Row struct {
	Line     int
	Name     string
	Email    string
	Password string
	Role     string
}

var headerAliases = map[string]string{
	"name":       "name",
	"nombre":     "name",
	"email":      "email",
	"correo":     "email",
	"mail":       "email",
	"password":   "password",
	"contraseña": "password",
	"contrasena": "password",
	"role":       "role",
	"rol":        "role",
}

// Parse reads rows from an .xlsx workbook (first sheet) or a .csv file.
// The first non-empty row is the header.
func Parse(r io.Reader, filename string) ([]Row, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		records, err = readWorkbook(r)
	case ".csv":
		records, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return toRows(records)
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func toRows(records [][]string) ([]Row, error) {
	header := -1
	for i, rec := range records {
		if !blank(rec) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, cell := range records[header] {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff")))
		if field, ok := headerAliases[key]; ok {
			if _, dup := cols[field]; !dup {
				cols[field] = i
			}
		}
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := cols[field]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, field)
		}
	}

	cell := func(rec []string, field string) string {
		i, ok := cols[field]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []Row
	for i := header + 1; i < len(records); i++ {
		rec := records[i]
		if blank(rec) {
			continue
		}
		rows = append(rows, Row{
			Line:     i + 1,
			Name:     cell(rec, "name"),
			Email:    cell(rec, "email"),
			Password: cell(rec, "password"),
			Role:     cell(rec, "role"),
		})
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
