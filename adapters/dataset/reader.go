// Package dataset loads the school coverage dataset from local CSV or
// Excel files, or from the published remote CSV.
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"measlesmon/domain/school"
	"measlesmon/internal"
	"measlesmon/internal/errors"

	"github.com/xuri/excelize/v2"
)

// FileReader handles reading coverage data from Excel and CSV files
type FileReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewFileReader creates a reader that handles both Excel and CSV files
func NewFileReader(filePath string) *FileReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &FileReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger,
	}
}

// Read loads and normalizes the coverage rows from the file.
func (r *FileReader) Read(ctx context.Context) ([]school.School, error) {
	r.logger.Info("[FileReader] reading %s coverage file: %s", r.fileType, r.filePath)
	start := time.Now()

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.DatasetError("coverage file not found: "+r.filePath, err)
	}

	var (
		schools []school.School
		err     error
	)
	switch r.fileType {
	case "xlsx":
		schools, err = r.readExcel()
	default:
		schools, err = r.readCSV()
	}
	if err != nil {
		return nil, err
	}

	r.logger.Info("[FileReader] loaded %d schools in %.2fms",
		len(schools), float64(time.Since(start).Nanoseconds())/1e6)
	return schools, nil
}

func (r *FileReader) readCSV() ([]school.School, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.DatasetError("failed to open coverage CSV", err)
	}
	defer f.Close()

	return parseCSV(f, r.logger)
}

func (r *FileReader) readExcel() ([]school.School, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.DatasetError("failed to open coverage workbook", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.DatasetError("failed to read sheet "+sheet, err)
	}
	return parseRows(rows, r.logger)
}

func parseCSV(src io.Reader, logger *internal.Logger) ([]school.School, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // header rows sometimes carry trailing notes

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DatasetError("failed to parse coverage CSV", err)
	}
	return parseRows(rows, logger)
}
