package dataset

import (
	"strconv"
	"strings"

	"measlesmon/domain/school"
	"measlesmon/internal"
	"measlesmon/internal/errors"
)

// Dataset column names, as published in the ADHS coverage file.
const (
	colSchoolName = "SCHOOL NAME"
	colCounty     = "COUNTY"
	colEnrolled   = "ENROLLED"
	colImmuneMMR  = "IMMUNE_MMR"
)

// parseRows turns raw header+data rows into normalized school records.
// Unparsable rows are skipped with a warning; a dataset with no usable
// rows at all is an error.
func parseRows(rows [][]string, logger *internal.Logger) ([]school.School, error) {
	if len(rows) < 2 {
		return nil, errors.DatasetError("coverage data has no rows", nil)
	}

	cols := indexColumns(rows[0])
	nameIdx, okName := cols[colSchoolName]
	enrolledIdx, okEnrolled := cols[colEnrolled]
	immuneIdx, okImmune := cols[colImmuneMMR]
	if !okName || !okEnrolled || !okImmune {
		return nil, errors.DatasetError("coverage data missing required columns (SCHOOL NAME, ENROLLED, IMMUNE_MMR)", nil)
	}
	countyIdx, hasCounty := cols[colCounty]

	schools := make([]school.School, 0, len(rows)-1)
	skipped := 0
	for i, row := range rows[1:] {
		s, ok := parseRow(row, nameIdx, enrolledIdx, immuneIdx, countyIdx, hasCounty)
		if !ok {
			skipped++
			logger.Warn("[dataset] skipping malformed row %d", i+2)
			continue
		}
		schools = append(schools, s.Normalize())
	}

	if len(schools) == 0 {
		return nil, errors.DatasetError("coverage data contained no usable rows", nil)
	}
	if skipped > 0 {
		logger.Warn("[dataset] skipped %d malformed rows", skipped)
	}
	return schools, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	return cols
}

func parseRow(row []string, nameIdx, enrolledIdx, immuneIdx, countyIdx int, hasCounty bool) (school.School, bool) {
	var s school.School

	if nameIdx >= len(row) || enrolledIdx >= len(row) || immuneIdx >= len(row) {
		return s, false
	}

	s.Name = strings.TrimSpace(row[nameIdx])
	if s.Name == "" {
		return s, false
	}
	if hasCounty && countyIdx < len(row) {
		s.County = strings.TrimSpace(row[countyIdx])
	}

	enrolled, err := strconv.Atoi(strings.TrimSpace(row[enrolledIdx]))
	if err != nil {
		return s, false
	}
	s.Enrolled = enrolled

	rate, err := parseRate(row[immuneIdx])
	if err != nil {
		return s, false
	}
	s.ImmunizationRate = rate

	return s, true
}

// parseRate accepts a fraction ("0.85") or a percentage ("85%").
func parseRate(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	percent := strings.HasSuffix(raw, "%")
	raw = strings.TrimSuffix(raw, "%")

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if percent {
		rate /= 100
	}
	return rate, nil
}
