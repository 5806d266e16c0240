// Package importer parses uploaded patient spreadsheets and writes
// annotated result files.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Supported spreadsheet extensions.
const (
	ExtXLSX = ".xlsx"
	ExtCSV  = ".csv"
)

// Recognized column headers, compared case-insensitively with spaces
// and underscores stripped.
const (
	colName          = "name"
	colAge           = "age"
	colBMI           = "bmi"
	colCholesterol   = "cholesterol"
	colBloodPressure = "bloodpressure"
)

// Row is one parsed spreadsheet row.
type Row struct {
	Name          string
	Age           int
	BMI           float64
	Cholesterol   float64
	BloodPressure float64
}

// SupportedExt reports whether the file extension is a parseable
// spreadsheet format.
func SupportedExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtXLSX, ExtCSV:
		return true
	}
	return false
}

// Parse reads a spreadsheet file into rows. The format is chosen by
// file extension.
func Parse(path string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtXLSX:
		return parseXLSX(path)
	case ExtCSV:
		return parseCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func parseXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}

	return rowsFromRecords(records)
}

func parseCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, record)
	}

	return rowsFromRecords(records)
}

// rowsFromRecords maps raw cell data to rows using the header line.
// Unrecognized columns are ignored; missing cells default to zero.
func rowsFromRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("spreadsheet is empty")
	}

	columns := map[string]int{}
	for i, header := range records[0] {
		columns[normalizeHeader(header)] = i
	}
	if _, ok := columns[colName]; !ok {
		return nil, fmt.Errorf("spreadsheet has no Name column")
	}

	rows := make([]Row, 0, len(records)-1)
	for n, record := range records[1:] {
		row := Row{Name: cell(record, columns, colName)}

		var err error
		if row.Age, err = intCell(record, columns, colAge); err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		if row.BMI, err = floatCell(record, columns, colBMI); err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		if row.Cholesterol, err = floatCell(record, columns, colCholesterol); err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		if row.BloodPressure, err = floatCell(record, columns, colBloodPressure); err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, " ", "")
	return strings.ReplaceAll(h, "_", "")
}

func cell(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func intCell(record []string, columns map[string]int, name string) (int, error) {
	raw := cell(record, columns, name)
	if raw == "" {
		return 0, nil
	}
	// Excel numeric cells often render as floats ("45.0").
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid number %q", name, raw)
	}
	return int(v), nil
}

func floatCell(record []string, columns map[string]int, name string) (float64, error) {
	raw := cell(record, columns, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid number %q", name, raw)
	}
	return v, nil
}
