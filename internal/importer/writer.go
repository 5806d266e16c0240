package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// resultHeaders are the columns of an annotated result file.
var resultHeaders = []string{"Name", "Age", "BMI", "Cholesterol", "Blood Pressure", "Prediction"}

// WriteResults writes the parsed rows and their predictions to path,
// appending a Prediction column. The output format follows the file
// extension. predictions must be the same length as rows.
func WriteResults(path string, rows []Row, predictions []string) error {
	if len(rows) != len(predictions) {
		return fmt.Errorf("rows/predictions length mismatch: %d vs %d", len(rows), len(predictions))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtXLSX:
		return writeXLSX(path, rows, predictions)
	case ExtCSV:
		return writeCSV(path, rows, predictions)
	default:
		return fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func resultRecord(row Row, prediction string) []string {
	return []string{
		row.Name,
		strconv.Itoa(row.Age),
		strconv.FormatFloat(row.BMI, 'f', -1, 64),
		strconv.FormatFloat(row.Cholesterol, 'f', -1, 64),
		strconv.FormatFloat(row.BloodPressure, 'f', -1, 64),
		prediction,
	}
}

func writeXLSX(path string, rows []Row, predictions []string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	writeRow := func(n int, record []string) error {
		cellRef, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(record))
		for i, v := range record {
			values[i] = v
		}
		return f.SetSheetRow(sheet, cellRef, &values)
	}

	if err := writeRow(1, resultHeaders); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i, row := range rows {
		if err := writeRow(i+2, resultRecord(row, predictions[i])); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func writeCSV(path string, rows []Row, predictions []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(resultHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range rows {
		if err := w.Write(resultRecord(row, predictions[i])); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+2, err)
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
