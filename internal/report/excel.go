package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"evalhub/internal/directory"
	"evalhub/internal/record"
)

const rollupSheet = "Rollup"

// BuildDepartmentWorkbook renders the rollup plus one row per record into a
// spreadsheet for offline analysis.
func BuildDepartmentWorkbook(dept directory.Department, averages []record.CompetencyAverage, records []record.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rollupSheet); err != nil {
		return nil, err
	}

	cells := [][]any{
		{"Department", dept.Name},
		{"Records", len(records)},
		{},
		{"Competency", "Average"},
	}
	for _, avg := range averages {
		cells = append(cells, []any{avg.Competency, avg.Average})
	}
	if err := writeRows(f, rollupSheet, cells); err != nil {
		return nil, err
	}

	recordRows := [][]any{{"Record", "Evaluated User", "Evaluator", "Overall Average", "Completed", "Created"}}
	for _, rec := range records {
		recordRows = append(recordRows, []any{
			rec.ID, rec.EvaluatedUser, rec.Evaluator, rec.OverallAverage, rec.Completed, rec.CreatedAt.Format("2006-01-02"),
		})
	}
	if _, err := f.NewSheet("Records"); err != nil {
		return nil, err
	}
	if err := writeRows(f, "Records", recordRows); err != nil {
		return nil, err
	}

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
