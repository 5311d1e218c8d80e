// Package report writes the annual usage and billing report as an xlsx
// workbook.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/wattlab/wattboard/internal/dataset"
	"github.com/wattlab/wattboard/pkg/models"
)

const sheetName = "연간 보고서"

// Write builds the workbook and saves it to path.
func Write(path string, ds *models.Dataset) error {
	f, err := build(ds)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// WriteTo builds the workbook and streams it to w.
func WriteTo(w io.Writer, ds *models.Dataset) error {
	f, err := build(ds)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// build lays out a header row, one row per month in calendar order, and a
// summary block derived from the monthly records.
func build(ds *models.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	title := fmt.Sprintf("%s %d년 전력 사용 보고서", ds.Building, ds.Year)
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return nil, fmt.Errorf("writing title: %w", err)
	}

	headers := []string{"월", "사용량 (kWh)", "요금 (원)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, fmt.Errorf("resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	months := dataset.Sorted(ds.Months)
	for i, rec := range months {
		row := i + 4
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%d월", rec.Month)); err != nil {
			return nil, fmt.Errorf("writing month cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), math.Round(rec.UsageKWh)); err != nil {
			return nil, fmt.Errorf("writing usage cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rec.CostWon); err != nil {
			return nil, fmt.Errorf("writing cost cell: %w", err)
		}
	}

	sum := dataset.Summarize(ds.Months)
	base := len(months) + 5
	cells := []struct {
		cell  string
		value interface{}
	}{
		{fmt.Sprintf("A%d", base), "합계"},
		{fmt.Sprintf("B%d", base), math.Round(sum.TotalUsageKWh)},
		{fmt.Sprintf("C%d", base), sum.TotalCostWon},
		{fmt.Sprintf("A%d", base+1), "월 평균"},
		{fmt.Sprintf("B%d", base+1), math.Round(sum.AvgUsageKWh)},
		{fmt.Sprintf("C%d", base+1), sum.AvgCostWon},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheetName, c.cell, c.value); err != nil {
			return nil, fmt.Errorf("writing summary cell: %w", err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "C", 18); err != nil {
		return nil, fmt.Errorf("setting column widths: %w", err)
	}

	return f, nil
}
