package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// EncodeXLSX writes one sheet per record table, header row first.
func EncodeXLSX(rep Report) (_ []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, table := range rep.Sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, table.Title); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(table.Title); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", table.Title, err)
		}

		if err := writeTable(f, table); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", table.Title, err)
		}
		if err := f.SetRowStyle(table.Title, 1, 1, headerStyle); err != nil {
			return nil, err
		}
		lastCol, err := excelize.ColumnNumberToName(len(table.Header))
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(table.Title, "A", lastCol, 18); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, table Table) error {
	if err := setRow(f, table.Title, 1, table.Header); err != nil {
		return err
	}
	if !table.HasData() {
		return setRow(f, table.Title, 2, []string{NoDataMarker})
	}
	for i, row := range table.Rows {
		if err := setRow(f, table.Title, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
