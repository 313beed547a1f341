package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pointstrack-go/pkg/pointstrack/models"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoSheets indicates a workbook without any worksheet.
	ErrNoSheets = errors.New("workbook has no sheets")
	// ErrSheetNotFound indicates the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
)

// ReadWorkbook reads a points sheet from an xlsx file.
// An empty sheetName selects the first sheet.
func ReadWorkbook(path, sheetName string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return SheetRows(f, sheetName)
}

// SheetRows returns the rows of a sheet cropped to its data bounds, so a
// table that does not start at A1 still has its header as the first row.
func SheetRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheetName = sheets[0]
	}

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, ErrSheetNotFound)
	}

	grid, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(grid)
	if minRow < 0 {
		return nil, nil
	}

	rows := make([]models.Row, 0, maxRow-minRow+1)
	for r := minRow; r <= maxRow; r++ {
		src := grid[r]
		row := make(models.Row, 0, maxCol-minCol+1)
		for c := minCol; c <= maxCol; c++ {
			var cell string
			if c < len(src) {
				cell = src[c]
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// findDataBounds finds the bounding box of non-empty cells.
// All four results are -1 when the grid is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
