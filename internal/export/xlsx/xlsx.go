// Package xlsx writes ideas to a spreadsheet.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Makepad-fr/datenight/internal/model"
)

// Sheet is the name of the only worksheet written.
const Sheet = "Ideas"

// Header is the first row.
var Header = []interface{}{"id", "title", "description", "budgetCategory", "location"}

// Write saves ideas to path as one header row plus one row per idea.
func Write(path string, ideas []model.Idea) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	// StreamWriter keeps memory flat for large lists
	sw, err := f.NewStreamWriter(Sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	if err := sw.SetRow("A1", Header); err != nil {
		return fmt.Errorf("header row: %w", err)
	}
	for i, idea := range ideas {
		row := []interface{}{idea.ID, idea.Title, idea.Description, idea.BudgetCategory, idea.Location}
		cell, err := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
