package xlsx

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Makepad-fr/datenight/internal/model"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideas.xlsx")
	ideas := []model.Idea{
		{ID: 1, Title: "Picnic", BudgetCategory: "Free"},
		{ID: 2, Title: "Bowling", Description: "Two games", BudgetCategory: "Moderate", Location: "Lanes"},
	}
	if err := Write(path, ideas); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(Sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "title" || rows[0][3] != "budgetCategory" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[2][0] != "2" || rows[2][1] != "Bowling" || rows[2][4] != "Lanes" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestWriteErrorsAreWrapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "ideas.xlsx")
	err := Write(path, []model.Idea{{ID: 1, Title: "Picnic"}})
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
	if !strings.Contains(err.Error(), "save "+path) {
		t.Errorf("err = %v, want it to name the save step", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("err = %v does not wrap its cause", err)
	}
}
