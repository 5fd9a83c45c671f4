package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Makepad-fr/datenight/internal/model"
)

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ideas.json")
	ideas := []model.Idea{
		{ID: 1, Title: "Picnic", BudgetCategory: "Free"},
		{ID: 2, Title: "Bowling", Description: "Two games", BudgetCategory: "Moderate", Location: "Lanes"},
	}
	if err := Save(path, ideas); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[1].Location != "Lanes" || got[0].BudgetCategory != "Free" {
		t.Errorf("loaded %+v", got)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideas.json")
	if err := Save(path, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, _ := os.ReadFile(path)
	if strings.TrimSpace(string(b)) != "[]" {
		t.Errorf("file = %q, want []", b)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("missing file err = %v", err)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "json unmarshal") {
		t.Errorf("bad json err = %v", err)
	}
}
