package tui

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/datenight/internal/api"
	"github.com/Makepad-fr/datenight/internal/client"
	"github.com/Makepad-fr/datenight/internal/model"
	"github.com/Makepad-fr/datenight/internal/server"
	"github.com/Makepad-fr/datenight/internal/ui"
	"github.com/Makepad-fr/datenight/internal/view"
)

// setupModel starts the in-memory backend and returns a sized, loaded model.
func setupModel(t *testing.T, seed ...model.IdeaInput) (Model, *server.Store) {
	t.Helper()
	ui.SetTheme("mono")
	store := server.NewStore(seed)
	ts := httptest.NewServer(server.New(store, nil).Handler())
	t.Cleanup(ts.Close)

	ctrl := client.New(api.New(ts.URL+server.BasePath), nil)
	m := NewModel(context.Background(), ctrl, model.BudgetFree)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = settle(t, m, m.Init())
	return m, store
}

// step feeds one message and settles the returned command.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return settle(t, next.(Model), cmd)
}

// settle runs backend commands until none is left. Anything else (quit,
// cursor blink, filter) is dropped.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case ideasLoadedMsg, randomLoadedMsg, submittedMsg, deletedMsg, resetDoneMsg:
			var next tea.Model
			next, cmd = m.Update(msg)
			m = next.(Model)
		default:
			return m
		}
	}
	return m
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// typeText types s into the focused input. Cursor blink commands are
// dropped.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(keyRunes(string(r)))
		m = next.(Model)
	}
	return m
}

func TestInitLoadsAllIdeas(t *testing.T) {
	m, _ := setupModel(t,
		model.IdeaInput{Title: "Picnic", BudgetCategory: "Free"},
		model.IdeaInput{Title: "Concert", BudgetCategory: "Expensive", Location: "Arena"},
	)
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("items = %d, want 2", got)
	}
	out := ansi.Strip(m.View())
	for _, want := range []string{"Picnic", "Concert", "Anywhere", "Arena"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestAddIdeaThroughForm(t *testing.T) {
	m, store := setupModel(t)

	m = step(t, m, keyRunes("a"))
	if m.ctrl.Modal() != client.CreatingNew {
		t.Fatalf("modal = %v, want creating", m.ctrl.Modal())
	}
	if !strings.Contains(ansi.Strip(m.View()), view.HeaderAddIdea) {
		t.Fatalf("form header missing")
	}

	m = typeText(t, m, "Picnic")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "Sandwiches")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.ctrl.Modal() != client.Closed {
		t.Fatalf("modal still open after save")
	}
	if m.ctrl.Message() != view.MsgAdded {
		t.Fatalf("message = %q", m.ctrl.Message())
	}
	all := store.All()
	if len(all) != 1 || all[0].Title != "Picnic" || all[0].Description != "Sandwiches" {
		t.Fatalf("store = %+v", all)
	}
	if len(m.list.Items()) != 1 {
		t.Fatalf("list not reloaded: %d items", len(m.list.Items()))
	}
}

func TestEmptyTitleKeepsFormOpen(t *testing.T) {
	m, store := setupModel(t)

	m = step(t, m, keyRunes("a"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.ctrl.Modal() != client.CreatingNew {
		t.Fatalf("modal = %v, want creating", m.ctrl.Modal())
	}
	if m.ctrl.Message() != view.MsgTitleRequired {
		t.Fatalf("message = %q", m.ctrl.Message())
	}
	if len(store.All()) != 0 {
		t.Fatalf("nothing should have been sent")
	}
}

func TestEditPrefillsAndUpdates(t *testing.T) {
	m, store := setupModel(t, model.IdeaInput{Title: "Picnic", BudgetCategory: "Free"})

	m = step(t, m, keyRunes("e"))
	if m.ctrl.Modal() != client.EditingExisting {
		t.Fatalf("modal = %v, want editing", m.ctrl.Modal())
	}
	if got := m.form.values().Title; got != "Picnic" {
		t.Fatalf("title prefill = %q", got)
	}
	m = typeText(t, m, " in the park")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.ctrl.Message() != view.MsgUpdated {
		t.Fatalf("message = %q", m.ctrl.Message())
	}
	all := store.All()
	if len(all) != 1 || all[0].Title != "Picnic in the park" {
		t.Fatalf("store = %+v", all)
	}
}

func TestEscClosesFormWithoutSaving(t *testing.T) {
	m, store := setupModel(t)

	m = step(t, m, keyRunes("a"))
	m = typeText(t, m, "Draft")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.ctrl.Modal() != client.Closed {
		t.Fatalf("modal still open")
	}
	if m.ctrl.Form() != (client.Form{}) {
		t.Fatalf("form not cleared: %+v", m.ctrl.Form())
	}
	if len(store.All()) != 0 {
		t.Fatalf("esc must not save")
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, store := setupModel(t, model.IdeaInput{Title: "Picnic"})

	m = step(t, m, keyRunes("d"))
	if _, ok := m.ctrl.PendingDelete(); !ok {
		t.Fatalf("no pending delete")
	}
	if !strings.Contains(ansi.Strip(m.View()), view.MsgConfirmDelete) {
		t.Fatalf("confirm prompt missing")
	}
	m = step(t, m, keyRunes("n"))
	if len(store.All()) != 1 {
		t.Fatalf("declined delete removed the idea")
	}

	m = step(t, m, keyRunes("d"))
	m = step(t, m, keyRunes("y"))
	if len(store.All()) != 0 {
		t.Fatalf("confirmed delete kept the idea")
	}
	if m.ctrl.Message() != view.MsgDeleted || len(m.list.Items()) != 0 {
		t.Fatalf("message = %q, items = %d", m.ctrl.Message(), len(m.list.Items()))
	}
}

func TestRandomCyclesBudgetAndHandlesEmpty(t *testing.T) {
	m, _ := setupModel(t, model.IdeaInput{Title: "Dinner", BudgetCategory: "Cheap"})

	m = step(t, m, keyRunes("r"))
	if !m.ctrl.RandomVisible() {
		t.Fatalf("random panel hidden")
	}
	if m.ctrl.Message() != view.MsgNoIdeasBudget || len(m.list.Items()) != 0 {
		t.Fatalf("Free: message = %q, items = %d", m.ctrl.Message(), len(m.list.Items()))
	}

	m = step(t, m, keyRunes("b"))
	if m.Budget() != model.BudgetCheap {
		t.Fatalf("budget = %q, want Cheap", m.Budget())
	}
	m = step(t, m, keyRunes("r"))
	if len(m.list.Items()) != 1 || m.ctrl.Message() != "" {
		t.Fatalf("Cheap: message = %q, items = %d", m.ctrl.Message(), len(m.list.Items()))
	}

	m = step(t, m, keyRunes("g"))
	if m.ctrl.RandomVisible() {
		t.Fatalf("reload should hide the random panel")
	}
}

func TestResetShowsBackendText(t *testing.T) {
	m, _ := setupModel(t, model.IdeaInput{Title: "Dinner", BudgetCategory: "Cheap"})

	m = step(t, m, keyRunes("R"))
	if m.ctrl.Message() != server.ResetMessage {
		t.Fatalf("message = %q", m.ctrl.Message())
	}
	if !strings.Contains(ansi.Strip(m.View()), server.ResetMessage) {
		t.Fatalf("reset text not shown")
	}
}

func TestQuit(t *testing.T) {
	m, _ := setupModel(t)
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestFormFocusBindings(t *testing.T) {
	m, _ := setupModel(t)
	m = step(t, m, keyRunes("a"))

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.form.focus != fieldBudget {
		t.Fatalf("focus = %d, want budget", m.form.focus)
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.form.focus != fieldDescription {
		t.Fatalf("focus = %d, want description", m.form.focus)
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.form.focus != fieldLocation {
		t.Fatalf("focus = %d, want wrap to location", m.form.focus)
	}
}
