package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Makepad-fr/datenight/internal/client"
	"github.com/Makepad-fr/datenight/internal/ui"
)

// Field order in the modal.
const (
	fieldTitle = iota
	fieldDescription
	fieldBudget
	fieldLocation
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Budget", "Location"}

// form is the modal's four text inputs. The controller owns the values;
// the inputs are only the editing surface.
type form struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newForm() form {
	var f form
	placeholders := [fieldCount]string{"Idea title (required)", "What you'll do", "Free, Cheap, Moderate or Expensive", "Where"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		f.inputs[i] = ti
	}
	return f
}

// load copies fields into the inputs and focuses the title.
func (f *form) load(fields client.Form) {
	f.inputs[fieldTitle].SetValue(fields.Title)
	f.inputs[fieldDescription].SetValue(fields.Description)
	f.inputs[fieldBudget].SetValue(fields.Budget)
	f.inputs[fieldLocation].SetValue(fields.Location)
	for i := range f.inputs {
		f.inputs[i].CursorEnd()
	}
	f.setFocus(fieldTitle)
}

// values reads the inputs back as controller form fields.
func (f form) values() client.Form {
	return client.Form{
		Title:       f.inputs[fieldTitle].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Budget:      f.inputs[fieldBudget].Value(),
		Location:    f.inputs[fieldLocation].Value(),
	}
}

// clear blanks and blurs every input.
func (f *form) clear() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldTitle
}

func (f *form) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f form) view(header string) string {
	t := ui.Current()
	var b strings.Builder
	b.WriteString(t.Title.Render(header))
	for i, in := range f.inputs {
		label := fieldLabels[i]
		if i == f.focus {
			label = t.Accent.Render(label)
		} else {
			label = t.Muted.Render(label)
		}
		b.WriteString("\n" + label + "\n" + in.View())
	}
	b.WriteString("\n" + t.Muted.Render("enter save · tab next field · esc close"))
	return ui.Box(b.String())
}
