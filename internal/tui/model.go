package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/datenight/internal/client"
	"github.com/Makepad-fr/datenight/internal/model"
	"github.com/Makepad-fr/datenight/internal/ui"
	"github.com/Makepad-fr/datenight/internal/view"
)

// Model is the Bubble Tea binding over a client.Controller. The controller
// is only touched from Update; backend calls run inside tea.Cmds and come
// back as messages.
type Model struct {
	ctx  context.Context
	ctrl *client.Controller
	keys keyMap

	list   list.Model
	form   form
	budget string

	width, height int
}

// NewModel builds the screen for ctrl. budget is the initial random budget.
func NewModel(ctx context.Context, ctrl *client.Controller, budget string) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	budget = model.NormalizeBudget(budget)
	if budget == "" {
		budget = model.BudgetFree
	}
	keys := newKeyMap()

	l := list.New(nil, cardDelegate{}, 0, 0)
	l.Title = "Date Night Ideas"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("idea", "ideas")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "

	// Our own bindings take b, d, g, q and esc.
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h/pgup", "prev page"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l/pgdn", "next page"))
	l.KeyMap.GoToStart = key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "go to start"))
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = func() []key.Binding { return append(keys.listHelp(), keys.Panel, keys.Quit) }

	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		keys:   keys,
		list:   l,
		form:   newForm(),
		budget: budget,
		width:  80,
		height: 24,
	}
}

// Budget is the budget the next random pick asks for.
func (m Model) Budget() string { return m.budget }

// Controller returns the controller the model drives.
func (m Model) Controller() *client.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd { return m.loadCmd(false) }

// ---------------------------------------------------
// Commands
// ---------------------------------------------------

func (m Model) loadCmd(reload bool) tea.Cmd {
	ctx, backend := m.ctx, m.ctrl.Backend()
	return func() tea.Msg {
		ideas, err := backend.AllIdeas(ctx)
		return ideasLoadedMsg{ideas: ideas, err: err, reload: reload}
	}
}

func (m Model) randomCmd(budget string) tea.Cmd {
	ctx, backend := m.ctx, m.ctrl.Backend()
	return func() tea.Msg {
		idea, err := backend.RandomIdea(ctx, budget)
		return randomLoadedMsg{idea: idea, err: err}
	}
}

func (m Model) submitCmd(sub client.Submission) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		// Send only reads the backend, so it is safe off the event loop.
		return submittedMsg{sub: sub, err: ctrl.Send(ctx, sub)}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	ctx, backend := m.ctx, m.ctrl.Backend()
	return func() tea.Msg {
		return deletedMsg{id: id, err: backend.DeleteIdea(ctx, id)}
	}
}

func (m Model) resetCmd() tea.Cmd {
	ctx, backend := m.ctx, m.ctrl.Backend()
	return func() tea.Msg {
		text, err := backend.Reset(ctx)
		return resetDoneMsg{text: text, err: err}
	}
}

// ---------------------------------------------------
// Update
// ---------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case ideasLoadedMsg:
		if msg.reload {
			m.ctrl.ApplyReload(msg.ideas, msg.err)
		} else {
			m.ctrl.ApplyLoadAll(msg.ideas, msg.err)
		}
		return m, m.syncList()

	case randomLoadedMsg:
		m.ctrl.ApplyRandom(msg.idea, msg.err)
		return m, m.syncList()

	case submittedMsg:
		if m.ctrl.ApplySubmit(msg.sub, msg.err) {
			m.form.clear()
			m.resize()
			return m, m.loadCmd(true)
		}
		return m, nil

	case deletedMsg:
		if m.ctrl.ApplyDelete(msg.id, msg.err) {
			return m, m.loadCmd(true)
		}
		return m, nil

	case resetDoneMsg:
		if m.ctrl.ApplyReset(msg.text, msg.err) {
			return m, m.loadCmd(true)
		}
		return m, nil

	case tea.KeyMsg:
		if m.ctrl.Modal() != client.Closed {
			return m.updateForm(msg)
		}
		if _, pending := m.ctrl.PendingDelete(); pending {
			return m.updateConfirm(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		if next, cmd, handled := m.updateKeys(msg); handled {
			return next, cmd
		}
	}

	if m.ctrl.Modal() != client.Closed {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateKeys handles the list-mode bindings. handled is false for keys the
// list itself should see.
func (m Model) updateKeys(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Create):
		m.ctrl.OpenForCreate()
		m.form.load(m.ctrl.Form())
		m.resize()
		return m, nil, true

	case key.Matches(msg, m.keys.Edit):
		it, ok := m.list.SelectedItem().(ideaItem)
		if !ok {
			return m, nil, true
		}
		m.ctrl.OpenForEdit(it.idea)
		m.form.load(m.ctrl.Form())
		m.resize()
		return m, nil, true

	case key.Matches(msg, m.keys.Delete):
		it, ok := m.list.SelectedItem().(ideaItem)
		if !ok || m.ctrl.InFlight(it.idea.ID) {
			return m, nil, true
		}
		m.ctrl.RequestDelete(it.idea.ID)
		return m, nil, true

	case key.Matches(msg, m.keys.Random):
		m.ctrl.BeginRandom()
		return m, m.randomCmd(m.budget), true

	case key.Matches(msg, m.keys.Budget):
		m.budget = model.NextBudget(m.budget)
		return m, nil, true

	case key.Matches(msg, m.keys.Panel):
		m.ctrl.ShowRandomPanel()
		return m, m.syncList(), true

	case key.Matches(msg, m.keys.Reset):
		return m, m.resetCmd(), true

	case key.Matches(msg, m.keys.Reload):
		return m, m.loadCmd(false), true
	}
	return m, nil, false
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id, err := m.ctrl.BeginDelete()
		if err != nil {
			return m, nil
		}
		return m, m.deleteCmd(id)
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.ctrl.CancelDelete()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.Close()
		m.form.clear()
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.SetForm(m.form.values())
		sub, err := m.ctrl.BeginSubmit()
		if err != nil {
			return m, nil
		}
		return m, m.submitCmd(sub)
	case key.Matches(msg, m.keys.Next):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	m.ctrl.SetForm(m.form.values())
	return m, cmd
}

// syncList mirrors the controller's ideas into the list.
func (m *Model) syncList() tea.Cmd {
	ideas := m.ctrl.Ideas()
	items := make([]list.Item, 0, len(ideas))
	for _, idea := range ideas {
		items = append(items, newIdeaItem(idea))
	}
	if m.ctrl.RandomVisible() {
		m.list.Title = "Random Idea"
	} else {
		m.list.Title = "Date Night Ideas"
	}
	return m.list.SetItems(items)
}

// resize fits the list into what the header, status and modal leave over.
func (m *Model) resize() {
	reserved := 4 // frame, header, status
	if m.ctrl.Modal() != client.Closed {
		reserved += lipgloss.Height(m.form.view(m.ctrl.Header()))
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	m.list.SetSize(max(m.width-4, 20), h)
}

// ---------------------------------------------------
// View
// ---------------------------------------------------

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder

	panel := t.Muted.Render("all ideas")
	if m.ctrl.RandomVisible() {
		panel = t.Accent.Render("random panel")
	}
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		t.Muted.Render("budget:"), t.Accent.Render(m.budget),
		t.Muted.Render("view:"), panel)

	b.WriteString(m.list.View())

	if msg := m.ctrl.Message(); msg != "" {
		b.WriteString("\n" + m.statusStyle(msg).Render(msg))
	}
	if id, pending := m.ctrl.PendingDelete(); pending {
		b.WriteString("\n" + t.Pending.Render(fmt.Sprintf("%s (#%d) [y/N]", view.MsgConfirmDelete, id)))
	}
	if m.ctrl.Modal() != client.Closed {
		b.WriteString("\n" + m.form.view(m.ctrl.Header()))
	}
	return ui.Box(b.String())
}

func (m Model) statusStyle(msg string) lipgloss.Style {
	t := ui.Current()
	switch msg {
	case view.MsgLoadFailed, view.MsgRandomFailed, view.MsgSaveFailed,
		view.MsgDeleteFailed, view.MsgResetFailed, view.MsgTitleRequired:
		return t.Error
	case view.MsgNoIdeasBudget:
		return t.Pending
	}
	return t.Success
}
