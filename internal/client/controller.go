package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/Makepad-fr/datenight/internal/api"
	"github.com/Makepad-fr/datenight/internal/model"
	"github.com/Makepad-fr/datenight/internal/view"
)

var (
	ErrModalClosed     = errors.New("client: modal is closed")
	ErrTitleRequired   = errors.New("client: title is required")
	ErrNoPendingDelete = errors.New("client: no delete awaiting confirmation")
	ErrDeleteCancelled = errors.New("client: delete cancelled")
	ErrInFlight        = errors.New("client: request for this idea already in flight")
)

// Backend is the REST surface the controller needs. *api.Client implements it.
type Backend interface {
	AllIdeas(ctx context.Context) ([]model.Idea, error)
	RandomIdea(ctx context.Context, budget string) (model.Idea, error)
	AddIdea(ctx context.Context, in model.IdeaInput) error
	UpdateIdea(ctx context.Context, id int64, in model.IdeaInput) error
	DeleteIdea(ctx context.Context, id int64) error
	Reset(ctx context.Context) (string, error)
}

// ModalState is the state of the shared add/update form.
type ModalState int

const (
	Closed ModalState = iota
	CreatingNew
	EditingExisting
)

func (s ModalState) String() string {
	switch s {
	case CreatingNew:
		return "creating"
	case EditingExisting:
		return "editing"
	default:
		return "closed"
	}
}

// Form holds the four editable fields of the modal.
type Form struct {
	Title       string
	Description string
	Budget      string
	Location    string
}

// Input packages the form as a request payload.
func (f Form) Input() model.IdeaInput {
	return model.IdeaInput{
		Title:          f.Title,
		Description:    f.Description,
		BudgetCategory: f.Budget,
		Location:       f.Location,
	}
}

// Controller is the idea list controller.
type Controller struct {
	backend Backend
	log     *slog.Logger

	ideas         []model.Idea
	message       string
	randomVisible bool

	modal     ModalState
	editingID *int64
	form      Form

	pendingDelete *int64
	inflight      map[int64]bool
}

// New returns a Controller with a closed modal and an empty list.
func New(backend Backend, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		backend:  backend,
		log:      log,
		inflight: make(map[int64]bool),
	}
}

// Backend returns the backend the controller drives.
func (c *Controller) Backend() Backend { return c.backend }

// Ideas returns a copy of the displayed ideas.
func (c *Controller) Ideas() []model.Idea {
	out := make([]model.Idea, len(c.ideas))
	copy(out, c.ideas)
	return out
}

// Cards renders the displayed ideas.
func (c *Controller) Cards() []view.Card { return view.RenderAll(c.ideas) }

// Message is the current status line ("" when none).
func (c *Controller) Message() string { return c.message }

// RandomVisible reports whether the random idea panel is shown.
func (c *Controller) RandomVisible() bool { return c.randomVisible }

// Modal returns the modal state.
func (c *Controller) Modal() ModalState { return c.modal }

// EditingID returns the id being edited, if any.
func (c *Controller) EditingID() (int64, bool) {
	if c.editingID == nil {
		return 0, false
	}
	return *c.editingID, true
}

// Header is the modal title for the current state.
func (c *Controller) Header() string {
	if c.modal == EditingExisting {
		return view.HeaderUpdateIdea
	}
	return view.HeaderAddIdea
}

// Form returns the current form fields.
func (c *Controller) Form() Form { return c.form }

// SetForm replaces the form fields while the modal is open.
func (c *Controller) SetForm(f Form) {
	if c.modal == Closed {
		return
	}
	c.form = f
}

// PendingDelete returns the id awaiting delete confirmation, if any.
func (c *Controller) PendingDelete() (int64, bool) {
	if c.pendingDelete == nil {
		return 0, false
	}
	return *c.pendingDelete, true
}

// InFlight reports whether a mutation for id is running.
func (c *Controller) InFlight(id int64) bool { return c.inflight[id] }

// ---------------------------------------------------
// List and random panel
// ---------------------------------------------------

// LoadAll replaces the list with the backend's full collection.
func (c *Controller) LoadAll(ctx context.Context) error {
	ideas, err := c.backend.AllIdeas(ctx)
	c.ApplyLoadAll(ideas, err)
	return err
}

// ApplyLoadAll applies an AllIdeas result: the random panel is hidden and the
// list shows exactly ideas, or nothing plus a failure message.
func (c *Controller) ApplyLoadAll(ideas []model.Idea, err error) {
	c.message = ""
	c.applyList(ideas, err)
}

// ApplyReload applies the AllIdeas result that follows a mutation. Unlike
// ApplyLoadAll it keeps the mutation's status message unless the load fails.
func (c *Controller) ApplyReload(ideas []model.Idea, err error) {
	c.applyList(ideas, err)
}

func (c *Controller) applyList(ideas []model.Idea, err error) {
	c.randomVisible = false
	if err != nil {
		c.logFailure("load ideas failed", err)
		c.ideas = nil
		c.message = view.MsgLoadFailed
		return
	}
	c.ideas = append([]model.Idea(nil), ideas...)
}

// ShowRandomPanel shows the random panel with an empty list.
func (c *Controller) ShowRandomPanel() {
	c.randomVisible = true
	c.ideas = nil
	c.message = ""
}

// LoadRandom asks for one idea in budget and shows it.
func (c *Controller) LoadRandom(ctx context.Context, budget string) error {
	c.BeginRandom()
	idea, err := c.backend.RandomIdea(ctx, budget)
	c.ApplyRandom(idea, err)
	if errors.Is(err, api.ErrNoContent) {
		return nil
	}
	return err
}

// BeginRandom shows the random panel before the request is sent.
func (c *Controller) BeginRandom() { c.randomVisible = true }

// ApplyRandom applies a RandomIdea result. api.ErrNoContent is an empty
// result and gets its own message; it is not logged as a failure.
func (c *Controller) ApplyRandom(idea model.Idea, err error) {
	c.ideas = nil
	switch {
	case errors.Is(err, api.ErrNoContent):
		c.message = view.MsgNoIdeasBudget
	case err != nil:
		c.logFailure("random idea failed", err)
		c.message = view.MsgRandomFailed
	default:
		c.ideas = []model.Idea{idea}
		c.message = ""
	}
}

// ---------------------------------------------------
// Modal
// ---------------------------------------------------

// OpenForCreate opens a blank form with no editing id.
func (c *Controller) OpenForCreate() {
	c.modal = CreatingNew
	c.editingID = nil
	c.form = Form{}
}

// OpenForEdit opens the form for idea, filled from the displayed snapshot.
// No fetch is made.
func (c *Controller) OpenForEdit(idea model.Idea) {
	id := idea.ID
	c.modal = EditingExisting
	c.editingID = &id
	budget := idea.BudgetCategory
	if budget == "" {
		budget = model.BudgetFree
	}
	c.form = Form{
		Title:       idea.Title,
		Description: idea.Description,
		Budget:      budget,
		Location:    idea.Location,
	}
}

// Close closes the modal and discards any unsaved input.
func (c *Controller) Close() {
	c.modal = Closed
	c.editingID = nil
	c.form = Form{}
}

// Submission is one create or update request built from the form.
type Submission struct {
	// Update is false for a create. ID is only meaningful for updates.
	Update bool
	ID     int64
	Input  model.IdeaInput
}

// BeginSubmit validates the open form and returns the request to send.
// An update marks its id in flight until ApplySubmit.
func (c *Controller) BeginSubmit() (Submission, error) {
	if c.modal == Closed {
		return Submission{}, ErrModalClosed
	}
	if c.form.Title == "" {
		c.message = view.MsgTitleRequired
		return Submission{}, ErrTitleRequired
	}
	sub := Submission{Input: c.form.Input()}
	if c.editingID != nil {
		sub.Update = true
		sub.ID = *c.editingID
		if c.inflight[sub.ID] {
			return Submission{}, ErrInFlight
		}
		c.inflight[sub.ID] = true
	}
	return sub, nil
}

// Send issues sub against the backend.
func (c *Controller) Send(ctx context.Context, sub Submission) error {
	if sub.Update {
		return c.backend.UpdateIdea(ctx, sub.ID, sub.Input)
	}
	return c.backend.AddIdea(ctx, sub.Input)
}

// ApplySubmit applies the result of sub. On success the modal is closed and
// true is returned: the caller must reload the list. On failure the modal
// stays open with the entered data.
func (c *Controller) ApplySubmit(sub Submission, err error) (reload bool) {
	if sub.Update {
		delete(c.inflight, sub.ID)
	}
	if err != nil {
		c.logFailure("save idea failed", err, "update", sub.Update, "id", sub.ID)
		c.message = view.MsgSaveFailed
		return false
	}
	if sub.Update {
		c.message = view.MsgUpdated
	} else {
		c.message = view.MsgAdded
	}
	c.Close()
	return true
}

// Submit sends the open form as a create or an update, then reloads.
func (c *Controller) Submit(ctx context.Context) error {
	sub, err := c.BeginSubmit()
	if err != nil {
		return err
	}
	err = c.Send(ctx, sub)
	if c.ApplySubmit(sub, err) {
		c.reload(ctx)
	}
	return err
}

// ---------------------------------------------------
// Delete
// ---------------------------------------------------

// RequestDelete asks for confirmation before deleting id.
func (c *Controller) RequestDelete(id int64) { c.pendingDelete = &id }

// CancelDelete drops the pending confirmation.
func (c *Controller) CancelDelete() { c.pendingDelete = nil }

// BeginDelete consumes the pending confirmation and returns the id to delete.
func (c *Controller) BeginDelete() (int64, error) {
	if c.pendingDelete == nil {
		return 0, ErrNoPendingDelete
	}
	id := *c.pendingDelete
	c.pendingDelete = nil
	if c.inflight[id] {
		return 0, ErrInFlight
	}
	c.inflight[id] = true
	return id, nil
}

// ApplyDelete applies a DeleteIdea result. The card is not removed locally:
// on success true is returned and the caller reloads; on failure the stale
// list stays.
func (c *Controller) ApplyDelete(id int64, err error) (reload bool) {
	delete(c.inflight, id)
	if err != nil {
		c.logFailure("delete idea failed", err, "id", id)
		c.message = view.MsgDeleteFailed
		return false
	}
	c.message = view.MsgDeleted
	return true
}

// ConfirmDelete deletes the idea awaiting confirmation, then reloads.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	id, err := c.BeginDelete()
	if err != nil {
		return err
	}
	err = c.backend.DeleteIdea(ctx, id)
	if c.ApplyDelete(id, err) {
		c.reload(ctx)
	}
	return err
}

// Delete asks confirm and deletes id only when it answers true.
func (c *Controller) Delete(ctx context.Context, id int64, confirm func(prompt string) bool) error {
	c.RequestDelete(id)
	if confirm == nil || !confirm(view.MsgConfirmDelete) {
		c.CancelDelete()
		return ErrDeleteCancelled
	}
	return c.ConfirmDelete(ctx)
}

// ---------------------------------------------------
// Reset
// ---------------------------------------------------

// ApplyReset shows the backend's reset text verbatim. On success true is
// returned and the caller reloads.
func (c *Controller) ApplyReset(text string, err error) (reload bool) {
	if err != nil {
		c.logFailure("reset failed", err)
		c.message = view.MsgResetFailed
		return false
	}
	if strings.TrimSpace(text) == "" {
		c.log.Warn("reset returned an empty message")
	}
	c.message = text
	return true
}

// Reset restores the backend's default collection, shows its message and reloads.
func (c *Controller) Reset(ctx context.Context) error {
	text, err := c.backend.Reset(ctx)
	if c.ApplyReset(text, err) {
		c.reload(ctx)
	}
	return err
}

// logFailure logs a failed request. Backend and transport failures are
// expected and logged as warnings; anything else (a cancelled context, a
// bug) is an error.
func (c *Controller) logFailure(msg string, err error, args ...any) {
	args = append(args, "err", err)
	if api.IsFailure(err) {
		c.log.Warn(msg, args...)
		return
	}
	c.log.Error(msg, args...)
}

func (c *Controller) reload(ctx context.Context) {
	ideas, err := c.backend.AllIdeas(ctx)
	c.ApplyReload(ideas, err)
}
