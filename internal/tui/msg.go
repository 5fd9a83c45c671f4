package tui

import (
	"github.com/Makepad-fr/datenight/internal/client"
	"github.com/Makepad-fr/datenight/internal/model"
)

// Bubble Tea message types. Each carries one backend result back to Update.

// ideasLoadedMsg is sent when the full list arrives. reload marks the load
// that follows a create, update, delete or reset.
type ideasLoadedMsg struct {
	ideas  []model.Idea
	err    error
	reload bool
}

// randomLoadedMsg is sent when a random pick returns.
type randomLoadedMsg struct {
	idea model.Idea
	err  error
}

// submittedMsg is sent when a create or update returns.
type submittedMsg struct {
	sub client.Submission
	err error
}

// deletedMsg is sent when a delete returns.
type deletedMsg struct {
	id  int64
	err error
}

// resetDoneMsg is sent when a reset returns.
type resetDoneMsg struct {
	text string
	err  error
}
