package view

// User-facing status texts. Failures collapse to one message per action.
const (
	MsgLoadFailed    = "Failed to load ideas."
	MsgRandomFailed  = "Failed to fetch random idea."
	MsgNoIdeasBudget = "No ideas available for this budget. Please reset the list."
	MsgSaveFailed    = "Failed to save idea."
	MsgAdded         = "Idea added successfully!"
	MsgUpdated       = "Idea updated successfully!"
	MsgDeleted       = "Idea deleted successfully!"
	MsgDeleteFailed  = "Failed to delete idea."
	MsgResetFailed   = "Failed to reset ideas."
	MsgConfirmDelete = "Are you sure you want to delete this idea?"
	MsgTitleRequired = "Please fill out the title."
	HeaderAddIdea    = "Add Idea"
	HeaderUpdateIdea = "Update Idea"
)
