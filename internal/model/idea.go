package model

// Idea is one date night suggestion as the backend stores it.
// The client only holds transient copies for display and editing.
type Idea struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	BudgetCategory string     `json:"budgetCategory,omitempty"`
	Location       string     `json:"location,omitempty"`
	CreatedAt      *LocalTime `json:"createdAt,omitempty"`
	Suggested      bool       `json:"suggested,omitempty"`
}

// IdeaInput is the create/update payload. All four fields are always sent.
type IdeaInput struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	BudgetCategory string `json:"budgetCategory"`
	Location       string `json:"location"`
}

// Input returns the editable fields of i as a payload.
func (i Idea) Input() IdeaInput {
	return IdeaInput{
		Title:          i.Title,
		Description:    i.Description,
		BudgetCategory: i.BudgetCategory,
		Location:       i.Location,
	}
}
