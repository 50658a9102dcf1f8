package transcript

// ExtractRequest carries the raw meeting text to extract from
type ExtractRequest struct {
	Transcript string `json:"transcript"`
}

// AddTaskRequest represents the request to append an item to a transcript
type AddTaskRequest struct {
	TranscriptID string  `json:"transcriptId" validate:"required"`
	Task         string  `json:"task" validate:"required"`
	Owner        *string `json:"owner,omitempty" validate:"omitempty,max=120"`
	DueDate      *string `json:"dueDate,omitempty"`
}

// EditTaskRequest represents a partial update of one item. Absent fields are
// left untouched; an empty owner or dueDate clears the field. A non-boolean
// done fails JSON binding and never reaches the service.
type EditTaskRequest struct {
	TranscriptID string  `json:"transcriptId" validate:"required"`
	ActionItemID string  `json:"actionItemId" validate:"required"`
	Task         *string `json:"task,omitempty"`
	Owner        *string `json:"owner,omitempty"`
	DueDate      *string `json:"dueDate,omitempty"`
	Done         *bool   `json:"done,omitempty"`
}

// DeleteTaskRequest represents the request to remove one item
type DeleteTaskRequest struct {
	TranscriptID string `json:"transcriptId" validate:"required"`
	ActionItemID string `json:"actionItemId" validate:"required"`
}
