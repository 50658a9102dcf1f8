package transcript

import "time"

// Wire shapes keep the field names the existing frontend binds to:
// identifiers serialize as "_id", everything else camelCase.

// ActionItemResponse is one item as served over the API
type ActionItemResponse struct {
	ID        string    `json:"_id"`
	Task      string    `json:"task"`
	Owner     *string   `json:"owner"`
	DueDate   *string   `json:"dueDate"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TranscriptResponse is the full aggregate as served over the API
type TranscriptResponse struct {
	ID          string               `json:"_id"`
	RawText     string               `json:"rawText"`
	ActionItems []ActionItemResponse `json:"actionItems"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// TranscriptHeaderResponse is one row of the recent list
type TranscriptHeaderResponse struct {
	ID        string    `json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExtractResponse is returned by the extract endpoint
type ExtractResponse struct {
	ActionItems []ActionItemResponse `json:"actionItems"`
}
