package mail

// TaskPayload is the task card the client asks to have mailed
type TaskPayload struct {
	Task    string  `json:"task"`
	Owner   *string `json:"owner"`
	DueDate *string `json:"dueDate"`
	Done    bool    `json:"done"`
}

// SendMailRequest represents the request to send a task reminder
type SendMailRequest struct {
	Email string      `json:"email" validate:"required"`
	Task  TaskPayload `json:"task"`
}

// SendMailResponse carries the provider message id back to the client
type SendMailResponse struct {
	ID string `json:"id"`
}
