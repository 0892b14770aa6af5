package models

// Request payloads that do not map one-to-one onto a table row.

type SubmitAttemptRequest struct {
	QuizID string `json:"quiz_id"`
	UserID string `json:"user_id"`
	// Answers maps question id to the chosen option id
	Answers map[string]string `json:"answers"`
}

type CheckoutRequest struct {
	Items  []string `json:"items"` // course ids in the cart
	UserID string   `json:"user_id"`
}

type SubmitAssignmentRequest struct {
	AssignmentID string `json:"assignment_id"`
	UserID       string `json:"user_id"`
	FileURL      string `json:"file_url"`
	Comments     string `json:"comments"`
}
