package models

type Assignment struct {
	ID          string `json:"id,omitempty"`
	LessonID    string `json:"lesson_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type AssignmentSubmission struct {
	ID           string `json:"id,omitempty"`
	AssignmentID string `json:"assignment_id"`
	UserID       string `json:"user_id"`
	FileURL      string `json:"file_url,omitempty"`
	Comments     string `json:"comments,omitempty"`
	SubmittedAt  string `json:"submitted_at"`
}
