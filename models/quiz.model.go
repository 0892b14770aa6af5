package models

type Quiz struct {
	ID          string `json:"id,omitempty"`
	LessonID    string `json:"lesson_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type QuizQuestion struct {
	ID           string `json:"id,omitempty"`
	QuizID       string `json:"quiz_id"`
	QuestionText string `json:"question_text"`
	Points       int    `json:"points"`
	OrderIndex   int    `json:"order_index"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type QuizOption struct {
	ID         string `json:"id,omitempty"`
	QuestionID string `json:"question_id"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index"`
}

type QuizAttempt struct {
	ID          string `json:"id,omitempty"`
	QuizID      string `json:"quiz_id"`
	UserID      string `json:"user_id"`
	Score       int    `json:"score"`
	MaxScore    int    `json:"max_score"`
	CompletedAt string `json:"completed_at"`
}
