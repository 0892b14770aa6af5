package models

type Enrollment struct {
	ID         string `json:"id,omitempty"`
	UserID     string `json:"user_id"`
	CourseID   string `json:"course_id"`
	EnrolledAt string `json:"enrolled_at,omitempty"`
}

type LessonProgress struct {
	ID                  string `json:"id,omitempty"`
	UserID              string `json:"user_id"`
	LessonID            string `json:"lesson_id"`
	CourseID            string `json:"course_id"`
	IsCompleted         bool   `json:"is_completed"`
	LastPositionSeconds int    `json:"last_position_seconds"`
	CompletedAt         string `json:"completed_at,omitempty"`
}
