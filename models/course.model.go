package models

// Rows live in the external Supabase Postgres and are reached only over
// PostgREST, so these structs carry json tags only — they are request and
// insert payload shapes, not ORM entities.

type Course struct {
	ID           string  `json:"id,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Level        string  `json:"level"`
	Slug         string  `json:"slug"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	IsPublished  bool    `json:"is_published"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

type CourseModule struct {
	ID          string `json:"id,omitempty"`
	CourseID    string `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Lesson types understood by the frontend player.
const (
	LessonTypeText       = "text"
	LessonTypeVideo      = "video"
	LessonTypeQuiz       = "quiz"
	LessonTypePDF        = "pdf"
	LessonTypeAssignment = "assignment"
)

type CourseLesson struct {
	ID            string `json:"id,omitempty"`
	ModuleID      string `json:"module_id"`
	Title         string `json:"title"`
	LessonType    string `json:"lesson_type"`
	Content       string `json:"content,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
	ResourceURL   string `json:"resource_url,omitempty"`
	Duration      int    `json:"duration"`
	IsFreePreview bool   `json:"is_free_preview"`
	Order         int    `json:"order"`
	CreatedAt     string `json:"created_at,omitempty"`
}
