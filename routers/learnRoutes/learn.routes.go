package learnRoutes

import (
	assignmentControllers "worldone/controllers/assignment"
	enrollmentControllers "worldone/controllers/enrollment"
	progressControllers "worldone/controllers/progress"
	"worldone/middleware"
	assignmentValidators "worldone/validators/assignment"
	progressValidators "worldone/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupLearnRoutes sets up enrollment, progress and assignment routes.
func SetupLearnRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Enrollments
	api.Get("/users/:user_id/enrollments", enrollmentControllers.GetUserEnrollments)

	// Progress
	api.Post("/progress", progressValidators.UpdateProgress(), progressControllers.UpdateProgress)
	api.Get("/progress/:user_id/:course_id", progressControllers.GetCourseProgress)

	// Assignments
	api.Get("/lessons/:lesson_id/assignment", assignmentControllers.GetLessonAssignment)
	api.Post("/assignments", middleware.JWTMiddleware, assignmentValidators.CreateAssignment(), assignmentControllers.CreateAssignment)
	api.Delete("/assignments/:assignment_id", middleware.JWTMiddleware, assignmentControllers.DeleteAssignment)
	api.Post("/assignments/submit", assignmentValidators.SubmitAssignment(), assignmentControllers.SubmitAssignment)
	api.Get("/assignments/:assignment_id/submissions", middleware.JWTMiddleware, assignmentControllers.GetSubmissions)
}
