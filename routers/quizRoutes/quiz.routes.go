package quizRoutes

import (
	controllers "worldone/controllers/quiz"
	"worldone/middleware"
	validators "worldone/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz management and assessment routes.
func SetupQuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Quiz player
	api.Get("/lessons/:lesson_id/quiz", controllers.GetLessonQuiz)
	api.Post("/assessments/submit", validators.SubmitAttempt(), controllers.SubmitAttempt)
	api.Get("/quizzes/:quiz_id/attempts/:user_id", controllers.GetUserAttempts)

	// Quiz management
	api.Post("/quizzes", middleware.JWTMiddleware, validators.CreateQuiz(), controllers.CreateQuiz)
	api.Post("/questions", middleware.JWTMiddleware, validators.AddQuestion(), controllers.AddQuestion)
	api.Delete("/questions/:question_id", middleware.JWTMiddleware, controllers.DeleteQuestion)
	api.Post("/options", middleware.JWTMiddleware, validators.AddOption(), controllers.AddOption)
	api.Delete("/options/:option_id", middleware.JWTMiddleware, controllers.DeleteOption)
}
