package courseRoutes

import (
	controllers "worldone/controllers/course"
	"worldone/middleware"
	validators "worldone/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course, module and lesson routes. Reads are
// public; mutations sit behind the JWT middleware.
func SetupCourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Courses
	api.Get("/courses", controllers.GetAllCourses)
	api.Post("/courses", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	api.Get("/courses/slug/:slug", controllers.GetCourseBySlug)
	api.Get("/courses/:id", controllers.GetCourse)
	api.Patch("/courses/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.UpdateCourse)
	api.Delete("/courses/:id", middleware.JWTMiddleware, controllers.DeleteCourse)
	api.Get("/courses/:id/modules", controllers.GetCourseModules)

	// Modules
	api.Post("/modules", middleware.JWTMiddleware, validators.CreateModule(), controllers.CreateModule)
	api.Patch("/modules/:module_id", middleware.JWTMiddleware, validators.UpdateModule(), controllers.UpdateModule)
	api.Delete("/modules/:module_id", middleware.JWTMiddleware, controllers.DeleteModule)
	api.Get("/modules/:module_id/lessons", controllers.GetModuleLessons)

	// Lessons
	api.Post("/lessons", middleware.JWTMiddleware, validators.CreateLesson(), controllers.CreateLesson)
	api.Put("/lessons/:lesson_id", middleware.JWTMiddleware, validators.CreateLesson(), controllers.UpdateLesson)
	api.Delete("/lessons/:lesson_id", middleware.JWTMiddleware, controllers.DeleteLesson)
}
