package assignmentValidator

import (
	"strings"

	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Assignment)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.LessonID) == "" {
			errors["lesson_id"] = "Lesson ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.SubmitAssignmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.AssignmentID) == "" {
			errors["assignment_id"] = "Assignment ID is required!"
		}
		if strings.TrimSpace(reqData.UserID) == "" {
			errors["user_id"] = "User ID is required!"
		}
		if strings.TrimSpace(reqData.FileURL) == "" && strings.TrimSpace(reqData.Comments) == "" {
			errors["file_url"] = "A file or comments are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
