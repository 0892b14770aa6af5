package progressValidator

import (
	"strings"

	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.LessonProgress)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.UserID) == "" {
			errors["user_id"] = "User ID is required!"
		}
		if strings.TrimSpace(reqData.LessonID) == "" {
			errors["lesson_id"] = "Lesson ID is required!"
		}
		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.LastPositionSeconds < 0 {
			errors["last_position_seconds"] = "Position must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
