package courseValidator

import (
	"strings"

	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Course)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Slug
		if strings.TrimSpace(reqData.Slug) == "" {
			errors["slug"] = "Slug is required!"
		} else if strings.Contains(reqData.Slug, " ") {
			errors["slug"] = "Slug must not contain spaces!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if reqData.Level == "" {
			reqData.Level = "Primary School"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        *string  `json:"title"`
			Description  *string  `json:"description"`
			Price        *float64 `json:"price"`
			Level        *string  `json:"level"`
			IsPublished  *bool    `json:"is_published"`
			ThumbnailURL *string  `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title must not be empty!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Only fields present in the request are patched
		updateData := map[string]interface{}{}
		if reqData.Title != nil {
			updateData["title"] = *reqData.Title
		}
		if reqData.Description != nil {
			updateData["description"] = *reqData.Description
		}
		if reqData.Price != nil {
			updateData["price"] = *reqData.Price
		}
		if reqData.Level != nil {
			updateData["level"] = *reqData.Level
		}
		if reqData.IsPublished != nil {
			updateData["is_published"] = *reqData.IsPublished
		}
		if reqData.ThumbnailURL != nil {
			updateData["thumbnail_url"] = *reqData.ThumbnailURL
		}

		c.Locals("validatedCourseUpdate", updateData)
		return c.Next()
	}
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CourseModule)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
			Order       *int    `json:"order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		updateData := map[string]interface{}{}
		if reqData.Title != nil {
			updateData["title"] = *reqData.Title
		}
		if reqData.Description != nil {
			updateData["description"] = *reqData.Description
		}
		if reqData.Order != nil {
			updateData["order"] = *reqData.Order
		}

		c.Locals("validatedModuleUpdate", updateData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CourseLesson)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ModuleID) == "" {
			errors["module_id"] = "Module ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.LessonType == "" {
			reqData.LessonType = models.LessonTypeText
		}
		switch reqData.LessonType {
		case models.LessonTypeText, models.LessonTypeVideo, models.LessonTypeQuiz,
			models.LessonTypePDF, models.LessonTypeAssignment:
		default:
			errors["lesson_type"] = "Lesson type must be one of: text, video, quiz, pdf, assignment!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
