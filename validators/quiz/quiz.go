package quizValidator

import (
	"strings"

	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Quiz)

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

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.QuizQuestion)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.QuizID) == "" {
			errors["quiz_id"] = "Quiz ID is required!"
		}
		if strings.TrimSpace(reqData.QuestionText) == "" {
			errors["question_text"] = "Question text is required!"
		}
		if reqData.Points <= 0 {
			errors["points"] = "Points must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

func AddOption() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.QuizOption)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.QuestionID) == "" {
			errors["question_id"] = "Question ID is required!"
		}
		if strings.TrimSpace(reqData.OptionText) == "" {
			errors["option_text"] = "Option text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOption", reqData)
		return c.Next()
	}
}

func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.SubmitAttemptRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.QuizID) == "" {
			errors["quiz_id"] = "Quiz ID is required!"
		}
		if strings.TrimSpace(reqData.UserID) == "" {
			errors["user_id"] = "User ID is required!"
		}
		if len(reqData.Answers) == 0 {
			errors["answers"] = "Please answer at least one question!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}
