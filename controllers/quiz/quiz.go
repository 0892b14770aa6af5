package controllers

import (
	"worldone/database"
	"worldone/middleware"
	"worldone/models"
	"worldone/supabase"

	"github.com/gofiber/fiber/v2"
)

func CreateQuiz(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedQuiz").(*models.Quiz)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	res, err := db.Table("quizzes").Insert(reqData).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "creating quiz", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", res.First())
}

// GetLessonQuiz returns the quiz attached to a lesson with its questions
// and options nested, ready for the quiz player.
func GetLessonQuiz(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	lessonID := c.Params("lesson_id")

	quizRes, err := db.Table("quizzes").Select("*").Eq("lesson_id", lessonID).Single().Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching quiz for lesson "+lessonID, err)
	}
	quiz := quizRes.First()

	questionRes, err := db.Table("quiz_questions").
		Select("*").
		Eq("quiz_id", quiz.Str("id")).
		Order("order_index", false).
		Order("created_at", false).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching questions for quiz "+quiz.Str("id"), err)
	}
	questions := questionRes.Rows

	optionsByQuestion := map[string][]supabase.Record{}
	if len(questions) > 0 {
		questionIDs := make([]string, 0, len(questions))
		for _, q := range questions {
			questionIDs = append(questionIDs, q.Str("id"))
		}

		optionRes, err := db.Table("quiz_options").
			Select("*").
			In("question_id", questionIDs).
			Order("order_index", false).
			Execute()
		if err != nil {
			return middleware.DataStoreError(c, "fetching options for quiz "+quiz.Str("id"), err)
		}
		for _, opt := range optionRes.Rows {
			qid := opt.Str("question_id")
			optionsByQuestion[qid] = append(optionsByQuestion[qid], opt)
		}
	}

	for _, q := range questions {
		options := optionsByQuestion[q.Str("id")]
		if options == nil {
			options = []supabase.Record{}
		}
		q["options"] = options
	}
	quiz["questions"] = questions

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

func AddQuestion(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedQuestion").(*models.QuizQuestion)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	res, err := db.Table("quiz_questions").Insert(reqData).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "creating question", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", res.First())
}

func DeleteQuestion(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	questionID := c.Params("question_id")

	if _, err := db.Table("quiz_questions").Delete().Eq("id", questionID).Execute(); err != nil {
		return middleware.DataStoreError(c, "deleting question "+questionID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}

func AddOption(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedOption").(*models.QuizOption)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	res, err := db.Table("quiz_options").Insert(reqData).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "creating option", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Option created successfully!", res.First())
}

func DeleteOption(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	optionID := c.Params("option_id")

	if _, err := db.Table("quiz_options").Delete().Eq("id", optionID).Execute(); err != nil {
		return middleware.DataStoreError(c, "deleting option "+optionID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Option deleted successfully!", nil)
}
