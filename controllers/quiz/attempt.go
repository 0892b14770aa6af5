package controllers

import (
	"time"

	"worldone/database"
	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitAttempt grades a quiz submission server-side and stores the
// attempt. The client's answers are trusted only for which option was
// chosen; correctness always comes from the canonical question and option
// rows.
func SubmitAttempt(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedAttempt").(*models.SubmitAttemptRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	questionRes, err := db.Table("quiz_questions").
		Select("id,points").
		Eq("quiz_id", reqData.QuizID).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching questions for quiz "+reqData.QuizID, err)
	}

	points := make(map[string]int, len(questionRes.Rows))
	questionIDs := make([]string, 0, len(questionRes.Rows))
	for _, q := range questionRes.Rows {
		points[q.Str("id")] = q.Int("points")
		questionIDs = append(questionIDs, q.Str("id"))
	}

	correctOptions := map[string]string{}
	if len(questionIDs) > 0 {
		optionRes, err := db.Table("quiz_options").
			Select("id,question_id").
			In("question_id", questionIDs).
			Eq("is_correct", true).
			Execute()
		if err != nil {
			return middleware.DataStoreError(c, "fetching correct options for quiz "+reqData.QuizID, err)
		}
		for _, opt := range optionRes.Rows {
			correctOptions[opt.Str("question_id")] = opt.Str("id")
		}
	}

	score, maxScore := gradeQuiz(points, correctOptions, reqData.Answers)

	attempt := models.QuizAttempt{
		QuizID:      reqData.QuizID,
		UserID:      reqData.UserID,
		Score:       score,
		MaxScore:    maxScore,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	}
	attemptRes, err := db.Table("quiz_attempts").Insert(attempt).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "storing attempt for quiz "+reqData.QuizID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz graded successfully!", fiber.Map{
		"score":      score,
		"max_score":  maxScore,
		"percentage": percentage(score, maxScore),
		"attempt":    attemptRes.First(),
	})
}

// GetUserAttempts lists a student's attempts for a quiz, latest first.
func GetUserAttempts(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	quizID := c.Params("quiz_id")
	userID := c.Params("user_id")

	res, err := db.Table("quiz_attempts").
		Select("*").
		Eq("quiz_id", quizID).
		Eq("user_id", userID).
		Order("completed_at", true).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching attempts for quiz "+quizID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", res.Rows)
}
