package controllers

import (
	"time"

	"worldone/database"
	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

func CreateAssignment(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedAssignment").(*models.Assignment)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	res, err := db.Table("assignments").Insert(reqData).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "creating assignment", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", res.First())
}

// GetLessonAssignment returns the assignment attached to a lesson.
func GetLessonAssignment(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	lessonID := c.Params("lesson_id")

	res, err := db.Table("assignments").Select("*").Eq("lesson_id", lessonID).Single().Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching assignment for lesson "+lessonID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment fetched successfully!", res.First())
}

// SubmitAssignment stores a student's submission. There is exactly one
// current submission per (assignment, user): an existing row is updated in
// place, otherwise a new one is inserted.
func SubmitAssignment(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	submission, ok := c.Locals("validatedSubmission").(*models.SubmitAssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	// Upsert by lookup: the store has no native upsert for this key
	existing, err := db.Table("assignment_submissions").
		Select("id").
		Eq("assignment_id", submission.AssignmentID).
		Eq("user_id", submission.UserID).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "looking up submission for assignment "+submission.AssignmentID, err)
	}

	if row := existing.First(); row != nil {
		update := map[string]interface{}{
			"file_url":     submission.FileURL,
			"comments":     submission.Comments,
			"submitted_at": now,
		}
		res, err := db.Table("assignment_submissions").Update(update).Eq("id", row.Str("id")).Execute()
		if err != nil {
			return middleware.DataStoreError(c, "updating submission "+row.Str("id"), err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission updated successfully!", res.First())
	}

	insert := models.AssignmentSubmission{
		AssignmentID: submission.AssignmentID,
		UserID:       submission.UserID,
		FileURL:      submission.FileURL,
		Comments:     submission.Comments,
		SubmittedAt:  now,
	}
	res, err := db.Table("assignment_submissions").Insert(insert).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "storing submission for assignment "+submission.AssignmentID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Submission stored successfully!", res.First())
}

// GetSubmissions lists submissions for an assignment, newest first.
func GetSubmissions(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	assignmentID := c.Params("assignment_id")

	res, err := db.Table("assignment_submissions").
		Select("*").
		Eq("assignment_id", assignmentID).
		Order("submitted_at", true).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching submissions for assignment "+assignmentID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", res.Rows)
}

func DeleteAssignment(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	assignmentID := c.Params("assignment_id")

	if _, err := db.Table("assignments").Delete().Eq("id", assignmentID).Execute(); err != nil {
		return middleware.DataStoreError(c, "deleting assignment "+assignmentID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment deleted successfully!", nil)
}
