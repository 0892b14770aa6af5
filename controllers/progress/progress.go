package controllers

import (
	"time"

	"worldone/database"
	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress upserts a student's progress for a lesson, keyed by
// (user_id, lesson_id). The completion timestamp is set only on the
// transition to completed, never overwritten by later position updates.
func UpdateProgress(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedProgress").(*models.LessonProgress)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	existing, err := db.Table("lesson_progress").
		Select("id,is_completed").
		Eq("user_id", reqData.UserID).
		Eq("lesson_id", reqData.LessonID).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "looking up progress for lesson "+reqData.LessonID, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	if row := existing.First(); row != nil {
		update := map[string]interface{}{
			"is_completed":          reqData.IsCompleted,
			"last_position_seconds": reqData.LastPositionSeconds,
		}
		if reqData.IsCompleted && !row.Bool("is_completed") {
			update["completed_at"] = now
		}
		res, err := db.Table("lesson_progress").Update(update).Eq("id", row.Str("id")).Execute()
		if err != nil {
			return middleware.DataStoreError(c, "updating progress "+row.Str("id"), err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", res.First())
	}

	if reqData.IsCompleted {
		reqData.CompletedAt = now
	}
	res, err := db.Table("lesson_progress").Insert(reqData).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "storing progress for lesson "+reqData.LessonID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Progress stored successfully!", res.First())
}

// GetCourseProgress lists a student's per-lesson progress within a course.
func GetCourseProgress(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	userID := c.Params("user_id")
	courseID := c.Params("course_id")

	res, err := db.Table("lesson_progress").
		Select("*").
		Eq("user_id", userID).
		Eq("course_id", courseID).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching progress for user "+userID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", res.Rows)
}
