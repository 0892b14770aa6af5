package controllers

import (
	"worldone/database"
	"worldone/middleware"
	"worldone/models"
	"worldone/supabase"

	"github.com/gofiber/fiber/v2"
)

func GetAllCourses(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	res, err := db.Table("courses").Select("*").Order("created_at", true).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching courses", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", res.Rows)
}

func CreateCourse(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// New courses always start as drafts
	reqData.IsPublished = false

	res, err := db.Table("courses").Insert(reqData).Execute()
	if err != nil {
		if apiErr, dup := supabase.AsAPIError(err); dup && apiErr.IsDuplicate() {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course with this slug already exists.", nil)
		}
		return middleware.DataStoreError(c, "creating course", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", res.First())
}

func GetCourse(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	courseID := c.Params("id")

	res, err := db.Table("courses").Select("*").Eq("id", courseID).Single().Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching course "+courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", res.First())
}

func UpdateCourse(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	courseID := c.Params("id")

	updateData, ok := c.Locals("validatedCourseUpdate").(map[string]interface{})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if len(updateData) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No data content to update", nil)
	}

	res, err := db.Table("courses").Update(updateData).Eq("id", courseID).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "updating course "+courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", res.First())
}

func DeleteCourse(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	courseID := c.Params("id")

	if _, err := db.Table("courses").Delete().Eq("id", courseID).Execute(); err != nil {
		return middleware.DataStoreError(c, "deleting course "+courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetCourseBySlug returns a course with its modules and lessons nested.
// Lessons are fetched in one bulk request for all modules and grouped in
// memory, instead of one request per module.
func GetCourseBySlug(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	slug := c.Params("slug")

	courseRes, err := db.Table("courses").Select("*").Eq("slug", slug).Single().Execute()
	if err != nil {
		if err == supabase.ErrNoRows {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		return middleware.DataStoreError(c, "fetching course by slug "+slug, err)
	}
	course := courseRes.First()

	modRes, err := db.Table("course_modules").
		Select("*").
		Eq("course_id", course.Str("id")).
		Order("order", false).
		Order("created_at", false).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching modules for course "+course.Str("id"), err)
	}
	modules := modRes.Rows
	sortByOrderThenCreated(modules)

	// One bulk fetch for every lesson in the course, then group by module
	lessonsByModule := map[string][]supabase.Record{}
	if len(modules) > 0 {
		moduleIDs := make([]string, 0, len(modules))
		for _, mod := range modules {
			moduleIDs = append(moduleIDs, mod.Str("id"))
		}

		lessonRes, err := db.Table("course_lessons").
			Select("*").
			In("module_id", moduleIDs).
			Order("order", false).
			Order("created_at", false).
			Execute()
		if err != nil {
			return middleware.DataStoreError(c, "fetching lessons for course "+course.Str("id"), err)
		}

		lessons := lessonRes.Rows
		sortByOrderThenCreated(lessons)
		for _, lesson := range lessons {
			moduleID := lesson.Str("module_id")
			lessonsByModule[moduleID] = append(lessonsByModule[moduleID], lesson)
		}
	}

	for _, mod := range modules {
		lessons := lessonsByModule[mod.Str("id")]
		if lessons == nil {
			lessons = []supabase.Record{}
		}
		mod["lessons"] = lessons
	}
	course["modules"] = modules

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
