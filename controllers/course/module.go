package controllers

import (
	"worldone/database"
	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

func CreateModule(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedModule").(*models.CourseModule)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	res, err := db.Table("course_modules").Insert(reqData).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "creating module", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", res.First())
}

func GetCourseModules(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	courseID := c.Params("id")

	res, err := db.Table("course_modules").
		Select("*").
		Eq("course_id", courseID).
		Order("order", false).
		Order("created_at", false).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching modules for course "+courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", res.Rows)
}

func UpdateModule(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	moduleID := c.Params("module_id")

	updateData, ok := c.Locals("validatedModuleUpdate").(map[string]interface{})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	if len(updateData) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No data content to update", nil)
	}

	res, err := db.Table("course_modules").Update(updateData).Eq("id", moduleID).Execute()
	if err != nil {
		return middleware.DataStoreError(c, "updating module "+moduleID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", res.First())
}

func DeleteModule(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	moduleID := c.Params("module_id")

	if _, err := db.Table("course_modules").Delete().Eq("id", moduleID).Execute(); err != nil {
		return middleware.DataStoreError(c, "deleting module "+moduleID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
