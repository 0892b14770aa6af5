package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"worldone/config"
	"worldone/database"
	"worldone/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadFile streams a multipart upload to Supabase Storage and returns the
// public URL. The file is never buffered in memory; the storage client
// streams the multipart part with an extended timeout for large files.
func UploadFile(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Unique object key: timestamp plus a short random id, keeping the
	// cleaned original name for readability
	cleanName := strings.ReplaceAll(fileHeader.Filename, " ", "_")
	key := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString()[:8], cleanName)

	url, err := db.Upload(config.AppConfig.StorageBucket, key, contentType, src)
	if err != nil {
		log.Printf("Error uploading %s to storage: %v", key, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, fmt.Sprintf("Upload failed: %v", err), nil)
	}

	return c.JSON(fiber.Map{"url": url})
}
