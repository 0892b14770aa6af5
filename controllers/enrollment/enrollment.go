package controllers

import (
	"log"
	"time"

	"worldone/database"
	"worldone/middleware"
	"worldone/models"
	"worldone/supabase"

	"github.com/gofiber/fiber/v2"
)

// Statuses reported by the enrollment flow.
const (
	StatusEnrolled        = "enrolled"
	StatusAlreadyEnrolled = "already_enrolled"
)

// Enroll creates an enrollment for (userID, courseID) if one does not
// already exist. Duplicate attempts are detected by lookup and
// short-circuited, never inserted twice.
func Enroll(db *supabase.Client, userID, courseID string) (string, error) {
	existing, err := db.Table("enrollments").
		Select("id").
		Eq("user_id", userID).
		Eq("course_id", courseID).
		Execute()
	if err != nil {
		return "", err
	}
	if existing.First() != nil {
		return StatusAlreadyEnrolled, nil
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := db.Table("enrollments").Insert(enrollment).Execute(); err != nil {
		// A concurrent enroll can still race the lookup; the unique key on
		// (user_id, course_id) reports it as a duplicate
		if apiErr, ok := supabase.AsAPIError(err); ok && apiErr.IsDuplicate() {
			return StatusAlreadyEnrolled, nil
		}
		return "", err
	}
	return StatusEnrolled, nil
}

// MockProcessPayment is the development checkout flow: it enrolls the user
// in every course in the cart without charging anything.
func MockProcessPayment(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}

	reqData, ok := c.Locals("validatedCheckout").(*models.CheckoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	results := make([]fiber.Map, 0, len(reqData.Items))
	newEnrollments := 0
	for _, courseID := range reqData.Items {
		status, err := Enroll(db, reqData.UserID, courseID)
		if err != nil {
			return middleware.DataStoreError(c, "enrolling user "+reqData.UserID+" in course "+courseID, err)
		}
		if status == StatusEnrolled {
			newEnrollments++
		}
		results = append(results, fiber.Map{"course_id": courseID, "status": status})
	}

	overall := StatusEnrolled
	if newEnrollments == 0 {
		overall = StatusAlreadyEnrolled
	}
	log.Printf("Mock payment processed for user %s: %d new enrollment(s)", reqData.UserID, newEnrollments)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment processed successfully!", fiber.Map{
		"status":  overall,
		"courses": results,
	})
}

// GetUserEnrollments lists a student's enrollments with the course rows
// embedded.
func GetUserEnrollments(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	userID := c.Params("user_id")

	res, err := db.Table("enrollments").
		Select("*,courses(*)").
		Eq("user_id", userID).
		Order("enrolled_at", true).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching enrollments for user "+userID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", res.Rows)
}
