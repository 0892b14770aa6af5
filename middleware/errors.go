package middleware

import (
	"errors"
	"log"

	"worldone/supabase"

	"github.com/gofiber/fiber/v2"
)

// NotConfiguredResponse is the fixed answer every data endpoint gives when
// the Supabase client was never initialized.
func NotConfiguredResponse(c *fiber.Ctx) error {
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Database connection not configured", nil)
}

// DataStoreError logs an upstream failure with its operation context and
// maps it onto the API error taxonomy: missing single row -> 404,
// constraint violation -> 400 with the upstream body, anything else -> 500
// with the upstream body.
func DataStoreError(c *fiber.Ctx, op string, err error) error {
	log.Printf("Error %s: %v", op, err)

	if errors.Is(err, supabase.ErrNoRows) {
		return JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	}
	if apiErr, ok := supabase.AsAPIError(err); ok {
		if apiErr.IsDuplicate() {
			return JsonResponse(c, fiber.StatusBadRequest, false, apiErr.Body, nil)
		}
		return JsonResponse(c, fiber.StatusInternalServerError, false, apiErr.Body, nil)
	}
	return JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
}
