package paymentValidator

import (
	"strings"

	"worldone/middleware"
	"worldone/models"

	"github.com/gofiber/fiber/v2"
)

// Checkout validates the cart payload shared by the create-intent and
// mock-process flows.
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CheckoutRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.UserID) == "" {
			errors["user_id"] = "User ID is required!"
		}
		if len(reqData.Items) == 0 {
			errors["items"] = "Cart must contain at least one course!"
		}
		for _, id := range reqData.Items {
			if strings.TrimSpace(id) == "" {
				errors["items"] = "Course ids must not be empty!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
