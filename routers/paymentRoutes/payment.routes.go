package paymentRoutes

import (
	enrollmentControllers "worldone/controllers/enrollment"
	paymentControllers "worldone/controllers/payment"
	validators "worldone/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up checkout and webhook routes.
func SetupPaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/payments/create-intent", validators.Checkout(), paymentControllers.CreatePaymentIntent)
	api.Post("/payments/mock-process", validators.Checkout(), enrollmentControllers.MockProcessPayment)
	api.Post("/payments/webhook", paymentControllers.StripeWebhook)
}
