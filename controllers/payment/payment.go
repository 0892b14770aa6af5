package controllers

import (
	"encoding/json"
	"log"
	"strings"

	"worldone/config"
	"worldone/database"
	enrollmentControllers "worldone/controllers/enrollment"
	"worldone/middleware"
	"worldone/models"
	"worldone/supabase"
	"worldone/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
)

// CreatePaymentIntent creates a Stripe payment intent for the courses in
// the cart. The amount is always recomputed from the course prices in the
// data store; a client-supplied total is never trusted.
func CreatePaymentIntent(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	if config.AppConfig.StripeSecretKey == "" {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment processor not configured", nil)
	}

	reqData, ok := c.Locals("validatedCheckout").(*models.CheckoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courseRes, err := db.Table("courses").
		Select("id,title,price").
		In("id", reqData.Items).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching course prices", err)
	}
	if len(courseRes.Rows) != len(reqData.Items) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more courses not found!", nil)
	}

	var total float64
	for _, course := range courseRes.Rows {
		total += course.Float("price")
	}

	// Stripe wants minor currency units
	amount := int64(total * 100)
	if amount <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot create a payment intent for a zero amount!", nil)
	}

	stripe.Key = config.AppConfig.StripeSecretKey
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Params: stripe.Params{
			Metadata: map[string]string{
				"user_id":    reqData.UserID,
				"course_ids": strings.Join(reqData.Items, ","),
			},
		},
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		log.Printf("Error creating payment intent for user %s: %v", reqData.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created successfully!", fiber.Map{
		"client_secret": intent.ClientSecret,
		"amount":        amount,
	})
}

// StripeWebhook fulfills enrollments when a payment succeeds. The payload
// is verified against the signing secret before any side effect; once
// verified, the event is always acknowledged so Stripe does not retry, and
// fulfillment failures are logged instead of surfaced.
func StripeWebhook(c *fiber.Ctx) error {
	if config.AppConfig.StripeWebhookSecret == "" {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Webhook secret not configured", nil)
	}

	event, err := webhook.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		log.Printf("Error verifying webhook signature: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook signature!", nil)
	}

	if event.Type == "payment_intent.succeeded" {
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			log.Printf("Error parsing webhook payload for event %s: %v", event.ID, err)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook payload!", nil)
		}
		fulfillPayment(event.ID, intent.Metadata)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook received!", fiber.Map{"received": true})
}

// fulfillPayment enrolls the paying user in every purchased course. Missing
// metadata aborts fulfillment for the event; per-course failures are logged
// and skipped so one bad course id does not block the rest.
func fulfillPayment(eventID string, metadata map[string]string) {
	userID := metadata["user_id"]
	courseIDs := metadata["course_ids"]
	if userID == "" || courseIDs == "" {
		log.Printf("Error fulfilling event %s: missing user_id/course_ids metadata", eventID)
		return
	}

	db := database.Client()
	if db == nil {
		log.Printf("Error fulfilling event %s: database connection not configured", eventID)
		return
	}

	enrolled := 0
	for _, courseID := range strings.Split(courseIDs, ",") {
		courseID = strings.TrimSpace(courseID)
		if courseID == "" {
			continue
		}
		status, err := enrollmentControllers.Enroll(db, userID, courseID)
		if err != nil {
			log.Printf("Error enrolling user %s in course %s for event %s: %v", userID, courseID, eventID, err)
			continue
		}
		if status == enrollmentControllers.StatusEnrolled {
			enrolled++
		}
	}
	log.Printf("Fulfilled event %s: %d new enrollment(s) for user %s", eventID, enrolled, userID)

	if enrolled > 0 {
		sendConfirmationEmail(db, userID)
	}
}

// sendConfirmationEmail is best-effort; a failure never affects fulfillment.
func sendConfirmationEmail(db *supabase.Client, userID string) {
	profileRes, err := db.Table("profiles").Select("email,full_name").Eq("id", userID).Single().Execute()
	if err != nil {
		log.Printf("Error fetching profile %s for confirmation email: %v", userID, err)
		return
	}
	profile := profileRes.First()
	if profile.Str("email") == "" {
		return
	}
	if err := utils.SendEnrollmentConfirmation(profile.Str("email"), profile.Str("full_name")); err != nil {
		log.Printf("Error sending confirmation email to %s: %v", profile.Str("email"), err)
	}
}
