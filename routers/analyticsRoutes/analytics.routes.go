package analyticsRoutes

import (
	analyticsControllers "worldone/controllers/analytics"
	reportControllers "worldone/controllers/report"
	uploadControllers "worldone/controllers/upload"

	"github.com/gofiber/fiber/v2"
)

// SetupAnalyticsRoutes sets up dashboard, report and upload routes.
func SetupAnalyticsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/analytics/admin", analyticsControllers.AdminAnalytics)
	api.Get("/analytics/student/:user_id", analyticsControllers.StudentAnalytics)
	api.Get("/reports/pdf/:user_id", reportControllers.StudentReportPDF)
	api.Post("/upload", uploadControllers.UploadFile)
}
