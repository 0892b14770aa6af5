package controllers

import (
	"fmt"

	"worldone/database"
	"worldone/middleware"
	"worldone/supabase"
	"worldone/utils"

	"github.com/gofiber/fiber/v2"
)

// StudentReportPDF renders a student's report card as a PDF download. The
// rows come from the precomputed per-course progress view.
func StudentReportPDF(c *fiber.Ctx) error {
	db := database.Client()
	if db == nil {
		return middleware.NotConfiguredResponse(c)
	}
	userID := c.Params("user_id")

	studentName := "Student"
	profileRes, err := db.Table("profiles").Select("full_name").Eq("id", userID).Single().Execute()
	if err == nil && profileRes.First().Str("full_name") != "" {
		studentName = profileRes.First().Str("full_name")
	}

	progressRes, err := db.Table("view_student_progress").
		Select("*").
		Eq("user_id", userID).
		Order("course_title", false).
		Execute()
	if err != nil {
		return middleware.DataStoreError(c, "fetching report data for user "+userID, err)
	}

	rows := make([]utils.ReportRow, 0, len(progressRes.Rows))
	for _, row := range progressRes.Rows {
		rows = append(rows, utils.ReportRow{
			Title:    row.Str("course_title"),
			Progress: row.Int("progress_percent"),
			Grade:    gradeLabel(row),
		})
	}

	pdf, err := utils.GenerateStudentReport(studentName, rows)
	if err != nil {
		return middleware.DataStoreError(c, "rendering report for user "+userID, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="report_%s.pdf"`, userID))
	return c.Send(pdf)
}

func gradeLabel(row supabase.Record) string {
	if _, ok := row["average_score"]; !ok {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", row.Int("average_score"))
}
