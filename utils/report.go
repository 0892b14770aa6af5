package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ReportRow is one line of the student report card.
type ReportRow struct {
	Title    string
	Progress int    // percent complete
	Grade    string // display grade, e.g. "85%" or "N/A"
}

// Report layout constants, letter-size page in points.
const (
	reportMarginX    = 50.0
	reportRowStep    = 25.0
	reportLowWater   = 50.0 // start a new page when the cursor gets this close to the bottom
	reportTitleLimit = 40
)

// GenerateStudentReport renders the report card PDF: fixed header block,
// one row per course, new page when the cursor crosses the low-water mark.
// Pure apart from the date line; no state survives between calls.
func GenerateStudentReport(studentName string, courses []ReportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()

	// Header
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(reportMarginX, 50, "World One Online School")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(reportMarginX, 80, "Official Student Report Card")

	// Student info
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(reportMarginX, 130, "Student: "+studentName)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(reportMarginX, 150, "Date: "+time.Now().Format("2006-01-02"))

	// Table header
	y := 200.0
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(reportMarginX, y, "Course Name")
	pdf.Text(350, y, "Progress")
	pdf.Text(450, y, "Grade")
	pdf.Line(reportMarginX, y+5, 550, y+5)

	// Rows
	y += 30
	pdf.SetFont("Helvetica", "", 12)
	for _, course := range courses {
		title := course.Title
		if title == "" {
			title = "Unknown Course"
		}
		if len(title) > reportTitleLimit {
			title = title[:reportTitleLimit-3] + "..."
		}

		pdf.Text(reportMarginX, y, title)
		pdf.Text(350, y, fmt.Sprintf("%d%%", course.Progress))
		pdf.Text(450, y, course.Grade)

		y += reportRowStep
		if y > pageHeight-reportLowWater {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 12)
			y = 50
		}
	}

	// Footer
	pdf.Line(reportMarginX, pageHeight-50, 550, pageHeight-50)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Text(reportMarginX, pageHeight-35, "Generated automatically by World One Online School System.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
