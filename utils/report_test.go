package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStudentReportProducesPDF(t *testing.T) {
	out, err := GenerateStudentReport("Alice Johnson", []ReportRow{
		{Title: "Algebra I", Progress: 80, Grade: "85%"},
		{Title: "Biology", Progress: 40, Grade: "N/A"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateStudentReportWithNoCourses(t *testing.T) {
	out, err := GenerateStudentReport("Alice Johnson", nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

// Enough rows to cross the page boundary; the generator must paginate
// instead of drawing off the page.
func TestGenerateStudentReportPaginates(t *testing.T) {
	few := []ReportRow{{Title: "Algebra I", Progress: 10, Grade: "N/A"}}
	many := make([]ReportRow, 30)
	for i := range many {
		many[i] = ReportRow{Title: fmt.Sprintf("Course %02d", i+1), Progress: i, Grade: "N/A"}
	}

	short, err := GenerateStudentReport("Bob", few)
	require.NoError(t, err)
	long, err := GenerateStudentReport("Bob", many)
	require.NoError(t, err)

	assert.Equal(t, "%PDF", string(long[:4]))
	assert.Greater(t, len(long), len(short))
	// a second page object shows up in the PDF body
	assert.Contains(t, string(long), "/Count 2")
}

func TestGenerateStudentReportTruncatesLongTitles(t *testing.T) {
	longTitle := "An Extremely Long Course Title That Cannot Possibly Fit In The Column"
	out, err := GenerateStudentReport("Bob", []ReportRow{
		{Title: longTitle, Progress: 50, Grade: "70%"},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
