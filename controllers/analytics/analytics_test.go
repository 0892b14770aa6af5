package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"worldone/database"
	"worldone/supabase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsApp(t *testing.T, store http.HandlerFunc) *fiber.App {
	t.Helper()
	if store != nil {
		srv := httptest.NewServer(store)
		t.Cleanup(srv.Close)
		database.Set(supabase.NewClient(srv.URL, "test-key"))
	} else {
		database.Set(nil)
	}
	t.Cleanup(func() { database.Set(nil) })

	app := fiber.New()
	app.Get("/analytics/admin", AdminAnalytics)
	app.Get("/analytics/student/:user_id", StudentAnalytics)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestAdminAnalyticsShapesDashboardPayload(t *testing.T) {
	app := newAnalyticsApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/view_admin_stats":
			w.Write([]byte(`{"total_students":42,"total_courses":7,"total_enrollments":90,"total_revenue":1234.5}`))
		case "/rest/v1/view_course_performance":
			assert.Equal(t, "enrollment_count.desc", r.URL.Query().Get("order"))
			w.Write([]byte(`[{"course_title":"Algebra I","enrollment_count":30},{"course_title":"Biology","enrollment_count":12}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	code, payload := getJSON(t, app, "/analytics/admin")
	require.Equal(t, http.StatusOK, code)

	overview := payload["overview"].(map[string]interface{})
	assert.Equal(t, float64(42), overview["total_students"])
	assert.Equal(t, 1234.5, overview["total_revenue"])

	topCourses := payload["top_courses"].([]interface{})
	require.Len(t, topCourses, 2)
	assert.Equal(t, "Algebra I", topCourses[0].(map[string]interface{})["course_title"])
}

// Dashboards degrade to zeros instead of erroring when the views are
// missing or the store is down.
func TestAdminAnalyticsDegradesToZeros(t *testing.T) {
	app := newAnalyticsApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"PGRST205","message":"relation does not exist"}`))
	})

	code, payload := getJSON(t, app, "/analytics/admin")
	require.Equal(t, http.StatusOK, code)

	overview := payload["overview"].(map[string]interface{})
	assert.Equal(t, float64(0), overview["total_students"])
	assert.Equal(t, float64(0), overview["total_revenue"])
	assert.Empty(t, payload["top_courses"])
}

func TestAdminAnalyticsWithoutStoreStillAnswers(t *testing.T) {
	app := newAnalyticsApp(t, nil)

	code, payload := getJSON(t, app, "/analytics/admin")
	require.Equal(t, http.StatusOK, code)
	overview := payload["overview"].(map[string]interface{})
	assert.Equal(t, float64(0), overview["total_enrollments"])
}

func TestStudentAnalyticsSummarizesProgress(t *testing.T) {
	app := newAnalyticsApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/view_student_progress", r.URL.Path)
		assert.Equal(t, "eq.student-1", r.URL.Query().Get("user_id"))
		w.Write([]byte(`[
			{"course_title":"Algebra I","completed_lessons":4,"average_score":80},
			{"course_title":"Biology","completed_lessons":2,"average_score":60},
			{"course_title":"Chemistry","completed_lessons":0}
		]`))
	})

	code, payload := getJSON(t, app, "/analytics/student/student-1")
	require.Equal(t, http.StatusOK, code)

	summary := payload["summary"].(map[string]interface{})
	assert.Equal(t, float64(3), summary["enrolled_courses"])
	assert.Equal(t, float64(6), summary["completed_lessons"])
	// only rows that carry a score enter the average
	assert.Equal(t, float64(70), summary["average_score"])
}

func TestStudentAnalyticsDegradesToZeros(t *testing.T) {
	app := newAnalyticsApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})

	code, payload := getJSON(t, app, "/analytics/student/student-1")
	require.Equal(t, http.StatusOK, code)

	summary := payload["summary"].(map[string]interface{})
	assert.Equal(t, float64(0), summary["enrolled_courses"])
	assert.Empty(t, payload["courses"])
}
