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

func newCourseApp(t *testing.T, store http.HandlerFunc) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(store)
	t.Cleanup(srv.Close)
	database.Set(supabase.NewClient(srv.URL, "test-key"))
	t.Cleanup(func() { database.Set(nil) })

	app := fiber.New()
	app.Get("/courses/slug/:slug", GetCourseBySlug)
	return app
}

func TestGetCourseBySlugNestsModulesAndLessons(t *testing.T) {
	lessonRequests := 0
	app := newCourseApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/courses":
			assert.Equal(t, "eq.algebra-1", r.URL.Query().Get("slug"))
			w.Write([]byte(`{"id":"c1","slug":"algebra-1","title":"Algebra I"}`))
		case "/rest/v1/course_modules":
			assert.Equal(t, "eq.c1", r.URL.Query().Get("course_id"))
			// intentionally out of order; the handler must sort
			w.Write([]byte(`[
				{"id":"m2","order":2,"created_at":"2025-01-02"},
				{"id":"m1","order":1,"created_at":"2025-01-01"}
			]`))
		case "/rest/v1/course_lessons":
			lessonRequests++
			filter := r.URL.Query().Get("module_id")
			assert.Contains(t, filter, "m1")
			assert.Contains(t, filter, "m2")
			w.Write([]byte(`[
				{"id":"l2","module_id":"m1","order":2,"created_at":"2025-01-01"},
				{"id":"l1","module_id":"m1","order":1,"created_at":"2025-01-01"},
				{"id":"l3","module_id":"m2","order":1,"created_at":"2025-01-03"}
			]`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/courses/slug/algebra-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			ID      string `json:"id"`
			Modules []struct {
				ID      string `json:"id"`
				Lessons []struct {
					ID string `json:"id"`
				} `json:"lessons"`
			} `json:"modules"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	assert.Equal(t, "c1", envelope.Data.ID)
	require.Len(t, envelope.Data.Modules, 2)
	assert.Equal(t, "m1", envelope.Data.Modules[0].ID)
	assert.Equal(t, "m2", envelope.Data.Modules[1].ID)

	require.Len(t, envelope.Data.Modules[0].Lessons, 2)
	assert.Equal(t, "l1", envelope.Data.Modules[0].Lessons[0].ID)
	assert.Equal(t, "l2", envelope.Data.Modules[0].Lessons[1].ID)
	require.Len(t, envelope.Data.Modules[1].Lessons, 1)
	assert.Equal(t, "l3", envelope.Data.Modules[1].Lessons[0].ID)

	assert.Equal(t, 1, lessonRequests, "lessons load in one bulk request, not one per module")
}

func TestGetCourseBySlugWithoutModules(t *testing.T) {
	app := newCourseApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/courses":
			w.Write([]byte(`{"id":"c1","slug":"empty","title":"Empty"}`))
		case "/rest/v1/course_modules":
			w.Write([]byte("[]"))
		case "/rest/v1/course_lessons":
			t.Error("no lesson fetch expected for a course without modules")
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/courses/slug/empty", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Modules []interface{} `json:"modules"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Empty(t, envelope.Data.Modules)
}

func TestGetCourseBySlugNotFound(t *testing.T) {
	app := newCourseApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		w.Write([]byte(`{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/courses/slug/missing", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var envelope struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.False(t, envelope.Status)
	assert.Equal(t, "Course not found", envelope.Message)
}
