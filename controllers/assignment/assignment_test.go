package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"worldone/database"
	"worldone/supabase"
	assignmentValidator "worldone/validators/assignment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmissionStore keeps at most one submission row and counts how each
// write arrived, so tests can tell an update from a second insert.
type fakeSubmissionStore struct {
	row     map[string]interface{}
	posts   int
	patches int
}

func (f *fakeSubmissionStore) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/assignment_submissions" {
			w.Write([]byte("[]"))
			return
		}
		switch r.Method {
		case http.MethodGet:
			if f.row == nil {
				w.Write([]byte("[]"))
				return
			}
			json.NewEncoder(w).Encode([]map[string]interface{}{f.row})
		case http.MethodPost:
			f.posts++
			json.NewDecoder(r.Body).Decode(&f.row)
			f.row["id"] = "sub-1"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode([]map[string]interface{}{f.row})
		case http.MethodPatch:
			f.patches++
			var update map[string]interface{}
			json.NewDecoder(r.Body).Decode(&update)
			for k, v := range update {
				f.row[k] = v
			}
			json.NewEncoder(w).Encode([]map[string]interface{}{f.row})
		}
	}
}

func newSubmissionApp(t *testing.T) (*fiber.App, *fakeSubmissionStore) {
	t.Helper()
	store := &fakeSubmissionStore{}
	srv := httptest.NewServer(store.handler())
	t.Cleanup(srv.Close)
	database.Set(supabase.NewClient(srv.URL, "test-key"))
	t.Cleanup(func() { database.Set(nil) })

	app := fiber.New()
	app.Post("/assignments/submit", assignmentValidator.SubmitAssignment(), SubmitAssignment)
	return app, store
}

func submit(t *testing.T, app *fiber.App, payload map[string]interface{}) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/assignments/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSubmitAssignmentUpsertsOneRow(t *testing.T) {
	app, store := newSubmissionApp(t)

	resp := submit(t, app, map[string]interface{}{
		"assignment_id": "assign-1",
		"user_id":       "student-1",
		"file_url":      "https://cdn.example.com/first.pdf",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, store.posts)
	assert.Equal(t, 0, store.patches)

	// Resubmitting replaces the submission in place
	resp = submit(t, app, map[string]interface{}{
		"assignment_id": "assign-1",
		"user_id":       "student-1",
		"file_url":      "https://cdn.example.com/second.pdf",
		"comments":      "fixed the last section",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, store.posts, "a resubmission must never create a second row")
	assert.Equal(t, 1, store.patches)
	assert.Equal(t, "https://cdn.example.com/second.pdf", store.row["file_url"])
	assert.Equal(t, "fixed the last section", store.row["comments"])
	assert.NotEmpty(t, store.row["submitted_at"])
}

func TestSubmitAssignmentRequiresFileOrComments(t *testing.T) {
	app, store := newSubmissionApp(t)

	resp := submit(t, app, map[string]interface{}{
		"assignment_id": "assign-1",
		"user_id":       "student-1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, 0, store.posts)

	// Comments alone are a valid submission
	resp = submit(t, app, map[string]interface{}{
		"assignment_id": "assign-1",
		"user_id":       "student-1",
		"comments":      "submitted in class",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
