package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"worldone/database"
	"worldone/supabase"
	progressValidator "worldone/validators/progress"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProgressStore holds one lesson_progress row and records each write
// body so tests can check exactly which fields were sent.
type fakeProgressStore struct {
	row     map[string]interface{}
	patches []map[string]interface{}
}

func (f *fakeProgressStore) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if f.row == nil {
				w.Write([]byte("[]"))
				return
			}
			json.NewEncoder(w).Encode([]map[string]interface{}{f.row})
		case http.MethodPost:
			json.NewDecoder(r.Body).Decode(&f.row)
			f.row["id"] = "prog-1"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode([]map[string]interface{}{f.row})
		case http.MethodPatch:
			var update map[string]interface{}
			json.NewDecoder(r.Body).Decode(&update)
			f.patches = append(f.patches, update)
			for k, v := range update {
				f.row[k] = v
			}
			json.NewEncoder(w).Encode([]map[string]interface{}{f.row})
		}
	}
}

func newProgressApp(t *testing.T) (*fiber.App, *fakeProgressStore) {
	t.Helper()
	store := &fakeProgressStore{}
	srv := httptest.NewServer(store.handler())
	t.Cleanup(srv.Close)
	database.Set(supabase.NewClient(srv.URL, "test-key"))
	t.Cleanup(func() { database.Set(nil) })

	app := fiber.New()
	app.Post("/progress", progressValidator.UpdateProgress(), UpdateProgress)
	return app, store
}

func postProgress(t *testing.T, app *fiber.App, completed bool, position int) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{
		"user_id":               "student-1",
		"lesson_id":             "lesson-1",
		"course_id":             "course-1",
		"is_completed":          completed,
		"last_position_seconds": position,
	})
	req := httptest.NewRequest(http.MethodPost, "/progress", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProgressCompletionTimestampSetOnlyOnTransition(t *testing.T) {
	app, store := newProgressApp(t)

	// First report: watching, not completed
	resp := postProgress(t, app, false, 30)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	_, hasCompletedAt := store.row["completed_at"]
	assert.False(t, hasCompletedAt)

	// Transition to completed stamps the timestamp
	resp = postProgress(t, app, true, 300)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, store.patches, 1)
	assert.NotEmpty(t, store.patches[0]["completed_at"])
	stamped := store.row["completed_at"]

	// A later position update must not touch it
	resp = postProgress(t, app, true, 360)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, store.patches, 2)
	_, resent := store.patches[1]["completed_at"]
	assert.False(t, resent, "completion timestamp must not be overwritten")
	assert.Equal(t, stamped, store.row["completed_at"])
	assert.Equal(t, float64(360), store.row["last_position_seconds"])
}

func TestProgressFirstReportAlreadyCompleted(t *testing.T) {
	app, store := newProgressApp(t)

	resp := postProgress(t, app, true, 500)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, store.row["completed_at"])
}

func TestProgressRejectsNegativePosition(t *testing.T) {
	app, store := newProgressApp(t)

	resp := postProgress(t, app, false, -5)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Nil(t, store.row)
}
