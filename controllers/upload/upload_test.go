package controllers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worldone/config"
	"worldone/database"
	"worldone/supabase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadApp(t *testing.T, store http.HandlerFunc) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(store)
	t.Cleanup(srv.Close)
	database.Set(supabase.NewClient(srv.URL, "test-key"))
	t.Cleanup(func() { database.Set(nil) })

	config.AppConfig = &config.Config{StorageBucket: "course-content"}

	app := fiber.New()
	app.Post("/upload", UploadFile)
	return app
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadFileReturnsPublicURL(t *testing.T) {
	var gotPath, gotBody string
	app := newUploadApp(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath = r.URL.Path
		gotBody = string(body)
		w.Write([]byte(`{"Key":"ok"}`))
	})

	buf, contentType := multipartUpload(t, "my lecture notes.pdf", "pdf-bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(respBody), `"url":`)
	assert.Contains(t, string(respBody), "/storage/v1/object/public/course-content/")

	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/course-content/"))
	// spaces in the original name are cleaned out of the object key
	assert.NotContains(t, gotPath, " ")
	assert.Contains(t, gotPath, "my_lecture_notes.pdf")
	assert.Equal(t, "pdf-bytes", gotBody)
}

func TestUploadFileWithoutFileIsRejected(t *testing.T) {
	called := false
	app := newUploadApp(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("not multipart"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, called)
}

func TestUploadFileSurfacesStorageFailure(t *testing.T) {
	app := newUploadApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Bucket not found"}`))
	})

	buf, contentType := multipartUpload(t, "notes.pdf", "pdf-bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
