package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"riseacademy_backend/internals/features/contact/model"
)

type captureNotifier struct {
	ch  chan model.ContactSubmissionModel
	err error
}

func (n *captureNotifier) NotifyNewInquiry(_ context.Context, sub *model.ContactSubmissionModel) error {
	if n.ch != nil {
		n.ch <- *sub
	}
	return n.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ContactSubmissionModel{}))
	return db
}

func newTestApp(db *gorm.DB, notifier *captureNotifier) *fiber.App {
	app := fiber.New()
	ctrl := NewContactController(db, notifier)
	app.Post("/api/public/contact", ctrl.Create)
	app.Get("/api/a/contacts", ctrl.List)
	app.Get("/api/a/contacts/:id", ctrl.GetByID)
	app.Post("/api/a/contacts/:id/read", ctrl.MarkRead)
	app.Patch("/api/a/contacts/:id/read", ctrl.SetRead)
	app.Delete("/api/a/contacts/:id", ctrl.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	return doJSON(t, app, http.MethodPost, path, body)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateContact(t *testing.T) {
	db := newTestDB(t)
	notifier := &captureNotifier{ch: make(chan model.ContactSubmissionModel, 1)}
	app := newTestApp(db, notifier)

	resp := postJSON(t, app, "/api/public/contact", map[string]any{
		"parent_name": "Jordan Blake",
		"email":       "Jordan@Example.com",
		"phone":       "555-0101",
		"grade_level": "middle",
		"message":     "Interested in a tour.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "jordan@example.com", data["email"])
	assert.Equal(t, false, data["is_read"])
	assert.NotEmpty(t, data["created_at"])

	select {
	case sent := <-notifier.ch:
		assert.Equal(t, "Jordan Blake", sent.ContactParentName)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}

	var count int64
	require.NoError(t, db.Model(&model.ContactSubmissionModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateContactValidation(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &captureNotifier{})

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"missing parent name", map[string]any{"email": "a@b.com"}},
		{"missing email", map[string]any{"parent_name": "Jordan"}},
		{"bad email", map[string]any{"parent_name": "Jordan", "email": "not-an-email"}},
		{"bad grade level", map[string]any{"parent_name": "Jordan", "email": "a@b.com", "grade_level": "college"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/public/contact", tc.payload)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.ContactSubmissionModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "validation failures must not insert")
}

func TestCreateContactNotifierFailureTolerated(t *testing.T) {
	db := newTestDB(t)
	notifier := &captureNotifier{ch: make(chan model.ContactSubmissionModel, 1), err: errors.New("smtp down")}
	app := newTestApp(db, notifier)

	resp := postJSON(t, app, "/api/public/contact", map[string]any{
		"parent_name": "Casey Ruiz",
		"email":       "casey@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	<-notifier.ch

	var count int64
	require.NoError(t, db.Model(&model.ContactSubmissionModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func seedContact(t *testing.T, db *gorm.DB) *model.ContactSubmissionModel {
	t.Helper()
	sub := &model.ContactSubmissionModel{
		ContactParentName: "Riley Park",
		ContactEmail:      "riley@example.com",
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func TestContactDetailIsPureRead(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &captureNotifier{})
	sub := seedContact(t, db)

	resp := doJSON(t, app, http.MethodGet, "/api/a/contacts/"+sub.ContactID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fresh model.ContactSubmissionModel
	require.NoError(t, db.First(&fresh, "contact_id = ?", sub.ContactID).Error)
	assert.False(t, fresh.ContactIsRead, "detail view must not flip the read flag")
}

func TestMarkReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &captureNotifier{})
	sub := seedContact(t, db)
	path := "/api/a/contacts/" + sub.ContactID.String() + "/read"

	for i := 0; i < 2; i++ {
		resp := postJSON(t, app, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, true, data["is_read"])
	}
}

func TestSetReadToggle(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &captureNotifier{})
	sub := seedContact(t, db)
	path := "/api/a/contacts/" + sub.ContactID.String() + "/read"

	resp := doJSON(t, app, http.MethodPatch, path, map[string]any{"is_read": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, path, map[string]any{"is_read": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fresh model.ContactSubmissionModel
	require.NoError(t, db.First(&fresh, "contact_id = ?", sub.ContactID).Error)
	assert.False(t, fresh.ContactIsRead)
}

func TestDeleteContact(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &captureNotifier{})
	sub := seedContact(t, db)

	resp := doJSON(t, app, http.MethodDelete, "/api/a/contacts/"+sub.ContactID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ContactSubmissionModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	resp = doJSON(t, app, http.MethodDelete, "/api/a/contacts/"+sub.ContactID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListContactsPaginated(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db, &captureNotifier{})
	for i := 0; i < 5; i++ {
		seedContact(t, db)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/a/contacts?page=1&per_page=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["data"].([]any), 2)
	p := body["pagination"].(map[string]any)
	assert.EqualValues(t, 5, p["total"])
	assert.EqualValues(t, 3, p["total_pages"])
	assert.Equal(t, true, p["has_next"])
}
