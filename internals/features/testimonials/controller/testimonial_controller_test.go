package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"riseacademy_backend/internals/features/testimonials/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TestimonialModel{}))
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewTestimonialController(db)
	app.Get("/api/public/testimonials", ctrl.PublicList)
	app.Get("/api/a/testimonials", ctrl.AdminList)
	app.Post("/api/a/testimonials", ctrl.Create)
	app.Patch("/api/a/testimonials/:id", ctrl.Update)
	app.Delete("/api/a/testimonials/:id", ctrl.Delete)
	return app
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

func seed(t *testing.T, db *gorm.DB, name string, approved, featured bool) *model.TestimonialModel {
	t.Helper()
	row := &model.TestimonialModel{
		TestimonialName:       name,
		TestimonialRole:       "Parent",
		TestimonialQuote:      "A wonderful place for our kids to learn and grow.",
		TestimonialRating:     5,
		TestimonialIsApproved: approved,
		TestimonialIsFeatured: featured,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func TestCreateTestimonialDefaultsRating(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/a/testimonials", map[string]any{
		"name":  "Avery Quinn",
		"role":  "Parent of Grade 3 Student",
		"quote": "The teachers are attentive and the campus is beautiful.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.EqualValues(t, 5, data["rating"])
	assert.Equal(t, false, data["is_approved"])
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	for _, rating := range []int{-1, 6, 100} {
		resp := doJSON(t, app, http.MethodPost, "/api/a/testimonials", map[string]any{
			"name":   "Bad Rating",
			"role":   "Parent",
			"quote":  "This rating should not be accepted at all.",
			"rating": rating,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "rating %d", rating)
	}
}

func TestPublicListApprovedOnly(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	seed(t, db, "Approved Parent", true, false)
	seed(t, db, "Pending Parent", false, false)

	resp := doJSON(t, app, http.MethodGet, "/api/public/testimonials", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	_, hasFallback := body["fallback"]
	assert.False(t, hasFallback)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Approved Parent", items[0].(map[string]any)["name"])
}

func TestPublicListFeaturedFilter(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	seed(t, db, "Plain", true, false)
	seed(t, db, "Starred", true, true)

	resp := doJSON(t, app, http.MethodGet, "/api/public/testimonials?featured=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := decodeBody(t, resp)["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Starred", items[0].(map[string]any)["name"])
}

func TestPublicListFallbackWhenNoneApproved(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	seed(t, db, "Pending Only", false, false)

	resp := doJSON(t, app, http.MethodGet, "/api/public/testimonials", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["fallback"])
	assert.Len(t, body["data"].([]any), 3)
}

func TestUpdateTogglesApprovedAndFeaturedIndependently(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	row := seed(t, db, "Toggle Me", false, false)
	path := "/api/a/testimonials/" + row.TestimonialID.String()

	resp := doJSON(t, app, http.MethodPatch, path, map[string]any{"is_approved": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fresh model.TestimonialModel
	require.NoError(t, db.First(&fresh, "testimonial_id = ?", row.TestimonialID).Error)
	assert.True(t, fresh.TestimonialIsApproved)
	assert.False(t, fresh.TestimonialIsFeatured, "featured must not change with approved")

	resp = doJSON(t, app, http.MethodPatch, path, map[string]any{"is_featured": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, db.First(&fresh, "testimonial_id = ?", row.TestimonialID).Error)
	assert.True(t, fresh.TestimonialIsApproved)
	assert.True(t, fresh.TestimonialIsFeatured)
}

func TestDeleteTestimonial(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	row := seed(t, db, "Short Lived", true, false)

	resp := doJSON(t, app, http.MethodDelete, "/api/a/testimonials/"+row.TestimonialID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.TestimonialModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAdminListIncludesPending(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	seed(t, db, "Approved", true, false)
	seed(t, db, "Pending", false, false)

	resp := doJSON(t, app, http.MethodGet, "/api/a/testimonials", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["data"].([]any), 2)
}

func TestPublicListFallbackOnQueryError(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)
	require.NoError(t, db.Migrator().DropTable(&model.TestimonialModel{}))

	resp := doJSON(t, app, http.MethodGet, "/api/public/testimonials", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["fallback"])
	assert.Len(t, body["data"].([]any), 3)
}
