package causeController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sdf/cache"
	"sdf/config"
	"sdf/database"
	"sdf/middleware"
	"sdf/models"
	causeRoutes "sdf/routers/causeRoutes"
	"sdf/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	if mc, ok := cache.Store.(*cache.MemoryCache); ok {
		mc.Flush()
	}

	app := fiber.New()
	causeRoutes.SetupCauseRoutes(app)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateJWT(1, "Admin", "ADMIN", "admin@supansha.org", "9999999999")
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, auth string) *http.Response {
	t.Helper()

	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type causeEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Cause   models.Cause `json:"cause"`
}

type causeListEnvelope struct {
	Success bool           `json:"success"`
	Causes  []models.Cause `json:"causes"`
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func TestListActiveCausesFiltersWindowAndFlag(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	require.NoError(t, db.Create(&models.Cause{Title: "Open", Slug: "open", Goal: 1000}).Error)

	inactive := models.Cause{Title: "Inactive", Slug: "inactive", Goal: 1000}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)
	require.NoError(t, db.Create(&models.Cause{Title: "Ended", Slug: "ended", Goal: 1000, EndDate: &past}).Error)
	require.NoError(t, db.Create(&models.Cause{Title: "Upcoming", Slug: "upcoming", Goal: 1000, StartDate: &future}).Error)

	var out causeListEnvelope
	resp := doRequest(t, app, "GET", "/api/cause/active", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &out)
	require.Len(t, out.Causes, 1)
	require.Equal(t, "Open", out.Causes[0].Title)
}

func TestCreateCauseRejectsDuplicateSlug(t *testing.T) {
	app := setupApp(t)
	admin := adminToken(t)

	body := map[string]interface{}{
		"title": "Clean Water Access",
		"slug":  "clean-water",
		"goal":  500000,
	}

	resp := doRequest(t, app, "POST", "/api/cause", body, admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out causeEnvelope
	decodeBody(t, resp, &out)
	require.True(t, out.Cause.IsActive)
	require.Equal(t, uint(0), out.Cause.Raised)

	resp = doRequest(t, app, "POST", "/api/cause", body, admin)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateCauseRequiresAdmin(t *testing.T) {
	app := setupApp(t)

	body := map[string]interface{}{"title": "Test Cause", "slug": "test-cause", "goal": 100}
	resp := doRequest(t, app, "POST", "/api/cause", body, "")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateCauseKeepsRaisedAndChecksSlug(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db
	admin := adminToken(t)

	cause := models.Cause{Title: "Education Projects", Slug: "education", Goal: 800000, Raised: 12000}
	require.NoError(t, db.Create(&cause).Error)
	require.NoError(t, db.Create(&models.Cause{Title: "Other", Slug: "other", Goal: 1000}).Error)

	resp := doRequest(t, app, "PUT", fmt.Sprintf("/api/cause/%d", cause.ID),
		map[string]interface{}{"title": "Education For All", "goal": 900000}, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out causeEnvelope
	decodeBody(t, resp, &out)
	require.Equal(t, "Education For All", out.Cause.Title)
	require.Equal(t, uint(900000), out.Cause.Goal)
	require.Equal(t, uint(12000), out.Cause.Raised)

	// Renaming onto an existing slug is rejected.
	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/cause/%d", cause.ID),
		map[string]interface{}{"slug": "other"}, admin)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestRecomputeRaisedCorrectsDrift(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db
	admin := adminToken(t)

	cause := models.Cause{Title: "Healthcare Initiatives", Slug: "healthcare", Goal: 600000, Raised: 99999}
	require.NoError(t, db.Create(&cause).Error)

	require.NoError(t, db.Create(&models.Donation{Name: "A", Email: "a@example.com", Phone: "9000000001",
		Amount: 500, PaymentID: "pay_rc1", Status: models.DonationStatusCompleted, CauseID: &cause.ID}).Error)
	require.NoError(t, db.Create(&models.Donation{Name: "B", Email: "b@example.com", Phone: "9000000002",
		Amount: 700, PaymentID: "pay_rc2", Status: models.DonationStatusCompleted, CauseID: &cause.ID}).Error)
	require.NoError(t, db.Create(&models.Donation{Name: "C", Email: "c@example.com", Phone: "9000000003",
		Amount: 900, PaymentID: "pay_rc3", Status: models.DonationStatusPending, CauseID: &cause.ID}).Error)

	resp := doRequest(t, app, "POST", fmt.Sprintf("/api/cause/%d/recompute", cause.ID), nil, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out causeEnvelope
	decodeBody(t, resp, &out)
	require.Equal(t, uint(1200), out.Cause.Raised)

	var updated models.Cause
	require.NoError(t, db.First(&updated, cause.ID).Error)
	require.Equal(t, uint(1200), updated.Raised)
}

func TestReconcileCauseTotalsRepairsDrift(t *testing.T) {
	setupApp(t)
	db := database.Database.Db

	cause := models.Cause{Title: "Rural Development", Slug: "rural", Goal: 400000, Raised: 50}
	require.NoError(t, db.Create(&cause).Error)

	require.NoError(t, db.Create(&models.Donation{Name: "A", Email: "a@example.com", Phone: "9000000001",
		Amount: 2000, PaymentID: "pay_drift1", Status: models.DonationStatusCompleted, CauseID: &cause.ID}).Error)

	utils.ReconcileCauseTotals()

	var updated models.Cause
	require.NoError(t, db.First(&updated, cause.ID).Error)
	require.Equal(t, uint(2000), updated.Raised)
}
