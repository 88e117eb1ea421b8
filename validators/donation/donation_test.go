package donationValidator_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	donationValidator "sdf/validators/donation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func setupValidatorApp() *fiber.App {
	app := fiber.New()
	app.Post("/donate", donationValidator.Create(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func postDonation(t *testing.T, app *fiber.App, body map[string]interface{}) (*http.Response, map[string]string) {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/donate", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out struct {
		Errors map[string]string `json:"errors"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out.Errors
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Priya Sharma",
		"email":       "priya@example.com",
		"phone":       "9876543210",
		"amount":      1000,
		"acceptTerms": true,
		"paymentId":   "pay_test_validator",
		"status":      "completed",
	}
}

func TestCreateValidatorAmountBounds(t *testing.T) {
	app := setupValidatorApp()

	body := validBody()
	body["amount"] = 99
	resp, errs := postDonation(t, app, body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "Minimum donation amount is ₹100", errs["amount"])

	body["amount"] = 100001
	resp, errs = postDonation(t, app, body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "Maximum donation amount is ₹100,000", errs["amount"])

	// Bounds are inclusive.
	body["amount"] = 100
	resp, _ = postDonation(t, app, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body["amount"] = 100000
	resp, _ = postDonation(t, app, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateValidatorAcceptTermsBlocksSubmission(t *testing.T) {
	app := setupValidatorApp()

	body := validBody()
	body["acceptTerms"] = false
	resp, errs := postDonation(t, app, body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "You must accept the terms and conditions", errs["acceptTerms"])
}

func TestCreateValidatorFieldMessages(t *testing.T) {
	app := setupValidatorApp()

	body := validBody()
	body["name"] = "P"
	body["email"] = "not-an-email"
	body["phone"] = "12345"
	resp, errs := postDonation(t, app, body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "Please enter your full name", errs["name"])
	require.Equal(t, "Please enter a valid email", errs["email"])
	require.Equal(t, "Please enter a valid phone number", errs["phone"])
}

func TestCreateValidatorFormattedPhoneAccepted(t *testing.T) {
	app := setupValidatorApp()

	body := validBody()
	body["phone"] = "+91 98765-43210"
	resp, _ := postDonation(t, app, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateValidatorRejectsUnknownStatus(t *testing.T) {
	app := setupValidatorApp()

	body := validBody()
	body["status"] = "refunded"
	resp, errs := postDonation(t, app, body)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.NotEmpty(t, errs["status"])
}

func TestUpdateStatusValidatorPolicy(t *testing.T) {
	app := fiber.New()
	app.Patch("/status", donationValidator.UpdateStatus(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	for status, wantCode := range map[string]int{
		"completed": http.StatusOK,
		"failed":    http.StatusOK,
		"pending":   fiber.StatusUnprocessableEntity,
		"refunded":  fiber.StatusUnprocessableEntity,
	} {
		b, _ := json.Marshal(map[string]string{"status": status})
		req := httptest.NewRequest("PATCH", "/status", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, wantCode, resp.StatusCode, "status %q", status)
	}
}
