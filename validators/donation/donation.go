package donationValidator

import (
	"sdf/middleware"
	"sdf/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// digitCount counts the numeric characters in a phone value so formatted
// numbers ("+91 98765-43210") still pass.
func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

// Create validates the donor submission before any payment or database work
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.DonationRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if len(reqData.Name) < 2 {
			errors["name"] = "Please enter your full name"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Please enter a valid email"
		}

		if digitCount(reqData.Phone) < 10 {
			errors["phone"] = "Please enter a valid phone number"
		}

		if reqData.Amount < 100 {
			errors["amount"] = "Minimum donation amount is ₹100"
		} else if reqData.Amount > 100000 {
			errors["amount"] = "Maximum donation amount is ₹100,000"
		}

		if !reqData.AcceptTerms {
			errors["acceptTerms"] = "You must accept the terms and conditions"
		}

		if reqData.Status != "" && !models.IsValidDonationStatus(reqData.Status) {
			errors["status"] = "Invalid status! Allowed: pending, completed, failed"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Message = strings.TrimSpace(reqData.Message)

		c.Locals("validatedDonation", reqData)
		return c.Next()
	}
}

// UpdateStatus validates the admin status transition payload. The target set
// here is console policy; the model rules still decide which moves are legal
// for a given donation.
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.DonationStatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		switch reqData.Status {
		case models.DonationStatusCompleted, models.DonationStatusFailed:
		default:
			errors["status"] = "Invalid status! Allowed: completed, failed"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
