package causeValidator

import (
	"regexp"
	"sdf/middleware"
	"sdf/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Create validates a new cause
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CauseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		reqData.Slug = strings.TrimSpace(reqData.Slug)
		if reqData.Slug == "" {
			errors["slug"] = "Slug is required!"
		} else if !slugPattern.MatchString(reqData.Slug) {
			errors["slug"] = "Slug must be lowercase letters, digits and hyphens!"
		}

		if reqData.Goal == 0 {
			errors["goal"] = "Goal must be greater than 0!"
		}

		if reqData.StartDate != nil && reqData.EndDate != nil && reqData.EndDate.Before(*reqData.StartDate) {
			errors["endDate"] = "End date must be after start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCause", reqData)
		return c.Next()
	}
}

// Update validates cause updates. All fields are optional; only provided
// values are checked.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.CauseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		reqData.Slug = strings.TrimSpace(reqData.Slug)
		if reqData.Slug != "" && !slugPattern.MatchString(reqData.Slug) {
			errors["slug"] = "Slug must be lowercase letters, digits and hyphens!"
		}

		if reqData.StartDate != nil && reqData.EndDate != nil && reqData.EndDate.Before(*reqData.StartDate) {
			errors["endDate"] = "End date must be after start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCause", reqData)
		return c.Next()
	}
}
