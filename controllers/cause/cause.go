package causeController

import (
	"sdf/cache"
	"sdf/database"
	"sdf/middleware"
	"sdf/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ListActiveCauses returns the causes donors can pick from. This is the view
// the donation form invalidates after every successful submission.
func ListActiveCauses(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var causes []models.Cause
	if err := cache.Store.Get(ctx, cache.CausesKey, &causes); err != nil {
		now := time.Now()
		if err := database.Database.Db.
			Where("is_active = true AND is_deleted = false").
			Where("start_date IS NULL OR start_date <= ?", now).
			Where("end_date IS NULL OR end_date >= ?", now).
			Order("created_at desc").
			Find(&causes).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch causes")
		}
		cache.Store.Set(ctx, cache.CausesKey, causes, cache.DefaultTTL)
	}

	return c.JSON(fiber.Map{"success": true, "causes": causes})
}

// ListCauses returns every cause for the admin console, active or not.
func ListCauses(c *fiber.Ctx) error {
	var causes []models.Cause
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&causes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch causes")
	}

	return c.JSON(fiber.Map{"success": true, "causes": causes})
}

// CreateCause adds a fundraising cause
func CreateCause(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCause").(*models.CauseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var existing models.Cause
	if err := db.Where("slug = ? AND is_deleted = false", reqData.Slug).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Cause with this slug already exists!")
	}

	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	cause := models.Cause{
		Title:       reqData.Title,
		Slug:        reqData.Slug,
		Category:    reqData.Category,
		Description: reqData.Description,
		Goal:        reqData.Goal,
		ImageURL:    reqData.ImageURL,
		IsActive:    isActive,
		StartDate:   reqData.StartDate,
		EndDate:     reqData.EndDate,
	}

	if err := db.Create(&cause).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create cause!")
	}

	cache.Store.Delete(c.UserContext(), cache.CausesKey)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "cause": cause})
}

// UpdateCause edits cause fields. Raised is deliberately not editable here;
// corrections go through RecomputeRaised.
func UpdateCause(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCause").(*models.CauseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cause id!")
	}

	db := database.Database.Db

	var cause models.Cause
	if err := db.Where("id = ? AND is_deleted = false", id).First(&cause).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Cause not found!")
	}

	if reqData.Title != "" {
		cause.Title = reqData.Title
	}
	if reqData.Slug != "" && reqData.Slug != cause.Slug {
		var existing models.Cause
		if err := db.Where("slug = ? AND is_deleted = false", reqData.Slug).First(&existing).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Cause with this slug already exists!")
		}
		cause.Slug = reqData.Slug
	}
	if reqData.Category != "" {
		cause.Category = reqData.Category
	}
	if reqData.Description != "" {
		cause.Description = reqData.Description
	}
	if reqData.Goal > 0 {
		cause.Goal = reqData.Goal
	}
	if reqData.ImageURL != "" {
		cause.ImageURL = reqData.ImageURL
	}
	if reqData.IsActive != nil {
		cause.IsActive = *reqData.IsActive
	}
	if reqData.StartDate != nil {
		cause.StartDate = reqData.StartDate
	}
	if reqData.EndDate != nil {
		cause.EndDate = reqData.EndDate
	}

	if err := db.Save(&cause).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update cause!")
	}

	cache.Store.Delete(c.UserContext(), cache.CausesKey)

	return c.JSON(fiber.Map{"success": true, "cause": cause})
}

// RecomputeRaised is the explicit admin correction path: it sets raised to
// the sum of completed donations for the cause.
func RecomputeRaised(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cause id!")
	}

	db := database.Database.Db

	var cause models.Cause
	if err := db.Where("id = ? AND is_deleted = false", id).First(&cause).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Cause not found!")
	}

	var total int64
	if err := db.Model(&models.Donation{}).
		Where("cause_id = ? AND status = ? AND is_deleted = false", cause.ID, models.DonationStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to recompute total!")
	}

	if err := db.Model(&models.Cause{}).Where("id = ?", cause.ID).
		Update("raised", uint(total)).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to recompute total!")
	}

	cause.Raised = uint(total)
	cache.Store.Delete(c.UserContext(), cache.CausesKey)

	return c.JSON(fiber.Map{"success": true, "cause": cause})
}
