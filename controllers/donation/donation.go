package donationController

import (
	"fmt"
	"log"
	"sdf/cache"
	"sdf/config"
	"sdf/database"
	"sdf/middleware"
	"sdf/models"
	"sdf/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// resolveCause applies the precedence rules: a locked cause overrides form
// values, and when nothing is set the donation goes to "General".
func resolveCause(req *models.DonationRequest) (causeSlug, customCause *string) {
	causeSlug = req.CauseSlug
	customCause = req.CustomCause

	if req.LockedCause != nil && *req.LockedCause != "" {
		causeSlug = req.LockedCause
		customCause = nil
	}

	if causeSlug != nil && *causeSlug == "" {
		causeSlug = nil
	}
	if customCause != nil && *customCause == "" {
		customCause = nil
	}

	if causeSlug == nil && customCause == nil {
		general := "General"
		customCause = &general
	}
	return causeSlug, customCause
}

func invalidateDonationCaches(c *fiber.Ctx, userID *uint) {
	ctx := c.UserContext()
	cache.Store.Delete(ctx, cache.DonationsKey)
	cache.Store.Delete(ctx, cache.CausesKey)
	if userID != nil {
		cache.Store.Delete(ctx, cache.UserDonationsKey(*userID))
	}
}

// CreateDonation processes a donor submission: charge, persist, bump the
// cause aggregate, invalidate cached views.
func CreateDonation(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDonation").(*models.DonationRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// Retried submissions carry the same paymentId; resolve them to the
	// original record instead of recording a second donation.
	if reqData.PaymentID != "" {
		var existing models.Donation
		if err := db.Preload("Cause").
			Where("payment_id = ? AND is_deleted = false", reqData.PaymentID).
			First(&existing).Error; err == nil {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "donation": existing})
		}
	}

	causeSlug, customCause := resolveCause(reqData)

	var cause models.Cause
	var causeID *uint
	if causeSlug != nil {
		if err := db.Where("slug = ? AND is_deleted = false", *causeSlug).First(&cause).Error; err == nil {
			id := cause.ID
			causeID = &id
		} else {
			// Unknown slug keeps the donation alive as a custom cause.
			customCause = causeSlug
			causeSlug = nil
		}
	}

	paymentID := reqData.PaymentID
	status := reqData.Status
	gatewayMessage := ""
	var rawResponse []byte

	if paymentID == "" {
		result, err := utils.ChargePayment(reqData.Amount, reqData.Email)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "Payment gateway unavailable. Please try again.")
		}
		paymentID = result.PaymentID
		rawResponse = result.Raw
		if result.Status == utils.PaymentFailed {
			status = models.DonationStatusFailed
			gatewayMessage = result.Message
			if paymentID == "" {
				paymentID = "declined_" + uuid.NewString()
			}
		} else {
			status = models.DonationStatusCompleted
		}
	}
	if status == "" {
		status = models.DonationStatusPending
	}

	donation := models.Donation{
		Name:          reqData.Name,
		Email:         reqData.Email,
		Phone:         reqData.Phone,
		Amount:        uint(reqData.Amount),
		Message:       reqData.Message,
		AadharNumber:  reqData.AadharNumber,
		PanCardNumber: reqData.PanCardNumber,
		CauseSlug:     causeSlug,
		CustomCause:   customCause,
		CauseID:       causeID,
		PaymentID:     paymentID,
		Status:        status,
		UserID:        reqData.UserID,
		IsRecurring:   reqData.IsRecurring,
	}
	if rawResponse != nil {
		donation.PaymentResponse = datatypes.JSON(rawResponse)
	}

	// Identity proof upload (multipart variant)
	if file, err := c.FormFile("identityProof"); err == nil && file != nil {
		if path, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir); err == nil {
			url := utils.GetFileURL(path)
			donation.IdentityProof = &url
		} else {
			log.Printf("Failed to store identity proof: %v", err)
		}
	}

	tx := db.Begin()

	if err := tx.Create(&donation).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process donation")
	}

	// Raised is bumped inside the same transaction with an atomic expression
	// so concurrent completions cannot lose updates.
	if donation.Status == models.DonationStatusCompleted && donation.CauseID != nil {
		if err := tx.Model(&models.Cause{}).Where("id = ?", *donation.CauseID).
			Update("raised", gorm.Expr("raised + ?", donation.Amount)).Error; err != nil {
			tx.Rollback()
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process donation")
		}
	}

	tx.Commit()

	invalidateDonationCaches(c, donation.UserID)

	if donation.CauseID != nil {
		donation.Cause = &cause
	}

	switch donation.Status {
	case models.DonationStatusCompleted:
		utils.SendDonationThankYouEmail(donation.Email, donation.Name, donation.Amount, donation.CauseName())
	case models.DonationStatusFailed:
		if gatewayMessage != "" {
			utils.SendDonationFailedEmail(donation.Email, donation.Name, donation.Amount)
			return middleware.ErrorResponse(c, fiber.StatusPaymentRequired, gatewayMessage)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "donation": donation})
}

// loadDonations serves the admin list from the cache when possible.
func loadDonations(c *fiber.Ctx) ([]models.Donation, error) {
	ctx := c.UserContext()

	var donations []models.Donation
	if err := cache.Store.Get(ctx, cache.DonationsKey, &donations); err == nil {
		return donations, nil
	}

	if err := database.Database.Db.Preload("Cause").
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}

	cache.Store.Set(ctx, cache.DonationsKey, donations, cache.DefaultTTL)
	return donations, nil
}

func filterDonations(donations []models.Donation, search, tab string) []models.Donation {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Donation, 0, len(donations))
	for _, d := range donations {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Email), search) &&
			!strings.Contains(strings.ToLower(d.CauseName()), search) {
			continue
		}

		switch tab {
		case "", "all":
		case "completed":
			if d.Status != models.DonationStatusCompleted {
				continue
			}
		case "processing":
			if d.Status != models.DonationStatusPending {
				continue
			}
		case "failed":
			if d.Status != models.DonationStatusFailed {
				continue
			}
		case "recurring":
			// Recurring cuts across statuses.
			if !d.IsRecurring {
				continue
			}
		}

		filtered = append(filtered, d)
	}
	return filtered
}

// ListDonations returns all donations for the admin console, with optional
// free-text search and status tab filtering.
func ListDonations(c *fiber.Ctx) error {
	donations, err := loadDonations(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	donations = filterDonations(donations, c.Query("search"), c.Query("tab", "all"))

	return c.JSON(fiber.Map{"success": true, "donations": donations})
}

// GetDonationStats returns the derived aggregates the console shows above
// the table.
func GetDonationStats(c *fiber.Ctx) error {
	donations, err := loadDonations(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	var totalAmount uint
	completedCount := 0
	recurringEmails := make(map[string]struct{})
	pendingReceipts := 0

	for _, d := range donations {
		if d.Status != models.DonationStatusCompleted {
			continue
		}
		totalAmount += d.Amount
		completedCount++
		if d.IsRecurring {
			recurringEmails[strings.ToLower(d.Email)] = struct{}{}
		}
		if d.Receipt == nil {
			pendingReceipts++
		}
	}

	averageAmount := 0.0
	if completedCount > 0 {
		averageAmount = float64(totalAmount) / float64(completedCount)
	}

	return c.JSON(fiber.Map{"success": true, "stats": fiber.Map{
		"totalAmount":     totalAmount,
		"completedCount":  completedCount,
		"averageAmount":   averageAmount,
		"recurringDonors": len(recurringEmails),
		"pendingReceipts": pendingReceipts,
	}})
}

// ListUserDonations returns one account's donation history.
func ListUserDonations(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("userId")
	if err != nil || userId < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id!")
	}

	requester, _ := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)
	if role != "ADMIN" && requester != uint(userId) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access Denied!")
	}

	ctx := c.UserContext()
	key := cache.UserDonationsKey(uint(userId))

	var donations []models.Donation
	if err := cache.Store.Get(ctx, key, &donations); err != nil {
		if err := database.Database.Db.Preload("Cause").
			Where("user_id = ? AND is_deleted = false", userId).
			Order("created_at desc").
			Find(&donations).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch donations")
		}
		cache.Store.Set(ctx, key, donations, cache.DefaultTTL)
	}

	return c.JSON(fiber.Map{"success": true, "donations": donations})
}

func findDonation(c *fiber.Ctx, donation *models.Donation) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid donation id!")
	}

	if err := database.Database.Db.Preload("Cause").
		Where("id = ? AND is_deleted = false", id).
		First(donation).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Donation not found!")
	}
	return nil
}

// UpdateDonationStatus applies an admin status transition and keeps the
// cause aggregate in step when a donation completes.
func UpdateDonationStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatus").(*models.DonationStatusRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	var donation models.Donation
	if err := findDonation(c, &donation); err != nil {
		return err
	}

	if !models.CanTransitionDonationStatus(donation.Status, reqData.Status) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Cannot move donation from %s to %s", donation.Status, reqData.Status))
	}

	db := database.Database.Db
	tx := db.Begin()

	if err := tx.Model(&models.Donation{}).Where("id = ?", donation.ID).
		Update("status", reqData.Status).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update donation!")
	}

	if reqData.Status == models.DonationStatusCompleted && donation.CauseID != nil {
		if err := tx.Model(&models.Cause{}).Where("id = ?", *donation.CauseID).
			Update("raised", gorm.Expr("raised + ?", donation.Amount)).Error; err != nil {
			tx.Rollback()
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update donation!")
		}
	}

	tx.Commit()

	donation.Status = reqData.Status
	invalidateDonationCaches(c, donation.UserID)

	return c.JSON(fiber.Map{"success": true, "donation": donation})
}

// IssueReceipt generates the receipt artifact for a completed donation,
// records its URL and emails the donor.
func IssueReceipt(c *fiber.Ctx) error {
	var donation models.Donation
	if err := findDonation(c, &donation); err != nil {
		return err
	}

	if donation.Status != models.DonationStatusCompleted {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Receipt can only be issued for completed donations!")
	}
	if donation.Receipt != nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Receipt already issued!")
	}

	url, err := utils.GenerateReceipt(&donation)
	if err != nil {
		log.Printf("Failed to generate receipt for donation %d: %v", donation.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate receipt!")
	}

	if err := database.Database.Db.Model(&models.Donation{}).Where("id = ?", donation.ID).
		Update("receipt", url).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update donation!")
	}

	donation.Receipt = &url
	invalidateDonationCaches(c, donation.UserID)

	utils.SendReceiptEmail(donation.Email, donation.Name, url)

	return c.JSON(fiber.Map{"success": true, "donation": donation})
}

// ResendReceipt re-emails an already issued receipt.
func ResendReceipt(c *fiber.Ctx) error {
	var donation models.Donation
	if err := findDonation(c, &donation); err != nil {
		return err
	}

	if donation.Receipt == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No receipt has been issued for this donation!")
	}

	utils.SendReceiptEmail(donation.Email, donation.Name, *donation.Receipt)

	return c.JSON(fiber.Map{"success": true, "message": "Receipt sent to donor!"})
}

// SendThankYou sends the donor a thank-you message on admin request.
func SendThankYou(c *fiber.Ctx) error {
	var donation models.Donation
	if err := findDonation(c, &donation); err != nil {
		return err
	}

	utils.SendDonationThankYouEmail(donation.Email, donation.Name, donation.Amount, donation.CauseName())

	return c.JSON(fiber.Map{"success": true, "message": "Thank you message sent to donor!"})
}

// DeleteDonation soft deletes a record. Aggregates are untouched; the
// reconciliation pass picks up any resulting drift.
func DeleteDonation(c *fiber.Ctx) error {
	var donation models.Donation
	if err := findDonation(c, &donation); err != nil {
		return err
	}

	if err := database.Database.Db.Model(&models.Donation{}).Where("id = ?", donation.ID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete donation!")
	}

	invalidateDonationCaches(c, donation.UserID)

	return c.JSON(fiber.Map{"success": true, "message": "Donation deleted!"})
}
