package donationRoutes

import (
	donationController "sdf/controllers/donation"
	"sdf/middleware"
	donationValidator "sdf/validators/donation"

	"github.com/gofiber/fiber/v2"
)

func SetupDonationRoutes(app *fiber.App) {
	donationGroup := app.Group("/api/donation")

	// Public donor route
	donationGroup.Post("/", donationValidator.Create(), donationController.CreateDonation)

	// Donor history
	donationGroup.Get("/user/:userId", middleware.JWTMiddleware, donationController.ListUserDonations)

	// Admin console routes
	donationGroup.Get("/", middleware.JWTMiddleware, middleware.AdminMiddleware, donationController.ListDonations)
	donationGroup.Get("/stats", middleware.JWTMiddleware, middleware.AdminMiddleware, donationController.GetDonationStats)
	donationGroup.Patch("/:id/status", donationValidator.UpdateStatus(), middleware.JWTMiddleware, middleware.AdminMiddleware, donationController.UpdateDonationStatus)
	donationGroup.Post("/:id/receipt", middleware.JWTMiddleware, middleware.AdminMiddleware, donationController.IssueReceipt)
	donationGroup.Post("/:id/resend-receipt", middleware.JWTMiddleware, middleware.AdminMiddleware, donationController.ResendReceipt)
	donationGroup.Post("/:id/thank-you", middleware.JWTMiddleware, middleware.AdminMiddleware, donationController.SendThankYou)
	donationGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, donationController.DeleteDonation)
}
