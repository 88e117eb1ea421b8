package causeRoutes

import (
	causeController "sdf/controllers/cause"
	"sdf/middleware"
	causeValidator "sdf/validators/cause"

	"github.com/gofiber/fiber/v2"
)

func SetupCauseRoutes(app *fiber.App) {
	causeGroup := app.Group("/api/cause")

	// Public route for the donation form
	causeGroup.Get("/active", causeController.ListActiveCauses)

	// Admin routes
	causeGroup.Get("/", middleware.JWTMiddleware, middleware.AdminMiddleware, causeController.ListCauses)
	causeGroup.Post("/", causeValidator.Create(), middleware.JWTMiddleware, middleware.AdminMiddleware, causeController.CreateCause)
	causeGroup.Put("/:id", causeValidator.Update(), middleware.JWTMiddleware, middleware.AdminMiddleware, causeController.UpdateCause)
	causeGroup.Post("/:id/recompute", middleware.JWTMiddleware, middleware.AdminMiddleware, causeController.RecomputeRaised)
}
