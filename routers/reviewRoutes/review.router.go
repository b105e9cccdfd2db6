package reviewRoutes

import (
	reviewControllers "padho/controllers/review"
	"padho/middleware"
	reviewValidators "padho/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/api/reviews")

	reviewGroup.Get("/", reviewControllers.GetReviews)
	reviewGroup.Post("/", middleware.RequireAuth, reviewValidators.CreateReview(), reviewControllers.CreateReview)
}
