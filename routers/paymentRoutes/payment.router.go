package paymentRoutes

import (
	paymentControllers "padho/controllers/payment"
	"padho/middleware"
	paymentValidators "padho/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payments")

	paymentGroup.Post("/mock", middleware.RequireAuth, paymentValidators.MockPayment(), paymentControllers.MockPayment)
}
