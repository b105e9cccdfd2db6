package authRoutes

import (
	authControllers "padho/controllers/auth"
	"padho/middleware"
	authValidators "padho/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/google", authControllers.GoogleAuth)
	authGroup.Get("/me", middleware.RequireAuth, authControllers.Me)
	authGroup.Post("/logout", middleware.RequireAuth, authControllers.Logout)
}
