package dashboardRoutes

import (
	dashboardControllers "padho/controllers/dashboard"
	"padho/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/api/dashboard")

	dashboardGroup.Get("/student", middleware.RequireAuth, dashboardControllers.StudentDashboard)
	dashboardGroup.Get("/instructor", middleware.RequireRole("instructor", "admin"), dashboardControllers.InstructorDashboard)
	dashboardGroup.Get("/admin", middleware.RequireRole("admin"), dashboardControllers.AdminDashboard)
}
