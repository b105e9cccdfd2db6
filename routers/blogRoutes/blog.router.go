package blogRoutes

import (
	blogControllers "padho/controllers/blog"
	"padho/middleware"
	blogValidators "padho/validators/blog"

	"github.com/gofiber/fiber/v2"
)

func SetupBlogRoutes(app *fiber.App) {
	blogGroup := app.Group("/api/blog")

	blogGroup.Get("/", blogControllers.GetBlogPosts)
	blogGroup.Post("/", middleware.RequireRole("instructor", "admin"), blogValidators.CreateBlogPost(), blogControllers.CreateBlogPost)
}
