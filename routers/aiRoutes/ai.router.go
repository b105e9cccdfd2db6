package aiRoutes

import (
	aiControllers "padho/controllers/ai"
	"padho/middleware"
	aiValidators "padho/validators/ai"

	"github.com/gofiber/fiber/v2"
)

func SetupAiRoutes(app *fiber.App) {
	aiGroup := app.Group("/api/ai")

	aiGroup.Post("/recommendations", middleware.RequireAuth, aiValidators.Recommendations(), aiControllers.GetRecommendations)
	aiGroup.Post("/chat", middleware.RequireAuth, aiValidators.Chat(), aiControllers.ChatTutor)
	aiGroup.Post("/generate-quiz", middleware.RequireRole("instructor", "admin"), aiValidators.GenerateQuiz(), aiControllers.GenerateQuiz)
}
