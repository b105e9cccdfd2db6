package quizRoutes

import (
	quizControllers "padho/controllers/quiz"
	"padho/middleware"
	quizValidators "padho/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/api/quizzes")

	quizGroup.Get("/", quizControllers.GetQuizzes)
	quizGroup.Post("/", middleware.RequireRole("instructor", "admin"), quizValidators.CreateQuiz(), quizControllers.CreateQuiz)
	quizGroup.Get("/:id/questions", middleware.RequireAuth, quizControllers.GetQuizQuestions)
	quizGroup.Post("/submit", middleware.RequireAuth, quizValidators.SubmitQuiz(), quizControllers.SubmitQuiz)
	quizGroup.Get("/:id/leaderboard", quizValidators.Leaderboard(), quizControllers.GetLeaderboard)

	questionGroup := app.Group("/api/questions")

	questionGroup.Post("/", middleware.RequireRole("instructor", "admin"), quizValidators.CreateQuestion(), quizControllers.CreateQuestion)
}
