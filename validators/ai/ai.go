package aiValidator

import (
	"strings"

	"padho/middleware"

	"github.com/gofiber/fiber/v2"
)

// Recommendations validator middleware
func Recommendations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserInterests    []string `json:"user_interests"`
			CompletedCourses []string `json:"completed_courses"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedRecommendation", reqData)
		return c.Next()
	}
}

// Chat validator middleware
func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
			Context string `json:"context"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Message) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"message": "Message is required!",
			})
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}

// GenerateQuiz validator middleware. num_questions defaults to 5 and is
// capped at 20.
func GenerateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content      string `json:"content"`
			NumQuestions int    `json:"num_questions"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Content) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Content is required!",
			})
		}

		if reqData.NumQuestions <= 0 {
			reqData.NumQuestions = 5
		}
		if reqData.NumQuestions > 20 {
			reqData.NumQuestions = 20
		}

		c.Locals("validatedQuizGen", reqData)
		return c.Next()
	}
}
