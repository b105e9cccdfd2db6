package quizValidator

import (
	"strconv"
	"strings"

	"padho/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID        string `json:"course_id"`
			Title           string `json:"title"`
			Duration        int    `json:"duration"`
			TotalMarks      int    `json:"total_marks"`
			NegativeMarking bool   `json:"negative_marking"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Quizzes may stand alone, so course_id stays optional
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.Duration <= 0 {
			reqData.Duration = 30
		}
		if reqData.TotalMarks <= 0 {
			reqData.TotalMarks = 100
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// CreateQuestion validator middleware
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuizID        string   `json:"quiz_id"`
			QuestionText  string   `json:"question_text"`
			Type          string   `json:"type"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correct_answer"`
			Marks         int      `json:"marks"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuizID == "" {
			errors["quiz_id"] = "Quiz ID is required!"
		}
		if strings.TrimSpace(reqData.QuestionText) == "" {
			errors["question_text"] = "Question text is required!"
		}
		if reqData.CorrectAnswer == "" {
			errors["correct_answer"] = "Correct answer is required!"
		}

		switch reqData.Type {
		case "":
			reqData.Type = "mcq"
		case "mcq", "true_false", "fill_blank":
		default:
			errors["type"] = "Type must be mcq, true_false or fill_blank!"
		}

		if reqData.Marks <= 0 {
			reqData.Marks = 1
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// SubmitQuiz validator middleware
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuizID  string            `json:"quiz_id"`
			Answers map[string]string `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuizID == "" {
			errors["quiz_id"] = "Quiz ID is required!"
		}
		if reqData.Answers == nil {
			reqData.Answers = map[string]string{}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// Leaderboard validates the limit query param, defaulting to 10 and
// capping at 100.
func Leaderboard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 10
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"limit": "Limit must be a positive number!",
				})
			}
			limit = parsed
		}
		if limit > 100 {
			limit = 100
		}

		c.Locals("limit", limit)
		return c.Next()
	}
}
