package blogValidator

import (
	"strings"

	"padho/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateBlogPost validator middleware
func CreateBlogPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string   `json:"title"`
			Content string   `json:"content"`
			Tags    []string `json:"tags"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlogPost", reqData)
		return c.Next()
	}
}
