package paymentValidator

import (
	"strconv"

	"padho/middleware"

	"github.com/gofiber/fiber/v2"
)

// MockPayment validates the course_id and amount query params.
func MockPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		courseID := c.Query("course_id")
		if courseID == "" {
			errors["course_id"] = "Course ID is required!"
		}

		amount := 0.0
		if raw := c.Query("amount"); raw == "" {
			errors["amount"] = "Amount is required!"
		} else {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed < 0 {
				errors["amount"] = "Amount must be a non-negative number!"
			} else {
				amount = parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("amount", amount)
		return c.Next()
	}
}
