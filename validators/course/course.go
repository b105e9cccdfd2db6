package courseValidator

import (
	"strconv"
	"strings"

	courseController "padho/controllers/course"
	"padho/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourse validator middleware. The same payload serves create and
// update, so UpdateCourse reuses this handler.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CourseInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid " + strings.ToLower(fieldErr.Field()) + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateLesson validator middleware
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID    string   `json:"course_id"`
			Title       string   `json:"title"`
			Description string   `json:"description"`
			VideoURL    string   `json:"video_url"`
			Order       int      `json:"order"`
			Duration    string   `json:"duration"`
			Resources   []string `json:"resources"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == "" {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UploadMaterial validator middleware
func UploadMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title            string   `json:"title"`
			FileURL          string   `json:"file_url"`
			Category         string   `json:"category"`
			Tags             []string `json:"tags"`
			Chapter          string   `json:"chapter"`
			PreviewAvailable bool     `json:"preview_available"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.FileURL == "" {
			errors["file_url"] = "File URL is required!"
		}
		if reqData.Category == "" {
			errors["category"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

// CourseIDQuery validates the course_id query param shared by the
// enrollment and certificate routes.
func CourseIDQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Query("course_id")
		if courseID == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "Course ID is required!",
			})
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UpdateProgress validator middleware. Progress arrives as a query param
// and is clamped to the 0-100 range.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("progress")
		if raw == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"progress": "Progress is required!",
			})
		}

		progress, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"progress": "Progress must be a number!",
			})
		}

		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}

		c.Locals("progress", progress)
		return c.Next()
	}
}
