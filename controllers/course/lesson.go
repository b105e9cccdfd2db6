package courseController

import (
	"log"

	"padho/database"
	"padho/middleware"
	"padho/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetLessons(c *fiber.Ctx) error {
	courseID := c.Query("course_id")
	if courseID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "course_id is required!", nil)
	}

	var lessons []models.Lesson
	if err := database.Database.Db.Where("course_id = ?", courseID).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully.", lessons)
}

func CreateLesson(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedLesson").(*struct {
		CourseID    string   `json:"course_id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		VideoURL    string   `json:"video_url"`
		Order       int      `json:"order"`
		Duration    string   `json:"duration"`
		Resources   []string `json:"resources"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Lessons may only be attached to courses the caller can mutate
	var course models.Course
	if err := db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.CanMutateResource(user, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized!", nil)
	}

	lesson := models.Lesson{
		ID:          uuid.NewString(),
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
		Order:       reqData.Order,
		Duration:    reqData.Duration,
		Resources:   toJSONList(reqData.Resources),
	}
	if lesson.Duration == "" {
		lesson.Duration = "10 min"
	}

	if err := db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully.", lesson)
}
