package courseController

import (
	"encoding/json"
	"log"
	"strings"

	"padho/database"
	"padho/middleware"
	"padho/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseInput is the shared create/update payload, validated upstream.
type CourseInput struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Language      string   `json:"language" validate:"required"`
	Thumbnail     string   `json:"thumbnail"`
	IntroVideo    string   `json:"intro_video"`
	Syllabus      string   `json:"syllabus"`
	Price         float64  `json:"price" validate:"gte=0"`
	Level         string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration      string   `json:"duration"`
	Tags          []string `json:"tags"`
	Prerequisites []string `json:"prerequisites"`
}

func toJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func GetCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Course{})

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		db = db.Where("level = ?", level)
	}
	if language := c.Query("language"); language != "" {
		db = db.Where("language = ?", language)
	}
	if search := c.Query("search"); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

func GetCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.Database.Db.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

func CreateCourse(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedCourse").(*CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		ID:             uuid.NewString(),
		Title:          reqData.Title,
		Description:    reqData.Description,
		Category:       reqData.Category,
		Language:       reqData.Language,
		InstructorID:   user.ID,
		InstructorName: user.Name,
		Thumbnail:      reqData.Thumbnail,
		IntroVideo:     reqData.IntroVideo,
		Syllabus:       reqData.Syllabus,
		Price:          reqData.Price,
		Level:          reqData.Level,
		Duration:       reqData.Duration,
		Tags:           toJSONList(reqData.Tags),
		Prerequisites:  toJSONList(reqData.Prerequisites),
	}
	if course.Level == "" {
		course.Level = "beginner"
	}
	if course.Duration == "" {
		course.Duration = "4 weeks"
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedCourse").(*CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.CanMutateResource(user, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized!", nil)
	}

	updates := map[string]interface{}{
		"title":         reqData.Title,
		"description":   reqData.Description,
		"category":      reqData.Category,
		"language":      reqData.Language,
		"thumbnail":     reqData.Thumbnail,
		"intro_video":   reqData.IntroVideo,
		"syllabus":      reqData.Syllabus,
		"price":         reqData.Price,
		"level":         reqData.Level,
		"duration":      reqData.Duration,
		"tags":          toJSONList(reqData.Tags),
		"prerequisites": toJSONList(reqData.Prerequisites),
	}

	if err := db.Model(&course).Updates(updates).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", nil)
}

// DeleteCourse hard-deletes the course row only. Lessons, enrollments and
// reviews that reference it are left in place.
func DeleteCourse(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.CanMutateResource(user, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized!", nil)
	}

	if err := db.Delete(&course).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
}
