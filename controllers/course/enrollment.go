package courseController

import (
	"log"
	"time"

	"padho/database"
	"padho/middleware"
	"padho/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func EnrollInCourse(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(string)

	db := database.Database.Db

	// Check if already enrolled
	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled.", fiber.Map{
			"enrollment_id": existing.ID,
		})
	}

	enrollment := models.Enrollment{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
	}

	if err := db.Create(&enrollment).Error; err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	// Bump the course's derived enrollment counter
	if err := db.Model(&models.Course{}).Where("id = ?", courseID).
		UpdateColumn("total_enrollments", gorm.Expr("total_enrollments + 1")).Error; err != nil {
		log.Printf("Error updating enrollment count: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully.", fiber.Map{
		"enrollment_id": enrollment.ID,
	})
}

func GetMyEnrollments(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", user.ID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
}

func UpdateProgress(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	progress := c.Locals("progress").(float64)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	updates := map[string]interface{}{"progress": progress}
	if lessonID := c.Query("lesson_id"); lessonID != "" {
		updates["last_watched_lesson_id"] = lessonID
	}

	if err := db.Model(&enrollment).Updates(updates).Error; err != nil {
		log.Printf("Error updating progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated.", nil)
}
