package courseController

import (
	"fmt"
	"log"
	"time"

	"padho/database"
	"padho/middleware"
	"padho/models"
	"padho/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GenerateCertificate issues a certificate once the caller's enrollment
// progress has reached 100. Requesting again returns the existing record.
func GenerateCertificate(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(string)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not completed!", nil)
	}
	if enrollment.Progress < 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not completed!", nil)
	}

	// Check if certificate already exists
	var existing models.Certificate
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already issued.", existing)
	}

	courseTitle := "Unknown"
	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err == nil {
		courseTitle = course.Title
	}

	certificate := models.Certificate{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		CourseID:       courseID,
		CourseTitle:    courseTitle,
		CertificateURL: fmt.Sprintf("https://certificates.padhobadho.com/%s/%s", user.ID, courseID),
		IssuedAt:       time.Now().UTC(),
	}

	if err := db.Create(&certificate).Error; err != nil {
		log.Printf("Error creating certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	go func(name, email, title, url string) {
		if err := utils.SendCertificateEmail(name, email, title, url); err != nil {
			log.Printf("Error sending certificate email: %v", err)
		}
	}(user.Name, user.Email, courseTitle, certificate.CertificateURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate generated successfully.", certificate)
}

func GetMyCertificates(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var certificates []models.Certificate
	if err := database.Database.Db.Where("user_id = ?", user.ID).Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", certificates)
}
