package paymentController

import (
	"log"
	"time"

	"padho/database"
	"padho/middleware"
	"padho/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MockPayment records a completed payment and auto-enrolls the user in the
// course. The payment always succeeds; an enrollment insert failing (the
// user was already enrolled) is logged and ignored.
func MockPayment(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(string)
	amount := c.Locals("amount").(float64)

	db := database.Database.Db

	payment := models.Payment{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Amount: amount,
		Type:   "course",
		Status: "completed",
	}

	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error saving payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	enrollment := models.Enrollment{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		log.Printf("Error auto-enrolling after payment: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful.", fiber.Map{
		"payment_id": payment.ID,
	})
}
